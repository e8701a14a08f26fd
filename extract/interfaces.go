package extract

import "context"

// PDFExtractor decodes PDF document bytes to plain text.
// Implementations must be thread-safe for concurrent use.
type PDFExtractor interface {
	// ExtractText returns the document text page by page, each page
	// preceded by a page header and separated by blank lines. A single
	// page's decode failure yields a placeholder for that page only and
	// does not fail the document.
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// WordExtractor decodes Word document bytes to raw text in a single call.
// Implementations must be thread-safe for concurrent use.
type WordExtractor interface {
	ExtractText(ctx context.Context, data []byte) (string, error)
}

// Provider aggregates document decoders for convenient initialization.
// A provider creates and manages the PDF and Word decoder instances,
// ensuring they share resources appropriately.
type Provider interface {
	// PDF returns the PDF decoder. Safe for concurrent use.
	PDF() PDFExtractor

	// Word returns the Word decoder. Safe for concurrent use.
	Word() WordExtractor
}
