package mock

import (
	"context"
	"sync/atomic"

	"github.com/poiesic/docscout/extract"
)

// MockExtractor is a test double for both decoder interfaces.
// It allows custom behavior injection via function fields.
type MockExtractor struct {
	// ExtractTextFunc is called by ExtractText if set.
	// If nil, the input bytes are returned as text.
	ExtractTextFunc func(ctx context.Context, data []byte) (string, error)

	callCount atomic.Int64
}

// NewMockExtractor creates a mock extractor with default echo behavior.
func NewMockExtractor() *MockExtractor {
	return &MockExtractor{}
}

// WithExtractTextFunc sets the injected behavior and returns the mock for
// chaining.
func (m *MockExtractor) WithExtractTextFunc(fn func(ctx context.Context, data []byte) (string, error)) *MockExtractor {
	m.ExtractTextFunc = fn
	return m
}

// ExtractText returns the injected behavior's result, or the input bytes
// as text when none is set.
func (m *MockExtractor) ExtractText(ctx context.Context, data []byte) (string, error) {
	m.callCount.Add(1)

	if m.ExtractTextFunc != nil {
		return m.ExtractTextFunc(ctx, data)
	}
	return string(data), nil
}

// CallCount returns how many times ExtractText was invoked.
func (m *MockExtractor) CallCount() int {
	return int(m.callCount.Load())
}

// MockProvider aggregates mock decoders behind the extract.Provider
// interface.
type MockProvider struct {
	MockPDF  *MockExtractor
	MockWord *MockExtractor
}

var _ extract.Provider = (*MockProvider)(nil)

// NewMockProvider creates a provider with default mock decoders.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		MockPDF:  NewMockExtractor(),
		MockWord: NewMockExtractor(),
	}
}

// PDF returns the mock PDF decoder.
func (p *MockProvider) PDF() extract.PDFExtractor { return p.MockPDF }

// Word returns the mock Word decoder.
func (p *MockProvider) Word() extract.WordExtractor { return p.MockWord }
