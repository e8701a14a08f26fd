package extract_test

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/docscout/extract"
	"github.com/poiesic/docscout/extract/mock"
	"github.com/poiesic/docscout/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, provider *mock.MockProvider) *extract.Router {
	t.Helper()
	router, err := extract.NewRouter(provider)
	require.NoError(t, err)
	return router
}

func TestNewRouter_RequiresProvider(t *testing.T) {
	_, err := extract.NewRouter(nil)
	assert.ErrorIs(t, err, extract.ErrProviderRequired)
}

func TestExtract_SizeGuardBeforeDecode(t *testing.T) {
	provider := mock.NewMockProvider()
	router := newRouter(t, provider)

	f := source.NewMemFile("big.pdf", "application/pdf", []byte("%PDF"))
	f.FileSize = extract.MaxFileSize + 1

	_, err := router.Extract(context.Background(), f)
	assert.ErrorIs(t, err, extract.ErrFileTooLarge)
	// the guard runs before any decode attempt
	assert.Equal(t, 0, provider.MockPDF.CallCount())
}

func TestExtract_PlainText(t *testing.T) {
	router := newRouter(t, mock.NewMockProvider())

	tests := []struct {
		name string
		file *source.MemFile
	}{
		{"text mime", source.NewMemFile("notes", "text/plain", []byte("hello"))},
		{"txt extension", source.NewMemFile("notes.txt", "application/octet-stream", []byte("hello"))},
		{"md extension", source.NewMemFile("notes.md", "application/octet-stream", []byte("hello"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, err := router.Extract(context.Background(), tt.file)
			require.NoError(t, err)
			assert.Equal(t, "hello", text)
		})
	}
}

func TestExtract_DispatchesPDF(t *testing.T) {
	provider := mock.NewMockProvider()
	provider.MockPDF.WithExtractTextFunc(func(_ context.Context, _ []byte) (string, error) {
		return "--- Page 1 ---\n\npage text\n\n", nil
	})
	router := newRouter(t, provider)

	text, err := router.Extract(context.Background(), source.NewMemFile("doc.pdf", "application/pdf", []byte("%PDF")))
	require.NoError(t, err)
	assert.Contains(t, text, "page text")
	assert.Equal(t, 1, provider.MockPDF.CallCount())
	assert.Equal(t, 0, provider.MockWord.CallCount())
}

func TestExtract_DispatchesWord(t *testing.T) {
	provider := mock.NewMockProvider()
	provider.MockWord.WithExtractTextFunc(func(_ context.Context, _ []byte) (string, error) {
		return "word text", nil
	})
	router := newRouter(t, provider)

	for _, ctype := range []string{
		"application/msword",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	} {
		text, err := router.Extract(context.Background(), source.NewMemFile("doc.bin", ctype, []byte("PK")))
		require.NoError(t, err)
		assert.Equal(t, "word text", text)
	}
	assert.Equal(t, 2, provider.MockWord.CallCount())
}

func TestExtract_DecodeFailureWrapped(t *testing.T) {
	decodeErr := errors.New("corrupt document")
	provider := mock.NewMockProvider()
	provider.MockWord.WithExtractTextFunc(func(_ context.Context, _ []byte) (string, error) {
		return "", decodeErr
	})
	router := newRouter(t, provider)

	_, err := router.Extract(context.Background(), source.NewMemFile("bad.docx", "application/octet-stream", []byte("PK")))
	assert.ErrorIs(t, err, decodeErr)
}

func TestExtract_UnsupportedType(t *testing.T) {
	provider := mock.NewMockProvider()
	router := newRouter(t, provider)

	f := source.NewMemFile("sheet.xlsx", "application/vnd.ms-excel", []byte{0x01})
	_, err := router.Extract(context.Background(), f)
	assert.ErrorIs(t, err, extract.ErrUnsupportedType)
	assert.Equal(t, 0, provider.MockPDF.CallCount())
	assert.Equal(t, 0, provider.MockWord.CallCount())
}

func TestExtract_OpenFailure(t *testing.T) {
	router := newRouter(t, mock.NewMockProvider())

	f := source.NewMemFile("gone.txt", "text/plain", nil)
	f.OpenErr = errors.New("file vanished")

	_, err := router.Extract(context.Background(), f)
	assert.ErrorContains(t, err, "file vanished")
}
