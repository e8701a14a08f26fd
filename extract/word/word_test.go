package word

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_LegacyDocRejected(t *testing.T) {
	// compound-file signature of a pre-OOXML .doc
	data := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, make([]byte, 512)...)

	_, err := NewExtractor().ExtractText(context.Background(), data)
	assert.ErrorIs(t, err, ErrLegacyFormat)
}

func TestExtractText_MalformedDocument(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"truncated zip", []byte("PK\x03\x04 not a real archive")},
		{"plain text", []byte("just some text")},
		{"empty", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewExtractor().ExtractText(context.Background(), tt.data)
			require.Error(t, err)
			assert.ErrorContains(t, err, "opening word document")
			assert.NotErrorIs(t, err, ErrLegacyFormat)
		})
	}
}
