package scanner

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"webtools/internal/domain/models"
	"webtools/internal/qrcode/generator"
	"webtools/internal/services/qr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanner_DecodeGenerated(t *testing.T) {
	opts := models.DefaultQROptions()
	opts.OutputFormat = models.FormatDataURL
	opts.Size = 300

	artifact, err := generator.New().Generate(context.Background(), "https://example.com/?q=42", opts)
	require.NoError(t, err)

	file, err := qr.Download(opts.OutputFormat, artifact)
	require.NoError(t, err)

	got, err := New().Decode(context.Background(), file.Data)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/?q=42", got)
}

func TestScanner_Errors(t *testing.T) {
	blank := image.NewGray(image.Rect(0, 0, 64, 64))
	for i := range blank.Pix {
		blank.Pix[i] = uint8(color.White.Y >> 8)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, blank))

	t.Run("пустое изображение", func(t *testing.T) {
		_, err := New().Decode(context.Background(), buf.Bytes())
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrNoQRCode)
	})

	t.Run("не изображение", func(t *testing.T) {
		_, err := New().Decode(context.Background(), []byte(strings.Repeat("x", 32)))
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrInvalidData)
	})
}
