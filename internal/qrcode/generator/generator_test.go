package generator

import (
	"bytes"
	"context"
	"encoding/base64"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"webtools/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_Generate(t *testing.T) {
	g := New()
	opts := models.DefaultQROptions()

	t.Run("svg", func(t *testing.T) {
		opts := opts
		opts.Color = "#123456"
		opts.Size = 240

		got, err := g.Generate(context.Background(), "https://example.com", opts)
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(got, `<svg xmlns="http://www.w3.org/2000/svg" width="240" height="240"`))
		assert.Contains(t, got, `fill="#123456"`)
		assert.Contains(t, got, `fill="#ffffff"`)
		assert.True(t, strings.HasSuffix(got, "</svg>"))
	})

	t.Run("data url", func(t *testing.T) {
		opts := opts
		opts.OutputFormat = models.FormatDataURL
		opts.Size = 256

		got, err := g.Generate(context.Background(), "hello", opts)
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(got, "data:image/png;base64,"))

		raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(got, "data:image/png;base64,"))
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(raw))
		require.NoError(t, err)
		assert.Equal(t, 256, img.Bounds().Dx())
		assert.Equal(t, 256, img.Bounds().Dy())
	})

	t.Run("utf8", func(t *testing.T) {
		opts := opts
		opts.OutputFormat = models.FormatUTF8

		got, err := g.Generate(context.Background(), "hello", opts)
		require.NoError(t, err)
		assert.NotEmpty(t, got)
		assert.Contains(t, got, "\n")
	})

	t.Run("битый цвет", func(t *testing.T) {
		opts := opts
		opts.Color = "blue"

		_, err := g.Generate(context.Background(), "hello", opts)
		require.Error(t, err)
		assert.ErrorIs(t, err, models.ErrInvalidData)
	})

	t.Run("отмененный контекст", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := g.Generate(ctx, "hello", opts)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("слишком длинный текст", func(t *testing.T) {
		opts := opts
		opts.ErrorCorrectionLevel = models.LevelHigh

		_, err := g.Generate(context.Background(), strings.Repeat("x", 8000), opts)
		require.Error(t, err)
	})
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.NRGBA
		wantErr bool
	}{
		{input: "#000000", want: color.NRGBA{A: 0xFF}},
		{input: "#fff", want: color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}},
		{input: "#ff000080", want: color.NRGBA{R: 0xFF, A: 0x80}},
		{input: " #00ff00 ", want: color.NRGBA{G: 0xFF, A: 0xFF}},
		{input: "", wantErr: true},
		{input: "red", wantErr: true},
		{input: "#ff0000zz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderSVG(t *testing.T) {
	bitmap := [][]bool{
		{true, true, false},
		{false, true, false},
		{false, false, false},
	}

	got := renderSVG(bitmap, 120, color.NRGBA{A: 0xFF}, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0x80})

	assert.Contains(t, got, `viewBox="0 0 3 3"`)
	assert.Contains(t, got, `fill-opacity="0.502"`)
	assert.Contains(t, got, `d="M0 0h2v1h-2zM1 1h1v1h-1z"`)
}
