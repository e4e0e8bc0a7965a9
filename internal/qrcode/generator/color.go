package generator

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"webtools/internal/domain/models"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseColor принимает #rgb, #rrggbb и #rrggbbaa
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)

	alpha := uint8(0xFF)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("%w: bad alpha in %q", models.ErrInvalidData, s)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q is not a hex color", models.ErrInvalidData, s)
	}

	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

func hexColor(c color.NRGBA) string {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
}
