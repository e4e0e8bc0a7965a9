package generator

import (
	"fmt"
	"image/color"
	"strings"
)

// renderSVG рисует матрицу модулей: один path под фон, один под темные
// модули, соседние модули в строке сливаются в один прямоугольник
func renderSVG(bitmap [][]bool, size int, fg, bg color.NRGBA) string {
	n := len(bitmap)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">`,
		size, size, n, n)
	fmt.Fprintf(&sb, `<path fill="%s"%s d="M0 0h%dv%dH0z"/>`, hexColor(bg), opacityAttr(bg), n, n)

	fmt.Fprintf(&sb, `<path fill="%s"%s d="`, hexColor(fg), opacityAttr(fg))
	for y, row := range bitmap {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}
			run := 1
			for x+run < len(row) && row[x+run] {
				run++
			}
			fmt.Fprintf(&sb, "M%d %dh%dv1h-%dz", x, y, run, run)
			x += run
		}
	}
	sb.WriteString(`"/></svg>`)

	return sb.String()
}

func opacityAttr(c color.NRGBA) string {
	if c.A == 0xFF {
		return ""
	}
	return fmt.Sprintf(` fill-opacity="%.3g"`, float64(c.A)/255)
}
