package spectra

import (
	"image"
	"image/color"
	"image/draw"
	"strconv"

	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// LegendHeight is the pixel height of the legend strip appended below the
// plot when the legend is enabled.
const LegendHeight = 24

const (
	swatchSize   = 14
	swatchStride = 30
	legendMargin = 5
)

// appendLegend copies the plot onto a taller canvas and draws one labeled
// color swatch per digit along the bottom. The strip background matches the
// plot background (palette index 0). Plots too narrow to hold all ten
// swatches get a truncated legend rather than a squashed one.
func appendLegend(img image.Image, palette color.Palette) image.Image {
	bounds := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()+LegendHeight))
	draw.Draw(out, image.Rect(0, 0, bounds.Dx(), bounds.Dy()), img, bounds.Min, draw.Src)
	strip := image.Rect(0, bounds.Dy(), bounds.Dx(), bounds.Dy()+LegendHeight)
	draw.Draw(out, strip, image.NewUniform(palette[0]), image.ZP, draw.Src)

	gc := draw2dimg.NewGraphicContext(out)
	top := bounds.Dy() + (LegendHeight-swatchSize)/2
	for d, c := range palette {
		left := legendMargin + d*swatchStride
		if left+swatchSize > bounds.Dx() {
			break
		}
		gc.SetFillColor(c)
		draw2dkit.Rectangle(gc, float64(left), float64(top), float64(left+swatchSize), float64(top+swatchSize))
		gc.Fill()
		label(out, left+swatchSize+3, top+swatchSize-2, strconv.Itoa(d))
	}
	return out
}

func label(dst draw.Image, x, y int, s string) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.White,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
