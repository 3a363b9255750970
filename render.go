package spectra

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// MaxScale caps pixel magnification. 3000x3000 at 16x is already a 48k-wide
// image; anything past that is a mistake, not a use case.
const MaxScale = 16

// Renderer serializes a completed frame to an image file format. It owns the
// frame from the moment it receives one; the scan that produced it is done.
type Renderer struct {
	Scale  int  // Integer pixel magnification. 0 and 1 both mean off.
	Legend bool // Append a labeled palette strip below the plot.
}

// Render encodes the frame to w in the given format, applying magnification
// and the legend first. Magnification is nearest-neighbor, so every source
// pixel becomes an exact Scale x Scale block of the same color.
func (rn *Renderer) Render(w io.Writer, img *image.Paletted, format imaging.Format) error {
	if img == nil {
		return fmt.Errorf("render: no frame")
	}
	if rn.Scale > MaxScale {
		return fmt.Errorf("render: scale %d exceeds the cap of %d", rn.Scale, MaxScale)
	}

	var out image.Image = img
	if rn.Scale > 1 {
		bounds := img.Bounds()
		out = resize.Resize(uint(bounds.Dx()*rn.Scale), uint(bounds.Dy()*rn.Scale), img, resize.NearestNeighbor)
	}
	if rn.Legend {
		out = appendLegend(out, img.Palette)
	}
	return imaging.Encode(w, out, format)
}

// OutputFormat picks the encoder matching an output filename's extension.
// Unknown extensions fall back to PNG.
func OutputFormat(filename string) imaging.Format {
	format, err := imaging.FormatFromFilename(filename)
	if err != nil {
		return imaging.PNG
	}
	return format
}
