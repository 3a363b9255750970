package spectra

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
)

// Rasterizer scans a digit stream into a paletted frame, one byte per pixel.
type Rasterizer struct {
	palette color.Palette
}

func NewRasterizer() *Rasterizer {
	return &Rasterizer{
		palette: Palette,
	}
}

// Rasterize scans width*height bytes from r into a frame using the default
// digit palette.
func Rasterize(r io.Reader, width, height int) (*image.Paletted, Histogram, error) {
	return NewRasterizer().Rasterize(r, width, height)
}

/*
Rasterize walks the frame in raster order (left-right, top-bottom) and pulls
one byte from r per pixel. A digit byte sets the pixel to the digit's palette
index and bumps its histogram bucket; anything else aborts the whole scan:

	'\n'  ErrUnexpectedLineBreak
	EOF   ErrPrematureEOF
	other ErrUnsupportedCharacter

Scan errors carry the failing (x,y) coordinate and no bytes past the failing
one are consumed, so the offending position in the input can be located. On
any error neither the frame nor the histogram is returned. A successful scan
consumes exactly width*height bytes and the histogram total matches.
*/
func (rz *Rasterizer) Rasterize(r io.Reader, width, height int) (*image.Paletted, Histogram, error) {
	if width < 1 || height < 1 {
		return nil, Histogram{}, fmt.Errorf("invalid frame dimensions %dx%d", width, height)
	}

	// Read byte-at-a-time without buffering ahead of the reader's position,
	// unless the reader can't do that itself.
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	img := image.NewPaletted(image.Rect(0, 0, width, height), rz.palette)
	var hist Histogram

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			b, err := br.ReadByte()
			switch {
			case err == io.EOF:
				return nil, Histogram{}, fmt.Errorf("at (%d,%d): %w", x, y, ErrPrematureEOF)
			case err != nil:
				return nil, Histogram{}, fmt.Errorf("at (%d,%d): %v", x, y, err)
			case b >= '0' && b <= '9':
				d := b - '0'
				img.SetColorIndex(x, y, d)
				hist[d]++
			case b == '\n':
				return nil, Histogram{}, fmt.Errorf("at (%d,%d): %w", x, y, ErrUnexpectedLineBreak)
			default:
				return nil, Histogram{}, fmt.Errorf("%q at (%d,%d): %w", b, x, y, ErrUnsupportedCharacter)
			}
		}
	}
	return img, hist, nil
}
