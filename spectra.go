/*
Package spectra renders streams of ASCII decimal digits as raster images.

Each digit in the input becomes one pixel, colored by a fixed ten-color
palette, scanned into the frame in raster order (left-right, top-bottom).
The human eye is remarkably good at spotting repetition, so plotting the
output of a random number generator this way can expose structure that a
purely statistical tool would need a lot more data to find.
*/
package spectra

import (
	"errors"
	"fmt"
	"image/color"
)

// MaxDimension is the largest width or height a frame may have.
const MaxDimension = 3000

// Palette maps each decimal digit to a distinct color. The palette index of
// a pixel in a rendered frame is the digit value itself. Digit zero is
// black, which doubles as the image background.
var Palette = color.Palette{
	color.RGBA{0, 0, 0, 255},       // 0 black
	color.RGBA{255, 255, 255, 255}, // 1 white
	color.RGBA{255, 0, 0, 255},     // 2 red
	color.RGBA{255, 100, 0, 255},   // 3 orange
	color.RGBA{255, 255, 0, 255},   // 4 yellow
	color.RGBA{0, 255, 0, 255},     // 5 green
	color.RGBA{0, 0, 255, 255},     // 6 blue
	color.RGBA{0, 255, 255, 255},   // 7 aqua
	color.RGBA{255, 0, 255, 255},   // 8 pink
	color.RGBA{128, 0, 128, 255},   // 9 purple
}

var (
	// ErrInsufficientData means the input cannot fill the requested frame.
	ErrInsufficientData = errors.New("input is not large enough for the given resolution")
	// ErrUnexpectedLineBreak means a newline byte turned up mid-stream.
	ErrUnexpectedLineBreak = errors.New("input contains line breaks")
	// ErrPrematureEOF means the input ran out before the frame was full.
	ErrPrematureEOF = errors.New("end of input before the image was complete")
	// ErrUnsupportedCharacter means a byte outside '0'-'9' turned up.
	ErrUnsupportedCharacter = errors.New("unsupported character")
)

// Histogram counts how many times each digit appeared during a scan.
type Histogram [10]uint64

// Total is the number of digits counted across all ten buckets. For a
// completed scan it equals width*height.
func (h Histogram) Total() uint64 {
	var total uint64
	for _, n := range h {
		total += n
	}
	return total
}

// Validate reports whether an input of available bytes is long enough to
// fill a width x height frame. The scan consumes exactly one byte per pixel,
// so anything shorter than width*height is a hard failure.
func Validate(width, height int, available int64) error {
	if required := int64(width) * int64(height); available < required {
		return fmt.Errorf("%w: need %d bytes, have %d", ErrInsufficientData, required, available)
	}
	return nil
}
