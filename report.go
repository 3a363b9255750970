package spectra

import (
	"fmt"
	"io"
)

// Report writes the per-digit occurrence summary for a completed scan.
type Report struct{}

// Flush writes one line per digit that actually occurred, plus the total
// number of pixels scanned. Digits with a zero count are omitted.
func (Report) Flush(w io.Writer, hist Histogram, width, height int) error {
	if _, err := fmt.Fprintf(w, "Occurrences out of %d:\n", width*height); err != nil {
		return err
	}
	for d, n := range hist {
		if n == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "Character: %d - %d\n", d, n); err != nil {
			return err
		}
	}
	return nil
}
