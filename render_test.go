package spectra_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/ms3fgx/spectra"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// rgbaAt normalizes a decoded pixel for comparison regardless of the
// decoded image's native color model.
func rgbaAt(img image.Image, x, y int) color.RGBA {
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

var _ = Describe("Renderer", func() {
	scan := func(in string, w, h int) *image.Paletted {
		frame, _, err := spectra.Rasterize(strings.NewReader(in), w, h)
		Expect(err).NotTo(HaveOccurred())
		return frame
	}

	It("encodes the frame as-is at scale 1", func() {
		frame := scan("0123", 2, 2)

		var buf bytes.Buffer
		renderer := &spectra.Renderer{Scale: 1}
		Expect(renderer.Render(&buf, frame, imaging.PNG)).To(Succeed())

		decoded, err := png.Decode(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded.Bounds().Dx()).To(Equal(2))
		Expect(decoded.Bounds().Dy()).To(Equal(2))
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				want := spectra.Palette[y*2+x].(color.RGBA)
				Expect(rgbaAt(decoded, x, y)).To(Equal(want))
			}
		}
	})

	It("magnifies each pixel into an exact scale x scale block", func() {
		frame := scan("1234", 2, 2)

		var buf bytes.Buffer
		renderer := &spectra.Renderer{Scale: 3}
		Expect(renderer.Render(&buf, frame, imaging.PNG)).To(Succeed())

		decoded, err := png.Decode(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded.Bounds().Dx()).To(Equal(6))
		Expect(decoded.Bounds().Dy()).To(Equal(6))
		for y := 0; y < 6; y++ {
			for x := 0; x < 6; x++ {
				digit := (y/3)*2 + x/3 + 1
				want := spectra.Palette[digit].(color.RGBA)
				Expect(rgbaAt(decoded, x, y)).To(Equal(want))
			}
		}
	})

	It("appends a legend strip without disturbing the plot", func() {
		frame := scan(digits(80), 40, 2)

		var buf bytes.Buffer
		renderer := &spectra.Renderer{Scale: 1, Legend: true}
		Expect(renderer.Render(&buf, frame, imaging.PNG)).To(Succeed())

		decoded, err := png.Decode(&buf)
		Expect(err).NotTo(HaveOccurred())
		Expect(decoded.Bounds().Dx()).To(Equal(40))
		Expect(decoded.Bounds().Dy()).To(Equal(2 + spectra.LegendHeight))
		for x := 0; x < 40; x++ {
			want := spectra.Palette[x%10].(color.RGBA)
			Expect(rgbaAt(decoded, x, 0)).To(Equal(want))
		}
		// Strip background matches the plot background.
		corner := rgbaAt(decoded, 39, 2+spectra.LegendHeight-1)
		Expect(corner).To(Equal(spectra.Palette[0].(color.RGBA)))
	})

	It("rejects scales over the cap", func() {
		frame := scan("0123", 2, 2)
		renderer := &spectra.Renderer{Scale: spectra.MaxScale + 1}
		Expect(renderer.Render(&bytes.Buffer{}, frame, imaging.PNG)).NotTo(Succeed())
	})

	It("rejects a nil frame", func() {
		renderer := &spectra.Renderer{}
		Expect(renderer.Render(&bytes.Buffer{}, nil, imaging.PNG)).NotTo(Succeed())
	})
})

var _ = Describe("OutputFormat", func() {
	It("picks the encoder from the filename extension", func() {
		Expect(spectra.OutputFormat("out.png")).To(Equal(imaging.PNG))
		Expect(spectra.OutputFormat("out.bmp")).To(Equal(imaging.BMP))
		Expect(spectra.OutputFormat("out.gif")).To(Equal(imaging.GIF))
		Expect(spectra.OutputFormat("out.jpg")).To(Equal(imaging.JPEG))
	})

	It("falls back to PNG for unknown extensions", func() {
		Expect(spectra.OutputFormat("out.raw")).To(Equal(imaging.PNG))
		Expect(spectra.OutputFormat("out")).To(Equal(imaging.PNG))
	})
})
