package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/codegangsta/cli"
	"github.com/ms3fgx/spectra"
)

func main() {
	app := cli.NewApp()
	app.Version = "1.3"
	app.Name = "spectra"
	app.Usage = "A command-line tool for visual analysis of random data."
	app.UsageText = "spectra [options] -i [file]"
	app.Description = "Spectra reads the output of a TRNG or PRNG under examination, pre-converted\n" +
		/*          */ "   to a continuous stream of ASCII digits, and plots it as an image file with\n" +
		/*          */ "   one colored pixel per digit. The human mind easily picks up on visual\n" +
		/*          */ "   patterns that might otherwise be difficult to detect mathematically, so a\n" +
		/*          */ "   quick look at the plot can expose structure that appears random to a\n" +
		/*          */ "   statistical tool."
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "input,i",
			Usage: "`FILE` containing a continuous stream of ASCII digits. Required.",
		},
		cli.StringFlag{
			Name:  "output,o",
			Usage: "Output image `FILE`. The extension picks the format: png, bmp, gif, jpg.",
			Value: "output.png",
		},
		cli.IntFlag{
			Name:  "xsize,x",
			Usage: "Output image `WIDTH` in pixels (1-3000).",
			Value: 640,
		},
		cli.IntFlag{
			Name:  "ysize,y",
			Usage: "Output image `HEIGHT` in pixels (1-3000).",
			Value: 480,
		},
		cli.IntFlag{
			Name:  "scale,s",
			Usage: "Integer pixel magnification `FACTOR` (1-16).",
			Value: 1,
		},
		cli.BoolFlag{
			Name:  "legend,l",
			Usage: "Append a color legend below the plot.",
		},
		cli.StringFlag{
			Name:  "config,c",
			Usage: "YAML `FILE` with default options (output, xsize, ysize, scale, legend).",
		},
	}
	app.Action = func(c *cli.Context) {
		run(c)
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(c *cli.Context) {
	opts := options{
		Output: c.String("output"),
		XSize:  c.Int("xsize"),
		YSize:  c.Int("ysize"),
		Scale:  c.Int("scale"),
		Legend: c.Bool("legend"),
	}
	if path := c.String("config"); path != "" {
		cfg, err := loadConfig(path)
		if err != nil {
			exit(fmt.Sprintf("Error reading config file: %v", err), 1)
		}
		opts.merge(c, cfg)
	}

	input := c.String("input")
	if input == "" {
		exit("You must provide spectra with an input file to process with the -i option.", 1)
	}
	if opts.XSize < 1 || opts.XSize > spectra.MaxDimension {
		exit("Invalid X dimension.", 1)
	}
	if opts.YSize < 1 || opts.YSize > spectra.MaxDimension {
		exit("Invalid Y dimension.", 1)
	}
	if opts.Scale < 1 || opts.Scale > spectra.MaxScale {
		exit("Invalid scale factor.", 1)
	}

	fmt.Printf("%s (v%s)\n", c.App.Name, c.App.Version)
	fmt.Println("---------------------------")

	fmt.Printf("Opening input file: %s...", input)
	file, err := os.Open(input)
	if err != nil {
		fmt.Println()
		exit("Error opening input file!", 1)
	}
	defer file.Close()
	fmt.Println("OK")

	fmt.Print("Analyzing input file...")
	info, err := file.Stat()
	if err != nil {
		fmt.Println()
		exit("Failed to calculate file size!", 1)
	}
	fmt.Printf("OK (%d bytes)\n", info.Size())

	if err := spectra.Validate(opts.XSize, opts.YSize, info.Size()); err != nil {
		fmt.Println()
		fmt.Println("Error!")
		fmt.Println("The input file is not large enough for the given resolution.")
		exit("Either choose a lower resolution, or collect more sample data.", 1)
	}

	fmt.Printf("Generating %dx%d image...", opts.XSize, opts.YSize)
	frame, hist, err := spectra.Rasterize(file, opts.XSize, opts.YSize)
	if err != nil {
		fmt.Println()
		scanExit(err)
	}
	fmt.Println("Done")

	// The output file is only created once the scan has fully succeeded, so
	// a failed run never leaves a partial image behind.
	fmt.Printf("Creating output file: %s...", opts.Output)
	out, err := os.Create(opts.Output)
	if err != nil {
		fmt.Println()
		exit("Error opening output file!", 1)
	}
	renderer := &spectra.Renderer{Scale: opts.Scale, Legend: opts.Legend}
	if err := renderer.Render(out, frame, spectra.OutputFormat(opts.Output)); err != nil {
		out.Close()
		fmt.Println()
		exit(fmt.Sprintf("Error writing output image: %v", err), 1)
	}
	if err := out.Close(); err != nil {
		fmt.Println()
		exit(fmt.Sprintf("Error writing output image: %v", err), 1)
	}
	fmt.Println("OK")

	fmt.Println()
	fmt.Println("Image Analysis")
	fmt.Println("---------------------------")
	if err := (spectra.Report{}).Flush(os.Stdout, hist, opts.XSize, opts.YSize); err != nil {
		exit(err.Error(), 1)
	}
	fmt.Println()
	fmt.Println("Done.")
}

// scanExit prints a distinct message per scan failure class and exits.
func scanExit(err error) {
	fmt.Println("Error!")
	switch {
	case errors.Is(err, spectra.ErrUnexpectedLineBreak):
		fmt.Println("Input file contains line breaks.")
		fmt.Println("File must be a continuous stream of ASCII numbers, see README.")
	case errors.Is(err, spectra.ErrPrematureEOF):
		fmt.Println("Spectra reached end of file before generating image.")
		fmt.Println("Please check input file, or see README.")
	case errors.Is(err, spectra.ErrUnsupportedCharacter):
		fmt.Println("Unsupported character. Please check input file, or see README.")
	}
	fmt.Printf("(%v)\n", err)
	os.Exit(1)
}

func exit(msg string, code int) {
	fmt.Println(msg)
	os.Exit(code)
}
