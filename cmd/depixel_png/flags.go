package main

import "flag"

// runFlags mirrors the original depixel_png.py's option set: which
// intermediate artifacts to emit, which formats to render them in, and
// where to put them.
type runFlags struct {
	writePixels bool
	writeGrid   bool
	writeShapes bool
	writeSmooth bool
	noNodes     bool
	toPNG       bool
	toSVG       bool
	outputDir   string
	scale       int

	inputs []string
}

func parseFlags(args []string) (*runFlags, error) {
	fs := flag.NewFlagSet("depixel_png", flag.ContinueOnError)
	f := &runFlags{}

	fs.BoolVar(&f.writePixels, "write-pixels", false, "emit the raw, nearest-neighbor-scaled input pixel grid")
	fs.BoolVar(&f.writeGrid, "write-grid", false, "emit the deformed lattice")
	fs.BoolVar(&f.writeShapes, "write-shapes", false, "emit the extracted shapes before spline smoothing")
	fs.BoolVar(&f.writeSmooth, "write-smooth", false, "emit the smoothed shape outlines")
	fs.BoolVar(&f.noNodes, "no-nodes", false, "omit lattice node dots from --write-grid output")
	fs.BoolVar(&f.toPNG, "to-png", true, "render requested artifacts as PNG")
	fs.BoolVar(&f.toSVG, "to-svg", false, "render the final smoothed shapes as SVG")
	fs.StringVar(&f.outputDir, "output-dir", ".", "directory to write output files into")
	fs.IntVar(&f.scale, "scale", 10, "pixel-to-output-unit scale factor")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	f.inputs = fs.Args()
	return f, nil
}
