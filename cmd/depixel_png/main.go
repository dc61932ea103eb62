// Command depixel_png runs the depixelization pipeline over one or more
// PNG files, writing the requested intermediate and final artifacts into
// --output-dir (the current directory by default).
package main

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pixelvec/depixel"
	"github.com/pixelvec/depixel/raster"
)

func main() {
	f, err := parseFlags(os.Args[1:])
	if err != nil {
		log.Fatalf("depixel_png: %v", err)
	}
	if len(f.inputs) == 0 {
		log.Fatalf("depixel_png: at least one input PNG path is required")
	}
	if err := os.MkdirAll(f.outputDir, 0o755); err != nil {
		log.Fatalf("depixel_png: %v", err)
	}

	for _, in := range f.inputs {
		if err := processOne(f, in); err != nil {
			log.Fatalf("depixel_png: %s: %v", in, err)
		}
	}
}

func processOne(f *runFlags, inputPath string) error {
	reader := raster.Reader{}
	pixels, err := reader.ReadPNG(inputPath)
	if err != nil {
		return err
	}

	pipeline := depixel.New(func(a, b color.RGBA) bool { return a == b }, depixel.DefaultConfig())
	result, err := pipeline.Run(pixels)
	if err != nil {
		return err
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	width, height := len(pixels[0]), len(pixels)
	showNodes := !f.noNodes
	pngEmitter := raster.PNGEmitter{}

	if f.writePixels && f.toPNG {
		if err := pngEmitter.WritePixels(pixels, outPath(f, base, "pixels", "png"), f.scale); err != nil {
			return err
		}
	}
	if f.writeGrid && f.toPNG {
		if err := pngEmitter.WriteGrid(result.Lattice, outPath(f, base, "grid", "png"), float64(f.scale), showNodes); err != nil {
			return err
		}
	}
	if f.writeShapes && f.toPNG {
		if err := pngEmitter.WriteShapes(result.Shapes, width, height, outPath(f, base, "shapes", "png"), float64(f.scale), showNodes); err != nil {
			return err
		}
	}
	if f.writeSmooth && f.toPNG {
		if err := pngEmitter.WriteSmooth(result.Shapes, width, height, outPath(f, base, "smooth", "png"), float64(f.scale), showNodes); err != nil {
			return err
		}
	}
	if f.toSVG {
		out, err := os.Create(outPath(f, base, "smooth", "svg"))
		if err != nil {
			return err
		}
		defer out.Close()
		svgEmitter := raster.SVGEmitter{}
		if err := svgEmitter.WriteSVG(result.Shapes, width, height, float64(f.scale), out); err != nil {
			return err
		}
	}
	return nil
}

func outPath(f *runFlags, base, suffix, ext string) string {
	return filepath.Join(f.outputDir, fmt.Sprintf("%s.%s.%s", base, suffix, ext))
}
