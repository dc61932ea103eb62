package raster

import (
	"fmt"
	"image/color"
	"image/png"
	"os"
)

// Reader decodes PNG files into row-major pixel grids.
type Reader struct{}

// ReadPNG decodes the PNG at path into a [height][width] grid of RGBA
// values.
func (Reader) ReadPNG(path string) ([][]color.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}

	b := img.Bounds()
	rows := make([][]color.RGBA, b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := make([]color.RGBA, b.Dx())
		for x := 0; x < b.Dx(); x++ {
			row[x] = color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
		}
		rows[y] = row
	}
	return rows, nil
}
