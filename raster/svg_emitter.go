package raster

import (
	"image/color"
	"io"

	"github.com/pixelvec/depixel/shape"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/svg"
)

// SVGEmitter renders the final smoothed shapes as a vector SVG document.
type SVGEmitter struct{}

// WriteSVG writes one filled path per shape (plus one white-filled hole
// path per inner loop) to w, scaled by scale. Shapes whose value renders
// as opaque white are skipped, since they paint over nothing.
func (SVGEmitter) WriteSVG(shapes []*shape.Shape[color.RGBA], width, height int, scale float64, w io.Writer) error {
	svgWidth := float64(width) * scale
	svgHeight := float64(height) * scale
	svgRenderer := svg.New(w, svgWidth, svgHeight, nil)

	bg := canvas.DefaultStyle
	bg.Fill = canvas.Paint{Color: canvas.White}
	bg.Stroke = canvas.Paint{Color: canvas.Transparent}
	svgRenderer.RenderPath(canvas.Rectangle(svgWidth, svgHeight), bg, canvas.Identity)

	for _, sh := range shapes {
		if isWhite(sh.Value) {
			continue
		}
		if sh.Outer == nil || sh.Outer.Smoothed == nil {
			continue
		}

		style := canvas.DefaultStyle
		style.Fill = canvas.Paint{Color: sh.Value}
		style.Stroke = canvas.Paint{Color: canvas.Transparent}
		svgRenderer.RenderPath(splinePath(sh.Outer.Smoothed.UsefulPoints(), scale), style, canvas.Identity)

		holeStyle := canvas.DefaultStyle
		holeStyle.Fill = canvas.Paint{Color: canvas.White}
		holeStyle.Stroke = canvas.Paint{Color: canvas.Transparent}
		for _, in := range sh.Inner {
			if in.Smoothed == nil {
				continue
			}
			svgRenderer.RenderPath(splinePath(in.Smoothed.UsefulPoints(), scale), holeStyle, canvas.Identity)
		}
	}

	return svgRenderer.Close()
}
