package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/pixelvec/depixel/latcoord"
	"github.com/pixelvec/depixel/latgraph"
	"github.com/pixelvec/depixel/point"
	"github.com/pixelvec/depixel/shape"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"golang.org/x/image/draw"
)

// PNGEmitter renders pipeline artifacts to PNG bitmaps using
// tdewolff/canvas's rasterizer backend.
type PNGEmitter struct{}

// canvasRenderer is the subset of the svg and rasterizer renderers'
// interface this package draws through.
type canvasRenderer interface {
	RenderPath(path *canvas.Path, style canvas.Style, m canvas.Matrix)
}

// WritePixels draws the raw pixel grid, nearest-neighbor scaled by
// scale, to a PNG at path.
func (PNGEmitter) WritePixels(pixels [][]color.RGBA, path string, scale int) error {
	h := len(pixels)
	if h == 0 || scale <= 0 {
		return nil
	}
	w := len(pixels[0])

	src := image.NewRGBA(image.Rect(0, 0, w, h))
	for y, row := range pixels {
		for x, c := range row {
			src.SetRGBA(x, y, c)
		}
	}
	dst := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return writePNG(path, dst)
}

// WriteGrid draws every lattice edge (and, if showNodes, every lattice
// node as a small dot) scaled by scale.
func (PNGEmitter) WriteGrid(lat *latgraph.Graph, path string, scale float64, showNodes bool) error {
	width := float64(lat.Width) * scale
	height := float64(lat.Height) * scale

	img := rasterize(width, height, func(r canvasRenderer) {
		drawBackground(r, width, height)

		lineStyle := canvas.DefaultStyle
		lineStyle.Fill = canvas.Paint{Color: canvas.Transparent}
		lineStyle.Stroke = canvas.Paint{Color: canvas.Black}

		seen := map[[2]latcoord.Coord]bool{}
		for _, n := range lat.Nodes() {
			for _, m := range lat.Neighbors(n) {
				k := edgeKey(n, m)
				if seen[k] {
					continue
				}
				seen[k] = true
				p := &canvas.Path{}
				nx, ny := n.Float()
				mx, my := m.Float()
				p.MoveTo(nx*scale, ny*scale)
				p.LineTo(mx*scale, my*scale)
				r.RenderPath(p, lineStyle, canvas.Identity)
			}
		}

		if showNodes {
			nodeStyle := canvas.DefaultStyle
			nodeStyle.Fill = canvas.Paint{Color: canvas.Black}
			for _, n := range lat.Nodes() {
				x, y := n.Float()
				dot := canvas.Circle(scale * 0.08).Translate(x*scale, y*scale)
				r.RenderPath(dot, nodeStyle, canvas.Identity)
			}
		}
	})
	return writePNG(path, img)
}

// WriteShapes draws each shape's outer and inner boundary polylines
// (the un-smoothed straight-edged loops) filled with its pixel value.
func (PNGEmitter) WriteShapes(shapes []*shape.Shape[color.RGBA], width, height int, path string, scale float64, showNodes bool) error {
	return writeLoops(shapes, width, height, path, scale, showNodes, func(p *shape.Shape[color.RGBA]) (*canvas.Path, []*canvas.Path) {
		_, outerPoly := p.OuterLoop()
		out := polylinePath(outerPoly, scale)
		var inner []*canvas.Path
		for i := range p.Inner {
			_, poly := p.InnerLoop(i)
			inner = append(inner, polylinePath(poly, scale))
		}
		return out, inner
	})
}

// WriteSmooth draws each shape's smoothed spline outline, decomposed into
// quadratic Bézier segments, filled with its pixel value.
func (PNGEmitter) WriteSmooth(shapes []*shape.Shape[color.RGBA], width, height int, path string, scale float64, showNodes bool) error {
	return writeLoops(shapes, width, height, path, scale, showNodes, func(p *shape.Shape[color.RGBA]) (*canvas.Path, []*canvas.Path) {
		var out *canvas.Path
		if p.Outer != nil && p.Outer.Smoothed != nil {
			out = splinePath(p.Outer.Smoothed.UsefulPoints(), scale)
		}
		var inner []*canvas.Path
		for _, in := range p.Inner {
			if in.Smoothed != nil {
				inner = append(inner, splinePath(in.Smoothed.UsefulPoints(), scale))
			}
		}
		return out, inner
	})
}

func writeLoops(shapes []*shape.Shape[color.RGBA], width, height int, path string, scale float64, showNodes bool, loopsOf func(*shape.Shape[color.RGBA]) (*canvas.Path, []*canvas.Path)) error {
	w, h := float64(width)*scale, float64(height)*scale
	img := rasterize(w, h, func(r canvasRenderer) {
		drawBackground(r, w, h)
		for _, sh := range shapes {
			if isWhite(sh.Value) {
				continue
			}
			outer, inner := loopsOf(sh)
			if outer == nil {
				continue
			}
			style := canvas.DefaultStyle
			style.Fill = canvas.Paint{Color: sh.Value}
			style.Stroke = canvas.Paint{Color: canvas.Transparent}
			r.RenderPath(outer, style, canvas.Identity)
			for _, in := range inner {
				holeStyle := canvas.DefaultStyle
				holeStyle.Fill = canvas.Paint{Color: canvas.White}
				holeStyle.Stroke = canvas.Paint{Color: canvas.Transparent}
				r.RenderPath(in, holeStyle, canvas.Identity)
			}
		}
	})
	return writePNG(path, img)
}

// isWhite reports whether c renders as opaque white, the one palette
// value WriteShapes/WriteSmooth/WriteSVG skip drawing a fill for.
func isWhite(c color.RGBA) bool {
	return c.R == 255 && c.G == 255 && c.B == 255 && c.A == 255
}

// polylinePath builds a straight-edged closed canvas.Path from a
// polyline, scaled by scale.
func polylinePath(poly []point.Point, scale float64) *canvas.Path {
	p := &canvas.Path{}
	if len(poly) == 0 {
		return p
	}
	p.MoveTo(poly[0].X*scale, poly[0].Y*scale)
	for _, pt := range poly[1:] {
		p.LineTo(pt.X*scale, pt.Y*scale)
	}
	p.Close()
	return p
}

// splinePath decomposes a closed quadratic B-spline's useful control
// points into the equivalent quadratic Bézier segments: the on-curve
// point between consecutive controls is their midpoint, and each control
// point is that segment's single Bézier control point — the standard
// construction used by outline font rasterizers for quadratic curves.
func splinePath(useful []point.Point, scale float64) *canvas.Path {
	p := &canvas.Path{}
	n := len(useful)
	if n == 0 {
		return p
	}
	mid := func(i int) point.Point {
		a, b := useful[i], useful[(i+1)%n]
		return point.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	}
	start := mid(n - 1)
	p.MoveTo(start.X*scale, start.Y*scale)
	for i := 0; i < n; i++ {
		c := useful[i]
		m := mid(i)
		p.QuadTo(c.X*scale, c.Y*scale, m.X*scale, m.Y*scale)
	}
	p.Close()
	return p
}

func drawBackground(r canvasRenderer, w, h float64) {
	bg := canvas.DefaultStyle
	bg.Fill = canvas.Paint{Color: canvas.White}
	bg.Stroke = canvas.Paint{Color: canvas.Transparent}
	r.RenderPath(canvas.Rectangle(w, h), bg, canvas.Identity)
}

// rasterize draws via draw into a fresh rasterizer-backed image sized
// width x height.
func rasterize(width, height float64, draw func(canvasRenderer)) image.Image {
	rast := rasterizer.New(width, height, canvas.DPI(96), canvas.DefaultColorSpace)
	draw(rast)
	return rast
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}

// edgeKey canonicalizes an undirected lattice edge so it is drawn once.
func edgeKey(a, b latcoord.Coord) [2]latcoord.Coord {
	if a.Less(b) {
		return [2]latcoord.Coord{a, b}
	}
	return [2]latcoord.Coord{b, a}
}
