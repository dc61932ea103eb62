package latgraph

import "github.com/pixelvec/depixel/latcoord"

// NewLattice builds the initial integer lattice of size (width+1) x
// (height+1) with 4-neighbor edges, spanning the pixel image's corners.
func NewLattice(width, height int) (*Graph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Graph{
		Width:  width,
		Height: height,
		adj:    make(map[latcoord.Coord]map[latcoord.Coord]struct{}, (width+1)*(height+1)),
	}
	for y := 0; y <= height; y++ {
		for x := 0; x <= width; x++ {
			g.AddNode(latcoord.FromInt(x, y))
		}
	}
	for y := 0; y <= height; y++ {
		for x := 0; x <= width; x++ {
			c := latcoord.FromInt(x, y)
			if x < width {
				g.AddEdge(c, latcoord.FromInt(x+1, y))
			}
			if y < height {
				g.AddEdge(c, latcoord.FromInt(x, y+1))
			}
		}
	}
	return g, nil
}
