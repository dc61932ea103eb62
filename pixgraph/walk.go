package pixgraph

// WalkBlocks yields every size x size block of pixel coordinates in the
// graph, row-major, as the four (for size=2) corner coordinates
// (x,y),(x,y+1),(x+1,y),(x+1,y+1) — the diagonal resolver's unit of work.
func (g *Graph[V]) WalkBlocks(size int) [][]Coord {
	var blocks [][]Coord
	for y := 0; y <= g.Height-size; y++ {
		for x := 0; x <= g.Width-size; x++ {
			block := make([]Coord, 0, size*size)
			for dx := 0; dx < size; dx++ {
				for dy := 0; dy < size; dy++ {
					block = append(block, Coord{X: x + dx, Y: y + dy})
				}
			}
			blocks = append(blocks, block)
		}
	}
	return blocks
}

// ConnectedComponents partitions the pixel coordinates into connected
// components under the current edge set, in a stable order: components
// are returned in row-major order of their first pixel (the component
// member that comes first in row-major order), and each component's
// pixels are listed in the order visited by a deterministic breadth-first
// search seeded at that member.
func (g *Graph[V]) ConnectedComponents() [][]Coord {
	visited := make(map[Coord]bool, g.Width*g.Height)
	var components [][]Coord

	pixels := g.Pixels()
	for _, start := range pixels {
		if visited[start] {
			continue
		}
		queue := []Coord{start}
		visited[start] = true
		var comp []Coord
		for head := 0; head < len(queue); head++ {
			cur := queue[head]
			comp = append(comp, cur)
			nbrs := g.Neighbors(cur)
			sortCoords(nbrs)
			for _, n := range nbrs {
				if !visited[n] {
					visited[n] = true
					queue = append(queue, n)
				}
			}
		}
		components = append(components, comp)
	}
	return components
}

// sortCoords sorts coordinates lexicographically (x then y) in place,
// giving ConnectedComponents' BFS a deterministic expansion order.
func sortCoords(cs []Coord) {
	for i := 1; i < len(cs); i++ {
		for j := i; j > 0; j-- {
			a, b := cs[j-1], cs[j]
			if a.X < b.X || (a.X == b.X && a.Y <= b.Y) {
				break
			}
			cs[j-1], cs[j] = cs[j], cs[j-1]
		}
	}
}
