package grid

import "strings"

// Render returns a compact ASCII picture of the grid:
//
//	'#'   static wall
//	'X'   cell reported occupied by the caller's occupancy probe
//	digit terrain cost (capped at 9)
//	'G'   goal overlay, 'A' agent overlay (agent wins on collision)
//
// agent and goal may be nil; occupied may be nil to skip the dynamic
// layer. Rows are emitted top to bottom, matching Cell coordinates.
// Complexity: O(W×H).
func (g *Grid) Render(agent, goal *Cell, occupied func(Cell) bool) string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Cell{X: x, Y: y}
			ch := byte('.')
			switch {
			case g.walls[y][x]:
				ch = '#'
			case occupied != nil && occupied(c):
				ch = 'X'
			default:
				cost := g.costs[y][x]
				if cost > 9 {
					cost = 9
				}
				ch = byte('0' + cost)
			}
			if goal != nil && c == *goal {
				ch = 'G'
			}
			if agent != nil && c == *agent {
				ch = 'A'
			}
			b.WriteByte(ch)
		}
		if y+1 < g.height {
			b.WriteByte('\n')
		}
	}

	return b.String()
}
