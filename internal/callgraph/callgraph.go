// Package callgraph builds the whole-program call graph in the shape the
// rendering layer needs, independent of how the module analyzer itself
// walks edges internally.
package callgraph

import (
	"github.com/zboralski/lattice"

	"boundedterm/internal/ir"
)

// BuildGraph constructs a lattice.Graph over a program's functions: one
// node per function, one edge per distinct caller/callee pair (repeated call
// sites are deduplicated). UnknownCallee edges
// (indirect/external calls) are omitted — they have no callee node to draw
// an edge to, and are reported in explanation strings instead.
func BuildGraph(prog *ir.Program) *lattice.Graph {
	g := &lattice.Graph{}
	for _, id := range prog.FuncOrder() {
		g.Nodes = append(g.Nodes, string(id))
		fn := prog.Functions[id]
		for _, callee := range fn.CallEdges {
			if callee == ir.UnknownCallee {
				continue
			}
			g.Edges = append(g.Edges, lattice.Edge{
				Caller: string(id),
				Callee: string(callee),
			})
		}
	}
	g.Dedup()
	return g
}
