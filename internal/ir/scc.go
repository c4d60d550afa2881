package ir

import "boundedterm/internal/scc"

// callGraphAdjacency adapts a Program into scc.Graph[FuncID]. The
// UnknownCallee sentinel is never added as a node: it has no callees of its
// own, so dropping edges into it cannot hide a real cycle, and it can never
// be named as an SCC member because it is never visited as a node.
type callGraphAdjacency struct {
	program *Program
}

func (a callGraphAdjacency) Nodes() []FuncID { return a.program.FuncOrder() }

func (a callGraphAdjacency) Successors(f FuncID) []FuncID {
	fn, ok := a.program.Functions[f]
	if !ok {
		return nil
	}
	var out []FuncID
	for _, callee := range fn.CallEdges {
		if callee == UnknownCallee {
			continue
		}
		if _, known := a.program.Functions[callee]; known {
			out = append(out, callee)
		}
	}
	return out
}

func sccsFromProgram(p *Program) []SCC {
	components := scc.Compute[FuncID](callGraphAdjacency{program: p})
	out := make([]SCC, 0, len(components))
	for _, c := range components {
		out = append(out, SCC{Members: c.Members, HasCycle: c.HasCycle})
	}
	return out
}
