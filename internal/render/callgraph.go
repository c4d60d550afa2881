package render

import (
	"fmt"
	"strings"

	"boundedterm/internal/ir"
	"boundedterm/internal/verdict"
)

// CallgraphDOT renders the whole-program call graph as DOT, one node per
// function filled by its verdict. Each call site with no statically known
// callee is drawn as an edge into a shared external "unknown" node, dashed
// to distinguish it from resolved edges.
func CallgraphDOT(prog *ir.Program, results map[ir.FuncID]verdict.Result, dem ir.Demangler, title string, t Theme) string {
	var b strings.Builder
	b.WriteString("digraph callgraph {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  nodesep=0.4;\n")
	b.WriteString("  ranksep=0.6;\n")
	fmt.Fprintf(&b, "  bgcolor=%q;\n", t.Background)
	fmt.Fprintf(&b, "  node [shape=rect, style=filled, color=%q, penwidth=0.5, fontname=\"Helvetica Neue,Helvetica,Arial\", fontsize=9, fontcolor=%q, height=0.3, margin=\"0.12,0.06\"];\n",
		t.NodeBorder, t.TextColor)
	fmt.Fprintf(&b, "  edge [penwidth=0.6, arrowsize=0.5, arrowhead=vee, color=%q];\n", t.EdgeColor)
	if title != "" {
		b.WriteString("  labelloc=t;\n  labeljust=l;\n")
		fmt.Fprintf(&b, "  label=<<font face=\"Helvetica Neue,Helvetica\" point-size=\"8\" color=\"%s\">%s</font>>;\n",
			t.TextColor, dotEscape(title))
	}
	b.WriteByte('\n')

	needsUnknownNode := false
	for _, id := range prog.FuncOrder() {
		res := results[id]
		label := truncLabel(dem.Demangle(string(id)), 60)
		fmt.Fprintf(&b, "  %s [label=%q, fillcolor=%q];\n", dotID(string(id)), label, verdictFill(res.Verdict, t))
		for _, callee := range prog.Functions[id].CallEdges {
			if callee == ir.UnknownCallee {
				needsUnknownNode = true
			}
		}
	}
	if needsUnknownNode {
		fmt.Fprintf(&b, "  %s [label=\"<unknown>\", shape=plaintext, style=\"\", fillcolor=none, fontcolor=%q, fontsize=8];\n",
			dotID("__unknown__"), t.ExternalText)
	}
	b.WriteByte('\n')

	for _, id := range prog.FuncOrder() {
		fromID := dotID(string(id))
		for _, callee := range prog.Functions[id].CallEdges {
			if callee == ir.UnknownCallee {
				fmt.Fprintf(&b, "  %s -> %s [style=dashed];\n", fromID, dotID("__unknown__"))
				continue
			}
			fmt.Fprintf(&b, "  %s -> %s;\n", fromID, dotID(string(callee)))
		}
	}

	b.WriteString("}\n")
	return b.String()
}
