package render

import (
	"fmt"
	"strings"

	"boundedterm/internal/ir"
	"boundedterm/internal/verdict"
)

// CFGDOT renders one function's control-flow graph as DOT, one node per
// basic block filled by that block's converged Result. blockResults is the
// output of termination.BlockResults for fn.
func CFGDOT(fn *ir.Function, blockResults map[ir.BlockID]verdict.Result, t Theme) string {
	if len(fn.Blocks()) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("digraph cfg {\n")
	b.WriteString("  rankdir=TB;\n")
	b.WriteString("  nodesep=0.3;\n")
	b.WriteString("  ranksep=0.4;\n")
	fmt.Fprintf(&b, "  bgcolor=%q;\n", t.Background)
	fmt.Fprintf(&b, "  node [shape=rect, style=filled, color=%q, penwidth=0.5, fontname=\"Courier,monospace\", fontsize=9, fontcolor=%q, margin=\"0.1,0.06\"];\n",
		t.NodeBorder, t.TextColor)
	fmt.Fprintf(&b, "  edge [penwidth=0.7, arrowsize=0.5, arrowhead=vee, color=%q];\n", t.EdgeColor)
	b.WriteString("  labelloc=t;\n  labeljust=l;\n")
	fmt.Fprintf(&b, "  label=<<font face=\"Helvetica Neue,Helvetica\" point-size=\"9\" color=\"%s\">%s</font>>;\n",
		t.TextColor, dotEscape(fn.Name()))
	b.WriteByte('\n')

	for _, id := range fn.Blocks() {
		res := blockResults[id]
		label := fmt.Sprintf("bb%d<br align=\"left\"/>%s", int(id), dotEscape(truncLabel(res.Explanation, 60)))
		attrs := fmt.Sprintf("fillcolor=%q", verdictFill(res.Verdict, t))
		if id == fn.EntryBlock() {
			attrs += fmt.Sprintf(", penwidth=1.5, color=%q", t.NodeBorder)
		}
		fmt.Fprintf(&b, "  %s [label=<%s>, %s];\n", dotID(fmt.Sprintf("bb%d", id)), label, attrs)
	}
	b.WriteByte('\n')

	for _, id := range fn.Blocks() {
		blk := fn.Block(id)
		from := dotID(fmt.Sprintf("bb%d", id))
		for _, s := range blk.Successors() {
			to := dotID(fmt.Sprintf("bb%d", s))
			fmt.Fprintf(&b, "  %s -> %s;\n", from, to)
		}
	}

	b.WriteString("}\n")
	return b.String()
}
