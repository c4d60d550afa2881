// Package render produces Graphviz DOT output of termination verdicts, for
// the callgraph and per-function CFG views.
package render

// Theme holds the colors used to paint a verdict-colored graph.
type Theme struct {
	Background string
	NodeFill   string
	NodeBorder string
	TextColor  string

	// Node fill by verdict, one per verdict.DoesThisTerminate value (see
	// verdictFill).
	VerdictUnevaluated string
	VerdictBounded     string
	VerdictUnbounded   string
	VerdictUnknown     string

	EdgeColor    string
	ExternalText string

	ClusterBorder string
	ClusterLabel  string
}

// NASA is the NASA/Bauhaus theme: geometric, monochrome, sparse color,
// reserving saturated color for the verdict itself rather than decoration.
var NASA = Theme{
	Background: "#F5F5F5",
	NodeFill:   "white",
	NodeBorder: "#1A1A1A",
	TextColor:  "#1A1A1A",

	VerdictUnevaluated: "#ECEFF1", // blue-gray 50
	VerdictBounded:     "#2E7D32", // green 800
	VerdictUnbounded:   "#C62828", // red 800
	VerdictUnknown:     "#E65100", // deep orange 800

	EdgeColor:    "#424242",
	ExternalText: "#9E9E9E",

	ClusterBorder: "#BDBDBD",
	ClusterLabel:  "#757575",
}
