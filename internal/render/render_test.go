package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"boundedterm/internal/demangle"
	"boundedterm/internal/ir"
	"boundedterm/internal/verdict"
)

func TestCallgraphDOTIncludesUnknownNodeForIndirectCalls(t *testing.T) {
	main := &ir.Function{FuncID_: "main", CallEdges: []ir.FuncID{"helper", ir.UnknownCallee}}
	helper := &ir.Function{FuncID_: "helper"}
	prog := ir.NewProgram([]*ir.Function{main, helper})
	results := map[ir.FuncID]verdict.Result{
		"main":   {Verdict: verdict.Unknown},
		"helper": {Verdict: verdict.Bounded},
	}

	dot := CallgraphDOT(prog, results, demangle.New(), "test", NASA)

	assert.True(t, strings.Contains(dot, "digraph callgraph"))
	assert.True(t, strings.Contains(dot, "<unknown>"))
	assert.True(t, strings.Contains(dot, NASA.VerdictBounded))
	assert.True(t, strings.Contains(dot, NASA.VerdictUnknown))
}

func TestCFGDOTColorsBlocksByVerdict(t *testing.T) {
	blocks := map[ir.BlockID]*ir.Block{
		0: {BlockID_: 0, Succs: []ir.BlockID{1}},
		1: {BlockID_: 1, Preds: []ir.BlockID{0}},
	}
	fn := &ir.Function{
		FuncName:   "f",
		FuncID_:    "f",
		Entry:      0,
		BlockOrder: []ir.BlockID{0, 1},
		BlocksByID: blocks,
	}
	blockResults := map[ir.BlockID]verdict.Result{
		0: {Verdict: verdict.Bounded},
		1: {Verdict: verdict.Unbounded, Explanation: "includes an infinite loop with no exit"},
	}

	dot := CFGDOT(fn, blockResults, NASA)

	assert.True(t, strings.Contains(dot, "digraph cfg"))
	assert.True(t, strings.Contains(dot, NASA.VerdictBounded))
	assert.True(t, strings.Contains(dot, NASA.VerdictUnbounded))
}

func TestCFGDOTEmptyFunctionYieldsEmptyString(t *testing.T) {
	fn := &ir.Function{FuncID_: "extern_fn", IsDeclared: true}
	dot := CFGDOT(fn, nil, NASA)
	assert.Equal(t, "", dot)
}
