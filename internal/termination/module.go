package termination

import (
	"fmt"
	"sort"
	"strings"

	"boundedterm/internal/ir"
	"boundedterm/internal/verdict"
)

// maxModuleIterations bounds the call-graph fixed point defensively. The
// lattice has height 4 and each function can change verdict at most 3
// times, so convergence in far fewer passes than this is guaranteed by
// monotonicity alone; the cap only exists to keep a bug in an IR adapter
// from hanging the analysis.
const maxModuleIterations = 64

// AnalyzeModule runs the whole-program termination analysis: a Function
// Analyzer pass per function, strongly-connected-component based recursion
// detection over the call graph, and a call-graph-wide fixed point that
// folds callee verdicts into callers. The returned map has one entry per
// function in prog.
func AnalyzeModule(prog *ir.Program, cg ir.CallGraphFacility, dem ir.Demangler) map[ir.FuncID]verdict.Result {
	results := make(map[ir.FuncID]verdict.Result, len(prog.Functions))
	for _, id := range prog.FuncOrder() {
		results[id] = AnalyzeFunction(prog.Functions[id])
	}

	applyRecursionDetection(results, cg, dem)
	runModuleFixedPoint(prog, results, cg, dem)
	return results
}

// applyRecursionDetection marks every member of a cyclic SCC (more than one
// function, or a single function with a self-edge) Unknown, sharing one
// explanation string per SCC that names its members in sorted, demangled
// order — sorted so the explanation is deterministic regardless of the
// order Tarjan's algorithm happens to visit nodes in.
func applyRecursionDetection(results map[ir.FuncID]verdict.Result, cg ir.CallGraphFacility, dem ir.Demangler) {
	for _, c := range cg.SCCs() {
		if !c.HasCycle {
			continue
		}
		names := make([]string, 0, len(c.Members))
		for _, m := range c.Members {
			names = append(names, dem.Demangle(string(m)))
		}
		sort.Strings(names)
		shared := verdict.Result{
			Verdict:     verdict.Unknown,
			Explanation: "part of a call graph that contains a loop: " + strings.Join(names, ", "),
		}
		for _, m := range c.Members {
			results[m] = verdict.Update(results[m], []verdict.Result{shared})
		}
	}
}

// runModuleFixedPoint folds each function's callee verdicts into it until a
// full sweep over every function changes no function's verdict, mirroring the
// function-level worklist but over the call graph instead of the CFG.
func runModuleFixedPoint(prog *ir.Program, results map[ir.FuncID]verdict.Result, cg ir.CallGraphFacility, dem ir.Demangler) {
	order := prog.FuncOrder()
	stale := true
	for iter := 0; stale && iter < maxModuleIterations; iter++ {
		stale = false
		for _, f := range order {
			upstream := calleeResults(cg.Callees(f), results, dem)
			updated := verdict.Update(results[f], upstream)
			if updated.Verdict == results[f].Verdict {
				continue
			}
			results[f] = updated
			stale = true
		}
	}
	if stale {
		// Defensive overflow: monotonicity guarantees this branch is
		// unreachable for any well-formed call graph, but an adapter bug
		// (e.g. a cycle hidden from SCCs()) must not spin forever.
		for _, f := range order {
			results[f] = verdict.Result{
				Verdict:     verdict.Unknown,
				Explanation: "module fixed point did not converge within the iteration cap",
			}
		}
	}
}

func calleeResults(callees []ir.FuncID, results map[ir.FuncID]verdict.Result, dem ir.Demangler) []verdict.Result {
	out := make([]verdict.Result, 0, len(callees))
	for _, callee := range callees {
		if callee == ir.UnknownCallee {
			out = append(out, verdict.Result{
				Verdict:     verdict.Unknown,
				Explanation: "via call to unknown function",
			})
			continue
		}
		calleeResult, known := results[callee]
		if !known {
			out = append(out, verdict.Result{
				Verdict:     verdict.Unknown,
				Explanation: fmt.Sprintf("via call to %s: not defined in this module", dem.Demangle(string(callee))),
			})
			continue
		}
		out = append(out, verdict.Result{
			Verdict:     calleeResult.Verdict,
			Explanation: fmt.Sprintf("via call to %s: %s", dem.Demangle(string(callee)), calleeResult.Explanation),
		})
	}
	return out
}
