// Package termination implements the two fixed-point engines described by
// the analysis: a per-function backward worklist over the control-flow
// graph, and a per-module fixed point over the call graph that folds callee
// verdicts into callers.
package termination

import (
	"boundedterm/internal/ir"
	"boundedterm/internal/verdict"
)

// AnalyzeFunction runs the function-level fixed point and returns the
// Result at the function's entry block, which is the function's own
// verdict. Declaration-only functions (no body) short-circuit to Unknown.
//
// The worklist propagates divergence backward, from successors toward
// predecessors, because a block all of whose successors diverge is itself
// on a diverging path (the Update asymmetric rule) — propagating forward
// would strand that conclusion on the wrong block. See Update in package
// verdict for the asymmetric rule itself.
func AnalyzeFunction(fn *ir.Function) verdict.Result {
	if fn.Declared() {
		return verdict.Result{Verdict: verdict.Unknown, Explanation: "has no basic blocks in this module"}
	}
	return BlockResults(fn)[fn.EntryBlock()]
}

// BlockResults runs the same fixed point as AnalyzeFunction but returns the
// converged Result for every basic block, not just the entry block. The
// CFG renderer uses this to color each block by its own verdict; the
// function's own verdict (AnalyzeFunction) only ever needs the entry block.
func BlockResults(fn *ir.Function) map[ir.BlockID]verdict.Result {
	if fn.Declared() {
		return map[ir.BlockID]verdict.Result{
			fn.EntryBlock(): {Verdict: verdict.Unknown, Explanation: "has no basic blocks in this module"},
		}
	}
	results := seedBlocks(fn)
	runBackwardWorklist(fn, results)
	return results
}

// seedBlocks computes the initial per-block Result before any propagation:
// a block outside any loop starts Bounded; a block in a structurally
// exit-less loop (no block in it has a successor outside it) seeds
// Unbounded directly — such a loop can never hand control back to its
// caller regardless of what scalar evolution says; a block in any other loop
// with a computable scalar-evolution bound starts Bounded (with an
// explanation naming the loop as the reason); a block in any other loop
// without a computable bound starts Unknown.
//
// Seeding a structural infinite loop Unbounded up front — rather than
// Unknown and hoping propagation sharpens it later — is a deliberate
// choice: promoting Unknown to Unbounded mid-worklist would violate the
// monotonicity the fixed point relies on to converge, so the sharpening has
// to happen before the worklist starts, not during it.
func seedBlocks(fn *ir.Function) map[ir.BlockID]verdict.Result {
	results := make(map[ir.BlockID]verdict.Result, len(fn.Blocks()))
	for _, id := range fn.Blocks() {
		loop, inLoop := fn.InnermostLoop(id)
		if !inLoop {
			results[id] = verdict.Result{Verdict: verdict.Bounded}
			continue
		}
		if !loop.HasExit(fn.BlocksByID) {
			results[id] = verdict.Result{
				Verdict:     verdict.Unbounded,
				Explanation: "includes an infinite loop with no exit",
			}
			continue
		}
		if fn.HasComputableBound(loop) {
			results[id] = verdict.Result{
				Verdict:     verdict.Bounded,
				Explanation: "includes a loop, but it has a fixed bound",
			}
			continue
		}
		results[id] = verdict.Result{
			Verdict:     verdict.Unknown,
			Explanation: "includes loop with indeterminate bounds",
		}
	}
	return results
}

// runBackwardWorklist mutates results in place until no further Update call
// would change any block's verdict. The worklist starts with every block
// (not only exits, or a function with no reachable return would never be
// visited) and, on a change, re-queues the changed block's predecessors.
func runBackwardWorklist(fn *ir.Function, results map[ir.BlockID]verdict.Result) {
	queue := newBlockQueue(fn.Blocks())

	for !queue.empty() {
		b := queue.pop()
		blk := fn.Block(b)
		if blk == nil {
			continue
		}

		succResults := make([]verdict.Result, 0, len(blk.Successors()))
		for _, s := range blk.Successors() {
			succResults = append(succResults, results[s])
		}

		updated := verdict.Update(results[b], succResults)
		if updated.Verdict == results[b].Verdict {
			continue
		}
		results[b] = updated
		for _, pred := range blk.Predecessors() {
			queue.push(pred)
		}
	}
}

// blockQueue is an insertion-ordered set of pending blocks: pushing a block
// already queued is a no-op, which is what keeps the worklist's size bounded
// by O(|V|) entries at a time and its pop order deterministic.
type blockQueue struct {
	pending []ir.BlockID
	queued  map[ir.BlockID]bool
}

func newBlockQueue(initial []ir.BlockID) *blockQueue {
	q := &blockQueue{queued: make(map[ir.BlockID]bool, len(initial))}
	for _, b := range initial {
		q.push(b)
	}
	return q
}

func (q *blockQueue) push(b ir.BlockID) {
	if q.queued[b] {
		return
	}
	q.queued[b] = true
	q.pending = append(q.pending, b)
}

func (q *blockQueue) pop() ir.BlockID {
	b := q.pending[0]
	q.pending = q.pending[1:]
	q.queued[b] = false
	return b
}

func (q *blockQueue) empty() bool { return len(q.pending) == 0 }
