// Package irjson loads the stand-in compiler IR (package ir) from a JSONL
// description, one function per line. It plays the role the real compiler's
// IR-to-pass-manager bridge would play for an actual pass: turning whatever
// the frontend hands over into the ir.Program the termination analysis
// walks.
package irjson

import (
	"encoding/json"
	"fmt"
	"os"

	"boundedterm/internal/ir"
)

// blockRecord is one basic block's wire form: successors and predecessors
// by block index within the function.
type blockRecord struct {
	ID    int   `json:"id"`
	Succs []int `json:"succs,omitempty"`
	Preds []int `json:"preds,omitempty"`
}

// loopRecord names a natural loop by header and member block indices, and
// whether scalar evolution can bound its trip count.
type loopRecord struct {
	Header  int   `json:"header"`
	Blocks  []int `json:"blocks"`
	Bounded bool  `json:"bounded"`
}

// functionRecord is one function's wire form. A Calls entry of "" is the
// UnknownCallee sentinel, for an indirect or external call site.
type functionRecord struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Declared bool          `json:"declared,omitempty"`
	Entry    int           `json:"entry"`
	Blocks   []blockRecord `json:"blocks"`
	Loops    []loopRecord  `json:"loops,omitempty"`
	Calls    []string      `json:"calls,omitempty"`
}

// Load reads a JSONL file of functionRecords and builds an ir.Program.
func Load(path string) (*ir.Program, error) {
	records, err := readJSONL[functionRecord](path)
	if err != nil {
		return nil, fmt.Errorf("load ir from %s: %w", path, err)
	}

	funcs := make([]*ir.Function, 0, len(records))
	for _, rec := range records {
		fn, err := buildFunction(rec)
		if err != nil {
			return nil, fmt.Errorf("load ir from %s: function %q: %w", path, rec.ID, err)
		}
		funcs = append(funcs, fn)
	}
	return ir.NewProgram(funcs), nil
}

func buildFunction(rec functionRecord) (*ir.Function, error) {
	fn := &ir.Function{
		FuncName:   rec.Name,
		FuncID_:    ir.FuncID(rec.ID),
		IsDeclared: rec.Declared,
		Entry:      ir.BlockID(rec.Entry),
		BlocksByID: make(map[ir.BlockID]*ir.Block, len(rec.Blocks)),
		Loops:      make(map[ir.BlockID]ir.Loop),
		BoundedSE:  make(map[ir.BlockID]bool),
	}

	for _, b := range rec.Blocks {
		id := ir.BlockID(b.ID)
		fn.BlockOrder = append(fn.BlockOrder, id)
		blk := &ir.Block{BlockID_: id}
		for _, s := range b.Succs {
			blk.Succs = append(blk.Succs, ir.BlockID(s))
		}
		for _, p := range b.Preds {
			blk.Preds = append(blk.Preds, ir.BlockID(p))
		}
		fn.BlocksByID[id] = blk
	}

	for _, l := range rec.Loops {
		header := ir.BlockID(l.Header)
		memberIDs := make([]ir.BlockID, len(l.Blocks))
		for i, m := range l.Blocks {
			memberIDs[i] = ir.BlockID(m)
		}
		loop := ir.Loop{Header: header, Blocks: memberIDs}
		for _, m := range memberIDs {
			if _, ok := fn.BlocksByID[m]; !ok {
				return nil, fmt.Errorf("loop header %d references unknown block %d", l.Header, m)
			}
			fn.Loops[m] = loop
		}
		fn.BoundedSE[header] = l.Bounded
	}

	for _, c := range rec.Calls {
		fn.CallEdges = append(fn.CallEdges, ir.FuncID(c))
	}

	if !fn.IsDeclared {
		if _, ok := fn.BlocksByID[fn.Entry]; !ok {
			return nil, fmt.Errorf("entry block %d is not among the function's blocks", rec.Entry)
		}
	}

	return fn, nil
}

// readJSONL reads a JSONL file into a slice of T, one JSON value per line.
func readJSONL[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []T
	dec := json.NewDecoder(f)
	for dec.More() {
		var rec T
		if err := dec.Decode(&rec); err != nil {
			return records, fmt.Errorf("record %d: %w", len(records)+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
