// Package ir defines the boundary between the termination analysis core and
// the compiler intermediate representation it reads. The interfaces here
// mirror the facilities a real compiler pass manager would hand to an
// analysis pass: a per-function view of basic blocks, loop information with
// scalar-evolution-derived bounds, and a whole-program call graph.
//
// The concrete types (Program, Function, Block, Loop) are a self-contained
// stand-in for an actual compiler IR, populated by package irjson from a
// text description. They satisfy the interfaces directly so the core can be
// exercised without a real compiler frontend.
package ir

// BlockID identifies a basic block within a single function. It is only
// meaningful relative to that function.
type BlockID int

// FuncID identifies a function within a program. Call graph edges and
// analysis results are keyed by FuncID.
type FuncID string

// UnknownCallee is the sentinel FuncID used for call sites whose target the
// core cannot see — indirect calls through a function pointer, calls to
// functions outside the module, and (during recursion detection) the
// call-graph's null node that also stands in for exported entry points
// reachable from the world.
const UnknownCallee FuncID = ""

// FunctionView is the read-only surface the core needs for one function.
// A real binding would implement this directly over compiler IR; Function
// below is a concrete implementation backing the standalone tool.
type FunctionView interface {
	ID() FuncID
	Name() string
	Declared() bool // true for a declaration with no body
	EntryBlock() BlockID
	Blocks() []BlockID
}

// BlockView is the read-only surface the core needs for one basic block.
type BlockView interface {
	Predecessors() []BlockID
	Successors() []BlockID
}

// LoopInfo reports, for a block, the innermost loop containing it.
type LoopInfo interface {
	// InnermostLoop returns the innermost loop containing b, and false if b
	// is not inside any loop.
	InnermostLoop(b BlockID) (Loop, bool)
}

// Loop identifies a natural loop by its header block and member blocks.
// Blocks is used only to detect structurally exit-less loops during
// seeding (see package termination); two Loops are otherwise compared by
// Header alone.
type Loop struct {
	Header BlockID
	Blocks []BlockID
}

// HasExit reports whether any block in the loop has a successor outside the
// loop's own block set. A loop with no exit at all can never return control
// to its caller, independent of whether scalar evolution can bound its trip
// count — it is structurally Unbounded, not merely Unknown.
func (l Loop) HasExit(blocksByID map[BlockID]*Block) bool {
	inLoop := make(map[BlockID]bool, len(l.Blocks))
	for _, b := range l.Blocks {
		inLoop[b] = true
	}
	for _, b := range l.Blocks {
		blk := blocksByID[b]
		if blk == nil {
			continue
		}
		for _, s := range blk.Successors() {
			if !inLoop[s] {
				return true
			}
		}
	}
	return false
}

// ScalarEvolution reports whether a loop's trip count has a computable
// symbolic bound. The bound need not be small — only present.
type ScalarEvolution interface {
	HasComputableBound(l Loop) bool
}

// CallGraphFacility exposes the whole-program call graph: for each function,
// its directly-called callees, plus strongly-connected-component iteration
// for recursion detection.
type CallGraphFacility interface {
	// Callees returns the direct callees of f. UnknownCallee appears once
	// per indirect/external call site.
	Callees(f FuncID) []FuncID
	// SCCs returns the call graph's strongly connected components.
	SCCs() []SCC
}

// SCC is a strongly connected component of the call graph.
type SCC struct {
	Members  []FuncID
	HasCycle bool // true for >1 member, or a single member with a self-edge
}

// Demangler maps a mangled function name to a human-displayable one, used
// only when composing explanation strings.
type Demangler interface {
	Demangle(mangled string) string
}

// Program is a concrete, in-memory compiler-IR stand-in: a set of functions
// each with their own CFG, loop information, and outgoing call edges.
type Program struct {
	Functions map[FuncID]*Function
	// order fixes a deterministic iteration order over Functions, since Go
	// map iteration is randomized and the analysis must be reproducible.
	order []FuncID
}

// NewProgram builds a Program from a set of functions, fixing their
// iteration order to the order given.
func NewProgram(funcs []*Function) *Program {
	p := &Program{Functions: make(map[FuncID]*Function, len(funcs))}
	for _, f := range funcs {
		p.Functions[f.ID()] = f
		p.order = append(p.order, f.ID())
	}
	return p
}

// FuncOrder returns function identities in declaration order.
func (p *Program) FuncOrder() []FuncID { return p.order }

// Function is the concrete FunctionView/LoopInfo/ScalarEvolution/CallGraph
// source for one function.
type Function struct {
	FuncName   string
	FuncID_    FuncID
	IsDeclared bool
	Entry      BlockID
	BlockOrder []BlockID
	BlocksByID map[BlockID]*Block
	Loops      map[BlockID]Loop // block -> innermost containing loop
	BoundedSE  map[BlockID]bool // loop header -> has computable bound
	CallEdges  []FuncID         // direct callees, UnknownCallee per indirect/external site
}

func (f *Function) ID() FuncID           { return f.FuncID_ }
func (f *Function) Name() string         { return f.FuncName }
func (f *Function) Declared() bool       { return f.IsDeclared }
func (f *Function) EntryBlock() BlockID  { return f.Entry }
func (f *Function) Blocks() []BlockID    { return f.BlockOrder }
func (f *Function) Block(id BlockID) *Block {
	return f.BlocksByID[id]
}

// InnermostLoop implements LoopInfo.
func (f *Function) InnermostLoop(b BlockID) (Loop, bool) {
	l, ok := f.Loops[b]
	return l, ok
}

// HasComputableBound implements ScalarEvolution.
func (f *Function) HasComputableBound(l Loop) bool {
	return f.BoundedSE[l.Header]
}

// Block is the concrete BlockView implementation.
type Block struct {
	BlockID_ BlockID
	Succs    []BlockID
	Preds    []BlockID
}

func (b *Block) Predecessors() []BlockID { return b.Preds }
func (b *Block) Successors() []BlockID   { return b.Succs }

// ProgramCallGraph adapts a Program into the CallGraphFacility interface,
// computing SCCs on demand from the declared call edges.
type ProgramCallGraph struct {
	Program *Program
}

// Callees implements CallGraphFacility.
func (g *ProgramCallGraph) Callees(f FuncID) []FuncID {
	fn, ok := g.Program.Functions[f]
	if !ok {
		return nil
	}
	return fn.CallEdges
}

// SCCs implements CallGraphFacility using Tarjan's algorithm over direct,
// resolved call edges (the UnknownCallee sentinel is never itself a node in
// the SCC graph — see callGraphAdjacency).
func (g *ProgramCallGraph) SCCs() []SCC {
	return sccsFromProgram(g.Program)
}
