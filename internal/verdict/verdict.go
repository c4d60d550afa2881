// Package verdict defines the four-valued termination lattice and the two
// operators — join and update — that the function- and module-level
// fixed-point engines fold over it.
package verdict

import "fmt"

// DoesThisTerminate classifies whether a function or basic block is
// guaranteed to return within a statically bounded number of steps.
//
// The zero value is Unevaluated, the bottom of the lattice.
type DoesThisTerminate int

const (
	// Unevaluated is the bottom of the lattice: no information yet.
	Unevaluated DoesThisTerminate = iota
	// Bounded means the entity provably terminates in statically bounded steps.
	Bounded
	// Unbounded means the entity provably does not terminate.
	Unbounded
	// Unknown means the analyzer cannot decide.
	Unknown
)

// order gives the total order Unevaluated < Bounded < Unbounded < Unknown,
// used only to break ties when reducing pairs with min/max. It is NOT the
// lattice join — see Join.
var order = map[DoesThisTerminate]int{
	Unevaluated: 0,
	Bounded:     1,
	Unbounded:   2,
	Unknown:     3,
}

func (d DoesThisTerminate) String() string {
	switch d {
	case Unevaluated:
		return "Unevaluated"
	case Bounded:
		return "Bounded"
	case Unbounded:
		return "Unbounded"
	case Unknown:
		return "Unknown"
	default:
		return fmt.Sprintf("DoesThisTerminate(%d)", int(d))
	}
}

// Result pairs a verdict with a free-form explanation of why it was chosen.
type Result struct {
	Verdict     DoesThisTerminate
	Explanation string
}

// less orders two Results lexicographically by (Verdict, Explanation), used
// only to make min/max deterministic tie-breaks for Join. It is not a
// semantic ordering on its own.
func less(a, b Result) bool {
	if order[a.Verdict] != order[b.Verdict] {
		return order[a.Verdict] < order[b.Verdict]
	}
	return a.Explanation < b.Explanation
}

func minMax(a, b Result) (lo, hi Result) {
	if less(a, b) {
		return a, b
	}
	return b, a
}

// Join combines two sibling Results into one representing "either branch
// could hold". Join is commutative, associative, and has Unevaluated as its
// identity element.
//
// The one surprising rule is Join(Bounded, Unbounded) = Unknown: two sibling
// branches where one terminates and the other does not mean execution may
// reach either, so the analyzer cannot assert non-termination from the pair
// alone.
func Join(a, b Result) Result {
	lo, hi := minMax(a, b)

	switch lo.Verdict {
	case Unevaluated:
		return hi
	case Bounded:
		if hi.Verdict == Unbounded {
			return Result{
				Verdict:     Unknown,
				Explanation: "Joined with Unbounded branch: " + hi.Explanation,
			}
		}
		return hi
	case Unbounded:
		if hi.Verdict == Unbounded {
			return Result{
				Verdict:     Unbounded,
				Explanation: "Joined two Unbounded branches: (" + lo.Explanation + "), (" + hi.Explanation + ")",
			}
		}
		return hi
	default: // Unknown
		return hi
	}
}

// JoinAll reduces a slice of Results to a single Result via repeated Join,
// starting from the Unevaluated identity. An empty slice yields Unevaluated.
func JoinAll(results []Result) Result {
	agg := Result{Verdict: Unevaluated}
	for _, r := range results {
		agg = Join(agg, r)
	}
	return agg
}

// Update folds a set of upstream Results into self's current Result. The
// upstream set is first reduced to a single Result via JoinAll, then combined
// with self via the one asymmetric rule in the whole analysis:
//
// if self is Bounded and the aggregated upstream Result is Unbounded, self
// becomes Unbounded too — a node all of whose incoming edges are on a
// provably-diverging path is itself on a diverging path, even though its own
// local content is bounded, because it is never reached from a terminating
// prefix. In every other case Update degrades to Join(self, agg).
//
// Update(self, nil) == self: an empty upstream set is a no-op, since
// JoinAll(nil) is the Unevaluated identity.
func Update(self Result, upstream []Result) Result {
	agg := JoinAll(upstream)
	if self.Verdict == Bounded && agg.Verdict == Unbounded {
		return agg
	}
	return Join(self, agg)
}
