package verdict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func r(v DoesThisTerminate, exp string) Result { return Result{Verdict: v, Explanation: exp} }

func TestJoinCommutative(t *testing.T) {
	vals := []Result{
		r(Unevaluated, ""),
		r(Bounded, ""),
		r(Bounded, "includes a loop, but it has a fixed bound"),
		r(Unbounded, "infinite loop"),
		r(Unknown, "includes loop with indeterminate bounds"),
	}
	for _, a := range vals {
		for _, b := range vals {
			assert.Equal(t, Join(a, b), Join(b, a), "join(%v,%v) should be commutative", a, b)
		}
	}
}

func TestJoinAssociative(t *testing.T) {
	vals := []Result{
		r(Unevaluated, ""),
		r(Bounded, "x"),
		r(Unbounded, "y"),
		r(Unknown, "z"),
	}
	for _, a := range vals {
		for _, b := range vals {
			for _, c := range vals {
				left := Join(Join(a, b), c)
				right := Join(a, Join(b, c))
				assert.Equal(t, left, right, "join not associative for %v,%v,%v", a, b, c)
			}
		}
	}
}

func TestJoinIdentity(t *testing.T) {
	bottom := r(Unevaluated, "")
	for _, x := range []Result{r(Bounded, "a"), r(Unbounded, "b"), r(Unknown, "c")} {
		assert.Equal(t, x, Join(bottom, x))
		assert.Equal(t, x, Join(x, bottom))
	}
}

func TestJoinTable(t *testing.T) {
	cases := []struct {
		name    string
		a, b    Result
		wantV   DoesThisTerminate
		wantExp string
	}{
		{"bounded+bounded", r(Bounded, ""), r(Bounded, ""), Bounded, ""},
		{"bounded+unbounded", r(Bounded, ""), r(Unbounded, "inf loop"), Unknown, "Joined with Unbounded branch: inf loop"},
		{"unbounded+unbounded", r(Unbounded, "a"), r(Unbounded, "b"), Unbounded, "Joined two Unbounded branches: (a), (b)"},
		{"bounded+unknown", r(Bounded, ""), r(Unknown, "dunno"), Unknown, "dunno"},
		{"unbounded+unknown", r(Unbounded, "inf"), r(Unknown, "dunno"), Unknown, "dunno"},
		{"unknown+unknown", r(Unknown, "a"), r(Unknown, "b"), Unknown, "b"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Join(c.a, c.b)
			assert.Equal(t, c.wantV, got.Verdict)
			assert.Equal(t, c.wantExp, got.Explanation)
		})
	}
}

func TestUpdateEmptyIsNoOp(t *testing.T) {
	for _, self := range []Result{r(Unevaluated, ""), r(Bounded, "a"), r(Unbounded, "b"), r(Unknown, "c")} {
		assert.Equal(t, self, Update(self, nil))
	}
}

func TestUpdateAsymmetricRule(t *testing.T) {
	got := Update(r(Bounded, ""), []Result{r(Unbounded, "diverges")})
	assert.Equal(t, Unbounded, got.Verdict)
	assert.Equal(t, "diverges", got.Explanation)
}

func TestUpdateSiblingDivergence(t *testing.T) {
	got := Update(r(Bounded, ""), []Result{r(Bounded, ""), r(Unbounded, "diverges")})
	assert.Equal(t, Unknown, got.Verdict)
}

func TestUpdateUnboundedSelfWithBoundedSuccessorIsUnknown(t *testing.T) {
	// The asymmetric rule only fires when self is Bounded; Unbounded self
	// combined with a Bounded predecessor degrades to ordinary join.
	got := Update(r(Unbounded, "diverges"), []Result{r(Bounded, "")})
	assert.Equal(t, Unknown, got.Verdict)
}

func TestJoinMonotone(t *testing.T) {
	// a <= a' (by verdict rank) implies join(a,b) <= join(a',b) in rank.
	chain := []Result{r(Unevaluated, ""), r(Bounded, ""), r(Unbounded, "u"), r(Unknown, "k")}
	other := r(Bounded, "")
	for i := 0; i < len(chain)-1; i++ {
		lo := Join(chain[i], other)
		hi := Join(chain[i+1], other)
		assert.LessOrEqual(t, order[lo.Verdict], order[hi.Verdict])
	}
}
