package search_test

import (
	"iter"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/search"
)

// ------------------------------------------------------------------------
// Weighted digraph (Minimize).
// ------------------------------------------------------------------------

// arc is one weighted directed edge.
type arc struct {
	to string
	w  int
}

// digraph is an adjacency list; arc order is the Moves order.
type digraph map[string][]arc

// pathState walks a digraph from a source; Value is the cost so far.
type pathState struct {
	g    digraph
	goal string
	h    func(node string) int
	node string
	cost int
	prev *pathState
}

func newPath(g digraph, from, goal string, h func(string) int) *pathState {
	if h == nil {
		h = func(string) int { return 0 }
	}

	return &pathState{g: g, goal: goal, h: h, node: from}
}

func (p *pathState) Value() int     { return p.cost }
func (p *pathState) Estimate() int  { return p.cost + p.h(p.node) }
func (p *pathState) Key() string    { return p.node }
func (p *pathState) Finished() bool { return p.node == p.goal }

func (p *pathState) Moves() iter.Seq[*pathState] {
	return func(yield func(*pathState) bool) {
		for _, a := range p.g[p.node] {
			next := &pathState{g: p.g, goal: p.goal, h: p.h, node: a.to, cost: p.cost + a.w, prev: p}
			if !yield(next) {
				return
			}
		}
	}
}

// Path lists the nodes from the source to p.
func (p *pathState) Path() []string {
	var out []string
	for cur := p; cur != nil; cur = cur.prev {
		out = append(out, cur.node)
	}
	slices.Reverse(out)

	return out
}

// diamond is the four-node graph A→B:1, A→C:4, B→C:1, B→D:5, C→D:1.
func diamond() digraph {
	return digraph{
		"A": {{"B", 1}, {"C", 4}},
		"B": {{"C", 1}, {"D", 5}},
		"C": {{"D", 1}},
	}
}

// ------------------------------------------------------------------------
// Bank-or-wait toy (Maximize).
// ------------------------------------------------------------------------

// bankState banks one unit or waits at every time step.
type bankState struct {
	t, steps, banked int
}

// bankKey collapses states by time only: at equal t more units is better.
type bankKey struct{ t int }

func (b bankState) Value() int     { return b.banked }
func (b bankState) Estimate() int  { return b.banked + (b.steps - b.t) }
func (b bankState) Key() bankKey   { return bankKey{b.t} }
func (b bankState) Finished() bool { return b.t >= b.steps }

func (b bankState) Moves() iter.Seq[bankState] {
	return func(yield func(bankState) bool) {
		if !yield(bankState{t: b.t + 1, steps: b.steps, banked: b.banked + 1}) {
			return
		}
		yield(bankState{t: b.t + 1, steps: b.steps, banked: b.banked})
	}
}

// ------------------------------------------------------------------------
// Scripted states: explicit trees with expansion counters.
// ------------------------------------------------------------------------

// progressKey is a (resources, time) duplication key.
type progressKey struct {
	Resources int
	Time      int
}

// scripted is a hand-built state; Moves calls are counted per name.
type scripted struct {
	name     string
	key      progressKey
	value    int
	est      int
	finished bool
	children []*scripted
	calls    map[string]int
}

func (s *scripted) Value() int       { return s.value }
func (s *scripted) Estimate() int    { return s.est }
func (s *scripted) Key() progressKey { return s.key }
func (s *scripted) Finished() bool   { return s.finished }

func (s *scripted) Moves() iter.Seq[*scripted] {
	s.calls[s.name]++

	return slices.Values(s.children)
}

// ------------------------------------------------------------------------
// Dead-end counter without Finisher.
// ------------------------------------------------------------------------

// countState counts up to limit; at limit Moves is empty. The limit is an
// exact bound in both modes.
type countState struct {
	n, limit int
}

func (c countState) Value() int    { return c.n }
func (c countState) Estimate() int { return c.limit }
func (c countState) Key() int      { return c.n }

func (c countState) Moves() iter.Seq[countState] {
	return func(yield func(countState) bool) {
		if c.n < c.limit {
			yield(countState{n: c.n + 1, limit: c.limit})
		}
	}
}

// ------------------------------------------------------------------------
// Random instances and brute force.
// ------------------------------------------------------------------------

// randomDigraph builds n nodes "0".."n-1" with random arcs of weight 1..9.
func randomDigraph(rng *rand.Rand, n int, density float64) digraph {
	g := digraph{}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && rng.Float64() < density {
				g[name(u)] = append(g[name(u)], arc{to: name(v), w: 1 + rng.IntN(9)})
			}
		}
	}

	return g
}

func name(i int) string { return string(rune('0' + i)) }

// bruteShortest enumerates every simple path from → goal and returns the
// cheapest cost, or false when goal is unreachable.
func bruteShortest(g digraph, from, goal string) (int, bool) {
	best := math.MaxInt
	onPath := map[string]bool{from: true}
	var walk func(node string, cost int)
	walk = func(node string, cost int) {
		if node == goal {
			best = min(best, cost)
			return
		}
		for _, a := range g[node] {
			if onPath[a.to] {
				continue
			}
			onPath[a.to] = true
			walk(a.to, cost+a.w)
			onPath[a.to] = false
		}
	}
	walk(from, 0)

	return best, best != math.MaxInt
}

// exactHeuristic returns the true remaining cost per node (unreachable → 0,
// which keeps it admissible).
func exactHeuristic(g digraph, n int, goal string) func(string) int {
	h := make(map[string]int, n)
	for i := 0; i < n; i++ {
		if d, ok := bruteShortest(g, name(i), goal); ok {
			h[name(i)] = d
		}
	}

	return func(node string) int { return h[node] }
}

// tour is a reward-collection instance: travel arcs cost time, visiting a
// node for the first time collects its reward, the horizon caps time.
type tour struct {
	g       map[int][]tourArc
	rewards []int
	horizon int
	dupes   bool // emit a worse twin for every rewarding move
}

type tourArc struct {
	to, w int
}

// tourKey identifies equivalent progress: position, time, collected set.
type tourKey struct {
	node, t int
	mask    uint32
	done    bool
}

// tourState is one position of a tour walk.
type tourState struct {
	tr    *tour
	node  int
	t     int
	mask  uint32
	value int
	done  bool
}

func (s *tourState) Value() int     { return s.value }
func (s *tourState) Key() tourKey   { return tourKey{s.node, s.t, s.mask, s.done} }
func (s *tourState) Finished() bool { return s.done }

// Estimate adds every reward not yet collected.
func (s *tourState) Estimate() int {
	if s.done {
		return s.value
	}
	est := s.value
	for i, r := range s.tr.rewards {
		if s.mask&(1<<i) == 0 {
			est += r
		}
	}

	return est
}

func (s *tourState) Moves() iter.Seq[*tourState] {
	return func(yield func(*tourState) bool) {
		stop := &tourState{tr: s.tr, node: s.node, t: s.tr.horizon, mask: s.mask, value: s.value, done: true}
		if !yield(stop) {
			return
		}
		for _, a := range s.tr.g[s.node] {
			if s.t+a.w > s.tr.horizon {
				continue
			}
			next := &tourState{tr: s.tr, node: a.to, t: s.t + a.w, mask: s.mask, value: s.value}
			gain := 0
			if next.mask&(1<<a.to) == 0 {
				next.mask |= 1 << a.to
				gain = s.tr.rewards[a.to]
			}
			next.value += gain
			if !yield(next) {
				return
			}
			if s.tr.dupes && gain > 0 {
				twin := *next
				twin.value--
				if !yield(&twin) {
					return
				}
			}
		}
	}
}

func (tr *tour) start() *tourState {
	return &tourState{tr: tr, node: 0, mask: 1, value: tr.rewards[0]}
}

// randomTour builds n nodes with rewards 1..9 and arcs of time 1..3.
func randomTour(rng *rand.Rand, n, horizon int) *tour {
	tr := &tour{g: map[int][]tourArc{}, rewards: make([]int, n), horizon: horizon}
	for i := range tr.rewards {
		tr.rewards[i] = 1 + rng.IntN(9)
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u != v && rng.Float64() < 0.5 {
				tr.g[u] = append(tr.g[u], tourArc{to: v, w: 1 + rng.IntN(3)})
			}
		}
	}

	return tr
}

// bruteTour explores every move sequence and returns the best final value.
func bruteTour(s *tourState) int {
	if s.done {
		return s.value
	}
	best := s.value
	for next := range s.Moves() {
		best = max(best, bruteTour(next))
	}

	return best
}

// ------------------------------------------------------------------------
// Admissibility against exhaustive ground truth.
// ------------------------------------------------------------------------

// reachable lists one state per duplication key reachable from start,
// breadth-first. Finished states are listed but not expanded.
func reachable[S search.State[S, K, int], K comparable](start S) []S {
	seen := map[K]bool{start.Key(): true}
	out := []S{start}
	for i := 0; i < len(out); i++ {
		if fin, ok := any(out[i]).(search.Finisher); ok && fin.Finished() {
			continue
		}
		for c := range out[i].Moves() {
			if k := c.Key(); !seen[k] {
				seen[k] = true
				out = append(out, c)
			}
		}
	}

	return out
}

// bestGain returns the most value a finished descendant of s adds on top of
// s.Value(). The gain depends on the key only, so it is memoized per key.
func bestGain[S search.State[S, K, int], K comparable](s S, memo map[K]int) int {
	if g, ok := memo[s.Key()]; ok {
		return g
	}
	g, first := 0, true
	if fin, ok := any(s).(search.Finisher); !ok || !fin.Finished() {
		for c := range s.Moves() {
			cg := c.Value() - s.Value() + bestGain[S, K](c, memo)
			if first || cg > g {
				g, first = cg, false
			}
		}
	}
	memo[s.Key()] = g

	return g
}

// requireAdmissibleMax checks Estimate ≥ the best final value for every
// reachable key.
func requireAdmissibleMax[S search.State[S, K, int], K comparable](t *testing.T, start S) {
	t.Helper()
	memo := map[K]int{}
	for _, s := range reachable[S, K](start) {
		best := s.Value() + bestGain[S, K](s, memo)
		require.GreaterOrEqualf(t, s.Estimate(), best, "key %v", s.Key())
	}
}

// requireAdmissibleMin checks Estimate ≤ Value + true remaining cost for
// every reachable key from which a goal can be reached.
func requireAdmissibleMin[S search.State[S, K, int], K comparable](t *testing.T, start S, remaining func(S) (int, bool)) {
	t.Helper()
	for _, s := range reachable[S, K](start) {
		if d, ok := remaining(s); ok {
			require.LessOrEqualf(t, s.Estimate(), s.Value()+d, "key %v", s.Key())
		}
	}
}
