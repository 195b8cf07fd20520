package observer

import (
	"sort"

	"github.com/katalvlaran/crowd/metrics"
)

// search returns the indices of an m-clique in the k-compatibility graph of
// sp, or nil if none exists. Requires m >= 2.
func (e *Engine) search(sp *separation, m, k int) []int {
	n := len(sp.ids)
	compat := make([][]bool, n)
	for i := range compat {
		compat[i] = make([]bool, n)
		for j := range compat[i] {
			compat[i][j] = i != j && sp.sep[i][j] >= k
		}
	}

	alive := prune(compat, m)
	if len(alive) < m {
		return nil
	}

	// fewest incompatibilities first; index breaks ties for determinism.
	bad := make(map[int]int, len(alive))
	for _, i := range alive {
		for _, j := range alive {
			if i != j && !compat[i][j] {
				bad[i]++
			}
		}
	}
	sort.SliceStable(alive, func(a, b int) bool {
		if bad[alive[a]] != bad[alive[b]] {
			return bad[alive[a]] < bad[alive[b]]
		}
		return alive[a] < alive[b]
	})

	bb := &brancher{compat: compat, m: m}
	found := bb.extend(make([]int, 0, m), alive)
	e.stats.Branches += bb.branches
	metrics.ObserverBranches.Add(float64(bb.branches))
	if !found {
		return nil
	}

	return bb.chosen
}

// prune repeatedly drops vertices with compatibility degree below m-1,
// since none of them can sit in an m-clique. Returns survivors in index order.
func prune(compat [][]bool, m int) []int {
	n := len(compat)
	in := make([]bool, n)
	deg := make([]int, n)
	for i := 0; i < n; i++ {
		in[i] = true
		for j := 0; j < n; j++ {
			if compat[i][j] {
				deg[i]++
			}
		}
	}
	for changed := true; changed; {
		changed = false
		for i := 0; i < n; i++ {
			if !in[i] || deg[i] >= m-1 {
				continue
			}
			in[i] = false
			changed = true
			for j := 0; j < n; j++ {
				if in[j] && compat[i][j] {
					deg[j]--
				}
			}
		}
	}

	alive := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if in[i] {
			alive = append(alive, i)
		}
	}

	return alive
}

// brancher holds branch-and-bound state for one decision.
type brancher struct {
	compat   [][]bool
	m        int
	branches int
	chosen   []int
}

// extend tries to grow chosen to size m from cands, all of which are
// compatible with every member of chosen.
func (b *brancher) extend(chosen, cands []int) bool {
	if len(chosen) == b.m {
		b.chosen = append([]int(nil), chosen...)
		return true
	}
	for i, c := range cands {
		if len(chosen)+len(cands)-i < b.m {
			return false
		}
		b.branches++
		next := make([]int, 0, len(cands)-i-1)
		for _, d := range cands[i+1:] {
			if b.compat[c][d] {
				next = append(next, d)
			}
		}
		if len(chosen)+1+len(next) < b.m {
			continue
		}
		if b.extend(append(chosen, c), next) {
			return true
		}
	}

	return false
}
