// Package report turns census records into the data behind the Sullivan
// profile plot, summary statistics, and CSV, table or JSON output.
// Rendering is left to the caller.
package report

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/crowd/crowd"
)

var (
	// ErrLengthMismatch is returned when the pi, D and S lists differ in length.
	ErrLengthMismatch = errors.New("report: pi, D and S lists differ in length")

	// ErrEmpty is returned for an empty population.
	ErrEmpty = errors.New("report: empty population")
)

// Series holds the census as parallel lists ordered by node ID.
type Series struct {
	Nodes []string
	Pi    []int
	D     []int
	S     []int
}

// FromRecords flattens recs into a Series.
func FromRecords(recs crowd.Records) Series {
	sorted := recs.Sorted()
	s := Series{
		Nodes: make([]string, len(sorted)),
		Pi:    make([]int, len(sorted)),
		D:     make([]int, len(sorted)),
		S:     make([]int, len(sorted)),
	}
	for i, r := range sorted {
		s.Nodes[i], s.Pi[i], s.D[i], s.S[i] = r.Node, r.Pi, r.D, r.S
	}
	return s
}

// Point is a vertex of the pi step curve.
type Point struct {
	X float64 `json:"x"`
	Y int     `json:"y"`
}

// Bar is one (pi, D, S) group. X and Width are population proportions,
// Height is S, and Shade maps D into (0,1) over [min(D)-1, max(D)+1].
type Bar struct {
	X      float64 `json:"x"`
	Width  float64 `json:"width"`
	Height int     `json:"height"`
	D      int     `json:"d"`
	Shade  float64 `json:"shade"`
}

// Sullivan is the geometry of a Sullivan profile: a cumulative step curve
// of pi over the population proportion, and bars of S coloured by D.
type Sullivan struct {
	Curve []Point `json:"curve"`
	Bars  []Bar   `json:"bars"`
	DMin  int     `json:"d_min"`
	DMax  int     `json:"d_max"`
}

type triple struct{ pi, d, s int }

// Profile builds the Sullivan geometry from parallel lists. Entries are
// sorted by (pi, D, S); the curve starts at (0,0), rises at every distinct
// pi and ends at (1, max pi). Bars tile [0,1] in sorted order.
//
// Errors: ErrLengthMismatch, ErrEmpty.
func Profile(pis, ds, ses []int) (*Sullivan, error) {
	if len(pis) != len(ds) || len(ds) != len(ses) {
		return nil, fmt.Errorf("%w: %d, %d, %d", ErrLengthMismatch, len(pis), len(ds), len(ses))
	}
	if len(pis) == 0 {
		return nil, ErrEmpty
	}

	z := make([]triple, len(pis))
	for i := range pis {
		z[i] = triple{pis[i], ds[i], ses[i]}
	}
	sort.Slice(z, func(i, j int) bool {
		a, b := z[i], z[j]
		if a.pi != b.pi {
			return a.pi < b.pi
		}
		if a.d != b.d {
			return a.d < b.d
		}
		return a.s < b.s
	})

	total := float64(len(z))
	out := &Sullivan{DMin: z[0].d, DMax: z[0].d}
	for _, t := range z {
		out.DMin = min(out.DMin, t.d)
		out.DMax = max(out.DMax, t.d)
	}
	lo, span := float64(out.DMin-1), float64(out.DMax-out.DMin+2)

	// step curve over distinct pi
	out.Curve = []Point{{0, 0}}
	cum, prev := 0.0, 0
	for i := 0; i < len(z); {
		j := i
		for j < len(z) && z[j].pi == z[i].pi {
			j++
		}
		out.Curve = append(out.Curve, Point{cum, prev}, Point{cum, z[i].pi})
		cum += float64(j-i) / total
		prev = z[i].pi
		i = j
	}
	out.Curve = append(out.Curve, Point{1, prev})

	// bars over distinct triples
	x := 0.0
	for i := 0; i < len(z); {
		j := i
		for j < len(z) && z[j] == z[i] {
			j++
		}
		w := float64(j-i) / total
		out.Bars = append(out.Bars, Bar{
			X:      x,
			Width:  w,
			Height: z[i].s,
			D:      z[i].d,
			Shade:  (float64(z[i].d) - lo) / span,
		})
		x += w
		i = j
	}

	return out, nil
}
