package report

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the distribution of one census column.
type Summary struct {
	Field  string  `json:"field"`
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

// Summarize returns summaries for S, D and pi, in that order.
//
// Errors: ErrEmpty.
func Summarize(s Series) ([]Summary, error) {
	if len(s.Nodes) == 0 {
		return nil, ErrEmpty
	}
	return []Summary{
		summarize("s", s.S),
		summarize("d", s.D),
		summarize("pi", s.Pi),
	}, nil
}

func summarize(field string, vals []int) Summary {
	xs := make([]float64, len(vals))
	for i, v := range vals {
		xs[i] = float64(v)
	}
	sort.Float64s(xs)

	sum := Summary{
		Field:  field,
		N:      len(xs),
		Mean:   stat.Mean(xs, nil),
		Min:    floats.Min(xs),
		Median: stat.Quantile(0.5, stat.Empirical, xs, nil),
		Max:    floats.Max(xs),
	}
	if len(xs) > 1 {
		sum.StdDev = stat.StdDev(xs, nil)
	}
	return sum
}
