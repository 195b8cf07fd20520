package crowd

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crowd/core"
	"github.com/katalvlaran/crowd/metrics"
	"github.com/katalvlaran/crowd/oracle"
)

// Record holds every metric census computed for one node. H, ST and PiT
// are zero unless requested; Topics is nil unless requested.
type Record struct {
	Node   string   `json:"node" yaml:"node"`
	S      int      `json:"s" yaml:"s"`
	M      int      `json:"m" yaml:"m"`
	K      int      `json:"k" yaml:"k"`
	D      int      `json:"d" yaml:"d"`
	Pi     int      `json:"pi" yaml:"pi"`
	H      int      `json:"h,omitempty" yaml:"h,omitempty"`
	ST     int      `json:"s_t,omitempty" yaml:"s_t,omitempty"`
	PiT    int      `json:"pi_t,omitempty" yaml:"pi_t,omitempty"`
	Topics []string `json:"topics,omitempty" yaml:"topics,omitempty"`
}

// Records maps node ID to its census record.
type Records map[string]Record

// Sorted returns the records ordered by node ID.
func (r Records) Sorted() []Record {
	out := make([]Record, 0, len(r))
	for _, rec := range r {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Node < out[j].Node })
	return out
}

// CensusOption selects optional census columns.
type CensusOption func(*censusSpec)

type censusSpec struct {
	h           bool
	maxH        int
	transmitter bool
	topics      bool
}

// WithH adds the h-measure up to maxH; 0 uses the Crowd's configured max_h
// (see WithMaxH). Any other maxH < 2 fails the census with
// ErrInvalidParameter.
func WithH(maxH int) CensusOption {
	return func(s *censusSpec) {
		s.h = true
		s.maxH = maxH
	}
}

// WithTransmitter adds S_t and pi_t.
func WithTransmitter() CensusOption {
	return func(s *censusSpec) { s.transmitter = true }
}

// WithTopics adds each node's own topic tokens.
func WithTopics() CensusOption {
	return func(s *censusSpec) { s.topics = true }
}

func resolveCensus(opts []CensusOption) (censusSpec, error) {
	var spec censusSpec
	for _, opt := range opts {
		opt(&spec)
	}
	if spec.h && spec.maxH != 0 && spec.maxH < 2 {
		return spec, fmt.Errorf("%w: max_h=%d < 2", ErrInvalidParameter, spec.maxH)
	}
	return spec, nil
}

// Census computes a Record for each node in nodes, or for every node when
// nodes is nil. Caches warmed by one node serve the next.
func (c *Crowd) Census(nodes []string, opts ...CensusOption) (Records, error) {
	spec, err := resolveCensus(opts)
	if err != nil {
		return nil, err
	}
	timer := prometheus.NewTimer(metrics.CensusDuration)
	defer timer.ObserveDuration()

	if nodes == nil {
		nodes = c.g.Vertices()
	}
	out := make(Records, len(nodes))
	for _, v := range nodes {
		rec, err := c.record(v, spec)
		if err != nil {
			return nil, err
		}
		out[v] = rec
	}

	return out, nil
}

func (c *Crowd) record(v string, spec censusSpec) (Record, error) {
	sc, err := c.SWithPair(v, oracle.Receiver)
	if err != nil {
		return Record{}, err
	}
	d, err := c.D(v)
	if err != nil {
		return Record{}, err
	}
	rec := Record{Node: v, S: sc.S, M: sc.M, K: sc.K, D: d, Pi: sc.S * d}

	if spec.h {
		if rec.H, err = c.HMeasure(v, spec.maxH, oracle.Receiver); err != nil {
			return Record{}, err
		}
	}
	if spec.transmitter {
		if rec.ST, err = c.S(v, oracle.Transmitter); err != nil {
			return Record{}, err
		}
		if rec.PiT, err = c.Pi(v, oracle.Transmitter); err != nil {
			return Record{}, err
		}
	}
	if spec.topics {
		if rec.Topics, err = c.Topics(v); err != nil {
			return Record{}, err
		}
	}
	metrics.CensusNodes.Inc()

	return rec, nil
}

// ParallelCensus runs Census across workers, each with its own Crowd and
// caches over the shared graph. Nodes are dealt round-robin. workers ≤ 0
// means GOMAXPROCS. Cancellation stops traversals in flight as well as the
// remaining nodes. g must not be mutated during the run.
func ParallelCensus(ctx context.Context, g core.Reader, nodes []string, workers int, census []CensusOption, opts ...Option) (Records, error) {
	if isNil(g) {
		return nil, ErrNilGraph
	}
	spec, err := resolveCensus(census)
	if err != nil {
		return nil, err
	}
	if nodes == nil {
		nodes = g.Vertices()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = max(1, min(workers, len(nodes)))

	timer := prometheus.NewTimer(metrics.CensusDuration)
	defer timer.ObserveDuration()

	parts := make([]Records, workers)
	eg, ctx := errgroup.WithContext(ctx)
	opts = append(opts[:len(opts):len(opts)], WithContext(ctx))
	for w := 0; w < workers; w++ {
		w := w
		eg.Go(func() error {
			c, err := New(g, opts...)
			if err != nil {
				return err
			}
			part := make(Records)
			for i := w; i < len(nodes); i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				rec, err := c.record(nodes[i], spec)
				if err != nil {
					return err
				}
				part[nodes[i]] = rec
			}
			parts[w] = part
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make(Records, len(nodes))
	for _, part := range parts {
		for k, v := range part {
			out[k] = v
		}
	}

	return out, nil
}
