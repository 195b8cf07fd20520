package crowd

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Default bounds for the (m,k) scan.
const (
	DefaultMinK    = 2
	DefaultMaxK    = 5
	DefaultMinM    = 1
	DefaultMaxM    = 5
	DefaultMaxH    = 6
	DefaultNodeKey = "T"
)

// Config bounds the (m,k) grid scanned by S and names the topic attribute.
type Config struct {
	MinK    int    `yaml:"min_k" json:"min_k"`
	MaxK    int    `yaml:"max_k" json:"max_k"`
	MinM    int    `yaml:"min_m" json:"min_m"`
	MaxM    int    `yaml:"max_m" json:"max_m"`
	NodeKey string `yaml:"node_key" json:"node_key"`
	MaxH    int    `yaml:"max_h" json:"max_h"`
}

// DefaultConfig returns min_k=2, max_k=5, min_m=1, max_m=5, node_key="T",
// max_h=6.
func DefaultConfig() Config {
	return Config{
		MinK:    DefaultMinK,
		MaxK:    DefaultMaxK,
		MinM:    DefaultMinM,
		MaxM:    DefaultMaxM,
		NodeKey: DefaultNodeKey,
		MaxH:    DefaultMaxH,
	}
}

// Validate reports the first violated bound as ErrInvalidParameter.
func (c Config) Validate() error {
	switch {
	case c.MinK < 2:
		return fmt.Errorf("%w: min_k=%d < 2", ErrInvalidParameter, c.MinK)
	case c.MaxK < c.MinK:
		return fmt.Errorf("%w: max_k=%d < min_k=%d", ErrInvalidParameter, c.MaxK, c.MinK)
	case c.MinM < 1:
		return fmt.Errorf("%w: min_m=%d < 1", ErrInvalidParameter, c.MinM)
	case c.MaxM < c.MinM:
		return fmt.Errorf("%w: max_m=%d < min_m=%d", ErrInvalidParameter, c.MaxM, c.MinM)
	case c.NodeKey == "":
		return fmt.Errorf("%w: empty node_key", ErrInvalidParameter)
	case c.MaxH < 2:
		return fmt.Errorf("%w: max_h=%d < 2", ErrInvalidParameter, c.MaxH)
	}
	return nil
}

// Option configures a Crowd.
type Option func(*settings)

type settings struct {
	cfg Config
	log logrus.FieldLogger
	ctx context.Context
}

func defaultSettings() settings {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return settings{cfg: DefaultConfig(), log: l, ctx: context.Background()}
}

// WithConfig replaces the whole configuration.
func WithConfig(c Config) Option {
	return func(s *settings) { s.cfg = c }
}

// WithMaxM sets the largest m considered by S.
func WithMaxM(m int) Option {
	return func(s *settings) { s.cfg.MaxM = m }
}

// WithMinM sets the smallest m considered by S.
func WithMinM(m int) Option {
	return func(s *settings) { s.cfg.MinM = m }
}

// WithKRange sets the inclusive k range scanned by S.
func WithKRange(minK, maxK int) Option {
	return func(s *settings) { s.cfg.MinK, s.cfg.MaxK = minK, maxK }
}

// WithNodeKey sets the attribute holding each node's topics.
func WithNodeKey(key string) Option {
	return func(s *settings) { s.cfg.NodeKey = key }
}

// WithMaxH sets the bound HMeasure and WithH use when given 0.
func WithMaxH(h int) Option {
	return func(s *settings) { s.cfg.MaxH = h }
}

// WithLogger routes debug output to l. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *settings) {
		if l != nil {
			s.log = l
		}
	}
}

// WithContext bounds the graph traversals the Crowd runs: once ctx is done,
// the next traversal step fails and the measure returns ctx.Err(). A nil ctx
// is ignored.
func WithContext(ctx context.Context) Option {
	return func(s *settings) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}
