// SPDX-License-Identifier: MIT
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - idFn     = DefaultIDFn      ("0","1","2",...)
//   - rng      = nil              (no randomness unless seeded)
//   - weightFn = DefaultWeightFn  (constant 1, weighted graphs only)
//   - topicKey = "T"

package builder

import "math/rand"

// DefaultTopicKey is the vertex attribute topic constructors write to.
const DefaultTopicKey = "T"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
	topicKey string
}

// newBuilderConfig applies opts over the defaults, last one wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
		topicKey: DefaultTopicKey,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
