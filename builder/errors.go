// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach the method name and
// parameters with %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not be applied at all
// (nil constructor, nil graph).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadTopic indicates a topic value that is neither a string nor a
// string collection.
var ErrBadTopic = errors.New("builder: unsupported topic value")
