// SPDX-License-Identifier: MIT
//
// impl_topics.go - Topics(values) and TopicsFunc(fn).
//
// A topic value is a single token (string) or a token collection
// ([]string). Values are stored under cfg.topicKey; a vertex named in
// values but absent from the graph is created.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/crowd/core"
)

const (
	methodTopics     = "Topics"
	methodTopicsFunc = "TopicsFunc"
)

// Topics returns a Constructor that sets each listed vertex's topic.
// Vertices are visited in sorted order.
func Topics(values map[string]interface{}) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		ids := make([]string, 0, len(values))
		for id := range values {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			if err := setTopic(methodTopics, g, cfg, id, values[id]); err != nil {
				return err
			}
		}
		return nil
	}
}

// TopicsFunc returns a Constructor that sets every existing vertex's topic
// to fn(id). A nil result leaves the vertex untouched.
func TopicsFunc(fn func(id string) interface{}) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if fn == nil {
			return fmt.Errorf("%s: nil func: %w", methodTopicsFunc, ErrConstructFailed)
		}
		for _, id := range g.Vertices() {
			v := fn(id)
			if v == nil {
				continue
			}
			if err := setTopic(methodTopicsFunc, g, cfg, id, v); err != nil {
				return err
			}
		}
		return nil
	}
}

func setTopic(method string, g *core.Graph, cfg builderConfig, id string, v interface{}) error {
	switch t := v.(type) {
	case string:
		// stored as is
	case []string:
		v = append([]string(nil), t...)
	default:
		return fmt.Errorf("%s: %s=%T: %w", method, id, v, ErrBadTopic)
	}
	if err := g.SetAttribute(id, cfg.topicKey, v); err != nil {
		return fmt.Errorf("%s: SetAttribute(%s): %w", method, id, err)
	}

	return nil
}
