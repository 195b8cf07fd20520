package crowd

import (
	"fmt"
	"sort"
)

// Topic is a node's attribute value: either a single token or a set of
// tokens. The zero Topic is an empty collection.
type Topic struct {
	tokens []string
	scalar bool
}

// Scalar builds a single-token topic.
func Scalar(token string) Topic {
	return Topic{tokens: []string{token}, scalar: true}
}

// Collection builds a set-valued topic; duplicates collapse.
func Collection(tokens ...string) Topic {
	return Topic{tokens: uniqueSorted(tokens)}
}

// IsCollection reports whether t holds a set rather than a single token.
func (t Topic) IsCollection() bool { return !t.scalar }

// Len is the number of distinct tokens.
func (t Topic) Len() int { return len(t.tokens) }

// Flatten returns the sorted distinct tokens of t.
func (t Topic) Flatten() []string {
	return append([]string{}, t.tokens...)
}

// String implements fmt.Stringer.
func (t Topic) String() string {
	if t.scalar {
		return t.tokens[0]
	}
	return fmt.Sprint(t.tokens)
}

// TopicOf converts a raw attribute value. Strings become scalars; string
// slices, []interface{}, map[string]struct{} and map[string]bool (true keys)
// become collections; any other non-nil value becomes a scalar of its
// fmt.Sprint form. A nil value reports false.
func TopicOf(v interface{}) (Topic, bool) {
	switch t := v.(type) {
	case nil:
		return Topic{}, false
	case Topic:
		return t, true
	case string:
		return Scalar(t), true
	case []string:
		return Collection(t...), true
	case []interface{}:
		toks := make([]string, 0, len(t))
		for _, x := range t {
			if x != nil {
				toks = append(toks, fmt.Sprint(x))
			}
		}
		return Collection(toks...), true
	case map[string]struct{}:
		toks := make([]string, 0, len(t))
		for k := range t {
			toks = append(toks, k)
		}
		return Collection(toks...), true
	case map[string]bool:
		toks := make([]string, 0, len(t))
		for k, in := range t {
			if in {
				toks = append(toks, k)
			}
		}
		return Collection(toks...), true
	default:
		return Scalar(fmt.Sprint(t)), true
	}
}

func uniqueSorted(tokens []string) []string {
	if len(tokens) == 0 {
		return []string{}
	}
	out := append([]string(nil), tokens...)
	sort.Strings(out)
	w := 1
	for i := 1; i < len(out); i++ {
		if out[i] != out[w-1] {
			out[w] = out[i]
			w++
		}
	}
	return out[:w]
}
