package crowd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/crowd/crowd"
)

func TestTopicOf(t *testing.T) {
	tests := []struct {
		name   string
		in     interface{}
		want   []string
		isColl bool
		ok     bool
	}{
		{"nil", nil, nil, false, false},
		{"string", "sci", []string{"sci"}, false, true},
		{"slice", []string{"pol", "sci", "pol"}, []string{"pol", "sci"}, true, true},
		{"any slice", []interface{}{"x", 3, nil}, []string{"3", "x"}, true, true},
		{"set", map[string]struct{}{"b": {}, "a": {}}, []string{"a", "b"}, true, true},
		{"bool map", map[string]bool{"on": true, "off": false}, []string{"on"}, true, true},
		{"number", 42, []string{"42"}, false, true},
		{"empty slice", []string{}, []string{}, true, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			topic, ok := crowd.TopicOf(tc.in)
			assert.Equal(t, tc.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tc.want, topic.Flatten())
			assert.Equal(t, tc.isColl, topic.IsCollection())
			assert.Equal(t, len(tc.want), topic.Len())
		})
	}
}

func TestTopic_Constructors(t *testing.T) {
	s := crowd.Scalar("sci")
	assert.False(t, s.IsCollection())
	assert.Equal(t, "sci", s.String())

	c := crowd.Collection("b", "a", "b")
	assert.True(t, c.IsCollection())
	assert.Equal(t, []string{"a", "b"}, c.Flatten())
	assert.Equal(t, "[a b]", c.String())

	var zero crowd.Topic
	assert.True(t, zero.IsCollection())
	assert.Empty(t, zero.Flatten())

	same, ok := crowd.TopicOf(c)
	assert.True(t, ok)
	assert.Equal(t, c, same)
}
