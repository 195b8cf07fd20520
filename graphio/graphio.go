// Package graphio reads and writes graph documents in YAML or JSON.
//
// A document looks like:
//
//	directed: true
//	weighted: false
//	nodes:
//	  A: {T: finance}
//	  B: {T: [finance, sport]}
//	  C: {}
//	edges:
//	  - {from: A, to: C}
//	  - {from: B, to: C}
//
// Node attribute values are scalars or lists of scalars; lists are stored on
// the vertex as []string. Vertices mentioned only by edges are created
// without attributes. A self-loop in the edge list enables loops on the
// resulting graph.
package graphio

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/crowd/core"
)

// ErrInvalidDocument is returned for malformed or inconsistent documents.
var ErrInvalidDocument = errors.New("graphio: invalid document")

// Encoding selects the serialization of a document.
type Encoding int

const (
	YAML Encoding = iota
	JSON
)

// EncodingFor picks JSON for a .json extension and YAML otherwise.
func EncodingFor(path string) Encoding {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}
	return YAML
}

// Document is the serialized form of a graph.
type Document struct {
	Directed bool                              `yaml:"directed" json:"directed"`
	Weighted bool                              `yaml:"weighted" json:"weighted"`
	Nodes    map[string]map[string]interface{} `yaml:"nodes,omitempty" json:"nodes,omitempty"`
	Edges    []EdgeDoc                         `yaml:"edges,omitempty" json:"edges,omitempty"`
}

// EdgeDoc is one edge entry.
type EdgeDoc struct {
	From   string `yaml:"from" json:"from"`
	To     string `yaml:"to" json:"to"`
	Weight int64  `yaml:"weight,omitempty" json:"weight,omitempty"`
}

// Decode parses a document. YAML is a superset of JSON, so one decoder
// serves both encodings.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return &doc, nil
}

// Encode writes doc in the requested encoding.
func Encode(w io.Writer, doc *Document, enc Encoding) error {
	if enc == JSON {
		je := json.NewEncoder(w)
		je.SetIndent("", "  ")
		if err := je.Encode(doc); err != nil {
			return fmt.Errorf("graphio: encode json: %w", err)
		}
		return nil
	}

	ye := yaml.NewEncoder(w)
	ye.SetIndent(2)
	if err := ye.Encode(doc); err != nil {
		return fmt.Errorf("graphio: encode yaml: %w", err)
	}
	return ye.Close()
}

// Read decodes a document from r and builds its graph.
func Read(r io.Reader) (*core.Graph, error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, err
	}
	return doc.Graph()
}

// ReadFile reads the graph stored at path.
func ReadFile(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: read %s: %w", path, err)
	}
	g, err := Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Write serializes g to w.
func Write(w io.Writer, g *core.Graph, enc Encoding) error {
	doc, err := FromGraph(g)
	if err != nil {
		return err
	}
	return Encode(w, doc, enc)
}

// WriteFile writes g to path, choosing the encoding from its extension.
func WriteFile(path string, g *core.Graph) error {
	var buf bytes.Buffer
	if err := Write(&buf, g, EncodingFor(path)); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("graphio: write %s: %w", path, err)
	}
	return nil
}

// Graph builds a core.Graph from the document.
func (d *Document) Graph() (*core.Graph, error) {
	opts := []core.GraphOption{core.WithDirected(d.Directed)}
	if d.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	for _, e := range d.Edges {
		if e.From == e.To {
			opts = append(opts, core.WithLoops())
			break
		}
	}
	g := core.NewGraph(opts...)

	ids := make([]string, 0, len(d.Nodes))
	for id := range d.Nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("%w: node %q: %v", ErrInvalidDocument, id, err)
		}
		for key, raw := range d.Nodes[id] {
			val, err := attrValue(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: node %q attribute %q: %v", ErrInvalidDocument, id, key, err)
			}
			if err = g.SetAttribute(id, key, val); err != nil {
				return nil, fmt.Errorf("%w: node %q: %v", ErrInvalidDocument, id, err)
			}
		}
	}

	for i, e := range d.Edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edge %d (%s->%s): %v", ErrInvalidDocument, i, e.From, e.To, err)
		}
	}
	return g, nil
}

// attrValue accepts scalars and flat lists of scalars.
func attrValue(raw interface{}) (interface{}, error) {
	switch v := raw.(type) {
	case nil, string, bool, int, int64, float64:
		return v, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			switch item.(type) {
			case []interface{}, map[string]interface{}:
				return nil, fmt.Errorf("nested value %v", item)
			}
			out = append(out, fmt.Sprint(item))
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported value of type %T", raw)
	}
}

// FromGraph captures g as a document. Only directed and undirected graphs
// without per-edge overrides round-trip exactly.
func FromGraph(g *core.Graph) (*Document, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil graph", ErrInvalidDocument)
	}
	doc := &Document{
		Directed: g.Directed(),
		Weighted: g.Weighted(),
		Nodes:    make(map[string]map[string]interface{}),
	}
	for _, id := range g.Vertices() {
		attrs, err := g.Attributes(id)
		if err != nil {
			return nil, fmt.Errorf("graphio: node %q: %w", id, err)
		}
		for k, v := range attrs {
			attrs[k] = exportValue(v)
		}
		doc.Nodes[id] = attrs
	}
	for _, e := range g.Edges() {
		if e.Directed != doc.Directed {
			return nil, fmt.Errorf("%w: edge %s overrides graph direction", ErrInvalidDocument, e.ID)
		}
		doc.Edges = append(doc.Edges, EdgeDoc{From: e.From, To: e.To, Weight: e.Weight})
	}
	return doc, nil
}

// collection is satisfied by crowd.Topic.
type collection interface {
	IsCollection() bool
	Flatten() []string
}

// exportValue maps an attribute onto a value the encoders handle.
func exportValue(v interface{}) interface{} {
	switch t := v.(type) {
	case nil, string, bool, int, int64, float64, []string:
		return t
	case []interface{}:
		out := make([]string, len(t))
		for i, item := range t {
			out[i] = fmt.Sprint(item)
		}
		return out
	case collection:
		if t.IsCollection() {
			return t.Flatten()
		}
		return fmt.Sprint(t)
	default:
		return fmt.Sprint(t)
	}
}
