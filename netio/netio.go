package netio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/flowcut/network"
)

var (
	// ErrInvalidDocument indicates the input bytes do not form a valid
	// network document: malformed YAML, an unknown field, or a missing
	// source/sink key.
	ErrInvalidDocument = errors.New("netio: invalid network document")
	// ErrNilNetwork indicates Marshal was handed a nil *network.Network.
	ErrNilNetwork = errors.New("netio: network must not be nil")
)

// document is the YAML shape of a network file.
type document struct {
	Source string    `yaml:"source"`
	Sink   string    `yaml:"sink"`
	Nodes  []string  `yaml:"nodes,omitempty"`
	Arcs   []arcSpec `yaml:"arcs"`
}

// arcSpec is one entry of the arcs list.
type arcSpec struct {
	Tail     string  `yaml:"tail"`
	Head     string  `yaml:"head"`
	Capacity float64 `yaml:"capacity"`
}

// Parse decodes a YAML network document and validates it through
// network.New. Decoding is strict: fields outside the schema are
// rejected rather than silently dropped, so typos in fixture files
// surface as errors instead of zero capacities.
//
// Schema-level failures wrap ErrInvalidDocument; structural failures
// (duplicate arcs, negative capacities, ...) pass through from the
// network package unchanged.
//
// Complexity: O(bytes + N + A) time and memory.
func Parse(data []byte) (*network.Network, error) {
	// 1) Strict YAML decode into the document shape.
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	// 2) The two distinguished nodes are required keys.
	if doc.Source == "" {
		return nil, fmt.Errorf("%w: missing source", ErrInvalidDocument)
	}
	if doc.Sink == "" {
		return nil, fmt.Errorf("%w: missing sink", ErrInvalidDocument)
	}

	// 3) Assemble the node set: declared extras, the endpoints of every
	//    arc, and the source/sink pair. network.New collapses duplicates.
	nodes := make([]string, 0, len(doc.Nodes)+2*len(doc.Arcs)+2)
	nodes = append(nodes, doc.Nodes...)
	nodes = append(nodes, doc.Source, doc.Sink)
	arcs := make([]network.Arc, 0, len(doc.Arcs))
	for _, spec := range doc.Arcs {
		if spec.Tail != "" {
			nodes = append(nodes, spec.Tail)
		}
		if spec.Head != "" {
			nodes = append(nodes, spec.Head)
		}
		arcs = append(arcs, network.Arc{Tail: spec.Tail, Head: spec.Head, Capacity: spec.Capacity})
	}

	// 4) Structural validation belongs to the network package.
	return network.New(nodes, arcs, doc.Source, doc.Sink)
}

// Load reads a network document from path and parses it. Read failures
// wrap the path and keep the underlying cause, so
// errors.Is(err, os.ErrNotExist) still matches; parse failures come
// back exactly as Parse reports them.
func Load(path string) (*network.Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("netio: read %s: %w", path, err)
	}

	return Parse(data)
}

// Marshal encodes a Network back into the document form Parse accepts.
// Arcs keep their construction order; the nodes list carries only the
// nodes no arc endpoint implies, so typical documents stay minimal.
//
// Complexity: O(N + A) time and memory.
func Marshal(net *network.Network) ([]byte, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}

	// 1) Collect the nodes not implied by arc endpoints or source/sink.
	implied := map[string]struct{}{net.Source(): {}, net.Sink(): {}}
	doc := document{Source: net.Source(), Sink: net.Sink()}
	for _, a := range net.Arcs() {
		implied[a.Tail] = struct{}{}
		implied[a.Head] = struct{}{}
		doc.Arcs = append(doc.Arcs, arcSpec{Tail: a.Tail, Head: a.Head, Capacity: a.Capacity})
	}
	for _, id := range net.Nodes() {
		if _, ok := implied[id]; !ok {
			doc.Nodes = append(doc.Nodes, id)
		}
	}

	// 2) Emit.
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("netio: marshal: %w", err)
	}

	return data, nil
}
