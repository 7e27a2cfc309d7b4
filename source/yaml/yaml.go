// Package yaml tokenizes YAML documents with gopkg.in/yaml.v3 so they can be
// validated through the same enforcement path as JSON input.
//
// Only the first document of a stream is read; further documents are
// reported as trailing data by the engine.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"

	eng "github.com/reoring/teacollection/internal/engine"
)

// Aliases are expanded at every reference. To keep that bounded, a document
// may emit at most tokenBudgetFloor + expansionFactor*n tokens, where n is
// the number of nodes written in the document. Without aliases a document
// emits at most 2n+1 tokens.
const (
	tokenBudgetFloor = 10000
	expansionFactor  = 8
)

// ErrExcessiveAliasing reports a document whose aliases expand past the
// token budget.
var ErrExcessiveAliasing = errors.New("yaml: document contains excessive aliasing")

type cursor struct {
	node *yaml.Node
	next int
}

type source struct {
	dec     *yaml.Decoder
	root    *yaml.Node
	started bool
	done    bool
	stack   []cursor
	budget  int
	emitted int
}

// NewReader wraps an io.Reader into an engine.TokenSource for YAML.
func NewReader(r io.Reader) eng.TokenSource { return &source{dec: yaml.NewDecoder(r)} }

// NewBytes wraps a byte slice into an engine.TokenSource for YAML.
func NewBytes(b []byte) eng.TokenSource { return NewReader(bytes.NewReader(b)) }

func (s *source) NextToken() (eng.Token, error) {
	tok, err := s.next()
	if err != nil {
		return eng.Token{}, err
	}
	s.emitted++
	if s.budget > 0 && s.emitted > s.budget {
		return eng.Token{}, ErrExcessiveAliasing
	}
	return tok, nil
}

func (s *source) next() (eng.Token, error) {
	if !s.started {
		s.started = true
		var doc yaml.Node
		if err := s.dec.Decode(&doc); err != nil {
			return eng.Token{}, err
		}
		s.root = &doc
		if doc.Kind == yaml.DocumentNode {
			if len(doc.Content) == 0 {
				return eng.Token{}, io.EOF
			}
			s.root = doc.Content[0]
		}
		s.budget = tokenBudgetFloor + expansionFactor*countNodes(s.root)
		return s.open(s.root)
	}
	if n := len(s.stack); n > 0 {
		top := &s.stack[n-1]
		if top.next >= len(top.node.Content) {
			s.stack = s.stack[:n-1]
			if top.node.Kind == yaml.MappingNode {
				return eng.Token{Kind: eng.KindEndObject, Offset: -1}, nil
			}
			return eng.Token{Kind: eng.KindEndArray, Offset: -1}, nil
		}
		child := top.node.Content[top.next]
		isKey := top.node.Kind == yaml.MappingNode && top.next%2 == 0
		top.next++
		if isKey {
			return eng.Token{Kind: eng.KindKey, String: resolve(child).Value, Offset: -1}, nil
		}
		return s.open(child)
	}
	if !s.done {
		s.done = true
		// A second document in the stream is surfaced as trailing data.
		var extra yaml.Node
		if err := s.dec.Decode(&extra); err == nil {
			return eng.Token{Kind: eng.KindNull, Offset: -1}, nil
		} else if !errors.Is(err, io.EOF) {
			return eng.Token{}, err
		}
	}
	return eng.Token{}, io.EOF
}

func (s *source) open(n *yaml.Node) (eng.Token, error) {
	n = resolve(n)
	switch n.Kind {
	case yaml.MappingNode:
		s.stack = append(s.stack, cursor{node: n})
		return eng.Token{Kind: eng.KindBeginObject, Offset: -1}, nil
	case yaml.SequenceNode:
		s.stack = append(s.stack, cursor{node: n})
		return eng.Token{Kind: eng.KindBeginArray, Offset: -1}, nil
	case yaml.ScalarNode:
		return scalarToken(n)
	default:
		return eng.Token{}, fmt.Errorf("yaml: unsupported node kind %d at line %d", n.Kind, n.Line)
	}
}

// countNodes counts the nodes under root without following aliases.
func countNodes(root *yaml.Node) int {
	n := 0
	stack := []*yaml.Node{root}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n++
		stack = append(stack, top.Content...)
	}
	return n
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func scalarToken(n *yaml.Node) (eng.Token, error) {
	switch n.ShortTag() {
	case "!!null":
		return eng.Token{Kind: eng.KindNull, Offset: -1}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return eng.Token{}, err
		}
		return eng.Token{Kind: eng.KindBool, Bool: b, Offset: -1}, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return eng.Token{}, err
		}
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatInt(i, 10), Offset: -1}, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return eng.Token{}, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return eng.Token{Kind: eng.KindString, String: n.Value, Offset: -1}, nil
		}
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(f, 'g', -1, 64), Offset: -1}, nil
	default:
		return eng.Token{Kind: eng.KindString, String: n.Value, Offset: -1}, nil
	}
}

// Location is unknown: the document is decoded into nodes up front.
func (s *source) Location() int64 { return -1 }
