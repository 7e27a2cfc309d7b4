package engine

import (
	"io"

	"github.com/reoring/teacollection/tree"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// DecodeValue builds a tree.Value from the streaming token source. Exactly
// one top-level value is consumed; trailing tokens are reported as an error.
// Repeated keys inside one object keep the position of the first occurrence
// and the value of the last.
func DecodeValue(src TokenSource) (tree.Value, error) {
	tok, err := src.NextToken()
	if err != nil {
		if err == io.EOF {
			return tree.Value{}, io.ErrUnexpectedEOF
		}
		return tree.Value{}, err
	}
	v, err := decodeValue(src, tok)
	if err != nil {
		return tree.Value{}, err
	}
	if _, err := src.NextToken(); err != io.EOF {
		if err != nil {
			return tree.Value{}, err
		}
		return tree.Value{}, ErrTrailingData
	}
	return v, nil
}

func decodeValue(src TokenSource, tok Token) (tree.Value, error) {
	switch tok.Kind {
	case KindBeginObject:
		return decodeObject(src)
	case KindBeginArray:
		return decodeArray(src)
	case KindString:
		return tree.String(tok.String), nil
	case KindNumber:
		return tree.Number(tok.Number), nil
	case KindBool:
		return tree.Bool(tok.Bool), nil
	case KindNull:
		return tree.Null(), nil
	default:
		return tree.Value{}, io.ErrUnexpectedEOF
	}
}

func decodeObject(src TokenSource) (tree.Value, error) {
	var members []tree.Member
	index := map[string]int{}
	for {
		tok, err := src.NextToken()
		if err != nil {
			return tree.Value{}, unexpected(err)
		}
		if tok.Kind == KindEndObject {
			return tree.Mapping(members...), nil
		}
		if tok.Kind != KindKey {
			return tree.Value{}, io.ErrUnexpectedEOF
		}
		vt, err := src.NextToken()
		if err != nil {
			return tree.Value{}, unexpected(err)
		}
		v, err := decodeValue(src, vt)
		if err != nil {
			return tree.Value{}, err
		}
		if i, ok := index[tok.String]; ok {
			members[i].Value = v
			continue
		}
		index[tok.String] = len(members)
		members = append(members, tree.Member{Key: tok.String, Value: v})
	}
}

func decodeArray(src TokenSource) (tree.Value, error) {
	var items []tree.Value
	for {
		tok, err := src.NextToken()
		if err != nil {
			return tree.Value{}, unexpected(err)
		}
		if tok.Kind == KindEndArray {
			return tree.Sequence(items...), nil
		}
		v, err := decodeValue(src, tok)
		if err != nil {
			return tree.Value{}, err
		}
		items = append(items, v)
	}
}

func unexpected(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
