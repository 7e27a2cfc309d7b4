// Package tree provides the tagged value model used for decoded documents.
//
// A Value is one of Null, Bool, Number, String, Sequence or Mapping. Mappings
// keep their members in input order so traversal and diagnostics are
// deterministic. The zero Value is Null.
package tree

import (
	"math"
	"strconv"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Member is one key/value pair of a Mapping.
type Member struct {
	Key   string
	Value Value
}

// Value is an immutable node of a decoded document.
type Value struct {
	kind    Kind
	b       bool
	text    string // string payload, or the literal of a number
	items   []Value
	members []Member
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, text: s} }

// Number wraps a number literal as it appeared in the input (for example "12"
// or "1.5e3"). The literal is not re-validated.
func Number(lit string) Value { return Value{kind: KindNumber, text: lit} }

// Int wraps an integer.
func Int(n int64) Value { return Number(strconv.FormatInt(n, 10)) }

// Sequence builds a sequence from items.
func Sequence(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindSequence, items: items}
}

// Mapping builds a mapping from members, preserving their order.
func Mapping(members ...Member) Value {
	if members == nil {
		members = []Member{}
	}
	return Value{kind: KindMapping, members: members}
}

// Field is shorthand for a Member literal.
func Field(key string, v Value) Member { return Member{Key: key, Value: v} }

// Kind reports the variant tag.
func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool     { return v.kind == KindNull }
func (v Value) IsMapping() bool  { return v.kind == KindMapping }
func (v Value) IsSequence() bool { return v.kind == KindSequence }

// IsScalar reports whether v is neither a sequence nor a mapping.
func (v Value) IsScalar() bool { return v.kind != KindSequence && v.kind != KindMapping }

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsString returns the string payload.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.text, true
}

// NumberLiteral returns the number literal.
func (v Value) NumberLiteral() (string, bool) {
	if v.kind != KindNumber {
		return "", false
	}
	return v.text, true
}

// AsInt returns the number as an int64 when it is integral and in range.
// Literals such as "3.0" or "1e2" are accepted.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	if n, err := strconv.ParseInt(v.text, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(v.text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// Len returns the number of items or members; zero for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.items)
	case KindMapping:
		return len(v.members)
	default:
		return 0
	}
}

// Items returns the elements of a sequence. The slice must not be modified.
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	return v.items
}

// Members returns the members of a mapping in order. The slice must not be
// modified.
func (v Value) Members() []Member {
	if v.kind != KindMapping {
		return nil
	}
	return v.members
}

// Get looks up key in a mapping. When a key occurs more than once the last
// occurrence wins.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Value{}, false
	}
	for i := len(v.members) - 1; i >= 0; i-- {
		if v.members[i].Key == key {
			return v.members[i].Value, true
		}
	}
	return Value{}, false
}

// Has reports whether a mapping contains key.
func (v Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// Equal reports deep equality. Mapping member order is significant and
// numbers compare by literal.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber, KindString:
		return v.text == o.text
	case KindSequence:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.members) != len(o.members) {
			return false
		}
		for i := range v.members {
			if v.members[i].Key != o.members[i].Key || !v.members[i].Value.Equal(o.members[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}
