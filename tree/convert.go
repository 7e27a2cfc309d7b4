package tree

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// FromAny converts a generic Go value (as produced by encoding/json or
// yaml.v3 into `any`) into a Value. Keys of Go maps carry no order, so they
// are sorted to keep the result deterministic.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		return Number(string(t)), nil
	case int:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint64:
		return Number(strconv.FormatUint(t, 10)), nil
	case float32:
		return Number(strconv.FormatFloat(float64(t), 'g', -1, 32)), nil
	case float64:
		return Number(strconv.FormatFloat(t, 'g', -1, 64)), nil
	case []any:
		items := make([]Value, 0, len(t))
		for i, e := range t {
			v, err := FromAny(e)
			if err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			items = append(items, v)
		}
		return Sequence(items...), nil
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		members := make([]Member, 0, len(t))
		for _, k := range keys {
			v, err := FromAny(t[k])
			if err != nil {
				return Value{}, fmt.Errorf("%s: %w", k, err)
			}
			members = append(members, Member{Key: k, Value: v})
		}
		return Mapping(members...), nil
	default:
		return Value{}, fmt.Errorf("tree: unsupported type %T", x)
	}
}

// ToAny converts v into generic Go values: map[string]any, []any, string,
// bool, json.Number or nil. Member order is lost.
func (v Value) ToAny() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return json.Number(v.text)
	case KindString:
		return v.text
	case KindSequence:
		out := make([]any, 0, len(v.items))
		for _, it := range v.items {
			out = append(out, it.ToAny())
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(v.members))
		for _, m := range v.members {
			out[m.Key] = m.Value.ToAny()
		}
		return out
	default:
		return nil
	}
}
