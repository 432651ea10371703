// Package value holds the generic JSON tree exchanged with the rdap codecs.
//
// Decoded documents are represented with a small closed set of Go types:
//
//	nil        JSON null
//	bool       JSON true/false
//	Number     JSON number, kept as its literal text
//	string     JSON string
//	[]any      JSON array
//	*Object    JSON object with insertion-ordered keys
//
// Keeping number literals and key order intact lets a decode/encode cycle reproduce
// the input bytes for canonical documents.
package value

import (
	"encoding/json"
	"sort"
	"strconv"
)

// Number is a JSON number literal.
type Number string

// String returns the literal text.
func (n Number) String() string { return string(n) }

// Int64 parses the literal as a base-10 integer.
func (n Number) Int64() (int64, error) { return strconv.ParseInt(string(n), 10, 64) }

// Uint64 parses the literal as a base-10 unsigned integer.
func (n Number) Uint64() (uint64, error) { return strconv.ParseUint(string(n), 10, 64) }

// Float64 parses the literal as a float.
func (n Number) Float64() (float64, error) { return strconv.ParseFloat(string(n), 64) }

// Object is a JSON object that remembers the order in which keys were first set.
// The zero value is an empty object ready to use.
type Object struct {
	keys []string
	vals map[string]any
}

// NewObject returns an empty object with room for n keys.
func NewObject(n int) *Object {
	return &Object{keys: make([]string, 0, n), vals: make(map[string]any, n)}
}

// Len reports the number of keys.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns the keys in insertion order. The slice is a copy.
func (o *Object) Keys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	if o == nil {
		return nil, false
	}
	v, ok := o.vals[key]
	return v, ok
}

// Has reports whether key is present (including an explicit null).
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set stores v under key. A new key is appended; an existing key keeps its position.
func (o *Object) Set(key string, v any) {
	if o.vals == nil {
		o.vals = make(map[string]any)
	}
	if _, ok := o.vals[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.vals[key] = v
}

// Range calls fn for each key/value pair in order until fn returns false.
func (o *Object) Range(fn func(key string, v any) bool) {
	if o == nil {
		return
	}
	for _, k := range o.keys {
		if !fn(k, o.vals[k]) {
			return
		}
	}
}

// MarshalJSON encodes the object preserving key order.
func (o *Object) MarshalJSON() ([]byte, error) { return Marshal(o) }

// FromAny converts a tree produced by another JSON library into the canonical
// representation. map[string]any keys are sorted because their order is already lost.
// Values of unsupported types are returned unchanged.
func FromAny(v any) any {
	switch t := v.(type) {
	case nil, bool, string, Number:
		return t
	case *Object:
		return t
	case json.Number:
		return Number(t.String())
	case float64:
		return Number(strconv.FormatFloat(t, 'g', -1, 64))
	case float32:
		return Number(strconv.FormatFloat(float64(t), 'g', -1, 32))
	case int:
		return Number(strconv.FormatInt(int64(t), 10))
	case int64:
		return Number(strconv.FormatInt(t, 10))
	case int32:
		return Number(strconv.FormatInt(int64(t), 10))
	case uint64:
		return Number(strconv.FormatUint(t, 10))
	case uint32:
		return Number(strconv.FormatUint(uint64(t), 10))
	case uint16:
		return Number(strconv.FormatUint(uint64(t), 10))
	case uint8:
		return Number(strconv.FormatUint(uint64(t), 10))
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = FromAny(e)
		}
		return out
	case []string:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = e
		}
		return out
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		o := NewObject(len(keys))
		for _, k := range keys {
			o.Set(k, FromAny(t[k]))
		}
		return o
	default:
		return v
	}
}
