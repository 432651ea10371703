// Package vocab implements the lookup shared by the open enumerations: a fixed table of
// canonical spellings matched case-insensitively, with anything else passed through.
package vocab

import "strings"

// Table maps raw wire strings onto canonical values of T.
type Table[T ~string] struct {
	exact  map[string]T
	folded map[string]T
}

// New builds a table from the canonical spellings plus extra aliases. Alias keys are
// matched after case folding, like the canonical ones.
func New[T ~string](canonical []T, aliases map[string]T) *Table[T] {
	t := &Table[T]{
		exact:  make(map[string]T, len(canonical)),
		folded: make(map[string]T, len(canonical)+len(aliases)),
	}
	for _, c := range canonical {
		t.exact[string(c)] = c
		t.folded[strings.ToLower(string(c))] = c
	}
	for k, c := range aliases {
		t.folded[strings.ToLower(k)] = c
	}
	return t
}

// Lookup returns the canonical value for raw. The untouched input is tried first so
// mixed-case canonical phrases match before folding; otherwise the lowercased form is
// used. ok is false when raw is outside the vocabulary.
func (t *Table[T]) Lookup(raw string) (T, bool) {
	if c, ok := t.exact[raw]; ok {
		return c, true
	}
	c, ok := t.folded[lower(raw)]
	return c, ok
}

// Normalize returns the canonical value for raw, or raw itself unchanged.
func (t *Table[T]) Normalize(raw string) T {
	if c, ok := t.Lookup(raw); ok {
		return c
	}
	return T(raw)
}

// Known reports whether v is one of the canonical values.
func (t *Table[T]) Known(v T) bool {
	_, ok := t.exact[string(v)]
	return ok
}

// lower avoids an allocation for input that is already lowercase.
func lower(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 || ('A' <= c && c <= 'Z') {
			return strings.ToLower(s)
		}
	}
	return s
}
