package rdap

import (
	"strconv"

	"github.com/reoring/rdap/value"
)

// Encoding helpers. Optional members are written only when present; a nil slice is
// absent, an empty one is written as [].

func putStr(o *value.Object, key string, s *string) {
	if s != nil {
		o.Set(key, *s)
	}
}

func putStrs(o *value.Object, key string, ss []string, required bool) {
	if ss == nil && !required {
		return
	}
	arr := make([]any, len(ss))
	for i, s := range ss {
		arr[i] = s
	}
	o.Set(key, arr)
}

func putBool(o *value.Object, key string, b *bool) {
	if b != nil {
		o.Set(key, *b)
	}
}

func putUint[T ~uint8 | ~uint16 | ~uint32](o *value.Object, key string, n *T) {
	if n != nil {
		o.Set(key, num(*n))
	}
}

func num[T ~uint8 | ~uint16 | ~uint32](n T) value.Number {
	return value.Number(strconv.FormatUint(uint64(n), 10))
}

func putList[T any, P interface {
	*T
	Record
}](o *value.Object, key string, xs []T, required bool) {
	if xs == nil && !required {
		return
	}
	arr := make([]any, len(xs))
	for i := range xs {
		arr[i] = Encode(P(&xs[i]))
	}
	o.Set(key, arr)
}

func putObjects(o *value.Object, key string, xs []Object, required bool) {
	if xs == nil && !required {
		return
	}
	arr := make([]any, len(xs))
	for i, x := range xs {
		arr[i] = Encode(x)
	}
	o.Set(key, arr)
}

func putObject(o *value.Object, key string, x Object) {
	if x != nil {
		o.Set(key, Encode(x))
	}
}
