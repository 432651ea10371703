package rdap

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
	"time"

	"github.com/reoring/rdap/i18n"
	eng "github.com/reoring/rdap/internal/engine"
	"github.com/reoring/rdap/value"
)

const discriminatorKey = "objectClassName"

// decoder carries per-call state. It is never shared between calls.
type decoder struct {
	ctx   context.Context
	opt   ParseOpt
	depth int
}

func newDecoder(ctx context.Context, opts []ParseOpt) *decoder {
	return &decoder{ctx: ctx, opt: resolveOpt(opts)}
}

func issueAt(path, code, hint string, cause error) Issues {
	if path == "" {
		path = "/"
	}
	return Issues{{Path: path, Code: code, Message: i18n.T(code, nil), Hint: hint, Cause: cause, Offset: -1}}
}

// record decodes v into r. Object kinds count towards MaxDepth and have their
// objectClassName, when present, checked against the expected kind.
func (d *decoder) record(path string, v any, r Record) error {
	if err := d.ctx.Err(); err != nil {
		return err
	}
	f, err := d.open(path, v)
	if err != nil {
		return err
	}
	if obj, ok := r.(Object); ok {
		d.depth++
		defer func() { d.depth-- }()
		if d.depth > d.opt.MaxDepth {
			return issueAt(path, CodeTooDeep, fmt.Sprintf("objects nested deeper than %d", d.opt.MaxDepth), nil)
		}
		if raw, ok := f.obj.Get(discriminatorKey); ok && raw != nil {
			tag, isStr := raw.(string)
			if !isStr {
				return issueAt(f.at(discriminatorKey), CodeInvalidType, "expected string, got "+describe(raw), nil)
			}
			cls, known := lookupClass(tag)
			if !known {
				return issueAt(f.at(discriminatorKey), CodeDiscriminatorUnknown, fmt.Sprintf("unknown object class %q", tag), nil)
			}
			if cls != obj.ObjectClassName() {
				return issueAt(f.at(discriminatorKey), CodeInvalidValue,
					fmt.Sprintf("expected %q, got %q", obj.ObjectClassName(), tag), nil)
			}
		}
	}
	if err := r.decode(f); err != nil {
		return err
	}
	return f.finish()
}

func (d *decoder) open(path string, v any) (*fields, error) {
	o, ok := v.(*value.Object)
	if !ok || o == nil {
		return nil, issueAt(path, CodeInvalidType, "expected object, got "+describe(v), nil)
	}
	f := &fields{d: d, path: path, obj: o}
	if d.opt.Unknown == UnknownStrict {
		f.used = map[string]struct{}{discriminatorKey: {}}
	}
	return f, nil
}

// fields is a cursor over one JSON object being decoded into a record.
type fields struct {
	d    *decoder
	path string
	obj  *value.Object
	used map[string]struct{} // nil unless UnknownStrict
}

func (f *fields) at(key string) string { return eng.JoinPointer(f.path, key) }

// get returns the member under key; JSON null counts as absent.
func (f *fields) get(key string) (any, bool) {
	if f.used != nil {
		f.used[key] = struct{}{}
	}
	v, ok := f.obj.Get(key)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// need returns a required member.
func (f *fields) need(key string) (any, error) {
	if f.used != nil {
		f.used[key] = struct{}{}
	}
	v, ok := f.obj.Get(key)
	if !ok {
		return nil, issueAt(f.at(key), CodeRequired, fmt.Sprintf("missing field %q", key), nil)
	}
	if v == nil {
		return nil, issueAt(f.at(key), CodeInvalidType, fmt.Sprintf("field %q must not be null", key), nil)
	}
	return v, nil
}

func (f *fields) finish() error {
	if f.used == nil {
		return nil
	}
	for _, k := range f.obj.Keys() {
		if _, ok := f.used[k]; !ok {
			return issueAt(f.at(k), CodeUnknownKey, fmt.Sprintf("unknown field %q", k), nil)
		}
	}
	return nil
}

func (f *fields) str(key string) (string, error) {
	v, err := f.need(key)
	if err != nil {
		return "", err
	}
	return asString(f.at(key), v)
}

func (f *fields) optStr(key string) (*string, error) {
	v, ok := f.get(key)
	if !ok {
		return nil, nil
	}
	s, err := asString(f.at(key), v)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (f *fields) optBool(key string) (*bool, error) {
	v, ok := f.get(key)
	if !ok {
		return nil, nil
	}
	b, ok := v.(bool)
	if !ok {
		return nil, issueAt(f.at(key), CodeInvalidType, "expected boolean, got "+describe(v), nil)
	}
	return &b, nil
}

// strs decodes an optional array of strings. Absent yields nil, [] yields an empty
// non-nil slice so that re-encoding keeps it.
func (f *fields) strs(key string) ([]string, error) {
	return listOf(f, key, false, func(_ *decoder, path string, v any) (string, error) {
		return asString(path, v)
	})
}

func (f *fields) addr(key string) (netip.Addr, error) {
	v, err := f.need(key)
	if err != nil {
		return netip.Addr{}, err
	}
	return asAddr(f.at(key), v)
}

func (f *fields) optAddr(key string) (*netip.Addr, error) {
	v, ok := f.get(key)
	if !ok {
		return nil, nil
	}
	a, err := asAddr(f.at(key), v)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (f *fields) optCountry(key string) (*CountryCode, error) {
	v, ok := f.get(key)
	if !ok {
		return nil, nil
	}
	s, err := asString(f.at(key), v)
	if err != nil {
		return nil, err
	}
	cc, err := countryCodec.Decode(f.d.ctx, s)
	if err != nil {
		return nil, reroot(err, f.at(key))
	}
	return &cc, nil
}

func (f *fields) timestamp(key string) (time.Time, error) {
	v, err := f.need(key)
	if err != nil {
		return time.Time{}, err
	}
	s, err := asString(f.at(key), v)
	if err != nil {
		return time.Time{}, err
	}
	t, err := timestampCodec.Decode(f.d.ctx, s)
	if err != nil {
		return time.Time{}, reroot(err, f.at(key))
	}
	return t, nil
}

// object decodes a single nested member through the dispatcher.
func (f *fields) object(key string) (Object, error) {
	v, ok := f.get(key)
	if !ok {
		return nil, nil
	}
	return f.d.object(f.at(key), v)
}

// objects decodes an array member through the dispatcher.
func (f *fields) objects(key string, required bool) ([]Object, error) {
	return listOf(f, key, required, func(d *decoder, path string, v any) (Object, error) {
		return d.object(path, v)
	})
}

func reqUint[T ~uint8 | ~uint16 | ~uint32](f *fields, key string) (T, error) {
	v, err := f.need(key)
	if err != nil {
		return 0, err
	}
	return asUint[T](f.at(key), v)
}

func optUint[T ~uint8 | ~uint16 | ~uint32](f *fields, key string) (*T, error) {
	v, ok := f.get(key)
	if !ok {
		return nil, nil
	}
	n, err := asUint[T](f.at(key), v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// listOf decodes an array member element by element. A missing optional member
// yields nil; a present empty array yields a non-nil empty slice.
func listOf[T any](f *fields, key string, required bool, dec func(d *decoder, path string, v any) (T, error)) ([]T, error) {
	var (
		v   any
		ok  bool
		err error
	)
	if required {
		v, err = f.need(key)
		if err != nil {
			return nil, err
		}
	} else if v, ok = f.get(key); !ok {
		return nil, nil
	}
	arr, isArr := v.([]any)
	if !isArr {
		return nil, issueAt(f.at(key), CodeInvalidType, "expected array, got "+describe(v), nil)
	}
	out := make([]T, 0, len(arr))
	base := f.at(key)
	for i, e := range arr {
		x, err := dec(f.d, eng.JoinPointer(base, strconv.Itoa(i)), e)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, nil
}

// records decodes an array member of plain (non-dispatched) records.
func records[T any, P interface {
	*T
	Record
}](f *fields, key string, required bool) ([]T, error) {
	return listOf(f, key, required, func(d *decoder, path string, v any) (T, error) {
		var x T
		err := d.record(path, v, P(&x))
		return x, err
	})
}

// one decodes an optional nested record.
func one[T any, P interface {
	*T
	Record
}](f *fields, key string) (*T, error) {
	v, ok := f.get(key)
	if !ok {
		return nil, nil
	}
	x := new(T)
	if err := f.d.record(f.at(key), v, P(x)); err != nil {
		return nil, err
	}
	return x, nil
}

func asString(path string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", issueAt(path, CodeInvalidType, "expected string, got "+describe(v), nil)
	}
	return s, nil
}

func asUint[T ~uint8 | ~uint16 | ~uint32](path string, v any) (T, error) {
	n, ok := v.(value.Number)
	if !ok {
		return 0, issueAt(path, CodeInvalidType, "expected unsigned integer, got "+describe(v), nil)
	}
	u, err := n.Uint64()
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, issueAt(path, CodeOverflow, fmt.Sprintf("%s is out of range", n), err)
		}
		if i, ierr := n.Int64(); ierr == nil || errors.Is(ierr, strconv.ErrRange) {
			if ierr == nil && i == 0 {
				return 0, nil
			}
			return 0, issueAt(path, CodeInvalidValue, fmt.Sprintf("%s is negative", n), err)
		}
		return 0, issueAt(path, CodeInvalidType, fmt.Sprintf("expected unsigned integer, got %s", n), err)
	}
	if limit := uint64(^T(0)); u > limit {
		return 0, issueAt(path, CodeOverflow, fmt.Sprintf("%d exceeds %d", u, limit), nil)
	}
	return T(u), nil
}

func asAddr(path string, v any) (netip.Addr, error) {
	s, err := asString(path, v)
	if err != nil {
		return netip.Addr{}, err
	}
	a, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return netip.Addr{}, issueAt(path, CodeInvalidValue, fmt.Sprintf("invalid IP address %q", s), err)
	}
	return a, nil
}

// reroot moves issues produced by a scalar codec (rooted at "/") under path.
func reroot(err error, path string) error {
	iss, ok := AsIssues(err)
	if !ok {
		return issueAt(path, CodeInvalidValue, err.Error(), err)
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		if it.Path == "" || it.Path == "/" {
			it.Path = path
		} else {
			it.Path = path + it.Path
		}
		out[i] = it
	}
	return out
}

func describe(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case value.Number:
		return "number " + string(t)
	case string:
		return fmt.Sprintf("string %q", t)
	case []any:
		return "array"
	case *value.Object:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func quote(s string) string { return strconv.Quote(s) }
