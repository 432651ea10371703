package rdap

import (
	"context"
	"errors"
	"io"

	"github.com/reoring/rdap/i18n"
	eng "github.com/reoring/rdap/internal/engine"
	"github.com/reoring/rdap/value"
)

// ParseValue tokenizes JSON from src into a generic value tree (see package value),
// enforcing the raw nesting, duplicate-key and size limits of opts.
func ParseValue(ctx context.Context, src Source, opts ...ParseOpt) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, singleIssue(CodeParseError, "nil source")
	}
	opt := resolveOpt(opts)
	var warn func(eng.SimpleIssue)
	if opt.Warn != nil {
		warn = func(si eng.SimpleIssue) {
			opt.Warn(Issue{Path: si.Path, Code: si.Code, Message: si.Message, Offset: src.Location()})
		}
	}
	enforced := eng.WrapWithEnforcement(engineTokenSource(src), eng.EnforceOptions{
		OnDuplicate: toEngineDup(opt.Strictness.OnDuplicateKey),
		MaxDepth:    opt.MaxJSONDepth,
		MaxBytes:    opt.MaxBytes,
		Warn:        warn,
	})
	v, err := eng.DecodeValue(enforced)
	if err != nil {
		return nil, toIssues(err, src.Location())
	}
	return v, nil
}

// ParseObject decodes a JSON document whose root is an RDAP object, selecting the
// record kind from objectClassName.
func ParseObject(ctx context.Context, src Source, opts ...ParseOpt) (Object, error) {
	v, err := ParseValue(ctx, src, opts...)
	if err != nil {
		return nil, err
	}
	return DecodeObject(ctx, v, opts...)
}

// DecodeObject decodes an already-parsed JSON tree into an RDAP object. v may be a
// tree from package value or one produced by encoding/json or go-json
// (map[string]any, []any, float64 or json.Number).
func DecodeObject(ctx context.Context, v any, opts ...ParseOpt) (Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d := newDecoder(ctx, opts)
	return d.object("", value.FromAny(v))
}

// ParseAs decodes a JSON document straight into record type T, for responses whose
// kind is known up front (a domain lookup, an error, a search result, ...).
//
//	dom, err := rdap.ParseAs[rdap.Domain](ctx, rdap.JSONBytes(body))
func ParseAs[T any, P interface {
	*T
	Record
}](ctx context.Context, src Source, opts ...ParseOpt) (*T, error) {
	v, err := ParseValue(ctx, src, opts...)
	if err != nil {
		return nil, err
	}
	return DecodeAs[T, P](ctx, v, opts...)
}

// DecodeAs is ParseAs for an already-parsed tree.
func DecodeAs[T any, P interface {
	*T
	Record
}](ctx context.Context, v any, opts ...ParseOpt) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := new(T)
	d := newDecoder(ctx, opts)
	if err := d.record("", value.FromAny(v), P(out)); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseReader reads a document from r and decodes it as an RDAP object. When
// MaxBytes is set the size cap is enforced up front, whatever the driver.
func ParseReader(ctx context.Context, r io.Reader, opts ...ParseOpt) (Object, error) {
	opt := resolveOpt(opts)
	if opt.MaxBytes > 0 {
		data, err := io.ReadAll(io.LimitReader(r, opt.MaxBytes+1))
		if err != nil {
			return nil, singleIssue(CodeParseError, err.Error())
		}
		if int64(len(data)) > opt.MaxBytes {
			return nil, singleIssue(CodeTruncated, "max bytes exceeded")
		}
		return ParseObject(ctx, JSONBytes(data), opts...)
	}
	return ParseObject(ctx, JSONReader(r), opts...)
}

// Unmarshal decodes data into r, which must be a pointer to a record type.
func Unmarshal(data []byte, r Record, opts ...ParseOpt) error {
	ctx := context.Background()
	if limit := resolveOpt(opts).MaxBytes; limit > 0 && int64(len(data)) > limit {
		return singleIssue(CodeTruncated, "max bytes exceeded")
	}
	v, err := ParseValue(ctx, JSONBytes(data), opts...)
	if err != nil {
		return err
	}
	return newDecoder(ctx, opts).record("", v, r)
}

// ---- helpers (error mapping) ----

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Error:
		return eng.DupError
	case Warn:
		return eng.DupWarn
	default:
		return eng.DupIgnore
	}
}

func toIssues(err error, offset int64) Issues {
	if err == nil {
		return nil
	}
	if ii, ok := AsIssues(err); ok {
		return ii
	}
	var ie eng.IssueError
	if errors.As(err, &ie) {
		return AppendIssues(nil, Issue{Code: ie.Code, Path: ie.Path, Message: i18n.T(ie.Code, nil), Hint: ie.Message, Offset: offset})
	}
	return AppendIssues(nil, Issue{Code: CodeParseError, Path: "/", Message: i18n.T(CodeParseError, nil), Hint: err.Error(), Cause: err, Offset: offset})
}

func singleIssue(code, hint string) Issues {
	return AppendIssues(nil, Issue{Code: code, Path: "/", Message: i18n.T(code, nil), Hint: hint, Offset: -1})
}
