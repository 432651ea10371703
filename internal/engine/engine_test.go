package engine

import (
	"errors"
	"io"
	"testing"

	"github.com/reoring/rdap/value"
)

// tokens replays a fixed token list; each token advances the offset by one.
type tokens struct {
	toks []Token
	pos  int
}

func (s *tokens) NextToken() (Token, error) {
	if s.pos >= len(s.toks) {
		return Token{}, io.EOF
	}
	t := s.toks[s.pos]
	s.pos++
	return t, nil
}

func (s *tokens) Location() int64 { return int64(s.pos) }

func key(k string) Token    { return Token{Kind: KindKey, String: k} }
func str(v string) Token    { return Token{Kind: KindString, String: v} }
func numTok(n string) Token { return Token{Kind: KindNumber, Number: n} }

var (
	beginObj = Token{Kind: KindBeginObject}
	endObj   = Token{Kind: KindEndObject}
	beginArr = Token{Kind: KindBeginArray}
	endArr   = Token{Kind: KindEndArray}
)

func TestDecodeValue_OrderAndLiterals(t *testing.T) {
	src := &tokens{toks: []Token{
		beginObj,
		key("z"), numTok("1.50"),
		key("a"), beginArr, endArr,
		key("z"), str("again"),
		endObj,
	}}
	v, err := DecodeValue(src)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	o := v.(*value.Object)
	if got := o.Keys(); len(got) != 2 || got[0] != "z" || got[1] != "a" {
		t.Fatalf("keys = %v", got)
	}
	if z, _ := o.Get("z"); z != "again" {
		t.Fatalf("z = %v", z)
	}
	a, _ := o.Get("a")
	if arr, ok := a.([]any); !ok || arr == nil || len(arr) != 0 {
		t.Fatalf("a = %#v", a)
	}
}

func TestDecodeValue_TrailingAndTruncated(t *testing.T) {
	_, err := DecodeValue(&tokens{toks: []Token{str("x"), str("y")}})
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != "parse_error" {
		t.Fatalf("want parse_error, got %v", err)
	}
	_, err = DecodeValue(&tokens{toks: []Token{beginObj, key("a")}})
	if err != io.ErrUnexpectedEOF {
		t.Fatalf("want unexpected EOF, got %v", err)
	}
	_, err = DecodeValue(&tokens{})
	if err != io.ErrUnexpectedEOF {
		t.Fatalf("empty input: %v", err)
	}
}

func TestEnforce_DuplicateKey(t *testing.T) {
	toks := []Token{beginObj, key("a"), beginObj, key("b"), str("1"), key("b"), str("2"), endObj, endObj}

	_, err := DecodeValue(WrapWithEnforcement(&tokens{toks: toks}, EnforceOptions{OnDuplicate: DupError}))
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != "duplicate_key" || ie.Path != "/a/b" {
		t.Fatalf("got %v", err)
	}

	var warned []SimpleIssue
	_, err = DecodeValue(WrapWithEnforcement(&tokens{toks: toks}, EnforceOptions{
		OnDuplicate: DupWarn,
		Warn:        func(si SimpleIssue) { warned = append(warned, si) },
	}))
	if err != nil || len(warned) != 1 || warned[0].Path != "/a/b" {
		t.Fatalf("err=%v warned=%v", err, warned)
	}
}

func TestEnforce_DepthAndBytes(t *testing.T) {
	toks := []Token{beginArr, beginArr, beginArr, endArr, endArr, endArr}
	_, err := DecodeValue(WrapWithEnforcement(&tokens{toks: toks}, EnforceOptions{MaxDepth: 2}))
	var ie IssueError
	if !errors.As(err, &ie) || ie.Code != "too_deep" || ie.Path != "/0/0" {
		t.Fatalf("got %v", err)
	}
	if _, err := DecodeValue(WrapWithEnforcement(&tokens{toks: toks}, EnforceOptions{MaxDepth: 3})); err != nil {
		t.Fatalf("depth 3: %v", err)
	}
	_, err = DecodeValue(WrapWithEnforcement(&tokens{toks: toks}, EnforceOptions{MaxBytes: 4}))
	if !errors.As(err, &ie) || ie.Code != "truncated" {
		t.Fatalf("want truncated, got %v", err)
	}
}

func TestJoinPointer_Escapes(t *testing.T) {
	if got := JoinPointer("/a", "b/c~d"); got != "/a/b~1c~0d" {
		t.Fatalf("got %q", got)
	}
	if got := JoinPointer("", "x"); got != "/x" {
		t.Fatalf("got %q", got)
	}
}
