package rdap_test

import (
	"bytes"
	"context"
	"testing"

	rdap "github.com/reoring/rdap"
	"github.com/reoring/rdap/value"
)

func TestParseValue_DuplicateKey_Error(t *testing.T) {
	jsb := []byte(`{"a":1,"a":2}`)
	opt := rdap.ParseOpt{Strictness: rdap.Strictness{OnDuplicateKey: rdap.Error}}
	_, err := rdap.ParseValue(context.Background(), rdap.JSONBytes(jsb), opt)
	if err == nil {
		t.Fatalf("expected error for duplicate key")
	}
	if iss, ok := rdap.AsIssues(err); ok {
		if len(iss) == 0 || iss[0].Code != rdap.CodeDuplicateKey {
			t.Fatalf("expected duplicate_key issue, got: %v", iss)
		} else if iss[0].Path != "/a" {
			t.Fatalf("expected path=/a, got: %s", iss[0].Path)
		}
	} else {
		t.Fatalf("expected Issues error, got: %v", err)
	}
}

func TestParseValue_DuplicateKey_NestedPath(t *testing.T) {
	jsb := []byte(`{"entities":[{"handle":"a","handle":"b"}]}`)
	opt := rdap.ParseOpt{Strictness: rdap.Strictness{OnDuplicateKey: rdap.Error}}
	_, err := rdap.ParseValue(context.Background(), rdap.JSONBytes(jsb), opt)
	iss, ok := rdap.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected Issues, got: %v", err)
	}
	if iss[0].Path != "/entities/0/handle" {
		t.Fatalf("expected path=/entities/0/handle, got: %s", iss[0].Path)
	}
}

func TestParseValue_DuplicateKey_WarnKeepsLast(t *testing.T) {
	var warned []rdap.Issue
	opt := rdap.ParseOpt{
		Strictness: rdap.Strictness{OnDuplicateKey: rdap.Warn},
		Warn:       func(is rdap.Issue) { warned = append(warned, is) },
	}
	v, err := rdap.ParseValue(context.Background(), rdap.JSONBytes([]byte(`{"a":1,"a":2}`)), opt)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(warned) != 1 || warned[0].Code != rdap.CodeDuplicateKey {
		t.Fatalf("warnings = %v", warned)
	}
	if got, _ := v.(*value.Object).Get("a"); got != value.Number("2") {
		t.Fatalf("a = %v", got)
	}
}

func TestParseValue_MaxJSONDepth_Exceeded(t *testing.T) {
	// depth = 3 for { a: { b: { c: 1 } } }
	jsb := []byte(`{"a":{"b":{"c":1}}}`)
	opt := rdap.ParseOpt{MaxJSONDepth: 2}
	_, err := rdap.ParseValue(context.Background(), rdap.JSONBytes(jsb), opt)
	if err == nil {
		t.Fatalf("expected error for max depth exceeded")
	}
	iss, ok := rdap.AsIssues(err)
	if !ok || iss[0].Code != rdap.CodeTooDeep || iss[0].Path != "/a/b" {
		t.Fatalf("expected too_deep at /a/b, got: %v", err)
	}
}

func TestParseReader_MaxBytes_Exceeded(t *testing.T) {
	data := append([]byte(`{"objectClassName":"entity"}`), bytes.Repeat([]byte(" "), 1024)...)
	opt := rdap.ParseOpt{MaxBytes: 64}
	_, err := rdap.ParseReader(context.Background(), bytes.NewReader(data), opt)
	iss, ok := rdap.AsIssues(err)
	if !ok || iss[0].Code != rdap.CodeTruncated {
		t.Fatalf("expected truncated issue, got: %v", err)
	}
	if iss[0].Path != "" && iss[0].Path != "/" {
		t.Fatalf("expected truncated path empty or root, got: %s", iss[0].Path)
	}
	var e rdap.Entity
	if err := rdap.Unmarshal(data, &e, opt); !rdap.HasCode(err, rdap.CodeTruncated) {
		t.Fatalf("Unmarshal: expected truncated, got %v", err)
	}
}

func TestParseValue_TrailingDataAndSyntax(t *testing.T) {
	for _, in := range []string{`{"a":1} {"b":2}`, `{"a":}`, `{"a":1`, ``} {
		_, err := rdap.ParseValue(context.Background(), rdap.JSONBytes([]byte(in)))
		if !rdap.HasCode(err, rdap.CodeParseError) {
			t.Fatalf("%q: want parse_error, got %v", in, err)
		}
	}
}

func TestJSONDrivers_AgreeOnOutput(t *testing.T) {
	doc := []byte(`{"objectClassName":"ip network","handle":"NET-192-0-2-0-1","startAddress":"192.0.2.0","endAddress":"192.0.2.255","ipVersion":"v4","cidr0_cidrs":[{"v4prefix":"192.0.2.0","length":24}],"arin_originas0_originautnums":[64496,64497]}`)
	defer rdap.UseDefaultJSONDriver()
	var outs []string
	for _, d := range []rdap.JSONDriver{rdap.GoJSONDriver(), rdap.StdJSONDriver()} {
		rdap.SetJSONDriver(d)
		if rdap.CurrentJSONDriver().Name() != d.Name() {
			t.Fatalf("driver not switched to %s", d.Name())
		}
		obj, err := rdap.ParseObject(context.Background(), rdap.JSONBytes(doc))
		if err != nil {
			t.Fatalf("%s: %v", d.Name(), err)
		}
		out, err := rdap.Marshal(obj)
		if err != nil {
			t.Fatalf("%s: marshal: %v", d.Name(), err)
		}
		outs = append(outs, string(out))
	}
	if outs[0] != outs[1] || outs[0] != string(doc) {
		t.Fatalf("drivers disagree:\n%s\n%s", outs[0], outs[1])
	}
}
