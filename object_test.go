package rdap_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	rdap "github.com/reoring/rdap"
	"github.com/reoring/rdap/value"
)

func parseObject(t *testing.T, js string, opts ...rdap.ParseOpt) (rdap.Object, error) {
	t.Helper()
	return rdap.ParseObject(context.Background(), rdap.JSONBytes([]byte(js)), opts...)
}

func TestDispatch_AllClasses(t *testing.T) {
	cases := []struct {
		doc   string
		class rdap.ObjectClass
	}{
		{`{"objectClassName":"autnum","handle":"AS1","entities":[]}`, rdap.ClassAutNum},
		{`{"objectClassName":"domain","entities":[],"events":[]}`, rdap.ClassDomain},
		{`{"objectClassName":"entity"}`, rdap.ClassEntity},
		{`{"objectClassName":"fred_keyset","links":[],"handle":"KS","dns_keys":[]}`, rdap.ClassFredKeySet},
		{`{"objectClassName":"fredkeyset","links":[],"handle":"KS","dns_keys":[]}`, rdap.ClassFredKeySet},
		{`{"objectClassName":"fred_nsset","links":[],"handle":"NS","nameservers":[]}`, rdap.ClassFredNsSet},
		{`{"objectClassName":"ip network","handle":"N","startAddress":"192.0.2.0","endAddress":"192.0.2.255","ipVersion":"v4"}`, rdap.ClassIPNetwork},
		{`{"objectClassName":"IP Network","handle":"N","startAddress":"2001:db8::","endAddress":"2001:db8::ffff","ipVersion":"v6"}`, rdap.ClassIPNetwork},
		{`{"objectClassName":"Nameserver","ldhName":"ns1.example.com"}`, rdap.ClassNameserver},
		{`{"objectClassName":"ENTITY"}`, rdap.ClassEntity},
	}
	for _, c := range cases {
		obj, err := parseObject(t, c.doc)
		if err != nil {
			t.Fatalf("%s: %v", c.doc, err)
		}
		if obj.ObjectClassName() != c.class {
			t.Fatalf("%s: class %q", c.doc, obj.ObjectClassName())
		}
		enc := rdap.EncodeObject(obj)
		if keys := enc.Keys(); keys[0] != "objectClassName" {
			t.Fatalf("tag not first: %v", keys)
		}
		if tag, _ := enc.Get("objectClassName"); tag != string(c.class) {
			t.Fatalf("re-encoded tag %v, want %q", tag, c.class)
		}
	}
}

func TestDispatch_UnknownAndMissingTag(t *testing.T) {
	_, err := parseObject(t, `{"objectClassName":"ipnetwork","handle":"x"}`)
	iss, ok := rdap.AsIssues(err)
	if !ok || iss[0].Code != rdap.CodeDiscriminatorUnknown || iss[0].Path != "/objectClassName" {
		t.Fatalf("want discriminator_unknown, got %v", err)
	}
	if !strings.Contains(err.Error(), "ipnetwork") {
		t.Fatalf("error should name the tag: %v", err)
	}
	_, err = parseObject(t, `{"handle":"x"}`)
	if !rdap.HasCode(err, rdap.CodeDiscriminatorMissing) {
		t.Fatalf("want discriminator_missing, got %v", err)
	}
	_, err = parseObject(t, `{"objectClassName":7}`)
	if !rdap.HasCode(err, rdap.CodeInvalidType) {
		t.Fatalf("want invalid_type, got %v", err)
	}
	_, err = parseObject(t, `[1,2]`)
	if !rdap.HasCode(err, rdap.CodeInvalidType) {
		t.Fatalf("want invalid_type for array root, got %v", err)
	}
}

func TestDispatch_NestedUnknownTagFailsWholeDecode(t *testing.T) {
	doc := `{"objectClassName":"entity","entities":[{"objectClassName":"entity"},{"objectClassName":"registrar"}]}`
	obj, err := parseObject(t, doc)
	if obj != nil {
		t.Fatalf("no partial result expected")
	}
	iss, ok := rdap.AsIssues(err)
	if !ok || iss[0].Path != "/entities/1/objectClassName" {
		t.Fatalf("got %v", err)
	}
}

func nestedEntities(depth int) string {
	var b strings.Builder
	for i := 0; i < depth; i++ {
		if i > 0 {
			b.WriteString(`,"entities":[`)
		}
		fmt.Fprintf(&b, `{"objectClassName":"entity","handle":"E%d"`, i)
	}
	for i := 0; i < depth; i++ {
		b.WriteString("}")
		if i < depth-1 {
			b.WriteString("]")
		}
	}
	return b.String()
}

func TestDepth_WithinLimitDecodes(t *testing.T) {
	obj, err := parseObject(t, nestedEntities(rdap.DefaultMaxDepth))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	n := 0
	for e := obj.(*rdap.Entity); ; e = e.Entities[0].(*rdap.Entity) {
		n++
		if len(e.Entities) == 0 {
			break
		}
	}
	if n != rdap.DefaultMaxDepth {
		t.Fatalf("depth = %d", n)
	}
}

func TestDepth_ExceededFailsWithTooDeep(t *testing.T) {
	_, err := parseObject(t, nestedEntities(rdap.DefaultMaxDepth+1))
	if !rdap.HasCode(err, rdap.CodeTooDeep) {
		t.Fatalf("want too_deep, got %v", err)
	}
	_, err = parseObject(t, nestedEntities(4), rdap.ParseOpt{MaxDepth: 3})
	iss, ok := rdap.AsIssues(err)
	if !ok || iss[0].Code != rdap.CodeTooDeep || iss[0].Path != "/entities/0/entities/0/entities/0" {
		t.Fatalf("got %v", err)
	}
	if _, err := parseObject(t, nestedEntities(3), rdap.ParseOpt{MaxDepth: 3}); err != nil {
		t.Fatalf("depth 3 should pass: %v", err)
	}
}

func TestDepth_RawNestingBounded(t *testing.T) {
	doc := `{"objectClassName":"entity","x":` + strings.Repeat("[", 600) + strings.Repeat("]", 600) + `}`
	_, err := parseObject(t, doc)
	if !rdap.HasCode(err, rdap.CodeTooDeep) {
		t.Fatalf("want too_deep from the tokenizer, got %v", err)
	}
}

func TestUnknownKeys_StripByDefaultStrictOnRequest(t *testing.T) {
	doc := `{"objectClassName":"nameserver","ldhName":"ns1.example.cz","x_vendor":{"a":1}}`
	obj, err := parseObject(t, doc)
	if err != nil {
		t.Fatalf("strip: %v", err)
	}
	out, _ := rdap.Marshal(obj)
	if string(out) != `{"objectClassName":"nameserver","ldhName":"ns1.example.cz"}` {
		t.Fatalf("got %s", out)
	}
	_, err = parseObject(t, doc, rdap.ParseOpt{Unknown: rdap.UnknownStrict})
	iss, ok := rdap.AsIssues(err)
	if !ok || iss[0].Code != rdap.CodeUnknownKey || iss[0].Path != "/x_vendor" {
		t.Fatalf("strict: got %v", err)
	}
}

func TestRequiredAndTypeErrors(t *testing.T) {
	_, err := parseObject(t, `{"objectClassName":"nameserver"}`)
	iss, ok := rdap.AsIssues(err)
	if !ok || iss[0].Code != rdap.CodeRequired || iss[0].Path != "/ldhName" {
		t.Fatalf("got %v", err)
	}
	_, err = parseObject(t, `{"objectClassName":"nameserver","ldhName":null}`)
	if !rdap.HasCode(err, rdap.CodeInvalidType) {
		t.Fatalf("null required field: got %v", err)
	}
	_, err = parseObject(t, `{"objectClassName":"entity","handle":42}`)
	iss, ok = rdap.AsIssues(err)
	if !ok || iss[0].Code != rdap.CodeInvalidType || iss[0].Path != "/handle" {
		t.Fatalf("got %v", err)
	}
	obj, err := parseObject(t, `{"objectClassName":"entity","handle":null,"port43":null}`)
	if err != nil {
		t.Fatalf("null optional fields are absent: %v", err)
	}
	if e := obj.(*rdap.Entity); e.Handle != nil || e.Port43 != nil {
		t.Fatalf("expected nil optionals: %+v", e)
	}
}

func TestDecodeObject_FromForeignTree(t *testing.T) {
	tree := map[string]any{
		"objectClassName": "autnum",
		"handle":          "AS64496",
		"startAutnum":     float64(64496),
		"endAutnum":       float64(64496),
		"entities":        []any{},
		"country":         "nl",
	}
	obj, err := rdap.DecodeObject(context.Background(), tree)
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	a := obj.(*rdap.AutNum)
	if a.StartAutnum == nil || *a.StartAutnum != 64496 || a.Country == nil || a.Country.String() != "NL" {
		t.Fatalf("unexpected autnum: %+v", a)
	}
	enc := rdap.Encode(a)
	if v, _ := enc.Get("startAutnum"); v != value.Number("64496") {
		t.Fatalf("startAutnum = %#v", v)
	}
	if v, _ := enc.Get("entities"); v == nil {
		t.Fatalf("required entities must be written")
	}
}

func TestDecodeAs_MismatchedClass(t *testing.T) {
	_, err := rdap.ParseAs[rdap.Domain](context.Background(), rdap.JSONBytes([]byte(`{"objectClassName":"entity","entities":[],"events":[]}`)))
	if !rdap.HasCode(err, rdap.CodeInvalidValue) {
		t.Fatalf("want invalid_value, got %v", err)
	}
	_, err = rdap.ParseAs[rdap.Domain](context.Background(), rdap.JSONBytes([]byte(`{"objectClassName":7,"entities":[],"events":[]}`)))
	iss, ok := rdap.AsIssues(err)
	if !ok || iss[0].Code != rdap.CodeInvalidType || iss[0].Path != "/objectClassName" {
		t.Fatalf("non-string tag: want invalid_type at /objectClassName, got %v", err)
	}
	d, err := rdap.ParseAs[rdap.Domain](context.Background(), rdap.JSONBytes([]byte(`{"entities":[],"events":[],"ldhName":"example.cz"}`)))
	if err != nil || d.LDHName == nil || *d.LDHName != "example.cz" {
		t.Fatalf("untagged domain: %+v %v", d, err)
	}
}

func TestContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := rdap.ParseObject(ctx, rdap.JSONBytes([]byte(`{"objectClassName":"entity"}`))); err == nil {
		t.Fatalf("expected context error")
	}
}
