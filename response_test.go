package rdap_test

import (
	"context"
	"testing"

	rdap "github.com/reoring/rdap"
)

func TestError_ErrorCodeNumberOrString(t *testing.T) {
	for _, doc := range []string{
		`{"errorCode":418,"title":"Teapot"}`,
		`{"errorCode":"418","title":"Teapot"}`,
	} {
		e, err := rdap.ParseAs[rdap.ErrorResponse](context.Background(), rdap.JSONBytes([]byte(doc)))
		if err != nil {
			t.Fatalf("%s: %v", doc, err)
		}
		if e.ErrorCode != 418 || e.Title == nil || *e.Title != "Teapot" {
			t.Fatalf("%s: got %+v", doc, e)
		}
		out, _ := rdap.Marshal(e)
		if string(out) != `{"errorCode":418,"title":"Teapot"}` {
			t.Fatalf("encoded %s", out)
		}
	}
}

func TestError_ErrorCodeRejected(t *testing.T) {
	cases := []struct{ doc, code string }{
		{`{"errorCode":"teapot"}`, rdap.CodeInvalidValue},
		{`{"errorCode":"-1"}`, rdap.CodeInvalidValue},
		{`{"errorCode":-1}`, rdap.CodeInvalidValue},
		{`{"errorCode":-99999999999999999999}`, rdap.CodeInvalidValue},
		{`{"errorCode":4.5}`, rdap.CodeInvalidType},
		{`{"errorCode":65536}`, rdap.CodeOverflow},
		{`{"errorCode":"70000"}`, rdap.CodeOverflow},
		{`{"errorCode":true}`, rdap.CodeInvalidType},
		{`{"title":"no code"}`, rdap.CodeRequired},
	}
	for _, c := range cases {
		_, err := rdap.ParseAs[rdap.ErrorResponse](context.Background(), rdap.JSONBytes([]byte(c.doc)))
		iss, ok := rdap.AsIssues(err)
		if !ok || iss[0].Code != c.code || iss[0].Path != "/errorCode" {
			t.Fatalf("%s: want %s at /errorCode, got %v", c.doc, c.code, err)
		}
	}
	var e rdap.ErrorResponse
	if err := rdap.Unmarshal([]byte(`{"errorCode":65535}`), &e); err != nil || e.ErrorCode != 65535 {
		t.Fatalf("65535 should be accepted: %v", err)
	}
}

func TestHelp_NoticesAndDescriptionLookup(t *testing.T) {
	doc := `{"rdapConformance":["rdap_level_0"],"notices":[{"title":"Terms of Use","description":["Use at your own risk."]},{"description":["Untitled remark."]},{"title":"Empty"}]}`
	h, err := rdap.ParseAs[rdap.Help](context.Background(), rdap.JSONBytes([]byte(doc)))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if d, ok := rdap.DescriptionByTitle("terms of use", h.Notices); !ok || d[0] != "Use at your own risk." {
		t.Fatalf("lookup by title: %v %v", d, ok)
	}
	if d, ok := rdap.DescriptionByTitle("remarks", h.Notices); !ok || d[0] != "Untitled remark." {
		t.Fatalf("remarks pseudo-title: %v %v", d, ok)
	}
	if _, ok := rdap.DescriptionByTitle("empty", h.Notices); ok {
		t.Fatalf("entries without description must be skipped")
	}
	if _, ok := rdap.DescriptionByTitle("nothing", h.Notices); ok {
		t.Fatalf("unexpected match")
	}
	out, _ := rdap.Marshal(h)
	if string(out) != doc {
		t.Fatalf("round trip mismatch:\n got %s\nwant %s", out, doc)
	}
}

func TestSearchResults(t *testing.T) {
	doc := `{"rdapConformance":["rdap_level_0"],"entitySearchResults":[{"objectClassName":"entity","handle":"A"},{"handle":"B"}]}`
	res, err := rdap.ParseAs[rdap.EntitySearchResults](context.Background(), rdap.JSONBytes([]byte(doc)))
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if len(res.Results) != 2 || *res.Results[1].Handle != "B" {
		t.Fatalf("results = %+v", res.Results)
	}
	_, err = rdap.ParseAs[rdap.DomainSearchResults](context.Background(), rdap.JSONBytes([]byte(`{"notices":[]}`)))
	iss, ok := rdap.AsIssues(err)
	if !ok || iss[0].Code != rdap.CodeRequired || iss[0].Path != "/domainSearchResults" {
		t.Fatalf("want required, got %v", err)
	}
	ns, err := rdap.ParseAs[rdap.NameserverSearchResults](context.Background(), rdap.JSONBytes([]byte(`{"nameserverSearchResults":[{"ldhName":"ns1.example.cz"}]}`)))
	if err != nil || ns.Results[0].LDHName != "ns1.example.cz" {
		t.Fatalf("nameserver search: %+v %v", ns, err)
	}
	out, _ := rdap.Marshal(ns)
	if string(out) != `{"nameserverSearchResults":[{"objectClassName":"nameserver","ldhName":"ns1.example.cz"}]}` {
		t.Fatalf("got %s", out)
	}
	nets, err := rdap.ParseAs[rdap.NetworkSearchResults](context.Background(), rdap.JSONBytes([]byte(
		`{"arin_originas0_networkSearchResults":[{"handle":"N","startAddress":"192.0.2.0","endAddress":"192.0.2.255","ipVersion":"v4"}]}`)))
	if err != nil || len(nets.Results) != 1 {
		t.Fatalf("network search: %+v %v", nets, err)
	}
}
