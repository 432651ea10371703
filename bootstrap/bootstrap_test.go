package bootstrap_test

import (
	"context"
	"net/netip"
	"testing"

	rdap "github.com/reoring/rdap"
	"github.com/reoring/rdap/bootstrap"
)

const dnsRegistry = `{
  "description": "RDAP bootstrap file for Domain Name System registrations",
  "publication": "2024-01-09T19:00:01Z",
  "services": [
    [["com", "net"], ["https://rdap.verisign.com/com/v1/"]],
    [["cz"], ["https://rdap.nic.cz/"]],
    [["co.cz"], ["https://rdap.example.cz/"]]
  ],
  "version": "1.0"
}`

func TestParseRFC7484_Lookup(t *testing.T) {
	reg, err := bootstrap.ParseRFC7484(context.Background(), []byte(dnsRegistry))
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if reg.Version != "1.0" || reg.Description == nil || len(reg.Services) != 3 {
		t.Fatalf("unexpected registry: %+v", reg)
	}
	if got := reg.Publication.Format("2006-01-02T15:04:05-07:00"); got != "2024-01-09T19:00:01+00:00" {
		t.Fatalf("publication = %s", got)
	}
	if s, ok := reg.Lookup("NET"); !ok || s[0] != "https://rdap.verisign.com/com/v1/" {
		t.Fatalf("lookup net: %v %v", s, ok)
	}
	if s, ok := reg.LookupDomain("www.nic.co.cz."); !ok || s[0] != "https://rdap.example.cz/" {
		t.Fatalf("lookup domain: %v %v", s, ok)
	}
	if _, ok := reg.LookupDomain("example.org"); ok {
		t.Fatalf("org should not resolve")
	}
}

func TestParseRFC7484_IPAndASN(t *testing.T) {
	doc := `{"publication":"2024-01-09T19:00:01Z","version":"1.0","services":[
	  [["192.0.0.0/8"],["https://rdap.arin.net/registry/"]],
	  [["192.0.2.0/24"],["https://rdap.example.net/"]],
	  [["64496-64511","65550"],["https://rdap.example.org/"]]
	]}`
	reg, err := bootstrap.ParseRFC7484(context.Background(), []byte(doc))
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if s, ok := reg.LookupIP(netip.MustParseAddr("192.0.2.7")); !ok || s[0] != "https://rdap.example.net/" {
		t.Fatalf("most specific prefix not chosen: %v %v", s, ok)
	}
	if s, ok := reg.LookupIP(netip.MustParseAddr("192.10.0.1")); !ok || s[0] != "https://rdap.arin.net/registry/" {
		t.Fatalf("lookup ip: %v %v", s, ok)
	}
	if _, ok := reg.LookupASN(64500); !ok {
		t.Fatalf("asn in range not found")
	}
	if _, ok := reg.LookupASN(65550); !ok {
		t.Fatalf("single asn not found")
	}
	if _, ok := reg.LookupASN(65551); ok {
		t.Fatalf("asn outside ranges found")
	}
}

func TestParseRFC8521_ThreeTuples(t *testing.T) {
	doc := `{"publication":"2024-01-09T19:00:01Z","version":"1.0","services":[
	  [["contact@example.com"],["ARIN"],["https://rdap.arin.net/registry/"]]
	]}`
	reg, err := bootstrap.ParseRFC8521(context.Background(), []byte(doc))
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if c := reg.Services[0].Contacts(); len(c) != 1 || c[0] != "contact@example.com" {
		t.Fatalf("contacts = %v", c)
	}
	if s, ok := reg.Lookup("arin"); !ok || len(s) != 1 {
		t.Fatalf("lookup tag: %v %v", s, ok)
	}
}

func TestParse_ArityMismatch(t *testing.T) {
	doc := `{"publication":"2024-01-09T19:00:01Z","version":"1.0","services":[[["com"],["https://x/"]]]}`
	_, err := bootstrap.ParseRFC8521(context.Background(), []byte(doc))
	iss, ok := rdap.AsIssues(err)
	if !ok || iss[0].Code != rdap.CodeInvalidLength || iss[0].Path != "/services/0" {
		t.Fatalf("want invalid_length at /services/0, got %v", err)
	}
}

func TestParse_BadPublication(t *testing.T) {
	doc := `{"publication":"yesterday","version":"1.0","services":[]}`
	_, err := bootstrap.ParseRFC7484(context.Background(), []byte(doc))
	if !rdap.HasCode(err, rdap.CodeInvalidFormat) {
		t.Fatalf("want invalid_format, got %v", err)
	}
}
