package benchmarks_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"testing"

	rdap "github.com/reoring/rdap"
)

// generateDomainSearch returns a domainSearchResults document with n domains, each
// carrying a registrant entity with a vCard, two nameservers and a couple of events.
func generateDomainSearch(n int) []byte {
	var buf bytes.Buffer
	buf.Grow(n * 900)
	buf.WriteString(`{"rdapConformance":["rdap_level_0"],"domainSearchResults":[`)
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `{"objectClassName":"domain","handle":"D%d","ldhName":"example%d.com",`, i, i)
		fmt.Fprintf(&buf, `"entities":[{"objectClassName":"entity","handle":"R%d","roles":["registrant"],`, i)
		fmt.Fprintf(&buf, `"vcardArray":["vcard",[["version",{},"text","4.0"],["fn",{},"text","Registrant %d"],`, i)
		buf.WriteString(`["adr",{"cc":"US"},"text",["","","","","","",""]],["email",{},"text","hostmaster@example.com"]]]}],`)
		fmt.Fprintf(&buf, `"nameservers":[{"objectClassName":"nameserver","ldhName":"ns1.example%d.com"},`, i)
		fmt.Fprintf(&buf, `{"objectClassName":"nameserver","ldhName":"ns2.example%d.com","ipAddresses":{"v4":["192.0.2.%d"]}}],`, i, i%256)
		buf.WriteString(`"events":[{"eventAction":"registration","eventDate":"2001-02-03T04:05:06Z"},`)
		buf.WriteString(`{"eventAction":"last changed","eventDate":"2020-02-03 04:05:06"}],`)
		buf.WriteString(`"status":["client transfer prohibited","active"]}`)
	}
	buf.WriteString(`]}`)
	return buf.Bytes()
}

func benchmarkDriver(b *testing.B, drv rdap.JSONDriver, n int) {
	data := generateDomainSearch(n)
	ctx := context.Background()
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := rdap.ParseAs[rdap.DomainSearchResults](ctx, drv.NewBytes(data))
		if err != nil {
			b.Fatalf("parse: %v", err)
		}
		if len(res.Results) != n {
			b.Fatalf("results = %d", len(res.Results))
		}
	}
}

func BenchmarkParse_GoJSON_100(b *testing.B)  { benchmarkDriver(b, rdap.GoJSONDriver(), 100) }
func BenchmarkParse_StdJSON_100(b *testing.B) { benchmarkDriver(b, rdap.StdJSONDriver(), 100) }

// BenchmarkBaseline_EncodingJSON_100 decodes the same document into untyped maps, which
// skips all validation.
func BenchmarkBaseline_EncodingJSON_100(b *testing.B) {
	data := generateDomainSearch(100)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var v map[string]any
		if err := json.Unmarshal(data, &v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncode_100(b *testing.B) {
	res, err := rdap.ParseAs[rdap.DomainSearchResults](context.Background(), rdap.JSONBytes(generateDomainSearch(100)))
	if err != nil {
		b.Fatalf("parse: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := rdap.Marshal(res); err != nil {
			b.Fatal(err)
		}
	}
}

func TestGeneratedDocumentDecodes(t *testing.T) {
	res, err := rdap.ParseAs[rdap.DomainSearchResults](context.Background(), rdap.JSONBytes(generateDomainSearch(3)))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	d := res.Results[2]
	if *d.LDHName != "example2.com" || len(d.Nameservers) != 2 || len(d.Events) != 2 {
		t.Fatalf("domain = %+v", d)
	}
}
