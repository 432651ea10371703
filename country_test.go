package rdap_test

import (
	"testing"

	rdap "github.com/reoring/rdap"
)

func TestCountryCode_CaseInsensitive(t *testing.T) {
	upper, err := rdap.ParseCountryCode("CZ")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	lower, err := rdap.ParseCountryCode("cz")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if upper != lower || lower.String() != "CZ" {
		t.Fatalf("got %s and %s", upper, lower)
	}
	b, _ := lower.MarshalText()
	if string(b) != "CZ" {
		t.Fatalf("text = %s", b)
	}
}

func TestCountryCode_RejectsBadShapes(t *testing.T) {
	for _, in := range []string{"", "C", "CZE", "ČZ", "C1", "  "} {
		_, err := rdap.ParseCountryCode(in)
		if !rdap.HasCode(err, rdap.CodeInvalidValue) {
			t.Fatalf("%q: want invalid_value, got %v", in, err)
		}
	}
}

func TestCountryCode_NonISOCodesAccepted(t *testing.T) {
	eu, err := rdap.ParseCountryCode("eu")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if eu.String() != "EU" {
		t.Fatalf("got %s", eu)
	}
	cz, _ := rdap.ParseCountryCode("cz")
	if cz.Name() == "" {
		t.Fatalf("CZ should have a name")
	}
}
