package rdap

import (
	"context"

	"github.com/biter777/countries"
)

// CountryCode is a two letter country code, usually ISO 3166-1 alpha-2. It is not
// checked against the ISO list: registries use codes such as "EU" and "AP".
// The zero value is the empty code.
type CountryCode [2]byte

// ParseCountryCode accepts exactly two ASCII letters in any case.
func ParseCountryCode(s string) (CountryCode, error) {
	if len(s) != 2 || !isLetter(s[0]) || !isLetter(s[1]) {
		return CountryCode{}, issueAt("/", CodeInvalidValue, "not a two letter ASCII country code: "+quote(s), nil)
	}
	return CountryCode{upper(s[0]), upper(s[1])}, nil
}

func (c CountryCode) String() string {
	if c == (CountryCode{}) {
		return ""
	}
	return string(c[:])
}

// Country resolves the code in the ISO 3166-1 table. Codes outside it yield
// countries.Unknown.
func (c CountryCode) Country() countries.CountryCode {
	if c == (CountryCode{}) {
		return countries.Unknown
	}
	return countries.ByName(c.String())
}

// Name is the English country name, or "" when the code is not an ISO country.
func (c CountryCode) Name() string {
	cc := c.Country()
	if cc == countries.Unknown {
		return ""
	}
	return cc.String()
}

func (c CountryCode) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *CountryCode) UnmarshalText(b []byte) error {
	v, err := ParseCountryCode(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

var countryCodec Codec[string, CountryCode] = ccCodec{}

type ccCodec struct{}

func (ccCodec) Decode(_ context.Context, a string) (CountryCode, error) { return ParseCountryCode(a) }
func (ccCodec) Encode(_ context.Context, b CountryCode) (string, error) { return b.String(), nil }

func isLetter(c byte) bool { return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') }

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
