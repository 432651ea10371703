package rdap

import (
	"context"
	"strings"
	"time"
)

// Layouts tried after RFC 3339, in order. Registries in the wild emit all of them.
const (
	layoutNoOffset    = "2006-01-02T15:04:05"       // read as UTC
	layoutZThenOffset = "2006-01-02T15:04:05Z-0700" // literal Z followed by the real offset
	layoutSpaced      = "2006-01-02 15:04:05"       // read as UTC
	layoutCanonical   = "2006-01-02T15:04:05.999999999-07:00"
)

// ParseTimestamp parses an RDAP event date. It accepts RFC 3339 and the three
// non-standard forms above. The result always carries a fixed zone holding the
// parsed offset (UTC when the input had none).
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		if strings.Contains(s, "T") {
			t, err = time.Parse(layoutNoOffset, s)
			if err != nil {
				t, err = time.Parse(layoutZThenOffset, s)
			}
		} else {
			t, err = time.Parse(layoutSpaced, s)
		}
	}
	if err != nil {
		return time.Time{}, err
	}
	_, off := t.Zone()
	return t.In(time.FixedZone("", off)), nil
}

// FormatTimestamp renders t as RFC 3339 with a numeric offset ("+00:00", never "Z").
// Fractional seconds appear only when non-zero.
func FormatTimestamp(t time.Time) string { return t.Format(layoutCanonical) }

// TimestampCodec returns a Codec between wire date strings and time.Time.
func TimestampCodec() Codec[string, time.Time] { return timestampCodec }

var timestampCodec Codec[string, time.Time] = tsCodec{}

type tsCodec struct{}

func (tsCodec) Decode(ctx context.Context, a string) (time.Time, error) {
	t, err := ParseTimestamp(a)
	if err != nil {
		return time.Time{}, issueAt("/", CodeInvalidFormat, "unparseable timestamp "+quote(a), err)
	}
	return t, nil
}

func (tsCodec) Encode(ctx context.Context, b time.Time) (string, error) {
	return FormatTimestamp(b), nil
}
