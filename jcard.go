package rdap

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/biter777/countries"

	eng "github.com/reoring/rdap/internal/engine"
	"github.com/reoring/rdap/internal/vocab"
	"github.com/reoring/rdap/value"
)

// JCardType is the tag in the first slot of a jCard. "vcard" is the only valid one.
type JCardType string

const JCardVCard JCardType = "vcard"

// JCardDataType is the value type identifier of a jCard property (RFC 7095 section 5).
type JCardDataType string

const (
	DataText           JCardDataType = "text"
	DataURI            JCardDataType = "uri"
	DataDate           JCardDataType = "date"
	DataTime           JCardDataType = "time"
	DataDateTime       JCardDataType = "date-time"
	DataDateAndOrTime  JCardDataType = "date-and-or-time"
	DataTimestamp      JCardDataType = "timestamp"
	DataBoolean        JCardDataType = "boolean"
	DataInteger        JCardDataType = "integer"
	DataFloat          JCardDataType = "float"
	DataUTCOffset      JCardDataType = "utc-offset"
	DataLanguageTag    JCardDataType = "language-tag"
	DataIANAValuespec  JCardDataType = "iana-valuespec"
	DataUnknown        JCardDataType = "unknown"
	DataTextList       JCardDataType = "text-list"
	DataDateList       JCardDataType = "date-list"
	DataTimeList       JCardDataType = "time-list"
	DataDateTimeList   JCardDataType = "date-time-list"
	DataDateOrTimeList JCardDataType = "date-and-or-time-list"
	DataTimestampList  JCardDataType = "timestamp-list"
	DataIntegerList    JCardDataType = "integer-list"
	DataFloatList      JCardDataType = "float-list"
)

var dataTypes = vocab.New([]JCardDataType{
	DataText, DataURI, DataDate, DataTime, DataDateTime, DataDateAndOrTime, DataTimestamp,
	DataBoolean, DataInteger, DataFloat, DataUTCOffset, DataLanguageTag, DataIANAValuespec,
	DataUnknown, DataTextList, DataDateList, DataTimeList, DataDateTimeList, DataDateOrTimeList,
	DataTimestampList, DataIntegerList, DataFloatList,
}, nil)

func ParseJCardDataType(s string) JCardDataType { return dataTypes.Normalize(s) }
func (t JCardDataType) Known() bool             { return dataTypes.Known(t) }
func (t JCardDataType) String() string          { return string(t) }

// JCard is a contact card in the RFC 7095 jCard encoding: ["vcard", [item, ...]].
type JCard struct {
	Type  JCardType
	Items []JCardItem
}

// JCardItem is one positional property: [name, params, type, value, value...].
type JCardItem struct {
	Name   string        // always lowercase
	Params *value.Object // parameter order is kept for re-encoding
	Type   JCardDataType
	Values []any // at least one; JSON values as produced by package value
}

// ItemsByName returns the items for the property name, compared after lowercasing.
func (j *JCard) ItemsByName(name string) []JCardItem {
	if j == nil {
		return nil
	}
	name = strings.ToLower(name)
	var out []JCardItem
	for _, it := range j.Items {
		if it.Name == name {
			out = append(out, it)
		}
	}
	return out
}

// Text returns the first value when it is a string.
func (it JCardItem) Text() string {
	if len(it.Values) == 0 {
		return ""
	}
	s, _ := it.Values[0].(string)
	return s
}

// Param returns a string parameter; array parameters yield their first string.
func (it JCardItem) Param(name string) (string, bool) {
	if it.Params == nil {
		return "", false
	}
	v, ok := it.Params.Get(name)
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case []any:
		if len(t) > 0 {
			s, ok := t[0].(string)
			return s, ok
		}
	}
	return "", false
}

// FormattedName is the value of the first "fn" property.
func (j *JCard) FormattedName() string {
	if items := j.ItemsByName("fn"); len(items) > 0 {
		return items[0].Text()
	}
	return ""
}

// Emails lists the values of all "email" properties.
func (j *JCard) Emails() []string {
	var out []string
	for _, it := range j.ItemsByName("email") {
		if s := it.Text(); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// CountryCode looks for the country of the first "adr" property: the "cc" parameter,
// then the last line of the "label" parameter and finally the country component of
// the structured address, the latter two resolved by English country name.
func (j *JCard) CountryCode() (CountryCode, bool) {
	for _, it := range j.ItemsByName("adr") {
		for _, p := range []string{"cc", "iso-3166-1-alpha-2"} {
			if s, ok := it.Param(p); ok {
				if cc, err := ParseCountryCode(s); err == nil {
					return cc, true
				}
			}
		}
		if label, ok := it.Param("label"); ok {
			lines := strings.Split(label, "\n")
			if cc, ok := countryByName(lines[len(lines)-1]); ok {
				return cc, true
			}
		}
		parts := it.Values
		if len(parts) == 1 {
			if arr, ok := parts[0].([]any); ok {
				parts = arr
			}
		}
		if len(parts) > 0 {
			if name, ok := parts[len(parts)-1].(string); ok {
				if cc, ok := countryByName(name); ok {
					return cc, true
				}
			}
		}
	}
	return CountryCode{}, false
}

func countryByName(name string) (CountryCode, bool) {
	c := countries.ByName(strings.TrimSpace(name))
	if c == countries.Unknown {
		return CountryCode{}, false
	}
	cc, err := ParseCountryCode(c.Alpha2())
	return cc, err == nil
}

func (d *decoder) jcard(path string, v any) (*JCard, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, issueAt(path, CodeInvalidType, "expected jCard array, got "+describe(v), nil)
	}
	if len(arr) != 2 {
		return nil, issueAt(path, CodeInvalidLength, fmt.Sprintf("jCard has %d elements, expected 2", len(arr)), nil)
	}
	tag, err := asString(eng.JoinPointer(path, "0"), arr[0])
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(tag, string(JCardVCard)) {
		return nil, issueAt(eng.JoinPointer(path, "0"), CodeInvalidValue, "unknown jCard type "+quote(tag), nil)
	}
	itemsPath := eng.JoinPointer(path, "1")
	raw, ok := arr[1].([]any)
	if !ok {
		return nil, issueAt(itemsPath, CodeInvalidType, "expected array of properties, got "+describe(arr[1]), nil)
	}
	j := &JCard{Type: JCardVCard, Items: make([]JCardItem, 0, len(raw))}
	for i, e := range raw {
		it, err := jcardItem(eng.JoinPointer(itemsPath, strconv.Itoa(i)), e)
		if err != nil {
			return nil, err
		}
		j.Items = append(j.Items, it)
	}
	return j, nil
}

func jcardItem(path string, v any) (JCardItem, error) {
	arr, ok := v.([]any)
	if !ok {
		return JCardItem{}, issueAt(path, CodeInvalidType, "expected jCard property array, got "+describe(v), nil)
	}
	if len(arr) < 4 {
		return JCardItem{}, issueAt(path, CodeInvalidLength,
			fmt.Sprintf("jCard property has %d elements, expected at least four elements", len(arr)), nil)
	}
	name, err := asString(eng.JoinPointer(path, "0"), arr[0])
	if err != nil {
		return JCardItem{}, err
	}
	params, ok := arr[1].(*value.Object)
	if !ok {
		return JCardItem{}, issueAt(eng.JoinPointer(path, "1"), CodeInvalidType, "expected parameter object, got "+describe(arr[1]), nil)
	}
	typ, err := asString(eng.JoinPointer(path, "2"), arr[2])
	if err != nil {
		return JCardItem{}, err
	}
	return JCardItem{
		Name:   strings.ToLower(name),
		Params: params,
		Type:   ParseJCardDataType(typ),
		Values: append([]any(nil), arr[3:]...),
	}, nil
}

func (f *fields) jcard(key string) (*JCard, error) {
	v, ok := f.get(key)
	if !ok {
		return nil, nil
	}
	return f.d.jcard(f.at(key), v)
}

// Value returns the jCard as a JSON tree.
func (j *JCard) Value() []any {
	items := make([]any, len(j.Items))
	for i, it := range j.Items {
		params := it.Params
		if params == nil {
			params = value.NewObject(0)
		}
		row := make([]any, 0, 3+len(it.Values))
		row = append(row, it.Name, params, string(it.Type))
		items[i] = append(row, it.Values...)
	}
	typ := j.Type
	if typ == "" {
		typ = JCardVCard
	}
	return []any{string(typ), items}
}

func (j *JCard) MarshalJSON() ([]byte, error) { return value.Marshal(j.Value()) }

func (j *JCard) UnmarshalJSON(data []byte) error {
	ctx := context.Background()
	raw, err := ParseValue(ctx, JSONBytes(data))
	if err != nil {
		return err
	}
	out, err := newDecoder(ctx, nil).jcard("", raw)
	if err != nil {
		return err
	}
	*j = *out
	return nil
}
