package rdap

import (
	"fmt"

	eng "github.com/reoring/rdap/internal/engine"
	"github.com/reoring/rdap/value"
)

// newObject returns an empty record for a class.
func newObject(c ObjectClass) Object {
	switch c {
	case ClassAutNum:
		return &AutNum{}
	case ClassDomain:
		return &Domain{}
	case ClassEntity:
		return &Entity{}
	case ClassFredKeySet:
		return &KeySet{}
	case ClassFredNsSet:
		return &NsSet{}
	case ClassIPNetwork:
		return &IPNetwork{}
	case ClassNameserver:
		return &Nameserver{}
	}
	return nil
}

// object decodes v as one of the Object kinds, chosen by its objectClassName.
// There is no fallback kind: a tag outside the known set fails the decode.
func (d *decoder) object(path string, v any) (Object, error) {
	o, ok := v.(*value.Object)
	if !ok || o == nil {
		return nil, issueAt(path, CodeInvalidType, "expected object, got "+describe(v), nil)
	}
	raw, ok := o.Get(discriminatorKey)
	if !ok || raw == nil {
		return nil, issueAt(path, CodeDiscriminatorMissing, "missing "+discriminatorKey, nil)
	}
	tag, ok := raw.(string)
	if !ok {
		return nil, issueAt(eng.JoinPointer(path, discriminatorKey), CodeInvalidType, "expected string, got "+describe(raw), nil)
	}
	class, ok := lookupClass(tag)
	if !ok {
		return nil, issueAt(eng.JoinPointer(path, discriminatorKey), CodeDiscriminatorUnknown, fmt.Sprintf("unknown object class %q", tag), nil)
	}
	obj := newObject(class)
	if err := d.record(path, o, obj); err != nil {
		return nil, err
	}
	return obj, nil
}
