package rdap

import (
	"context"

	"github.com/reoring/rdap/value"
)

// Record is implemented by every type that maps to a JSON object on the wire:
// the seven object classes, their attached metadata (links, events, remarks, ...)
// and the top-level response shapes. The methods are unexported, so the set is
// closed to this package.
type Record interface {
	decode(f *fields) error
	encode(o *value.Object)
}

// Object is the discriminated union of RDAP object classes. The tag is not stored
// on the records; ObjectClassName derives it from the concrete type.
type Object interface {
	Record
	ObjectClassName() ObjectClass
}

// Codec performs bidirectional transformation between the wire representation A
// and the domain representation B.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error) // wire -> domain; fails with Issues.
	Encode(ctx context.Context, b B) (A, error) // domain -> wire.
}

// Encode converts r into a JSON tree. Objects get objectClassName as their first
// member; absent optional fields are omitted.
func Encode(r Record) *value.Object {
	o := value.NewObject(16)
	if obj, ok := r.(Object); ok {
		o.Set(discriminatorKey, string(obj.ObjectClassName()))
	}
	r.encode(o)
	return o
}

// EncodeObject is Encode restricted to the object union.
func EncodeObject(obj Object) *value.Object { return Encode(obj) }

// Marshal renders r as compact JSON.
func Marshal(r Record) ([]byte, error) { return value.Marshal(Encode(r)) }

// MarshalIndent renders r as indented JSON.
func MarshalIndent(r Record, prefix, indent string) ([]byte, error) {
	return value.MarshalIndent(Encode(r), prefix, indent)
}
