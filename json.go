package rdap

import "context"

// json.Marshaler and json.Unmarshaler on top of the same codec, so records can be
// embedded in structs handled by encoding/json or go-json. Unmarshal uses default
// ParseOpt limits.

func (a *AutNum) MarshalJSON() ([]byte, error) { return Marshal(a) }
func (a *AutNum) UnmarshalJSON(b []byte) error { return Unmarshal(b, a) }

func (d *Domain) MarshalJSON() ([]byte, error) { return Marshal(d) }
func (d *Domain) UnmarshalJSON(b []byte) error { return Unmarshal(b, d) }

func (e *Entity) MarshalJSON() ([]byte, error) { return Marshal(e) }
func (e *Entity) UnmarshalJSON(b []byte) error { return Unmarshal(b, e) }

func (k *KeySet) MarshalJSON() ([]byte, error) { return Marshal(k) }
func (k *KeySet) UnmarshalJSON(b []byte) error { return Unmarshal(b, k) }

func (n *NsSet) MarshalJSON() ([]byte, error) { return Marshal(n) }
func (n *NsSet) UnmarshalJSON(b []byte) error { return Unmarshal(b, n) }

func (n *IPNetwork) MarshalJSON() ([]byte, error) { return Marshal(n) }
func (n *IPNetwork) UnmarshalJSON(b []byte) error { return Unmarshal(b, n) }

func (n *Nameserver) MarshalJSON() ([]byte, error) { return Marshal(n) }
func (n *Nameserver) UnmarshalJSON(b []byte) error { return Unmarshal(b, n) }

func (e *ErrorResponse) MarshalJSON() ([]byte, error) { return Marshal(e) }
func (e *ErrorResponse) UnmarshalJSON(b []byte) error { return Unmarshal(b, e) }

func (h *Help) MarshalJSON() ([]byte, error) { return Marshal(h) }
func (h *Help) UnmarshalJSON(b []byte) error { return Unmarshal(b, h) }

func (s *EntitySearchResults) MarshalJSON() ([]byte, error) { return Marshal(s) }
func (s *EntitySearchResults) UnmarshalJSON(b []byte) error { return Unmarshal(b, s) }

func (s *DomainSearchResults) MarshalJSON() ([]byte, error) { return Marshal(s) }
func (s *DomainSearchResults) UnmarshalJSON(b []byte) error { return Unmarshal(b, s) }

func (s *NameserverSearchResults) MarshalJSON() ([]byte, error) { return Marshal(s) }
func (s *NameserverSearchResults) UnmarshalJSON(b []byte) error { return Unmarshal(b, s) }

func (s *NetworkSearchResults) MarshalJSON() ([]byte, error) { return Marshal(s) }
func (s *NetworkSearchResults) UnmarshalJSON(b []byte) error { return Unmarshal(b, s) }

// AnyObject holds an Object of any class for use in Go structs.
type AnyObject struct {
	Object
}

func (a AnyObject) MarshalJSON() ([]byte, error) {
	if a.Object == nil {
		return []byte("null"), nil
	}
	return Marshal(a.Object)
}

func (a *AnyObject) UnmarshalJSON(b []byte) error {
	obj, err := ParseObject(context.Background(), JSONBytes(b))
	if err != nil {
		return err
	}
	a.Object = obj
	return nil
}
