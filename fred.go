package rdap

import (
	"github.com/reoring/rdap/value"
)

// KeySet and NsSet come from the FRED registry extension (https://fred.nic.cz/rdap-extension/).

// KeySet is a named set of DNSSEC keys shared by domains.
type KeySet struct {
	Links   []Link
	Handle  string
	DNSKeys []KeyData // "dns_keys"
}

func (*KeySet) ObjectClassName() ObjectClass { return ClassFredKeySet }

func (k *KeySet) decode(f *fields) (err error) {
	if k.Links, err = records[Link](f, "links", true); err != nil {
		return err
	}
	if k.Handle, err = f.str("handle"); err != nil {
		return err
	}
	k.DNSKeys, err = records[KeyData](f, "dns_keys", true)
	return err
}

func (k *KeySet) encode(o *value.Object) {
	putList[Link](o, "links", k.Links, true)
	o.Set("handle", k.Handle)
	putList[KeyData](o, "dns_keys", k.DNSKeys, true)
}

// NsSet is a named set of nameservers shared by domains.
type NsSet struct {
	Links       []Link
	Handle      string
	Nameservers []Nameserver
}

func (*NsSet) ObjectClassName() ObjectClass { return ClassFredNsSet }

func (n *NsSet) decode(f *fields) (err error) {
	if n.Links, err = records[Link](f, "links", true); err != nil {
		return err
	}
	if n.Handle, err = f.str("handle"); err != nil {
		return err
	}
	n.Nameservers, err = records[Nameserver](f, "nameservers", true)
	return err
}

func (n *NsSet) encode(o *value.Object) {
	putList[Link](o, "links", n.Links, true)
	o.Set("handle", n.Handle)
	putList[Nameserver](o, "nameservers", n.Nameservers, true)
}
