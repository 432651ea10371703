package rdap

import (
	"github.com/reoring/rdap/value"
)

// Domain is a DNS name and its registration data (RFC 9083 section 5.3).
type Domain struct {
	Handle          *string
	LDHName         *string // "ldhName"
	UnicodeName     *string
	Entities        []Object
	Links           []Link
	Variants        []Variant
	Nameservers     []Object
	SecureDNS       *SecureDNS // "secureDNS"
	Remarks         []NoticeOrRemark
	Events          []Event
	Network         Object
	RDAPConformance []string
	Notices         []NoticeOrRemark
	Port43          *string
	Status          []Status
	Lang            *string
	// FRED registry extension.
	FredKeySet Object // "fred_keyset"
	FredNsSet  Object // "fred_nsset"
}

func (*Domain) ObjectClassName() ObjectClass { return ClassDomain }

func (d *Domain) decode(f *fields) (err error) {
	if d.Handle, err = f.optStr("handle"); err != nil {
		return err
	}
	if d.LDHName, err = f.optStr("ldhName"); err != nil {
		return err
	}
	if d.UnicodeName, err = f.optStr("unicodeName"); err != nil {
		return err
	}
	if d.Entities, err = f.objects("entities", true); err != nil {
		return err
	}
	if d.Links, err = records[Link](f, "links", false); err != nil {
		return err
	}
	if d.Variants, err = records[Variant](f, "variants", false); err != nil {
		return err
	}
	if d.Nameservers, err = f.objects("nameservers", false); err != nil {
		return err
	}
	if d.SecureDNS, err = one[SecureDNS](f, "secureDNS"); err != nil {
		return err
	}
	if d.Remarks, err = records[NoticeOrRemark](f, "remarks", false); err != nil {
		return err
	}
	if d.Events, err = records[Event](f, "events", true); err != nil {
		return err
	}
	if d.Network, err = f.object("network"); err != nil {
		return err
	}
	if d.RDAPConformance, err = f.strs("rdapConformance"); err != nil {
		return err
	}
	if d.Notices, err = records[NoticeOrRemark](f, "notices", false); err != nil {
		return err
	}
	if d.Port43, err = f.optStr("port43"); err != nil {
		return err
	}
	if d.Status, err = openList(f, "status", statuses); err != nil {
		return err
	}
	if d.Lang, err = f.optStr("lang"); err != nil {
		return err
	}
	if d.FredKeySet, err = f.object("fred_keyset"); err != nil {
		return err
	}
	d.FredNsSet, err = f.object("fred_nsset")
	return err
}

func (d *Domain) encode(o *value.Object) {
	putStr(o, "handle", d.Handle)
	putStr(o, "ldhName", d.LDHName)
	putStr(o, "unicodeName", d.UnicodeName)
	putObjects(o, "entities", d.Entities, true)
	putList[Link](o, "links", d.Links, false)
	putList[Variant](o, "variants", d.Variants, false)
	putObjects(o, "nameservers", d.Nameservers, false)
	if d.SecureDNS != nil {
		o.Set("secureDNS", Encode(d.SecureDNS))
	}
	putList[NoticeOrRemark](o, "remarks", d.Remarks, false)
	putList[Event](o, "events", d.Events, true)
	putObject(o, "network", d.Network)
	putStrs(o, "rdapConformance", d.RDAPConformance, false)
	putList[NoticeOrRemark](o, "notices", d.Notices, false)
	putStr(o, "port43", d.Port43)
	putEnums(o, "status", d.Status, false)
	putStr(o, "lang", d.Lang)
	putObject(o, "fred_keyset", d.FredKeySet)
	putObject(o, "fred_nsset", d.FredNsSet)
}

// SecureDNS holds the DNSSEC delegation data of a domain.
type SecureDNS struct {
	ZoneSigned       *bool
	DelegationSigned *bool
	MaxSigLife       *uint32
	DSData           []DSData  // "dsData"
	KeyData          []KeyData // "keyData"
}

func (s *SecureDNS) decode(f *fields) (err error) {
	if s.ZoneSigned, err = f.optBool("zoneSigned"); err != nil {
		return err
	}
	if s.DelegationSigned, err = f.optBool("delegationSigned"); err != nil {
		return err
	}
	if s.MaxSigLife, err = optUint[uint32](f, "maxSigLife"); err != nil {
		return err
	}
	if s.DSData, err = records[DSData](f, "dsData", false); err != nil {
		return err
	}
	s.KeyData, err = records[KeyData](f, "keyData", false)
	return err
}

func (s *SecureDNS) encode(o *value.Object) {
	putBool(o, "zoneSigned", s.ZoneSigned)
	putBool(o, "delegationSigned", s.DelegationSigned)
	putUint(o, "maxSigLife", s.MaxSigLife)
	putList[DSData](o, "dsData", s.DSData, false)
	putList[KeyData](o, "keyData", s.KeyData, false)
}

// DSData is a delegation signer record. Field widths follow RFC 4034 section 5.1.
type DSData struct {
	KeyTag     *uint16
	Algorithm  uint8
	Digest     string
	DigestType uint8
	Events     []Event
	Links      []Link
}

func (d *DSData) decode(f *fields) (err error) {
	if d.KeyTag, err = optUint[uint16](f, "keyTag"); err != nil {
		return err
	}
	if d.Algorithm, err = reqUint[uint8](f, "algorithm"); err != nil {
		return err
	}
	if d.Digest, err = f.str("digest"); err != nil {
		return err
	}
	if d.DigestType, err = reqUint[uint8](f, "digestType"); err != nil {
		return err
	}
	if d.Events, err = records[Event](f, "events", false); err != nil {
		return err
	}
	d.Links, err = records[Link](f, "links", false)
	return err
}

func (d *DSData) encode(o *value.Object) {
	putUint(o, "keyTag", d.KeyTag)
	o.Set("algorithm", num(d.Algorithm))
	o.Set("digest", d.Digest)
	o.Set("digestType", num(d.DigestType))
	putList[Event](o, "events", d.Events, false)
	putList[Link](o, "links", d.Links, false)
}

// KeyData is a DNSKEY record. Field widths follow RFC 4034 section 2.1.
type KeyData struct {
	Flags     uint16
	Protocol  uint8
	PublicKey string
	Algorithm uint8
	Events    []Event
	Links     []Link
}

func (k *KeyData) decode(f *fields) (err error) {
	if k.Flags, err = reqUint[uint16](f, "flags"); err != nil {
		return err
	}
	if k.Protocol, err = reqUint[uint8](f, "protocol"); err != nil {
		return err
	}
	if k.PublicKey, err = f.str("publicKey"); err != nil {
		return err
	}
	if k.Algorithm, err = reqUint[uint8](f, "algorithm"); err != nil {
		return err
	}
	if k.Events, err = records[Event](f, "events", false); err != nil {
		return err
	}
	k.Links, err = records[Link](f, "links", false)
	return err
}

func (k *KeyData) encode(o *value.Object) {
	o.Set("flags", num(k.Flags))
	o.Set("protocol", num(k.Protocol))
	o.Set("publicKey", k.PublicKey)
	o.Set("algorithm", num(k.Algorithm))
	putList[Event](o, "events", k.Events, false)
	putList[Link](o, "links", k.Links, false)
}

// Variant lists the variant names of an IDN and how they relate to the domain.
type Variant struct {
	Relation []VariantRelation
	IDNTable *string       // "idnTable"
	Names    []VariantName // "variantNames"
}

func (v *Variant) decode(f *fields) (err error) {
	v.Relation, err = listOf(f, "relation", true, func(_ *decoder, path string, x any) (VariantRelation, error) {
		return parseClosed(variantRelations, "variant relation", path, x)
	})
	if err != nil {
		return err
	}
	if v.IDNTable, err = f.optStr("idnTable"); err != nil {
		return err
	}
	v.Names, err = records[VariantName](f, "variantNames", true)
	return err
}

func (v *Variant) encode(o *value.Object) {
	putEnums(o, "relation", v.Relation, true)
	putStr(o, "idnTable", v.IDNTable)
	putList[VariantName](o, "variantNames", v.Names, true)
}

type VariantName struct {
	LDHName     string
	UnicodeName string
}

func (n *VariantName) decode(f *fields) (err error) {
	if n.LDHName, err = f.str("ldhName"); err != nil {
		return err
	}
	n.UnicodeName, err = f.str("unicodeName")
	return err
}

func (n *VariantName) encode(o *value.Object) {
	o.Set("ldhName", n.LDHName)
	o.Set("unicodeName", n.UnicodeName)
}
