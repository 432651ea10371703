package rdap

import (
	"net"
	"net/netip"

	"github.com/mikioh/ipaddr"

	"github.com/reoring/rdap/value"
)

// IPNetwork is a block of IP addresses (RFC 9083 section 5.4).
type IPNetwork struct {
	Handle          string
	StartAddress    netip.Addr
	EndAddress      netip.Addr
	IPVersion       IPVersion
	Name            *string
	Type            *string
	Country         *CountryCode
	ParentHandle    *string
	Entities        []Object
	Links           []Link
	Remarks         []NoticeOrRemark
	Events          []Event
	RDAPConformance []string
	Notices         []NoticeOrRemark
	Port43          *string
	Status          []Status
	Lang            *string
	// Extensions: cidr0 and arin_originas0.
	CIDRs         []CIDR0  // "cidr0_cidrs"
	OriginAutnums []uint32 // "arin_originas0_originautnums"
}

func (*IPNetwork) ObjectClassName() ObjectClass { return ClassIPNetwork }

func (n *IPNetwork) decode(f *fields) (err error) {
	if n.Handle, err = f.str("handle"); err != nil {
		return err
	}
	if n.StartAddress, err = f.addr("startAddress"); err != nil {
		return err
	}
	if n.EndAddress, err = f.addr("endAddress"); err != nil {
		return err
	}
	v, err := f.need("ipVersion")
	if err != nil {
		return err
	}
	if n.IPVersion, err = parseClosed(ipVersions, "IP version", f.at("ipVersion"), v); err != nil {
		return err
	}
	if n.Name, err = f.optStr("name"); err != nil {
		return err
	}
	if n.Type, err = f.optStr("type"); err != nil {
		return err
	}
	if n.Country, err = f.optCountry("country"); err != nil {
		return err
	}
	if n.ParentHandle, err = f.optStr("parentHandle"); err != nil {
		return err
	}
	if n.Entities, err = f.objects("entities", false); err != nil {
		return err
	}
	if n.Links, err = records[Link](f, "links", false); err != nil {
		return err
	}
	if n.Remarks, err = records[NoticeOrRemark](f, "remarks", false); err != nil {
		return err
	}
	if n.Events, err = records[Event](f, "events", false); err != nil {
		return err
	}
	if n.RDAPConformance, err = f.strs("rdapConformance"); err != nil {
		return err
	}
	if n.Notices, err = records[NoticeOrRemark](f, "notices", false); err != nil {
		return err
	}
	if n.Port43, err = f.optStr("port43"); err != nil {
		return err
	}
	if n.Status, err = openList(f, "status", statuses); err != nil {
		return err
	}
	if n.Lang, err = f.optStr("lang"); err != nil {
		return err
	}
	if n.CIDRs, err = records[CIDR0](f, "cidr0_cidrs", false); err != nil {
		return err
	}
	n.OriginAutnums, err = listOf(f, "arin_originas0_originautnums", false, func(_ *decoder, path string, v any) (uint32, error) {
		return asUint[uint32](path, v)
	})
	return err
}

func (n *IPNetwork) encode(o *value.Object) {
	o.Set("handle", n.Handle)
	o.Set("startAddress", n.StartAddress.String())
	o.Set("endAddress", n.EndAddress.String())
	o.Set("ipVersion", string(n.IPVersion))
	putStr(o, "name", n.Name)
	putStr(o, "type", n.Type)
	if n.Country != nil {
		o.Set("country", n.Country.String())
	}
	putStr(o, "parentHandle", n.ParentHandle)
	putObjects(o, "entities", n.Entities, false)
	putList[Link](o, "links", n.Links, false)
	putList[NoticeOrRemark](o, "remarks", n.Remarks, false)
	putList[Event](o, "events", n.Events, false)
	putStrs(o, "rdapConformance", n.RDAPConformance, false)
	putList[NoticeOrRemark](o, "notices", n.Notices, false)
	putStr(o, "port43", n.Port43)
	putEnums(o, "status", n.Status, false)
	putStr(o, "lang", n.Lang)
	putList[CIDR0](o, "cidr0_cidrs", n.CIDRs, false)
	if n.OriginAutnums != nil {
		arr := make([]any, len(n.OriginAutnums))
		for i, as := range n.OriginAutnums {
			arr[i] = num(as)
		}
		o.Set("arin_originas0_originautnums", arr)
	}
}

// Prefixes returns the network as CIDR prefixes. The cidr0 list is used when the
// server sent one; otherwise the start/end range is summarized.
func (n *IPNetwork) Prefixes() []netip.Prefix {
	var out []netip.Prefix
	for _, c := range n.CIDRs {
		if p, ok := c.Prefix(); ok {
			out = append(out, p)
		}
	}
	if len(out) > 0 || !n.StartAddress.IsValid() || !n.EndAddress.IsValid() {
		return out
	}
	first, last := net.IP(n.StartAddress.AsSlice()), net.IP(n.EndAddress.AsSlice())
	for _, p := range ipaddr.Summarize(first, last) {
		if pp, err := netip.ParsePrefix(p.String()); err == nil {
			out = append(out, pp)
		}
	}
	return out
}

// CIDR0 is one entry of the cidr0 extension: a prefix address and its length.
type CIDR0 struct {
	V4Prefix *netip.Addr // "v4prefix"
	V6Prefix *netip.Addr // "v6prefix"
	Length   uint8
}

// Prefix combines the address and length into a netip.Prefix.
func (c CIDR0) Prefix() (netip.Prefix, bool) {
	var a netip.Addr
	switch {
	case c.V4Prefix != nil:
		a = *c.V4Prefix
	case c.V6Prefix != nil:
		a = *c.V6Prefix
	default:
		return netip.Prefix{}, false
	}
	p := netip.PrefixFrom(a, int(c.Length))
	return p, p.IsValid()
}

func (c *CIDR0) decode(f *fields) (err error) {
	if c.V4Prefix, err = f.optAddr("v4prefix"); err != nil {
		return err
	}
	if c.V6Prefix, err = f.optAddr("v6prefix"); err != nil {
		return err
	}
	c.Length, err = reqUint[uint8](f, "length")
	return err
}

func (c *CIDR0) encode(o *value.Object) {
	if c.V4Prefix != nil {
		o.Set("v4prefix", c.V4Prefix.String())
	}
	if c.V6Prefix != nil {
		o.Set("v6prefix", c.V6Prefix.String())
	}
	o.Set("length", num(c.Length))
}
