package rdap

import (
	"net/netip"

	"github.com/reoring/rdap/value"
)

// Nameserver is a DNS server of a domain (RFC 9083 section 5.2).
type Nameserver struct {
	Handle          *string
	LDHName         string // "ldhName"
	UnicodeName     *string
	IPAddresses     *IPAddresses
	Entities        []Object
	Status          []Status
	Remarks         []NoticeOrRemark
	Notices         []NoticeOrRemark
	Links           []Link
	Events          []Event
	Port43          *string
	Lang            *string
	RDAPConformance []string
}

func (*Nameserver) ObjectClassName() ObjectClass { return ClassNameserver }

func (n *Nameserver) decode(f *fields) (err error) {
	if n.Handle, err = f.optStr("handle"); err != nil {
		return err
	}
	if n.LDHName, err = f.str("ldhName"); err != nil {
		return err
	}
	if n.UnicodeName, err = f.optStr("unicodeName"); err != nil {
		return err
	}
	if n.IPAddresses, err = one[IPAddresses](f, "ipAddresses"); err != nil {
		return err
	}
	if n.Entities, err = f.objects("entities", false); err != nil {
		return err
	}
	if n.Status, err = openList(f, "status", statuses); err != nil {
		return err
	}
	if n.Remarks, err = records[NoticeOrRemark](f, "remarks", false); err != nil {
		return err
	}
	if n.Notices, err = records[NoticeOrRemark](f, "notices", false); err != nil {
		return err
	}
	if n.Links, err = records[Link](f, "links", false); err != nil {
		return err
	}
	if n.Events, err = records[Event](f, "events", false); err != nil {
		return err
	}
	if n.Port43, err = f.optStr("port43"); err != nil {
		return err
	}
	if n.Lang, err = f.optStr("lang"); err != nil {
		return err
	}
	n.RDAPConformance, err = f.strs("rdapConformance")
	return err
}

func (n *Nameserver) encode(o *value.Object) {
	putStr(o, "handle", n.Handle)
	o.Set("ldhName", n.LDHName)
	putStr(o, "unicodeName", n.UnicodeName)
	if n.IPAddresses != nil {
		o.Set("ipAddresses", Encode(n.IPAddresses))
	}
	putObjects(o, "entities", n.Entities, false)
	putEnums(o, "status", n.Status, false)
	putList[NoticeOrRemark](o, "remarks", n.Remarks, false)
	putList[NoticeOrRemark](o, "notices", n.Notices, false)
	putList[Link](o, "links", n.Links, false)
	putList[Event](o, "events", n.Events, false)
	putStr(o, "port43", n.Port43)
	putStr(o, "lang", n.Lang)
	putStrs(o, "rdapConformance", n.RDAPConformance, false)
}

// IPAddresses are the glue addresses of a nameserver.
type IPAddresses struct {
	V4 []netip.Addr
	V6 []netip.Addr
}

func (a *IPAddresses) decode(f *fields) (err error) {
	if a.V4, err = addrList(f, "v4", true); err != nil {
		return err
	}
	a.V6, err = addrList(f, "v6", false)
	return err
}

func (a *IPAddresses) encode(o *value.Object) {
	putAddrs(o, "v4", a.V4)
	putAddrs(o, "v6", a.V6)
}

func addrList(f *fields, key string, v4 bool) ([]netip.Addr, error) {
	return listOf(f, key, false, func(_ *decoder, path string, v any) (netip.Addr, error) {
		a, err := asAddr(path, v)
		if err != nil {
			return a, err
		}
		if v4 {
			a = a.Unmap()
		}
		if a.Is4() != v4 {
			return netip.Addr{}, issueAt(path, CodeInvalidValue, "address "+a.String()+" listed under "+key, nil)
		}
		return a, nil
	})
}

func putAddrs(o *value.Object, key string, as []netip.Addr) {
	if as == nil {
		return
	}
	arr := make([]any, len(as))
	for i, a := range as {
		arr[i] = a.String()
	}
	o.Set(key, arr)
}
