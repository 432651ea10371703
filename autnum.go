package rdap

import (
	"github.com/reoring/rdap/value"
)

// AutNum is a block of autonomous system numbers (RFC 9083 section 5.5).
type AutNum struct {
	Handle          string
	StartAutnum     *uint32
	EndAutnum       *uint32
	Name            *string
	Country         *CountryCode
	Type            *string
	Entities        []Object
	Links           []Link
	Remarks         []NoticeOrRemark
	Events          []Event
	RDAPConformance []string
	Notices         []NoticeOrRemark
	Port43          *string
	Status          []Status
	Lang            *string
}

func (*AutNum) ObjectClassName() ObjectClass { return ClassAutNum }

func (a *AutNum) decode(f *fields) (err error) {
	if a.Handle, err = f.str("handle"); err != nil {
		return err
	}
	if a.StartAutnum, err = optUint[uint32](f, "startAutnum"); err != nil {
		return err
	}
	if a.EndAutnum, err = optUint[uint32](f, "endAutnum"); err != nil {
		return err
	}
	if a.Name, err = f.optStr("name"); err != nil {
		return err
	}
	if a.Country, err = f.optCountry("country"); err != nil {
		return err
	}
	if a.Type, err = f.optStr("type"); err != nil {
		return err
	}
	if a.Entities, err = f.objects("entities", true); err != nil {
		return err
	}
	if a.Links, err = records[Link](f, "links", false); err != nil {
		return err
	}
	if a.Remarks, err = records[NoticeOrRemark](f, "remarks", false); err != nil {
		return err
	}
	if a.Events, err = records[Event](f, "events", false); err != nil {
		return err
	}
	if a.RDAPConformance, err = f.strs("rdapConformance"); err != nil {
		return err
	}
	if a.Notices, err = records[NoticeOrRemark](f, "notices", false); err != nil {
		return err
	}
	if a.Port43, err = f.optStr("port43"); err != nil {
		return err
	}
	if a.Status, err = openList(f, "status", statuses); err != nil {
		return err
	}
	a.Lang, err = f.optStr("lang")
	return err
}

func (a *AutNum) encode(o *value.Object) {
	o.Set("handle", a.Handle)
	putUint(o, "startAutnum", a.StartAutnum)
	putUint(o, "endAutnum", a.EndAutnum)
	putStr(o, "name", a.Name)
	if a.Country != nil {
		o.Set("country", a.Country.String())
	}
	putStr(o, "type", a.Type)
	putObjects(o, "entities", a.Entities, true)
	putList[Link](o, "links", a.Links, false)
	putList[NoticeOrRemark](o, "remarks", a.Remarks, false)
	putList[Event](o, "events", a.Events, false)
	putStrs(o, "rdapConformance", a.RDAPConformance, false)
	putList[NoticeOrRemark](o, "notices", a.Notices, false)
	putStr(o, "port43", a.Port43)
	putEnums(o, "status", a.Status, false)
	putStr(o, "lang", a.Lang)
}
