package rdap

import (
	"github.com/reoring/rdap/value"
)

// Entity is an organisation or person: a registrant, registrar, contact and so on.
type Entity struct {
	Handle          *string
	VCard           *JCard // "vcardArray"
	Roles           []Role
	PublicIDs       []PublicID // "publicIds"
	Entities        []Object
	Remarks         []NoticeOrRemark
	Links           []Link
	Events          []Event
	AsEventActor    []Event
	Status          []Status
	Port43          *string
	Lang            *string
	RDAPConformance []string
	Notices         []NoticeOrRemark
}

func (*Entity) ObjectClassName() ObjectClass { return ClassEntity }

func (e *Entity) decode(f *fields) (err error) {
	if e.Handle, err = f.optStr("handle"); err != nil {
		return err
	}
	if e.VCard, err = f.jcard("vcardArray"); err != nil {
		return err
	}
	if e.Roles, err = openList(f, "roles", roles); err != nil {
		return err
	}
	if e.PublicIDs, err = records[PublicID](f, "publicIds", false); err != nil {
		return err
	}
	if e.Entities, err = f.objects("entities", false); err != nil {
		return err
	}
	if e.Remarks, err = records[NoticeOrRemark](f, "remarks", false); err != nil {
		return err
	}
	if e.Links, err = records[Link](f, "links", false); err != nil {
		return err
	}
	if e.Events, err = records[Event](f, "events", false); err != nil {
		return err
	}
	if e.AsEventActor, err = records[Event](f, "asEventActor", false); err != nil {
		return err
	}
	if e.Status, err = openList(f, "status", statuses); err != nil {
		return err
	}
	if e.Port43, err = f.optStr("port43"); err != nil {
		return err
	}
	if e.Lang, err = f.optStr("lang"); err != nil {
		return err
	}
	if e.RDAPConformance, err = f.strs("rdapConformance"); err != nil {
		return err
	}
	e.Notices, err = records[NoticeOrRemark](f, "notices", false)
	return err
}

func (e *Entity) encode(o *value.Object) {
	putStr(o, "handle", e.Handle)
	if e.VCard != nil {
		o.Set("vcardArray", e.VCard.Value())
	}
	putEnums(o, "roles", e.Roles, false)
	putList[PublicID](o, "publicIds", e.PublicIDs, false)
	putObjects(o, "entities", e.Entities, false)
	putList[NoticeOrRemark](o, "remarks", e.Remarks, false)
	putList[Link](o, "links", e.Links, false)
	putList[Event](o, "events", e.Events, false)
	putList[Event](o, "asEventActor", e.AsEventActor, false)
	putEnums(o, "status", e.Status, false)
	putStr(o, "port43", e.Port43)
	putStr(o, "lang", e.Lang)
	putStrs(o, "rdapConformance", e.RDAPConformance, false)
	putList[NoticeOrRemark](o, "notices", e.Notices, false)
}

// HasRole reports whether e carries role r.
func (e *Entity) HasRole(r Role) bool {
	for _, x := range e.Roles {
		if x == r {
			return true
		}
	}
	return false
}

// EntitiesByRole returns the entities among objs that carry role r.
func EntitiesByRole(objs []Object, r Role) []*Entity {
	var out []*Entity
	for _, o := range objs {
		if e, ok := o.(*Entity); ok && e.HasRole(r) {
			out = append(out, e)
		}
	}
	return out
}
