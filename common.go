package rdap

import (
	"strings"
	"time"

	"github.com/reoring/rdap/value"
)

// Link is a web link (RFC 9083 section 4.2).
type Link struct {
	Value    *string
	Rel      *string
	Href     string
	HrefLang []string // "hreflang"; registries send a string or an array
	Title    *string
	Media    *string
	Type     *string

	hrefLangScalar bool
}

func (l *Link) decode(f *fields) (err error) {
	if l.Value, err = f.optStr("value"); err != nil {
		return err
	}
	if l.Rel, err = f.optStr("rel"); err != nil {
		return err
	}
	if l.Href, err = f.str("href"); err != nil {
		return err
	}
	if v, ok := f.get("hreflang"); ok {
		if s, isStr := v.(string); isStr {
			l.HrefLang, l.hrefLangScalar = []string{s}, true
		} else if l.HrefLang, err = f.strs("hreflang"); err != nil {
			return err
		}
	}
	if l.Title, err = f.optStr("title"); err != nil {
		return err
	}
	if l.Media, err = f.optStr("media"); err != nil {
		return err
	}
	l.Type, err = f.optStr("type")
	return err
}

func (l *Link) encode(o *value.Object) {
	putStr(o, "value", l.Value)
	putStr(o, "rel", l.Rel)
	o.Set("href", l.Href)
	if l.hrefLangScalar && len(l.HrefLang) == 1 {
		o.Set("hreflang", l.HrefLang[0])
	} else {
		putStrs(o, "hreflang", l.HrefLang, false)
	}
	putStr(o, "title", l.Title)
	putStr(o, "media", l.Media)
	putStr(o, "type", l.Type)
}

// Event is something that happened to an object (RFC 9083 section 4.5).
type Event struct {
	Actor  *string // "eventActor"
	Action EventAction
	Date   time.Time
	Links  []Link

	linkScalar bool
}

func (e *Event) decode(f *fields) (err error) {
	if e.Actor, err = f.optStr("eventActor"); err != nil {
		return err
	}
	action, err := f.str("eventAction")
	if err != nil {
		return err
	}
	e.Action = ParseEventAction(action)
	if e.Date, err = f.timestamp("eventDate"); err != nil {
		return err
	}
	// Some servers send a single link object here instead of an array.
	if v, ok := f.get("links"); ok {
		if _, single := v.(*value.Object); single {
			var l Link
			if err := f.d.record(f.at("links"), v, &l); err != nil {
				return err
			}
			e.Links, e.linkScalar = []Link{l}, true
			return nil
		}
	}
	e.Links, err = records[Link](f, "links", false)
	return err
}

func (e *Event) encode(o *value.Object) {
	putStr(o, "eventActor", e.Actor)
	o.Set("eventAction", string(e.Action))
	o.Set("eventDate", FormatTimestamp(e.Date))
	if e.linkScalar && len(e.Links) == 1 {
		o.Set("links", Encode(&e.Links[0]))
	} else {
		putList[Link](o, "links", e.Links, false)
	}
}

// NoticeOrRemark is a notice (response level) or remark (object level).
type NoticeOrRemark struct {
	Title       *string
	Type        *NoticeOrRemarkType
	Description []string
	Links       []Link
}

func (n *NoticeOrRemark) decode(f *fields) (err error) {
	if n.Title, err = f.optStr("title"); err != nil {
		return err
	}
	if n.Type, err = optOpen(f, "type", noticeTypes); err != nil {
		return err
	}
	if n.Description, err = f.strs("description"); err != nil {
		return err
	}
	n.Links, err = records[Link](f, "links", false)
	return err
}

func (n *NoticeOrRemark) encode(o *value.Object) {
	putStr(o, "title", n.Title)
	if n.Type != nil {
		o.Set("type", string(*n.Type))
	}
	putStrs(o, "description", n.Description, false)
	putList[Link](o, "links", n.Links, false)
}

// DescriptionByTitle returns the description of the first entry whose title equals
// title ignoring case. The pseudo-title "remarks" also matches untitled entries.
// Entries without a description are skipped.
func DescriptionByTitle(title string, list []NoticeOrRemark) ([]string, bool) {
	for _, n := range list {
		if n.Description == nil {
			continue
		}
		if n.Title != nil {
			if strings.EqualFold(title, *n.Title) {
				return n.Description, true
			}
		} else if title == "remarks" {
			return n.Description, true
		}
	}
	return nil, false
}

// PublicID maps a public identifier to an object (RFC 9083 section 4.8).
type PublicID struct {
	Type       string
	Identifier string
}

func (p *PublicID) decode(f *fields) (err error) {
	if p.Type, err = f.str("type"); err != nil {
		return err
	}
	p.Identifier, err = f.str("identifier")
	return err
}

func (p *PublicID) encode(o *value.Object) {
	o.Set("type", p.Type)
	o.Set("identifier", p.Identifier)
}
