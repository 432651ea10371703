package main

import (
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	rdap "github.com/reoring/rdap"
	"github.com/reoring/rdap/value"
)

// document is one decoded input: an RDAP object or one of the top-level response shapes.
type document struct {
	kind   string
	record rdap.Record
}

// decodeDocument picks the record kind from the members present at the root.
func decodeDocument(ctx context.Context, data []byte, opt rdap.ParseOpt) (*document, error) {
	v, err := rdap.ParseValue(ctx, rdap.JSONBytes(data), opt)
	if err != nil {
		return nil, err
	}
	root, ok := v.(*value.Object)
	if !ok {
		return nil, errors.New("document root is not a JSON object")
	}
	switch {
	case root.Has("objectClassName"):
		obj, err := rdap.DecodeObject(ctx, root, opt)
		if err != nil {
			return nil, err
		}
		return &document{kind: string(obj.ObjectClassName()), record: obj}, nil
	case root.Has("errorCode"):
		return decodeAs[rdap.ErrorResponse](ctx, "error", root, opt)
	case root.Has("entitySearchResults"):
		return decodeAs[rdap.EntitySearchResults](ctx, "entity search", root, opt)
	case root.Has("domainSearchResults"):
		return decodeAs[rdap.DomainSearchResults](ctx, "domain search", root, opt)
	case root.Has("nameserverSearchResults"):
		return decodeAs[rdap.NameserverSearchResults](ctx, "nameserver search", root, opt)
	case root.Has("arin_originas0_networkSearchResults"):
		return decodeAs[rdap.NetworkSearchResults](ctx, "network search", root, opt)
	default:
		return decodeAs[rdap.Help](ctx, "help", root, opt)
	}
}

func decodeAs[T any, P interface {
	*T
	rdap.Record
}](ctx context.Context, kind string, v any, opt rdap.ParseOpt) (*document, error) {
	r, err := rdap.DecodeAs[T, P](ctx, v, opt)
	if err != nil {
		return nil, err
	}
	return &document{kind: kind, record: P(r)}, nil
}

// summarize condenses a document into the handful of members people look for first.
func summarize(doc *document) *value.Object {
	s := value.NewObject(8)
	s.Set("kind", doc.kind)
	switch r := doc.record.(type) {
	case *rdap.Domain:
		setStr(s, "handle", r.Handle)
		setStr(s, "ldhName", r.LDHName)
		var ns []any
		for _, o := range r.Nameservers {
			if n, ok := o.(*rdap.Nameserver); ok {
				ns = append(ns, n.LDHName)
			}
		}
		if ns != nil {
			s.Set("nameservers", ns)
		}
		setStatus(s, r.Status)
		setRegistrant(s, r.Entities)
	case *rdap.IPNetwork:
		s.Set("handle", r.Handle)
		s.Set("range", r.StartAddress.String()+" - "+r.EndAddress.String())
		var prefixes []any
		for _, p := range r.Prefixes() {
			prefixes = append(prefixes, p.String())
		}
		if prefixes != nil {
			s.Set("prefixes", prefixes)
		}
		setCountry(s, r.Country)
		setStatus(s, r.Status)
		setRegistrant(s, r.Entities)
	case *rdap.AutNum:
		s.Set("handle", r.Handle)
		if r.StartAutnum != nil && r.EndAutnum != nil {
			s.Set("range", "AS"+strconv.FormatUint(uint64(*r.StartAutnum), 10)+" - AS"+strconv.FormatUint(uint64(*r.EndAutnum), 10))
		}
		setStr(s, "name", r.Name)
		setCountry(s, r.Country)
		setRegistrant(s, r.Entities)
	case *rdap.Entity:
		setStr(s, "handle", r.Handle)
		if r.VCard != nil {
			if fn := r.VCard.FormattedName(); fn != "" {
				s.Set("name", fn)
			}
			if cc, ok := r.VCard.CountryCode(); ok {
				setCountry(s, &cc)
			}
		}
		if len(r.Roles) > 0 {
			roles := make([]string, len(r.Roles))
			for i, role := range r.Roles {
				roles[i] = string(role)
			}
			s.Set("roles", strings.Join(roles, ", "))
		}
	case *rdap.Nameserver:
		setStr(s, "handle", r.Handle)
		s.Set("ldhName", r.LDHName)
		if r.IPAddresses != nil {
			var addrs []any
			for _, a := range r.IPAddresses.V4 {
				addrs = append(addrs, a.String())
			}
			for _, a := range r.IPAddresses.V6 {
				addrs = append(addrs, a.String())
			}
			if addrs != nil {
				s.Set("addresses", addrs)
			}
		}
	case *rdap.KeySet:
		s.Set("handle", r.Handle)
		s.Set("keys", value.Number(strconv.Itoa(len(r.DNSKeys))))
	case *rdap.NsSet:
		s.Set("handle", r.Handle)
		s.Set("nameservers", value.Number(strconv.Itoa(len(r.Nameservers))))
	case *rdap.ErrorResponse:
		s.Set("errorCode", value.Number(strconv.Itoa(int(r.ErrorCode))))
		setStr(s, "title", r.Title)
	case *rdap.EntitySearchResults:
		s.Set("results", value.Number(strconv.Itoa(len(r.Results))))
	case *rdap.DomainSearchResults:
		s.Set("results", value.Number(strconv.Itoa(len(r.Results))))
	case *rdap.NameserverSearchResults:
		s.Set("results", value.Number(strconv.Itoa(len(r.Results))))
	case *rdap.NetworkSearchResults:
		s.Set("results", value.Number(strconv.Itoa(len(r.Results))))
	case *rdap.Help:
		s.Set("notices", value.Number(strconv.Itoa(len(r.Notices))))
	}
	return s
}

func setStr(s *value.Object, key string, v *string) {
	if v != nil {
		s.Set(key, *v)
	}
}

func setStatus(s *value.Object, status []rdap.Status) {
	if len(status) == 0 {
		return
	}
	out := make([]any, len(status))
	for i, st := range status {
		out[i] = string(st)
	}
	s.Set("status", out)
}

func setCountry(s *value.Object, cc *rdap.CountryCode) {
	if cc == nil {
		return
	}
	if name := cc.Name(); name != "" {
		s.Set("country", cc.String()+" ("+name+")")
		return
	}
	s.Set("country", cc.String())
}

func setRegistrant(s *value.Object, entities []rdap.Object) {
	for _, e := range rdap.EntitiesByRole(entities, rdap.RoleRegistrant) {
		if e.VCard != nil {
			if fn := e.VCard.FormattedName(); fn != "" {
				s.Set("registrant", fn)
				return
			}
		}
		if e.Handle != nil {
			s.Set("registrant", *e.Handle)
			return
		}
	}
}
