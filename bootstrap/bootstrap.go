// Package bootstrap decodes the IANA RDAP bootstrap registries (RFC 9224, formerly
// RFC 7484, and the RFC 8521 object tag registry) and answers which servers are
// responsible for a domain, address, autonomous system number or object tag.
package bootstrap

import (
	"context"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
	"time"

	rdap "github.com/reoring/rdap"
	"github.com/reoring/rdap/i18n"
	"github.com/reoring/rdap/value"
)

// Service is one entry of a registry: a set of keys served by a set of base URLs.
type Service interface {
	Keys() []string
	Servers() []string
}

// ServiceRFC7484 is the 2-tuple [keys, servers].
type ServiceRFC7484 struct {
	keys    []string
	servers []string
}

func (s ServiceRFC7484) Keys() []string    { return s.keys }
func (s ServiceRFC7484) Servers() []string { return s.servers }

// ServiceRFC8521 is the 3-tuple [contacts, tags, servers] of the object tag registry.
type ServiceRFC8521 struct {
	contacts []string
	keys     []string
	servers  []string
}

func (s ServiceRFC8521) Contacts() []string { return s.contacts }
func (s ServiceRFC8521) Keys() []string     { return s.keys }
func (s ServiceRFC8521) Servers() []string  { return s.servers }

// Registry is a decoded bootstrap file.
type Registry[S Service] struct {
	Description *string
	Publication time.Time
	Services    []S
	Version     string
}

// ParseRFC7484 decodes a DNS, IPv4, IPv6 or ASN registry.
func ParseRFC7484(ctx context.Context, data []byte, opts ...rdap.ParseOpt) (*Registry[ServiceRFC7484], error) {
	return parse(ctx, data, 2, func(t [][]string) ServiceRFC7484 {
		return ServiceRFC7484{keys: t[0], servers: t[1]}
	}, opts)
}

// ParseRFC8521 decodes the object tag registry.
func ParseRFC8521(ctx context.Context, data []byte, opts ...rdap.ParseOpt) (*Registry[ServiceRFC8521], error) {
	return parse(ctx, data, 3, func(t [][]string) ServiceRFC8521 {
		return ServiceRFC8521{contacts: t[0], keys: t[1], servers: t[2]}
	}, opts)
}

func parse[S Service](ctx context.Context, data []byte, arity int, build func([][]string) S, opts []rdap.ParseOpt) (*Registry[S], error) {
	v, err := rdap.ParseValue(ctx, rdap.JSONBytes(data), opts...)
	if err != nil {
		return nil, err
	}
	root, ok := v.(*value.Object)
	if !ok {
		return nil, issue("/", rdap.CodeInvalidType, "expected object")
	}
	reg := &Registry[S]{}
	if d, ok := root.Get("description"); ok && d != nil {
		s, ok := d.(string)
		if !ok {
			return nil, issue("/description", rdap.CodeInvalidType, "expected string")
		}
		reg.Description = &s
	}
	pub, err := requiredString(root, "publication")
	if err != nil {
		return nil, err
	}
	if reg.Publication, err = rdap.ParseTimestamp(pub); err != nil {
		return nil, issue("/publication", rdap.CodeInvalidFormat, "unparseable timestamp "+strconv.Quote(pub))
	}
	if reg.Version, err = requiredString(root, "version"); err != nil {
		return nil, err
	}
	raw, ok := root.Get("services")
	if !ok {
		return nil, issue("/services", rdap.CodeRequired, "missing field \"services\"")
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, issue("/services", rdap.CodeInvalidType, "expected array")
	}
	reg.Services = make([]S, 0, len(list))
	for i, e := range list {
		path := "/services/" + strconv.Itoa(i)
		tuple, ok := e.([]any)
		if !ok {
			return nil, issue(path, rdap.CodeInvalidType, "expected array")
		}
		if len(tuple) != arity {
			return nil, issue(path, rdap.CodeInvalidLength, fmt.Sprintf("service has %d elements, expected %d", len(tuple), arity))
		}
		cols := make([][]string, arity)
		for j, c := range tuple {
			if cols[j], err = stringList(path+"/"+strconv.Itoa(j), c); err != nil {
				return nil, err
			}
		}
		reg.Services = append(reg.Services, build(cols))
	}
	return reg, nil
}

// Lookup returns the servers of the first service listing key, compared ignoring case.
func (r *Registry[S]) Lookup(key string) ([]string, bool) {
	for _, s := range r.Services {
		for _, k := range s.Keys() {
			if strings.EqualFold(k, key) {
				return s.Servers(), true
			}
		}
	}
	return nil, false
}

// LookupDomain returns the servers for the longest registered suffix of name
// (label-wise, so "example.com" matches "com" but not "om").
func (r *Registry[S]) LookupDomain(name string) ([]string, bool) {
	name = strings.TrimSuffix(strings.ToLower(name), ".")
	for {
		if servers, ok := r.Lookup(name); ok {
			return servers, true
		}
		i := strings.IndexByte(name, '.')
		if i < 0 {
			return nil, false
		}
		name = name[i+1:]
	}
}

// LookupIP returns the servers of the most specific prefix containing addr.
func (r *Registry[S]) LookupIP(addr netip.Addr) ([]string, bool) {
	addr = addr.Unmap()
	best := -1
	var servers []string
	for _, s := range r.Services {
		for _, k := range s.Keys() {
			p, err := netip.ParsePrefix(k)
			if err != nil || !p.Contains(addr) || p.Bits() <= best {
				continue
			}
			best, servers = p.Bits(), s.Servers()
		}
	}
	return servers, best >= 0
}

// LookupASN returns the servers of the range ("first-last" or a single number)
// containing asn.
func (r *Registry[S]) LookupASN(asn uint32) ([]string, bool) {
	for _, s := range r.Services {
		for _, k := range s.Keys() {
			lo, hi, ok := asnRange(k)
			if ok && lo <= asn && asn <= hi {
				return s.Servers(), true
			}
		}
	}
	return nil, false
}

func asnRange(k string) (uint32, uint32, bool) {
	first, last, isRange := strings.Cut(k, "-")
	lo, err := strconv.ParseUint(strings.TrimSpace(first), 10, 32)
	if err != nil {
		return 0, 0, false
	}
	if !isRange {
		return uint32(lo), uint32(lo), true
	}
	hi, err := strconv.ParseUint(strings.TrimSpace(last), 10, 32)
	if err != nil || hi < lo {
		return 0, 0, false
	}
	return uint32(lo), uint32(hi), true
}

func requiredString(o *value.Object, key string) (string, error) {
	v, ok := o.Get(key)
	if !ok {
		return "", issue("/"+key, rdap.CodeRequired, "missing field "+strconv.Quote(key))
	}
	s, ok := v.(string)
	if !ok {
		return "", issue("/"+key, rdap.CodeInvalidType, "expected string")
	}
	return s, nil
}

func stringList(path string, v any) ([]string, error) {
	arr, ok := v.([]any)
	if !ok {
		return nil, issue(path, rdap.CodeInvalidType, "expected array of strings")
	}
	out := make([]string, len(arr))
	for i, e := range arr {
		s, ok := e.(string)
		if !ok {
			return nil, issue(path+"/"+strconv.Itoa(i), rdap.CodeInvalidType, "expected string")
		}
		out[i] = s
	}
	return out, nil
}

func issue(path, code, hint string) rdap.Issues {
	return rdap.Issues{{Path: path, Code: code, Message: i18n.T(code, nil), Hint: hint, Offset: -1}}
}
