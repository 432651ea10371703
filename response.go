package rdap

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/rdap/value"
)

// ErrorResponse is an RDAP error response (RFC 9083 section 6).
type ErrorResponse struct {
	ErrorCode       uint16
	Title           *string
	Description     []string
	RDAPConformance []string
	Notices         []NoticeOrRemark
	Lang            *string
}

func (e *ErrorResponse) decode(f *fields) (err error) {
	if e.ErrorCode, err = f.errorCode("errorCode"); err != nil {
		return err
	}
	if e.Title, err = f.optStr("title"); err != nil {
		return err
	}
	if e.Description, err = f.strs("description"); err != nil {
		return err
	}
	if e.RDAPConformance, err = f.strs("rdapConformance"); err != nil {
		return err
	}
	if e.Notices, err = records[NoticeOrRemark](f, "notices", false); err != nil {
		return err
	}
	e.Lang, err = f.optStr("lang")
	return err
}

func (e *ErrorResponse) encode(o *value.Object) {
	o.Set("errorCode", value.Number(strconv.FormatUint(uint64(e.ErrorCode), 10)))
	putStr(o, "title", e.Title)
	putStrs(o, "description", e.Description, false)
	putStrs(o, "rdapConformance", e.RDAPConformance, false)
	putList[NoticeOrRemark](o, "notices", e.Notices, false)
	putStr(o, "lang", e.Lang)
}

// errorCode accepts a JSON integer or a string of digits; some servers quote it.
func (f *fields) errorCode(key string) (uint16, error) {
	v, err := f.need(key)
	if err != nil {
		return 0, err
	}
	path := f.at(key)
	switch t := v.(type) {
	case value.Number:
		return asUint[uint16](path, t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" || strings.TrimLeft(s, "0123456789") != "" {
			return 0, issueAt(path, CodeInvalidValue, "error code is not numeric: "+quote(t), nil)
		}
		n, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			return 0, issueAt(path, CodeOverflow, fmt.Sprintf("error code %s exceeds 65535", s), err)
		}
		return uint16(n), nil
	default:
		return 0, issueAt(path, CodeInvalidType, "expected number or numeric string, got "+describe(v), nil)
	}
}

// Help is the response to a help query (RFC 9083 section 7).
type Help struct {
	RDAPConformance []string
	Notices         []NoticeOrRemark
}

func (h *Help) decode(f *fields) (err error) {
	if h.RDAPConformance, err = f.strs("rdapConformance"); err != nil {
		return err
	}
	h.Notices, err = records[NoticeOrRemark](f, "notices", false)
	return err
}

func (h *Help) encode(o *value.Object) {
	putStrs(o, "rdapConformance", h.RDAPConformance, false)
	putList[NoticeOrRemark](o, "notices", h.Notices, false)
}

// SearchResults is the shape shared by the search responses (RFC 9083 section 8):
// conformance, notices and one required array of results under a fixed key.
type SearchResults[T any, P interface {
	*T
	Record
}] struct {
	RDAPConformance []string
	Notices         []NoticeOrRemark
	Results         []T
}

func (s *SearchResults[T, P]) decodeAs(f *fields, key string) (err error) {
	if s.RDAPConformance, err = f.strs("rdapConformance"); err != nil {
		return err
	}
	if s.Notices, err = records[NoticeOrRemark](f, "notices", false); err != nil {
		return err
	}
	s.Results, err = records[T, P](f, key, true)
	return err
}

func (s *SearchResults[T, P]) encodeAs(o *value.Object, key string) {
	putStrs(o, "rdapConformance", s.RDAPConformance, false)
	putList[NoticeOrRemark](o, "notices", s.Notices, false)
	putList[T, P](o, key, s.Results, true)
}

// EntitySearchResults answers an entity search.
type EntitySearchResults struct {
	SearchResults[Entity, *Entity]
}

func (s *EntitySearchResults) decode(f *fields) error {
	return s.decodeAs(f, "entitySearchResults")
}

func (s *EntitySearchResults) encode(o *value.Object) {
	s.encodeAs(o, "entitySearchResults")
}

// DomainSearchResults answers a domain search.
type DomainSearchResults struct {
	SearchResults[Domain, *Domain]
}

func (s *DomainSearchResults) decode(f *fields) error {
	return s.decodeAs(f, "domainSearchResults")
}

func (s *DomainSearchResults) encode(o *value.Object) {
	s.encodeAs(o, "domainSearchResults")
}

// NameserverSearchResults answers a nameserver search.
type NameserverSearchResults struct {
	SearchResults[Nameserver, *Nameserver]
}

func (s *NameserverSearchResults) decode(f *fields) error {
	return s.decodeAs(f, "nameserverSearchResults")
}

func (s *NameserverSearchResults) encode(o *value.Object) {
	s.encodeAs(o, "nameserverSearchResults")
}

// NetworkSearchResults is the arin_originas0 response listing the networks
// originated by an autonomous system.
type NetworkSearchResults struct {
	SearchResults[IPNetwork, *IPNetwork]
}

func (s *NetworkSearchResults) decode(f *fields) error {
	return s.decodeAs(f, "arin_originas0_networkSearchResults")
}

func (s *NetworkSearchResults) encode(o *value.Object) {
	s.encodeAs(o, "arin_originas0_networkSearchResults")
}
