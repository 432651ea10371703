package rdap

import (
	"fmt"

	"github.com/reoring/rdap/internal/vocab"
	"github.com/reoring/rdap/value"
)

// Open enumerations: the constants are the canonical spellings. A value read from
// the wire that matches none of them (ignoring case) is kept exactly as received,
// and Known reports false for it. Decoding an open enumeration never fails.

// Role is the relationship of an entity to its containing object.
type Role string

const (
	RoleRegistrant     Role = "registrant"
	RoleTechnical      Role = "technical"
	RoleAdministrative Role = "administrative"
	RoleAbuse          Role = "abuse"
	RoleBilling        Role = "billing"
	RoleRegistrar      Role = "registrar"
	RoleReseller       Role = "reseller"
	RoleSponsor        Role = "sponsor"
	RoleProxy          Role = "proxy"
	RoleNotifications  Role = "notifications"
	RoleNOC            Role = "noc"
)

var roles = vocab.New([]Role{
	RoleRegistrant, RoleTechnical, RoleAdministrative, RoleAbuse, RoleBilling, RoleRegistrar,
	RoleReseller, RoleSponsor, RoleProxy, RoleNotifications, RoleNOC,
}, nil)

func ParseRole(s string) Role { return roles.Normalize(s) }
func (r Role) Known() bool    { return roles.Known(r) }
func (r Role) String() string { return string(r) }

func (r *Role) UnmarshalText(b []byte) error {
	*r = ParseRole(string(b))
	return nil
}

// Status is an object state (RFC 9083 section 10.2.2 and the RFC 8056 EPP mapping).
type Status string

const (
	StatusValidated                Status = "validated"
	StatusRenewProhibited          Status = "renew prohibited"
	StatusUpdateProhibited         Status = "update prohibited"
	StatusTransferProhibited       Status = "transfer prohibited"
	StatusDeleteProhibited         Status = "delete prohibited"
	StatusProxy                    Status = "proxy"
	StatusPrivate                  Status = "private"
	StatusRemoved                  Status = "removed"
	StatusObscured                 Status = "obscured"
	StatusAssociated               Status = "associated"
	StatusActive                   Status = "active"
	StatusInactive                 Status = "inactive"
	StatusLocked                   Status = "locked"
	StatusPendingCreate            Status = "pending create"
	StatusPendingRenew             Status = "pending renew"
	StatusPendingTransfer          Status = "pending transfer"
	StatusPendingUpdate            Status = "pending update"
	StatusPendingDelete            Status = "pending delete"
	StatusAddPeriod                Status = "add period"
	StatusAutoRenewPeriod          Status = "auto renew period"
	StatusClientDeleteProhibited   Status = "client delete prohibited"
	StatusClientHold               Status = "client hold"
	StatusClientRenewProhibited    Status = "client renew prohibited"
	StatusClientTransferProhibited Status = "client transfer prohibited"
	StatusClientUpdateProhibited   Status = "client update prohibited"
	StatusPendingRestore           Status = "pending restore"
	StatusRedemptionPeriod         Status = "redemption period"
	StatusRenewPeriod              Status = "renew period"
	StatusServerDeleteProhibited   Status = "server delete prohibited"
	StatusServerRenewProhibited    Status = "server renew prohibited"
	StatusServerTransferProhibited Status = "server transfer prohibited"
	StatusServerUpdateProhibited   Status = "server update prohibited"
	StatusServerHold               Status = "server hold"
	StatusTransferPeriod           Status = "transfer period"
	// Non-standard, sent for nameservers by some ccTLD registries.
	StatusOK Status = "ok"
)

var statuses = vocab.New([]Status{
	StatusValidated, StatusRenewProhibited, StatusUpdateProhibited, StatusTransferProhibited,
	StatusDeleteProhibited, StatusProxy, StatusPrivate, StatusRemoved, StatusObscured,
	StatusAssociated, StatusActive, StatusInactive, StatusLocked, StatusPendingCreate,
	StatusPendingRenew, StatusPendingTransfer, StatusPendingUpdate, StatusPendingDelete,
	StatusAddPeriod, StatusAutoRenewPeriod, StatusClientDeleteProhibited, StatusClientHold,
	StatusClientRenewProhibited, StatusClientTransferProhibited, StatusClientUpdateProhibited,
	StatusPendingRestore, StatusRedemptionPeriod, StatusRenewPeriod,
	StatusServerDeleteProhibited, StatusServerRenewProhibited, StatusServerTransferProhibited,
	StatusServerUpdateProhibited, StatusServerHold, StatusTransferPeriod, StatusOK,
}, nil)

func ParseStatus(s string) Status { return statuses.Normalize(s) }
func (s Status) Known() bool      { return statuses.Known(s) }
func (s Status) String() string   { return string(s) }

func (s *Status) UnmarshalText(b []byte) error {
	*s = ParseStatus(string(b))
	return nil
}

// EventAction is the reason for an event.
type EventAction string

const (
	ActionRegistration    EventAction = "registration"
	ActionReregistration  EventAction = "reregistration"
	ActionLastChanged     EventAction = "last changed"
	ActionExpiration      EventAction = "expiration"
	ActionDeletion        EventAction = "deletion"
	ActionReinstantiation EventAction = "reinstantiation"
	ActionTransfer        EventAction = "transfer"
	ActionLocked          EventAction = "locked"
	ActionUnlocked        EventAction = "unlocked"
	// icann_rdap_response_profile_0
	ActionLastUpdateOfRDAPDatabase EventAction = "last update of RDAP database"
	ActionRegistrarExpiration      EventAction = "registrar expiration"
	// fred
	ActionEnumValidationExpiration EventAction = "enum validation expiration"
	// Seen in the .fi, .is and .br registries.
	ActionDelegationSignCheck            EventAction = "delegation sign check"
	ActionSoftExpiration                 EventAction = "soft expiration"
	ActionLastCorrectDelegationSignCheck EventAction = "last correct delegation sign check"
)

var eventActions = vocab.New([]EventAction{
	ActionRegistration, ActionReregistration, ActionLastChanged, ActionExpiration,
	ActionDeletion, ActionReinstantiation, ActionTransfer, ActionLocked, ActionUnlocked,
	ActionLastUpdateOfRDAPDatabase, ActionRegistrarExpiration, ActionEnumValidationExpiration,
	ActionDelegationSignCheck, ActionSoftExpiration, ActionLastCorrectDelegationSignCheck,
}, nil)

func ParseEventAction(s string) EventAction { return eventActions.Normalize(s) }
func (a EventAction) Known() bool           { return eventActions.Known(a) }
func (a EventAction) String() string        { return string(a) }

func (a *EventAction) UnmarshalText(b []byte) error {
	*a = ParseEventAction(string(b))
	return nil
}

// NoticeOrRemarkType classifies a notice or remark.
type NoticeOrRemarkType string

const (
	TypeResultSetTruncatedAuthorization NoticeOrRemarkType = "result set truncated due to authorization"
	TypeResultSetTruncatedLoad          NoticeOrRemarkType = "result set truncated due to excessive load"
	TypeResultSetTruncatedUnexplainable NoticeOrRemarkType = "result set truncated due to unexplainable reasons"
	TypeObjectTruncatedAuthorization    NoticeOrRemarkType = "object truncated due to authorization"
	TypeObjectTruncatedLoad             NoticeOrRemarkType = "object truncated due to excessive load"
	TypeObjectTruncatedUnexplainable    NoticeOrRemarkType = "object truncated due to unexplainable reasons"
	TypeObjectRedactedAuthorization     NoticeOrRemarkType = "object redacted due to authorization"
	TypeObjectTruncatedServerPolicy     NoticeOrRemarkType = "object truncated due to server policy"
	TypeResponseTruncatedAuthorization  NoticeOrRemarkType = "response truncated due to authorization"
)

var noticeTypes = vocab.New([]NoticeOrRemarkType{
	TypeResultSetTruncatedAuthorization, TypeResultSetTruncatedLoad, TypeResultSetTruncatedUnexplainable,
	TypeObjectTruncatedAuthorization, TypeObjectTruncatedLoad, TypeObjectTruncatedUnexplainable,
	TypeObjectRedactedAuthorization, TypeObjectTruncatedServerPolicy, TypeResponseTruncatedAuthorization,
}, map[string]NoticeOrRemarkType{
	// .lat sends the value with a trailing dot.
	"object redacted due to authorization.": TypeObjectRedactedAuthorization,
})

func ParseNoticeOrRemarkType(s string) NoticeOrRemarkType { return noticeTypes.Normalize(s) }
func (t NoticeOrRemarkType) Known() bool                  { return noticeTypes.Known(t) }
func (t NoticeOrRemarkType) String() string               { return string(t) }

func (t *NoticeOrRemarkType) UnmarshalText(b []byte) error {
	*t = ParseNoticeOrRemarkType(string(b))
	return nil
}

// Closed enumerations reject values outside their vocabulary.

// VariantRelation describes how a domain variant relates to the domain.
type VariantRelation string

const (
	RelationRegistered             VariantRelation = "registered"
	RelationUnregistered           VariantRelation = "unregistered"
	RelationRegistrationRestricted VariantRelation = "registration restricted"
	RelationOpenRegistration       VariantRelation = "open registration"
	RelationConjoined              VariantRelation = "conjoined"
)

var variantRelations = vocab.New([]VariantRelation{
	RelationRegistered, RelationUnregistered, RelationRegistrationRestricted,
	RelationOpenRegistration, RelationConjoined,
}, nil)

// IPVersion is the protocol version of an IP network.
type IPVersion string

const (
	IPv4 IPVersion = "v4"
	IPv6 IPVersion = "v6"
)

var ipVersions = vocab.New([]IPVersion{IPv4, IPv6}, nil)

// ObjectClass is the objectClassName tag of an Object.
type ObjectClass string

const (
	ClassAutNum     ObjectClass = "autnum"
	ClassDomain     ObjectClass = "domain"
	ClassEntity     ObjectClass = "entity"
	ClassFredKeySet ObjectClass = "fred_keyset"
	ClassFredNsSet  ObjectClass = "fred_nsset"
	ClassIPNetwork  ObjectClass = "ip network"
	ClassNameserver ObjectClass = "nameserver"
)

var classes = vocab.New([]ObjectClass{
	ClassAutNum, ClassDomain, ClassEntity, ClassFredKeySet, ClassFredNsSet, ClassIPNetwork, ClassNameserver,
}, map[string]ObjectClass{
	"fredkeyset": ClassFredKeySet,
	"frednsset":  ClassFredNsSet,
})

func lookupClass(tag string) (ObjectClass, bool) { return classes.Lookup(tag) }

func parseClosed[T ~string](t *vocab.Table[T], what, path string, v any) (T, error) {
	s, err := asString(path, v)
	if err != nil {
		return "", err
	}
	c, ok := t.Lookup(s)
	if !ok {
		return "", issueAt(path, CodeInvalidValue, fmt.Sprintf("unknown %s %q", what, s), nil)
	}
	return c, nil
}

// openList decodes an optional array of open enumeration values.
func openList[T ~string](f *fields, key string, t *vocab.Table[T]) ([]T, error) {
	return listOf(f, key, false, func(_ *decoder, path string, v any) (T, error) {
		s, err := asString(path, v)
		return t.Normalize(s), err
	})
}

func optOpen[T ~string](f *fields, key string, t *vocab.Table[T]) (*T, error) {
	s, err := f.optStr(key)
	if err != nil || s == nil {
		return nil, err
	}
	v := t.Normalize(*s)
	return &v, nil
}

func putEnums[T ~string](o *value.Object, key string, vs []T, required bool) {
	if vs == nil && !required {
		return
	}
	arr := make([]any, len(vs))
	for i, v := range vs {
		arr[i] = string(v)
	}
	o.Set(key, arr)
}
