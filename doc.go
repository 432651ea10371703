// Package rdap decodes and encodes RDAP (Registration Data Access Protocol) JSON
// documents as returned by domain, IP and AS-number registries.
//
// Registries disagree with the RFCs in many small ways. The decoder is tolerant
// where the data allows it and strict where it does not:
//
// - Open enumerations (Role, Status, EventAction, NoticeOrRemarkType and
// JCardDataType) match their vocabulary case-insensitively and keep anything else
// verbatim instead of failing.
// - Timestamps accept RFC 3339 plus three non-standard grammars seen in the wild.
// - errorCode may be a number or a numeric string.
// - Object kinds are dispatched on objectClassName; an unknown kind is an error.
//
// Failures are reported as Issues carrying a JSON Pointer, a code and a hint, in
// the same shape for every layer (tokenizer, dispatcher, field codecs).
//
// Typical usage:
//
//	obj, err := rdap.ParseObject(ctx, rdap.JSONBytes(body))
//	switch o := obj.(type) {
//	case *rdap.Domain:
//	    ...
//	}
//	out, err := rdap.Marshal(obj)
//
// Layout:
// - package value holds the ordered JSON tree used on both sides of the codec.
// - source/gojson (default) and source/json are the tokenizer drivers.
// - package bootstrap decodes the IANA bootstrap registries.
// - cmd/rdapcat is a small CLI around the codec.
package rdap
