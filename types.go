package rdap

// UnknownPolicy controls how object keys that no record field claims are handled.
type UnknownPolicy int

const (
	UnknownStrip  UnknownPolicy = iota // Drop unknown keys (registries add vendor members freely).
	UnknownStrict                      // Reject unknown keys with an error.
)

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Ignore, Warn (reported through ParseOpt.Warn) or Error.
}

// Default limits applied when the corresponding ParseOpt field is zero.
const (
	DefaultMaxDepth     = 32
	DefaultMaxJSONDepth = 512
)

// ParseOpt bundles decoding options.
type ParseOpt struct {
	Strictness Strictness
	// MaxDepth bounds how deeply RDAP objects may nest inside each other
	// (entities within entities, nameservers within domains, ...). The top-level
	// object is depth 1.
	MaxDepth int
	// MaxJSONDepth bounds raw array/object nesting while tokenizing JSON text.
	MaxJSONDepth int
	// MaxBytes caps the input size when known (0 means unlimited).
	MaxBytes int64
	Unknown  UnknownPolicy
	// Warn receives non-fatal issues such as duplicate keys under Warn severity.
	Warn func(Issue)
}

func resolveOpt(opts []ParseOpt) ParseOpt {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.MaxDepth <= 0 {
		opt.MaxDepth = DefaultMaxDepth
	}
	if opt.MaxJSONDepth <= 0 {
		opt.MaxJSONDepth = DefaultMaxJSONDepth
	}
	return opt
}
