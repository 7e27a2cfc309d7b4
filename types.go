package teacollection

import "go.uber.org/zap"

// DefaultMaxDepth bounds container nesting when ParseOpt.MaxDepth is zero.
// A well-formed collection needs five levels.
const DefaultMaxDepth = 64

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity // Ignore, Warn (logged) or Error (rejects input).
}

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

// ParseOpt bundles decoding and ingestion options.
type ParseOpt struct {
	Strictness Strictness
	// MaxDepth limits container nesting. Zero selects DefaultMaxDepth and a
	// negative value disables the limit.
	MaxDepth int
	// MaxBytes caps the raw input read from any Source. Zero means
	// unlimited.
	MaxBytes int64
	// StrictIdentifiers reports malformed uuid values as invalid_identifier
	// issues instead of silently keeping the generated identifier.
	StrictIdentifiers bool
	// Logger receives debug events. Nil disables logging.
	Logger *zap.Logger
}

func resolveOpt(opts []ParseOpt) ParseOpt {
	var opt ParseOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.MaxDepth == 0 {
		opt.MaxDepth = DefaultMaxDepth
	}
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}
	return opt
}
