package teacollection

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeStructural marks a list that appears where its owning entity is
	// missing, such as formats outside of an artefact.
	CodeStructural = "structural"
	// CodeUnknownKey marks a key outside the vocabulary.
	CodeUnknownKey = "unknown_key"
	// CodeRequired marks a required key missing from an element.
	CodeRequired = "required"
	// CodeInvalidValue marks a present field with an empty, null or wrong value.
	CodeInvalidValue = "invalid_value"
	// CodeInvalidIdentifier marks a malformed UUID. Only reported when
	// ParseOpt.StrictIdentifiers is set; otherwise the identifier is kept.
	CodeInvalidIdentifier = "invalid_identifier"
	CodeInvalidType       = "invalid_type"
	// Decode-time codes. Input carrying one of these is never traversed.
	CodeParseError   = "parse_error"
	CodeDuplicateKey = "duplicate_key"
	CodeTooDeep      = "too_deep"
	CodeTruncated    = "truncated"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /artefacts/0/formats/1/url).
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries structured parameters (e.g., {"key":"foo"}) for i18n
	// and logging.
	Params map[string]any
}

func (it Issue) String() string {
	if it.Path == "" {
		return it.Message
	}
	return it.Message + " (at " + it.Path + ")"
}

// Issues is a collection of validation errors that implements error.
// The issue count of a validation run is len(Issues).
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unknown_key at /artefacts/0/foo
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// Merge returns iss followed by more. It is the composition used when
// combining results of nested validation steps.
func (iss Issues) Merge(more Issues) Issues {
	if len(more) == 0 {
		return iss
	}
	return append(iss, more...)
}

// Messages renders every issue as a human readable line.
func (iss Issues) Messages() []string {
	out := make([]string, 0, len(iss))
	for _, it := range iss {
		out = append(out, it.String())
	}
	return out
}

// HasCode reports whether any issue carries code.
func (iss Issues) HasCode(code string) bool {
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
