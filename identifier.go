package teacollection

import "github.com/google/uuid"

// newID returns a fresh random (version 4) UUID string.
func newID() string { return uuid.NewString() }

// ValidID reports whether s is syntactically a UUID. The hyphenated form as
// well as the braced and urn:uuid: forms are accepted.
func ValidID(s string) bool {
	if s == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// identifiable is implemented by every entity.
type identifiable interface {
	ID() string
	ReplaceID(candidate string) bool
}
