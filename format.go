package teacollection

import (
	"github.com/reoring/teacollection/i18n"
	"github.com/reoring/teacollection/tree"
)

// Format describes one concrete distribution of an artefact: where it can be
// fetched, its signature, hash, size and media type. Hashes and signatures
// are stored as given and never verified.
type Format struct {
	id            string
	bomIdentifier string
	mediaType     string
	category      string
	url           string
	sigURL        string
	hash          string
	size          int64
}

var (
	formatKeys         = []string{KeyID, KeyBOMIdentifier, KeyMediaType, KeyCategory, KeyURL, KeySigURL, KeyHash, KeySize}
	formatRequiredKeys = []string{KeyID, KeyURL}
)

// NewFormat returns an empty format with a fresh identifier.
func NewFormat() *Format { return &Format{id: newID()} }

func (f *Format) ID() string            { return f.id }
func (f *Format) BOMIdentifier() string { return f.bomIdentifier }
func (f *Format) MediaType() string     { return f.mediaType }
func (f *Format) Category() string      { return f.category }
func (f *Format) URL() string           { return f.url }
func (f *Format) SigURL() string        { return f.sigURL }
func (f *Format) Hash() string          { return f.hash }
func (f *Format) Size() int64           { return f.size }

// ReplaceID sets the identifier when candidate is a valid UUID. Otherwise
// the format is left unchanged and false is returned.
func (f *Format) ReplaceID(candidate string) bool {
	if !ValidID(candidate) {
		return false
	}
	f.id = candidate
	return true
}

func (f *Format) SetBOMIdentifier(id string) bool { return setString(&f.bomIdentifier, id) }
func (f *Format) SetMediaType(mt string) bool     { return setString(&f.mediaType, mt) }
func (f *Format) SetCategory(c string) bool       { return setString(&f.category, c) }
func (f *Format) SetHash(h string) bool           { return setString(&f.hash, h) }

// SetURL sets the download URL and the signature URL. Either may be empty
// to keep its current value; false is returned only when both are empty.
func (f *Format) SetURL(url, sigURL string) bool {
	a := setString(&f.url, url)
	b := setString(&f.sigURL, sigURL)
	return a || b
}

// SetSize sets the size in bytes. Negative sizes are rejected.
func (f *Format) SetSize(n int64) bool {
	if n < 0 {
		return false
	}
	f.size = n
	return true
}

// Keys returns the document keys of a format element in output order.
func (f *Format) Keys() []string { return append([]string(nil), formatKeys...) }

// RequiredKeys returns the keys that must be present in a format element.
func (f *Format) RequiredKeys() []string { return append([]string(nil), formatRequiredKeys...) }

// Validate checks the format on its own.
func (f *Format) Validate() Issues { return f.validate(pathRef{}) }

func (f *Format) validate(at pathRef) Issues {
	var iss Issues
	if f.url == "" {
		iss = append(iss, at.Field(KeyURL).Issue(CodeInvalidValue, i18n.MsgFormatURLMissing))
	}
	return iss
}

// Struct returns the format fields as a mapping in document order.
func (f *Format) Struct() tree.Value {
	return tree.Mapping(
		tree.Field(KeyID, tree.String(f.id)),
		tree.Field(KeyBOMIdentifier, optString(f.bomIdentifier)),
		tree.Field(KeyMediaType, optString(f.mediaType)),
		tree.Field(KeyCategory, optString(f.category)),
		tree.Field(KeyURL, optString(f.url)),
		tree.Field(KeySigURL, optString(f.sigURL)),
		tree.Field(KeyHash, optString(f.hash)),
		tree.Field(KeySize, tree.Int(f.size)),
	)
}

// setString overwrites *dst unless v is empty.
func setString(dst *string, v string) bool {
	if v == "" {
		return false
	}
	*dst = v
	return true
}

// optString renders an unset field as null.
func optString(s string) tree.Value {
	if s == "" {
		return tree.Null()
	}
	return tree.String(s)
}
