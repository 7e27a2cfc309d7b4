package teacollection

import (
	"github.com/reoring/teacollection/i18n"
	"github.com/reoring/teacollection/tree"
)

// Artefact is a named deliverable of a collection, such as an SBOM or a VEX
// file. It owns its formats.
type Artefact struct {
	id          string
	name        string
	description string
	authorName  string
	authorOrg   string
	authorEmail string
	formats     []*Format
}

var (
	artefactKeys         = []string{KeyID, KeyName, KeyDescription, KeyAuthorName, KeyAuthorOrg, KeyAuthorEmail, KeyFormats}
	artefactRequiredKeys = []string{KeyID, KeyName}
)

// NewArtefact returns an empty artefact with a fresh identifier.
func NewArtefact() *Artefact { return &Artefact{id: newID()} }

func (a *Artefact) ID() string          { return a.id }
func (a *Artefact) Name() string        { return a.name }
func (a *Artefact) Description() string { return a.description }
func (a *Artefact) AuthorName() string  { return a.authorName }
func (a *Artefact) AuthorOrg() string   { return a.authorOrg }
func (a *Artefact) AuthorEmail() string { return a.authorEmail }

// Formats returns the attached formats in insertion order.
func (a *Artefact) Formats() []*Format { return append([]*Format(nil), a.formats...) }

// ReplaceID sets the identifier when candidate is a valid UUID. Otherwise
// the artefact is left unchanged and false is returned.
func (a *Artefact) ReplaceID(candidate string) bool {
	if !ValidID(candidate) {
		return false
	}
	a.id = candidate
	return true
}

func (a *Artefact) SetName(name string) bool        { return setString(&a.name, name) }
func (a *Artefact) SetDescription(desc string) bool { return setString(&a.description, desc) }

// SetAuthor updates the non-empty arguments and returns false only when all
// three are empty.
func (a *Artefact) SetAuthor(name, org, email string) bool {
	n := setString(&a.authorName, name)
	o := setString(&a.authorOrg, org)
	e := setString(&a.authorEmail, email)
	return n || o || e
}

// AddFormat attaches f and returns the number of formats afterwards. A nil
// format is ignored.
func (a *Artefact) AddFormat(f *Format) int {
	if f != nil {
		a.formats = append(a.formats, f)
	}
	return len(a.formats)
}

// Keys returns the document keys of an artefact element in output order.
func (a *Artefact) Keys() []string { return append([]string(nil), artefactKeys...) }

// RequiredKeys returns the keys that must be present in an artefact element.
func (a *Artefact) RequiredKeys() []string { return append([]string(nil), artefactRequiredKeys...) }

// Validate checks the artefact fields. Formats are not visited.
func (a *Artefact) Validate() Issues { return a.validate(pathRef{}) }

func (a *Artefact) validate(at pathRef) Issues {
	var iss Issues
	if a.name == "" {
		iss = append(iss, at.Field(KeyName).Issue(CodeInvalidValue, i18n.MsgArtefactNameMissing))
	}
	return iss
}

// Struct returns the artefact's own fields as a mapping in document order.
// The formats list is left to the caller.
func (a *Artefact) Struct() tree.Value {
	return tree.Mapping(
		tree.Field(KeyID, tree.String(a.id)),
		tree.Field(KeyName, optString(a.name)),
		tree.Field(KeyDescription, optString(a.description)),
		tree.Field(KeyAuthorName, optString(a.authorName)),
		tree.Field(KeyAuthorOrg, optString(a.authorOrg)),
		tree.Field(KeyAuthorEmail, optString(a.authorEmail)),
	)
}
