package teacollection

import (
	"github.com/reoring/teacollection/i18n"
	"github.com/reoring/teacollection/tree"
)

// Collection is the root entity of a TEA collection document. It describes
// one product release and owns the artefacts published for it.
type Collection struct {
	id                 string
	productName        string
	productVersion     string
	productReleaseDate string
	productTEIID       string
	version            *int64
	authorName         string
	authorOrg          string
	authorEmail        string
	artefacts          []*Artefact
}

var collectionKeys = []string{
	KeyFormatTag, KeySpecVersion, KeyCollectionID,
	KeyProductName, KeyProductVersion, KeyProductReleaseDate, KeyProductTEIID,
	KeyVersion, KeyAuthorName, KeyAuthorOrg, KeyAuthorEmail, KeyArtefacts,
}

// NewCollection returns an empty collection with a fresh identifier and
// version 0.
func NewCollection() *Collection {
	var v int64
	return &Collection{id: newID(), version: &v}
}

func (c *Collection) ID() string                 { return c.id }
func (c *Collection) ProductName() string        { return c.productName }
func (c *Collection) ProductVersion() string     { return c.productVersion }
func (c *Collection) ProductReleaseDate() string { return c.productReleaseDate }
func (c *Collection) ProductTEIID() string       { return c.productTEIID }
func (c *Collection) AuthorName() string         { return c.authorName }
func (c *Collection) AuthorOrg() string          { return c.authorOrg }
func (c *Collection) AuthorEmail() string        { return c.authorEmail }

// Version returns the collection version; ok is false when it was cleared.
func (c *Collection) Version() (v int64, ok bool) {
	if c.version == nil {
		return 0, false
	}
	return *c.version, true
}

// Artefacts returns the attached artefacts in insertion order.
func (c *Collection) Artefacts() []*Artefact { return append([]*Artefact(nil), c.artefacts...) }

// ReplaceID sets the identifier when candidate is a valid UUID. Otherwise
// the collection is left unchanged and false is returned.
func (c *Collection) ReplaceID(candidate string) bool {
	if !ValidID(candidate) {
		return false
	}
	c.id = candidate
	return true
}

// SetProduct updates the non-empty arguments and returns false only when all
// four are empty.
func (c *Collection) SetProduct(name, version, releaseDate, teiID string) bool {
	n := setString(&c.productName, name)
	v := setString(&c.productVersion, version)
	r := setString(&c.productReleaseDate, releaseDate)
	t := setString(&c.productTEIID, teiID)
	return n || v || r || t
}

// SetAuthor updates the non-empty arguments and returns false only when all
// three are empty.
func (c *Collection) SetAuthor(name, org, email string) bool {
	n := setString(&c.authorName, name)
	o := setString(&c.authorOrg, org)
	e := setString(&c.authorEmail, email)
	return n || o || e
}

// SetVersion sets the collection version.
func (c *Collection) SetVersion(v int64) bool {
	c.version = &v
	return true
}

// ClearVersion records an explicit null version, which fails validation.
func (c *Collection) ClearVersion() { c.version = nil }

// AddArtefact attaches a. It returns false for a nil artefact.
func (c *Collection) AddArtefact(a *Artefact) bool {
	if a == nil {
		return false
	}
	c.artefacts = append(c.artefacts, a)
	return true
}

// Keys returns the top-level document keys in output order.
func (c *Collection) Keys() []string { return append([]string(nil), collectionKeys...) }

// RequiredKeys returns the envelope keys a document must carry. Product
// name and version are checked by Validate once the collection is built.
func (c *Collection) RequiredKeys() []string { return []string{KeyFormatTag, KeySpecVersion} }

// Validate checks the collection fields. Artefacts are not visited.
func (c *Collection) Validate() Issues { return c.validate(pathRef{}) }

func (c *Collection) validate(at pathRef) Issues {
	var iss Issues
	if c.productName == "" {
		iss = append(iss, at.Field(KeyProductName).Issue(CodeInvalidValue, i18n.MsgProductNameMissing))
	}
	if c.version == nil {
		iss = append(iss, at.Field(KeyVersion).Issue(CodeInvalidValue, i18n.MsgVersionMissing))
	}
	return iss
}

// Struct returns the envelope and collection fields as a mapping in
// document order. The artefacts list is left to the caller.
func (c *Collection) Struct() tree.Value {
	version := tree.Null()
	if c.version != nil {
		version = tree.Int(*c.version)
	}
	return tree.Mapping(
		tree.Field(KeyFormatTag, tree.String(FormatTag)),
		tree.Field(KeySpecVersion, tree.String(SpecVersion)),
		tree.Field(KeyCollectionID, tree.String(c.id)),
		tree.Field(KeyProductName, optString(c.productName)),
		tree.Field(KeyProductVersion, optString(c.productVersion)),
		tree.Field(KeyProductReleaseDate, optString(c.productReleaseDate)),
		tree.Field(KeyProductTEIID, optString(c.productTEIID)),
		tree.Field(KeyVersion, version),
		tree.Field(KeyAuthorName, optString(c.authorName)),
		tree.Field(KeyAuthorOrg, optString(c.authorOrg)),
		tree.Field(KeyAuthorEmail, optString(c.authorEmail)),
	)
}
