package teacollection

// Document keys. The same name may be used at several nesting levels.
const (
	KeyFormatTag          = "tcoFormat"
	KeySpecVersion        = "specVersion"
	KeyCollectionID       = "UUID"
	KeyProductName        = "product_name"
	KeyProductVersion     = "product_version"
	KeyProductReleaseDate = "product_release_date"
	KeyProductTEIID       = "product_tei_id"
	KeyVersion            = "version"
	KeyAuthorName         = "author_name"
	KeyAuthorOrg          = "author_org"
	KeyAuthorEmail        = "author_email"
	KeyArtefacts          = "artefacts"

	KeyID          = "uuid"
	KeyName        = "name"
	KeyDescription = "description"
	KeyFormats     = "formats"

	KeyBOMIdentifier = "bom-identifier"
	KeyMediaType     = "mediatype"
	KeyCategory      = "category"
	KeyURL           = "url"
	KeySigURL        = "sigurl"
	KeyHash          = "hash"
	KeySize          = "size"
)

// Envelope values accepted by this implementation.
const (
	FormatTag   = "TEA-collection"
	SpecVersion = "1.0"
)

// vocabulary pools the keys of every level into one namespace. A key that
// belongs to artefacts is therefore also accepted inside a format node.
var vocabulary = func() map[string]struct{} {
	keys := Vocabulary()
	m := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}
	return m
}()

// IsKnown reports whether key belongs to the document vocabulary.
func IsKnown(key string) bool {
	_, ok := vocabulary[key]
	return ok
}

// Vocabulary returns the recognized keys in declaration order of the
// document shape.
func Vocabulary() []string {
	return []string{
		KeyFormatTag, KeySpecVersion, KeyCollectionID,
		KeyProductName, KeyProductVersion, KeyProductReleaseDate, KeyProductTEIID,
		KeyVersion, KeyAuthorName, KeyAuthorOrg, KeyAuthorEmail, KeyArtefacts,
		KeyID, KeyName, KeyDescription, KeyFormats,
		KeyBOMIdentifier, KeyMediaType, KeyCategory, KeyURL, KeySigURL, KeyHash, KeySize,
	}
}
