package teacollection

import (
	js "github.com/reoring/teacollection/jsonschema"
)

// JSONSchema describes the documents Ingest accepts. Every object level
// lists its own fields as properties and admits the rest of the shared
// vocabulary through propertyNames, mirroring the flat key namespace.
func JSONSchema() *js.Schema {
	names := Vocabulary()
	zero := int64(0)

	format := js.Object(map[string]*js.Schema{
		KeyID:            identifierSchema(),
		KeyBOMIdentifier: js.Nullable(js.String(0)),
		KeyMediaType:     js.Nullable(js.String(0)),
		KeyCategory:      js.Nullable(js.String(0)),
		KeyURL:           js.String(1),
		KeySigURL:        js.Nullable(js.String(0)),
		KeyHash:          js.Nullable(js.String(0)),
		KeySize:          js.Integer(&zero),
	}, NewFormat().RequiredKeys(), names)

	artefact := js.Object(map[string]*js.Schema{
		KeyID:          identifierSchema(),
		KeyName:        js.String(1),
		KeyDescription: js.Nullable(js.String(0)),
		KeyAuthorName:  js.Nullable(js.String(0)),
		KeyAuthorOrg:   js.Nullable(js.String(0)),
		KeyAuthorEmail: js.Nullable(js.String(0)),
		KeyFormats:     js.ArrayOf(format),
	}, NewArtefact().RequiredKeys(), names)

	// product_name is not a required key but an empty one fails validation
	required := append(NewCollection().RequiredKeys(), KeyProductName)
	root := js.Object(map[string]*js.Schema{
		KeyFormatTag:          {Type: "string", Const: FormatTag},
		KeySpecVersion:        {Type: "string", Const: SpecVersion},
		KeyCollectionID:       identifierSchema(),
		KeyProductName:        js.String(1),
		KeyProductVersion:     js.Nullable(js.String(0)),
		KeyProductReleaseDate: js.Nullable(js.String(0)),
		KeyProductTEIID:       js.Nullable(js.String(0)),
		KeyVersion:            js.Integer(nil),
		KeyAuthorName:         js.Nullable(js.String(0)),
		KeyAuthorOrg:          js.Nullable(js.String(0)),
		KeyAuthorEmail:        js.Nullable(js.String(0)),
		KeyArtefacts:          js.ArrayOf(artefact),
	}, required, names)
	root.Dialect = js.Draft
	root.Title = "TEA collection"
	return root
}

func identifierSchema() *js.Schema {
	s := js.String(1)
	s.Format = "uuid"
	return s
}
