package teacollection

import (
	"strconv"
	"strings"

	"github.com/reoring/teacollection/i18n"
	"github.com/reoring/teacollection/tree"
)

// fieldSetter applies one document value to an entity. A non-nil error is a
// *fieldError describing why the value was rejected.
type fieldSetter[E any] func(e E, v tree.Value) error

type fieldError struct {
	code  string
	msgID string
	kv    []string
}

func (e *fieldError) Error() string { return i18n.T(e.msgID, nil) }

func (e *fieldError) issue(at pathRef) Issue { return at.Issue(e.code, e.msgID, e.kv...) }

// collectionFields maps the leaf keys of the top level to setters. Bundled
// setters are called with the other arguments empty so that only one
// sub-field changes.
var collectionFields = map[string]fieldSetter[*Collection]{
	KeyCollectionID: func(c *Collection, v tree.Value) error {
		return replaceID(c, "collection", v)
	},
	KeyProductName: func(c *Collection, v tree.Value) error {
		c.SetProduct(leafText(v), "", "", "")
		return nil
	},
	KeyProductVersion: func(c *Collection, v tree.Value) error {
		c.SetProduct("", leafText(v), "", "")
		return nil
	},
	KeyProductReleaseDate: func(c *Collection, v tree.Value) error {
		c.SetProduct("", "", leafText(v), "")
		return nil
	},
	KeyProductTEIID: func(c *Collection, v tree.Value) error {
		c.SetProduct("", "", "", leafText(v))
		return nil
	},
	KeyVersion: func(c *Collection, v tree.Value) error {
		if v.IsNull() {
			c.ClearVersion()
			return nil
		}
		n, ok := intOf(v)
		if !ok {
			return &fieldError{code: CodeInvalidValue, msgID: i18n.MsgVersionInvalid}
		}
		c.SetVersion(n)
		return nil
	},
	KeyAuthorName: func(c *Collection, v tree.Value) error {
		c.SetAuthor(leafText(v), "", "")
		return nil
	},
	KeyAuthorOrg: func(c *Collection, v tree.Value) error {
		c.SetAuthor("", leafText(v), "")
		return nil
	},
	KeyAuthorEmail: func(c *Collection, v tree.Value) error {
		c.SetAuthor("", "", leafText(v))
		return nil
	},
}

var artefactFields = map[string]fieldSetter[*Artefact]{
	KeyName: func(a *Artefact, v tree.Value) error {
		a.SetName(leafText(v))
		return nil
	},
	KeyDescription: func(a *Artefact, v tree.Value) error {
		a.SetDescription(leafText(v))
		return nil
	},
	KeyAuthorName: func(a *Artefact, v tree.Value) error {
		a.SetAuthor(leafText(v), "", "")
		return nil
	},
	KeyAuthorOrg: func(a *Artefact, v tree.Value) error {
		a.SetAuthor("", leafText(v), "")
		return nil
	},
	KeyAuthorEmail: func(a *Artefact, v tree.Value) error {
		a.SetAuthor("", "", leafText(v))
		return nil
	},
}

var formatFields = map[string]fieldSetter[*Format]{
	KeyBOMIdentifier: func(f *Format, v tree.Value) error {
		f.SetBOMIdentifier(leafText(v))
		return nil
	},
	KeyMediaType: func(f *Format, v tree.Value) error {
		f.SetMediaType(leafText(v))
		return nil
	},
	KeyCategory: func(f *Format, v tree.Value) error {
		f.SetCategory(leafText(v))
		return nil
	},
	KeyURL: func(f *Format, v tree.Value) error {
		f.SetURL(leafText(v), "")
		return nil
	},
	KeySigURL: func(f *Format, v tree.Value) error {
		f.SetURL("", leafText(v))
		return nil
	},
	KeyHash: func(f *Format, v tree.Value) error {
		f.SetHash(leafText(v))
		return nil
	},
	KeySize: func(f *Format, v tree.Value) error {
		if v.IsNull() {
			return nil
		}
		n, ok := intOf(v)
		if !ok || !f.SetSize(n) {
			return &fieldError{code: CodeInvalidValue, msgID: i18n.MsgFormatSizeInvalid}
		}
		return nil
	},
}

// applyFields runs the setter of every key in keys that elem carries.
func applyFields[E any](e E, table map[string]fieldSetter[E], keys []string, elem tree.Value, at pathRef) Issues {
	var iss Issues
	for _, key := range keys {
		set, ok := table[key]
		if !ok {
			continue
		}
		v, present := elem.Get(key)
		if !present {
			continue
		}
		if err := set(e, v); err != nil {
			if fe, ok := err.(*fieldError); ok {
				iss = append(iss, fe.issue(at.Field(key)))
			}
		}
	}
	return iss
}

// replaceID rehydrates an identifier from the document. Null or empty values
// are left alone here; callers decide whether that is an error.
func replaceID(e identifiable, entity string, v tree.Value) error {
	s := leafText(v)
	if s == "" || e.ReplaceID(s) {
		return nil
	}
	return &fieldError{code: CodeInvalidIdentifier, msgID: i18n.MsgInvalidIdentifier, kv: []string{"entity", entity, "value", s}}
}

// leafText renders a scalar as the string stored by setters. Null yields
// the empty string, which setters treat as absent.
func leafText(v tree.Value) string {
	switch v.Kind() {
	case tree.KindString:
		s, _ := v.AsString()
		return s
	case tree.KindNumber:
		s, _ := v.NumberLiteral()
		return s
	case tree.KindBool:
		b, _ := v.AsBool()
		return strconv.FormatBool(b)
	default:
		return ""
	}
}

// intOf accepts integral numbers and strings holding a decimal integer.
func intOf(v tree.Value) (int64, bool) {
	if n, ok := v.AsInt(); ok {
		return n, true
	}
	if s, ok := v.AsString(); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		return n, err == nil
	}
	return 0, false
}
