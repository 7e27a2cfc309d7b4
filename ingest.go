package teacollection

import (
	"go.uber.org/zap"

	"github.com/reoring/teacollection/i18n"
	"github.com/reoring/teacollection/tree"
)

// ingestArtefact materializes one element of an artefacts list. The returned
// artefact is the context for the element's own formats list; it is attached
// to the collection only when the element produced no issues. The artefact is
// nil when elem is not a mapping.
func (w *walker) ingestArtefact(elem tree.Value, at pathRef) (*Artefact, Issues) {
	if !elem.IsMapping() {
		return nil, Issues{at.Issue(CodeInvalidType, i18n.MsgNotAMapping, "entity", "artefact")}
	}
	art := NewArtefact()
	iss := w.ingestCommon(art, "artefact", art.RequiredKeys(), elem, at)
	iss = iss.Merge(applyFields(art, artefactFields, art.Keys(), elem, at))
	iss = iss.Merge(art.validate(at))
	if len(iss) == 0 {
		w.coll.AddArtefact(art)
		w.log.Debug("artefact attached", zap.String("path", at.Pointer()), zap.String("uuid", art.ID()))
	} else {
		w.log.Debug("artefact discarded", zap.String("path", at.Pointer()), zap.Int("issues", len(iss)))
	}
	return art, iss
}

// ingestFormat materializes one element of a formats list and attaches it to
// parent when the element produced no issues.
func (w *walker) ingestFormat(elem tree.Value, parent *Artefact, at pathRef) Issues {
	if !elem.IsMapping() {
		return Issues{at.Issue(CodeInvalidType, i18n.MsgNotAMapping, "entity", "format")}
	}
	f := NewFormat()
	iss := w.ingestCommon(f, "format", f.RequiredKeys(), elem, at)
	iss = iss.Merge(applyFields(f, formatFields, f.Keys(), elem, at))
	iss = iss.Merge(f.validate(at))
	if len(iss) == 0 {
		n := parent.AddFormat(f)
		w.log.Debug("format attached", zap.String("path", at.Pointer()), zap.Int("formats", n))
	} else {
		w.log.Debug("format discarded", zap.String("path", at.Pointer()), zap.Int("issues", len(iss)))
	}
	return iss
}

// ingestCommon checks the required keys of elem and rehydrates its uuid.
func (w *walker) ingestCommon(e identifiable, entity string, required []string, elem tree.Value, at pathRef) Issues {
	var iss Issues
	for _, key := range required {
		if !elem.Has(key) {
			iss = append(iss, at.Field(key).Issue(CodeRequired, i18n.MsgRequiredKey, "entity", entity, "key", key))
		}
	}
	v, ok := elem.Get(KeyID)
	if !ok {
		return iss
	}
	if leafText(v) == "" {
		return append(iss, at.Field(KeyID).Issue(CodeInvalidValue, i18n.MsgUUIDNotDefined, "entity", entity))
	}
	if err := replaceID(e, entity, v); err != nil {
		iss = iss.Merge(w.fieldIssue(err, at.Field(KeyID)))
	}
	return iss
}
