package teacollection

import (
	"context"

	"go.uber.org/zap"

	"github.com/reoring/teacollection/i18n"
	"github.com/reoring/teacollection/tree"
)

// Ingest builds a Collection from a decoded document. The whole tree is
// walked and every violation is collected; the Collection is returned only
// when none was found. Otherwise the error is the complete Issues list.
func Ingest(ctx context.Context, doc tree.Value, opts ...ParseOpt) (*Collection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opt := resolveOpt(opts)
	if !doc.IsMapping() {
		return nil, Issues{pathRef{}.Issue(CodeInvalidType, i18n.MsgNotAMapping, "entity", "document")}
	}

	coll := NewCollection()
	w := newWalker(coll, opt)
	iss := w.walk(doc, scope{level: levelCollection, depth: 1})
	iss = iss.Merge(checkEnvelope(coll, doc))
	iss = iss.Merge(coll.validate(pathRef{}))
	if len(iss) > 0 {
		opt.Logger.Debug("document rejected", zap.Int("issues", len(iss)))
		return nil, iss
	}
	opt.Logger.Debug("document accepted",
		zap.String("uuid", coll.ID()),
		zap.Int("artefacts", len(coll.artefacts)),
	)
	return coll, nil
}

// envelopeField holds the literal an envelope key must carry and the
// messages used when it is missing or different.
type envelopeField struct {
	want     string
	missing  string
	mismatch string
}

var envelope = map[string]envelopeField{
	KeyFormatTag:   {want: FormatTag, missing: i18n.MsgFormatTagMissing, mismatch: i18n.MsgFormatTagMismatch},
	KeySpecVersion: {want: SpecVersion, missing: i18n.MsgSpecVersionMissing, mismatch: i18n.MsgSpecVersionUnsupported},
}

// checkEnvelope verifies the required top-level keys of doc against the
// literals they must carry.
func checkEnvelope(c *Collection, doc tree.Value) Issues {
	var iss Issues
	root := pathRef{}
	for _, key := range c.RequiredKeys() {
		at := root.Field(key)
		v, ok := doc.Get(key)
		if !ok {
			msg := i18n.MsgRequiredKey
			if e, known := envelope[key]; known {
				msg = e.missing
			}
			iss = append(iss, at.Issue(CodeRequired, msg, "entity", "collection", "key", key))
			continue
		}
		e, known := envelope[key]
		if !known {
			continue
		}
		if s, _ := v.AsString(); s != e.want {
			iss = append(iss, at.Issue(CodeInvalidValue, e.mismatch, "got", leafText(v)))
		}
	}
	return iss
}
