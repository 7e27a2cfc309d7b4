package teacollection

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/reoring/teacollection/i18n"
	"github.com/reoring/teacollection/tree"
)

// level selects which entity's leaf setters apply inside a mapping.
type level int

const (
	levelCollection level = iota
	levelArtefact
	levelFormat
)

// scope is the traversal context handed down the recursion.
type scope struct {
	// art is the artefact whose element is being traversed; formats lists
	// attach to it. Nil at the top level.
	art   *Artefact
	key   string // key under which the node was reached, "" at the root
	level level
	path  pathRef
	depth int // containers entered so far, including this node
}

func (sc scope) enter(key string, at pathRef) scope {
	return scope{art: sc.art, key: key, level: sc.level, path: at, depth: sc.depth + 1}
}

// walker builds one collection from one document. It is not reused.
type walker struct {
	coll *Collection
	opt  ParseOpt
	log  *zap.Logger
}

func newWalker(coll *Collection, opt ParseOpt) *walker {
	return &walker{coll: coll, opt: opt, log: opt.Logger}
}

// walk visits node and everything below it. Every issue found is returned;
// the walk never stops early except below the depth limit.
func (w *walker) walk(node tree.Value, sc scope) Issues {
	if node.IsScalar() {
		return nil
	}
	if w.opt.MaxDepth > 0 && sc.depth > w.opt.MaxDepth {
		return Issues{sc.path.Issue(CodeTooDeep, i18n.MsgTooDeep, "max", strconv.Itoa(w.opt.MaxDepth))}
	}
	if node.IsMapping() {
		return w.walkMapping(node, sc)
	}
	return w.walkSequence(node, sc)
}

func (w *walker) walkMapping(node tree.Value, sc scope) Issues {
	var iss Issues
	for _, m := range node.Members() {
		at := sc.path.Field(m.Key)
		if !IsKnown(m.Key) {
			w.log.Debug("unknown key", zap.String("path", at.Pointer()))
			iss = append(iss, at.Issue(CodeUnknownKey, i18n.MsgUnknownKey, "key", m.Key))
		}
		if !m.Value.IsScalar() {
			iss = iss.Merge(w.walk(m.Value, sc.enter(m.Key, at)))
			continue
		}
		// Artefact and format fields were applied on ingestion.
		if sc.level != levelCollection {
			continue
		}
		if set, ok := collectionFields[m.Key]; ok {
			if err := set(w.coll, m.Value); err != nil {
				iss = iss.Merge(w.fieldIssue(err, at))
			}
		}
	}
	return iss
}

func (w *walker) walkSequence(node tree.Value, sc scope) Issues {
	var iss Issues
	for i, elem := range node.Items() {
		at := sc.path.Index(i)
		child := sc.enter(sc.key, at)
		switch sc.key {
		case KeyArtefacts:
			art, more := w.ingestArtefact(elem, at)
			iss = iss.Merge(more)
			child.art, child.level = art, levelArtefact
		case KeyFormats:
			if sc.art == nil {
				iss = append(iss, at.Issue(CodeStructural, i18n.MsgFormatsWithoutArtefact))
			} else {
				iss = iss.Merge(w.ingestFormat(elem, sc.art, at))
			}
			child.art, child.level = nil, levelFormat
		}
		iss = iss.Merge(w.walk(elem, child))
	}
	return iss
}

// fieldIssue converts a setter error into issues, dropping malformed
// identifiers unless StrictIdentifiers is set.
func (w *walker) fieldIssue(err error, at pathRef) Issues {
	fe, ok := err.(*fieldError)
	if !ok {
		return nil
	}
	if fe.code == CodeInvalidIdentifier && !w.opt.StrictIdentifiers {
		w.log.Debug("keeping generated identifier", zap.String("path", at.Pointer()))
		return nil
	}
	return Issues{fe.issue(at)}
}
