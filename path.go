package teacollection

import (
	"strconv"

	"github.com/reoring/teacollection/i18n"
	eng "github.com/reoring/teacollection/internal/engine"
)

// pathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
// The zero value is the document root.
type pathRef struct {
	ptr string
}

func (p pathRef) Field(name string) pathRef { return pathRef{ptr: eng.JoinPointer(p.ptr, name)} }

func (p pathRef) Index(i int) pathRef { return pathRef{ptr: eng.JoinPointer(p.ptr, strconv.Itoa(i))} }

func (p pathRef) Pointer() string {
	if p.ptr == "" {
		return "/"
	}
	return p.ptr
}

// Issue creates an Issue at p. kv are alternating placeholder names and
// values passed to the message catalogue.
func (p pathRef) Issue(code, msgID string, kv ...string) Issue {
	var data map[string]string
	var params map[string]any
	if len(kv) > 1 {
		data = make(map[string]string, len(kv)/2)
		params = make(map[string]any, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			data[kv[i]] = kv[i+1]
			params[kv[i]] = kv[i+1]
		}
	}
	return Issue{Path: p.Pointer(), Code: code, Message: i18n.T(msgID, data), Params: params}
}
