package teacollection

import (
	"bytes"

	j "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/teacollection/tree"
)

// Serialize renders c as a document tree: the collection fields followed by
// its artefacts, each followed by its formats. Ingesting the result yields a
// collection equal to c.
func Serialize(c *Collection) tree.Value {
	arts := make([]tree.Value, 0, len(c.artefacts))
	for _, a := range c.artefacts {
		fmts := make([]tree.Value, 0, len(a.formats))
		for _, f := range a.formats {
			fmts = append(fmts, f.Struct())
		}
		arts = append(arts, withField(a.Struct(), KeyFormats, tree.Sequence(fmts...)))
	}
	return withField(c.Struct(), KeyArtefacts, tree.Sequence(arts...))
}

func withField(m tree.Value, key string, v tree.Value) tree.Value {
	ms := m.Members()
	members := append(ms[:len(ms):len(ms)], tree.Field(key, v))
	return tree.Mapping(members...)
}

// Marshal renders c as indented JSON.
func Marshal(c *Collection) ([]byte, error) {
	raw, err := Serialize(c).MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := j.Indent(&buf, raw, "", "    "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// MarshalYAML renders c as a YAML document.
func MarshalYAML(c *Collection) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Serialize(c).YAMLNode()); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
