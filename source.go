package teacollection

import (
	"bytes"
	"io"

	eng "github.com/reoring/teacollection/internal/engine"
	"github.com/reoring/teacollection/source/gojson"
	yamlsrc "github.com/reoring/teacollection/source/yaml"
)

// Source is a document input. Obtain one with JSONBytes, JSONReader,
// YAMLBytes or YAMLReader. A Source is read once.
type Source interface {
	// Format names the encoding ("json" or "yaml").
	Format() string
	input() io.Reader
	tokens(r io.Reader) eng.TokenSource
}

type engineSource struct {
	format    string
	r         io.Reader
	newTokens func(io.Reader) eng.TokenSource
}

func (s engineSource) Format() string                     { return s.format }
func (s engineSource) input() io.Reader                   { return s.r }
func (s engineSource) tokens(r io.Reader) eng.TokenSource { return s.newTokens(r) }

// JSONReader wraps an io.Reader as a JSON Source.
func JSONReader(r io.Reader) Source {
	return engineSource{format: "json", r: r, newTokens: gojson.NewReader}
}

// JSONBytes wraps a byte slice as a JSON Source.
func JSONBytes(b []byte) Source { return JSONReader(bytes.NewReader(b)) }

// YAMLReader wraps an io.Reader as a YAML Source. Only the first document of
// a stream is accepted.
func YAMLReader(r io.Reader) Source {
	return engineSource{format: "yaml", r: r, newTokens: yamlsrc.NewReader}
}

// YAMLBytes wraps a byte slice as a YAML Source.
func YAMLBytes(b []byte) Source { return YAMLReader(bytes.NewReader(b)) }

// meter counts the bytes a decoder pulls from its input.
type meter struct {
	r io.Reader
	n int64
}

func (m *meter) Read(p []byte) (int, error) {
	n, err := m.r.Read(p)
	m.n += int64(n)
	return n, err
}

// meteredSource reports the metered byte count as its location so that the
// engine's MaxBytes check applies to every encoding.
type meteredSource struct {
	eng.TokenSource
	m *meter
}

func (s meteredSource) Location() int64 { return s.m.n }

func toEngineDup(s Severity) eng.DuplicateStrictness {
	switch s {
	case Warn:
		return eng.DupWarn
	case Error:
		return eng.DupError
	default:
		return eng.DupIgnore
	}
}
