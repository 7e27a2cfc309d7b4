package gojson_test

import (
	"strings"
	"testing"

	eng "github.com/reoring/teacollection/internal/engine"
	"github.com/reoring/teacollection/source/gojson"
)

func kinds(t *testing.T, src eng.TokenSource) []eng.Token {
	t.Helper()
	var out []eng.Token
	for {
		tok, err := src.NextToken()
		if err != nil {
			return out
		}
		out = append(out, tok)
	}
}

func TestTokens_KeysAndValues(t *testing.T) {
	toks := kinds(t, gojson.NewBytes([]byte(`{"a":"x","b":{"c":"y"},"d":["z",1.5,true,null],"e":"w"}`)))
	want := []eng.Kind{
		eng.KindBeginObject,
		eng.KindKey, eng.KindString,
		eng.KindKey, eng.KindBeginObject, eng.KindKey, eng.KindString, eng.KindEndObject,
		eng.KindKey, eng.KindBeginArray, eng.KindString, eng.KindNumber, eng.KindBool, eng.KindNull, eng.KindEndArray,
		eng.KindKey, eng.KindString,
		eng.KindEndObject,
	}
	if len(toks) != len(want) {
		t.Fatalf("want %d tokens, got %d: %+v", len(want), len(toks), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Fatalf("token %d: kind %d, want %d", i, toks[i].Kind, k)
		}
	}
	if toks[11].Number != "1.5" {
		t.Fatalf("number text = %q", toks[11].Number)
	}
	if toks[15].String != "e" {
		t.Fatalf("key after nested containers: %q", toks[15].String)
	}
}

func TestDecodeValue_FromReader(t *testing.T) {
	v, err := eng.DecodeValue(gojson.NewReader(strings.NewReader(`{"uuid":"u","size":10}`)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if n, ok := v.Get("size"); !ok {
		t.Fatalf("size missing")
	} else if i, _ := n.AsInt(); i != 10 {
		t.Fatalf("size = %d", i)
	}
}

func TestLocation_TracksInput(t *testing.T) {
	doc := []byte(`{"a":1}`)
	src := gojson.NewBytes(doc)
	kinds(t, src)
	if off := src.Location(); off <= 0 || off > int64(len(doc)) {
		t.Fatalf("location = %d after reading %d bytes", off, len(doc))
	}
}
