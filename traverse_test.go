package teacollection

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/reoring/teacollection/tree"
)

const testUUID = "0b9b7a3e-52b4-4a0e-9d55-6c1c1f5f8a01"

func testWalker(opt ParseOpt) (*walker, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	opt.Logger = zap.New(core)
	return newWalker(NewCollection(), resolveOpt([]ParseOpt{opt})), logs
}

func root() scope { return scope{level: levelCollection, depth: 1} }

func TestWalk_InvalidArtefactIsNotAttached(t *testing.T) {
	w, logs := testWalker(ParseOpt{})
	doc := tree.Mapping(tree.Field(KeyArtefacts, tree.Sequence(
		tree.Mapping(tree.Field(KeyID, tree.String(testUUID)), tree.Field(KeyName, tree.String("SBOM"))),
		tree.Mapping(tree.Field(KeyID, tree.String(testUUID))),
	)))
	iss := w.walk(doc, root())
	if len(iss) != 2 {
		t.Fatalf("want required+invalid_value for the second artefact, got %v", iss)
	}
	if n := len(w.coll.artefacts); n != 1 || w.coll.artefacts[0].Name() != "SBOM" {
		t.Fatalf("only the valid artefact should be attached, got %d", n)
	}
	if logs.FilterMessage("artefact discarded").Len() != 1 || logs.FilterMessage("artefact attached").Len() != 1 {
		t.Fatalf("expected one attach and one discard event")
	}
}

func TestWalk_FormatsAttachToTheirOwnArtefact(t *testing.T) {
	w, _ := testWalker(ParseOpt{})
	format := func(url string) tree.Value {
		return tree.Mapping(tree.Field(KeyID, tree.String(testUUID)), tree.Field(KeyURL, tree.String(url)))
	}
	art := func(name string, formats ...tree.Value) tree.Value {
		return tree.Mapping(
			tree.Field(KeyID, tree.String(testUUID)),
			tree.Field(KeyName, tree.String(name)),
			tree.Field(KeyFormats, tree.Sequence(formats...)),
		)
	}
	doc := tree.Mapping(tree.Field(KeyArtefacts, tree.Sequence(
		art("A", format("a1"), format(""), format("a3")),
		art("B", format("b1")),
	)))
	iss := w.walk(doc, root())
	if len(iss) != 1 || iss[0].Path != "/artefacts/0/formats/1/url" {
		t.Fatalf("unexpected issues: %v", iss)
	}
	arts := w.coll.artefacts
	if len(arts) != 2 {
		t.Fatalf("artefacts = %d", len(arts))
	}
	if got := arts[0].formats; len(got) != 2 || got[0].URL() != "a1" || got[1].URL() != "a3" {
		t.Fatalf("artefact A formats: %d", len(got))
	}
	if got := arts[1].formats; len(got) != 1 || got[0].URL() != "b1" {
		t.Fatalf("artefact B formats: %d", len(got))
	}
}

func TestWalk_DiscardedArtefactStillOwnsItsFormats(t *testing.T) {
	w, _ := testWalker(ParseOpt{})
	doc := tree.Mapping(tree.Field(KeyArtefacts, tree.Sequence(
		tree.Mapping(
			tree.Field(KeyID, tree.String("")),
			tree.Field(KeyName, tree.String("A")),
			tree.Field(KeyFormats, tree.Sequence(tree.Mapping(tree.Field(KeyURL, tree.String("u"))))),
		),
	)))
	iss := w.walk(doc, root())
	// uuid not defined for the artefact, uuid missing for the format; no structural issue
	if len(iss) != 2 || iss.HasCode(CodeStructural) {
		t.Fatalf("unexpected issues: %v", iss)
	}
	if len(w.coll.artefacts) != 0 {
		t.Fatalf("artefact with empty uuid was attached")
	}
}

func TestWalk_NestedMappingKeepsContext(t *testing.T) {
	w, _ := testWalker(ParseOpt{})
	doc := tree.Mapping(
		tree.Field("meta", tree.Mapping(tree.Field(KeyProductName, tree.String("Nested")))),
		tree.Field(KeyVersion, tree.Int(4)),
	)
	iss := w.walk(doc, root())
	if len(iss) != 1 || iss[0].Code != CodeUnknownKey || iss[0].Path != "/meta" {
		t.Fatalf("unexpected issues: %v", iss)
	}
	if w.coll.ProductName() != "Nested" {
		t.Fatalf("leaf inside nested mapping should still apply at collection level")
	}
	if v, _ := w.coll.Version(); v != 4 {
		t.Fatalf("version = %d", v)
	}
}

func TestWalk_UnknownLeafIgnoredButKeyReported(t *testing.T) {
	w, _ := testWalker(ParseOpt{})
	// name is in the vocabulary but has no collection setter
	doc := tree.Mapping(tree.Field(KeyName, tree.String("ignored")), tree.Field("nope", tree.Null()))
	iss := w.walk(doc, root())
	if len(iss) != 1 || iss[0].Path != "/nope" {
		t.Fatalf("unexpected issues: %v", iss)
	}
}

func TestApplyFields_OnlyDeclaredKeys(t *testing.T) {
	f := NewFormat()
	elem := tree.Mapping(
		tree.Field(KeyURL, tree.String("u")),
		tree.Field(KeySigURL, tree.String("s")),
		tree.Field(KeySize, tree.Number("10")),
		tree.Field(KeyName, tree.String("not a format field")),
	)
	if iss := applyFields(f, formatFields, f.Keys(), elem, pathRef{}); len(iss) != 0 {
		t.Fatalf("unexpected issues: %v", iss)
	}
	if f.URL() != "u" || f.SigURL() != "s" || f.Size() != 10 {
		t.Fatalf("fields not applied: %q %q %d", f.URL(), f.SigURL(), f.Size())
	}

	bad := tree.Mapping(tree.Field(KeySize, tree.Number("-5")))
	iss := applyFields(f, formatFields, f.Keys(), bad, pathRef{}.Field("formats").Index(0))
	if len(iss) != 1 || iss[0].Path != "/formats/0/size" || f.Size() != 10 {
		t.Fatalf("negative size: %v (size %d)", iss, f.Size())
	}
}

func TestDispatchTablesUseVocabulary(t *testing.T) {
	for k := range collectionFields {
		if !IsKnown(k) {
			t.Fatalf("collection setter for unknown key %q", k)
		}
	}
	for k := range artefactFields {
		if !IsKnown(k) {
			t.Fatalf("artefact setter for unknown key %q", k)
		}
	}
	for k := range formatFields {
		if !IsKnown(k) {
			t.Fatalf("format setter for unknown key %q", k)
		}
	}
}

func TestLeafText(t *testing.T) {
	cases := []struct {
		in   tree.Value
		want string
	}{
		{tree.String("x"), "x"},
		{tree.Number("1e3"), "1e3"},
		{tree.Bool(false), "false"},
		{tree.Null(), ""},
		{tree.Sequence(), ""},
	}
	for _, c := range cases {
		if got := leafText(c.in); got != c.want {
			t.Fatalf("leafText(%v) = %q, want %q", c.in.Kind(), got, c.want)
		}
	}
}

func TestIntOf(t *testing.T) {
	if n, ok := intOf(tree.Number("12")); !ok || n != 12 {
		t.Fatalf("number: %d %v", n, ok)
	}
	if n, ok := intOf(tree.String(" 42 ")); !ok || n != 42 {
		t.Fatalf("string: %d %v", n, ok)
	}
	if _, ok := intOf(tree.Number("1.5")); ok {
		t.Fatalf("fraction accepted")
	}
	if _, ok := intOf(tree.Bool(true)); ok {
		t.Fatalf("bool accepted")
	}
}

func TestCheckEnvelope_FollowsRequiredKeys(t *testing.T) {
	c := NewCollection()
	required := c.RequiredKeys()
	for _, k := range required {
		if _, ok := envelope[k]; !ok {
			t.Fatalf("required key %q has no envelope literal", k)
		}
	}
	iss := checkEnvelope(c, tree.Mapping())
	if len(iss) != len(required) {
		t.Fatalf("want one issue per required key, got %v", iss)
	}
	for i, k := range required {
		if iss[i].Code != CodeRequired || iss[i].Path != "/"+k {
			t.Fatalf("issue %d: %+v", i, iss[i])
		}
	}

	ok := tree.Mapping(tree.Field(KeyFormatTag, tree.String(FormatTag)), tree.Field(KeySpecVersion, tree.String(SpecVersion)))
	if iss := checkEnvelope(c, ok); len(iss) != 0 {
		t.Fatalf("valid envelope rejected: %v", iss)
	}
}
