package teacollection_test

import (
	"context"
	"strings"
	"testing"

	j "github.com/goccy/go-json"

	tc "github.com/reoring/teacollection"
)

func TestSerialize_FieldOrder(t *testing.T) {
	v := tc.Serialize(tc.SampleCollection())
	var keys []string
	for _, m := range v.Members() {
		keys = append(keys, m.Key)
	}
	want := "tcoFormat specVersion UUID product_name product_version product_release_date product_tei_id version author_name author_org author_email artefacts"
	if got := strings.Join(keys, " "); got != want {
		t.Fatalf("collection keys:\n got %s\nwant %s", got, want)
	}

	arts, _ := v.Get("artefacts")
	art := arts.Items()[0]
	keys = keys[:0]
	for _, m := range art.Members() {
		keys = append(keys, m.Key)
	}
	if got := strings.Join(keys, " "); got != "uuid name description author_name author_org author_email formats" {
		t.Fatalf("artefact keys: %s", got)
	}

	fmts, _ := art.Get("formats")
	keys = keys[:0]
	for _, m := range fmts.Items()[0].Members() {
		keys = append(keys, m.Key)
	}
	if got := strings.Join(keys, " "); got != "uuid bom-identifier mediatype category url sigurl hash size" {
		t.Fatalf("format keys: %s", got)
	}
}

func TestMarshal_EmptyFieldsAreNull(t *testing.T) {
	c := tc.NewCollection()
	c.SetProduct("X", "", "", "")
	c.AddArtefact(tc.NewArtefact())
	b, err := tc.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var doc map[string]any
	if err := j.Unmarshal(b, &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, b)
	}
	if doc["product_version"] != nil || doc["author_email"] != nil {
		t.Fatalf("unset fields should be null: %v", doc)
	}
	if doc["version"] != float64(0) || doc["tcoFormat"] != "TEA-collection" || doc["specVersion"] != "1.0" {
		t.Fatalf("unexpected envelope/version: %v", doc)
	}
	arts := doc["artefacts"].([]any)
	art := arts[0].(map[string]any)
	if art["name"] != nil {
		t.Fatalf("unset artefact name should be null: %v", art)
	}
	if fm, ok := art["formats"].([]any); !ok || len(fm) != 0 {
		t.Fatalf("formats should be an empty list: %v", art["formats"])
	}
	if !strings.Contains(string(b), "\n    \"specVersion\"") {
		t.Fatalf("expected four-space indentation:\n%s", b)
	}
}

func TestMarshal_ClearedVersionIsNull(t *testing.T) {
	c := tc.NewCollection()
	c.ClearVersion()
	v, _ := tc.Serialize(c).Get("version")
	if !v.IsNull() {
		t.Fatalf("cleared version should serialize as null, got %v", v.Kind())
	}
}

func TestRoundTrip_Sample(t *testing.T) {
	orig := tc.SampleCollection()
	b, err := tc.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := tc.Unmarshal(context.Background(), b)
	if err != nil {
		t.Fatalf("re-ingest failed: %v\n%s", err, b)
	}
	if !tc.Serialize(back).Equal(tc.Serialize(orig)) {
		t.Fatalf("round trip changed the collection")
	}
	if back.ID() != orig.ID() {
		t.Fatalf("collection id not preserved")
	}
	oa, ba := orig.Artefacts(), back.Artefacts()
	if len(ba) != 2 || ba[0].ID() != oa[0].ID() || ba[1].ID() != oa[1].ID() {
		t.Fatalf("artefact ids not preserved")
	}
	of, bf := oa[0].Formats(), ba[0].Formats()
	if len(bf) != 2 || bf[0].ID() != of[0].ID() || bf[0].SigURL() != of[0].SigURL() || bf[0].Size() != of[0].Size() {
		t.Fatalf("formats not preserved")
	}
}

func TestRoundTrip_Built(t *testing.T) {
	c := tc.NewCollection()
	c.SetProduct("Product", "1.0.0", "2024-01-01", "tei:x")
	c.SetVersion(3)
	c.SetAuthor("", "Org", "")
	a := tc.NewArtefact()
	a.SetName("VEX")
	a.SetDescription("línea con acento & <html>")
	f := tc.NewFormat()
	f.SetURL("https://example.com/vex.json", "")
	f.SetBOMIdentifier("urn:uuid:" + validUUID)
	f.SetCategory("vex")
	a.AddFormat(f)
	c.AddArtefact(a)

	b, err := tc.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := tc.Unmarshal(context.Background(), b)
	if err != nil {
		t.Fatalf("re-ingest failed: %v", err)
	}
	if !tc.Serialize(back).Equal(tc.Serialize(c)) {
		t.Fatalf("round trip changed the collection:\n%s", b)
	}
}

func TestSampleCollection_IsValid(t *testing.T) {
	c := tc.SampleCollection()
	if iss := c.Validate(); len(iss) != 0 {
		t.Fatalf("sample invalid: %v", iss)
	}
	arts := c.Artefacts()
	if len(arts) != 2 || arts[0].Name() != "SBOM" || arts[1].Name() != "VEX file" {
		t.Fatalf("unexpected artefacts")
	}
	for _, f := range arts[0].Formats() {
		if iss := f.Validate(); len(iss) != 0 {
			t.Fatalf("sample format invalid: %v", iss)
		}
	}
}
