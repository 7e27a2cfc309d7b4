package teacollection_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	tc "github.com/reoring/teacollection"
)

// ---- Helpers ----

// generateCollection returns an encoded collection with numArtefacts
// artefacts of formatsPer formats each.
func generateCollection(tb testing.TB, numArtefacts, formatsPer int, asYAML bool) []byte {
	tb.Helper()
	c := tc.NewCollection()
	c.SetProduct("Bench", "1.0.0", "20240101", "")
	c.SetVersion(1)
	for i := 0; i < numArtefacts; i++ {
		a := tc.NewArtefact()
		a.SetName(fmt.Sprintf("artefact-%d", i))
		a.SetDescription("generated")
		for k := 0; k < formatsPer; k++ {
			f := tc.NewFormat()
			f.SetMediaType("application/json")
			f.SetURL(fmt.Sprintf("https://example.com/%d/%d.json", i, k), "")
			f.SetSize(int64(i*formatsPer + k))
			a.AddFormat(f)
		}
		c.AddArtefact(a)
	}
	marshal := tc.Marshal
	if asYAML {
		marshal = tc.MarshalYAML
	}
	b, err := marshal(c)
	if err != nil {
		tb.Fatalf("marshal failed: %v", err)
	}
	return b
}

// ---- Micro benchmarks (sample document) ----

func Benchmark_ParseFrom_Sample_JSONBytes(b *testing.B) {
	ctx := context.Background()
	data, err := tc.Marshal(tc.SampleCollection())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tc.ParseFrom(ctx, tc.JSONBytes(data)); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_ParseFrom_Sample_JSONReader(b *testing.B) {
	ctx := context.Background()
	data, err := tc.Marshal(tc.SampleCollection())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tc.ParseFrom(ctx, tc.JSONReader(bytes.NewReader(data))); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Marshal_Sample(b *testing.B) {
	c := tc.SampleCollection()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := tc.Marshal(c); err != nil {
			b.Fatal(err)
		}
	}
}

// ---- Macro benchmarks (large collections) ----

// 1k artefacts with 4 formats each, roughly 1MB of JSON
const (
	hugeArtefacts = 1000
	hugeFormats   = 4
)

func Benchmark_ParseFrom_Huge_JSONBytes(b *testing.B) {
	ctx := context.Background()
	data := generateCollection(b, hugeArtefacts, hugeFormats, false)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, err := tc.ParseFrom(ctx, tc.JSONBytes(data))
		if err != nil {
			b.Fatal(err)
		}
		if len(c.Artefacts()) != hugeArtefacts {
			b.Fatalf("artefacts = %d", len(c.Artefacts()))
		}
	}
}

func Benchmark_ParseFrom_Huge_YAMLBytes(b *testing.B) {
	ctx := context.Background()
	data := generateCollection(b, hugeArtefacts, hugeFormats, true)
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tc.ParseFrom(ctx, tc.YAMLBytes(data)); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_StreamParse_Huge_MaxBytes(b *testing.B) {
	ctx := context.Background()
	data := generateCollection(b, hugeArtefacts, hugeFormats, false)
	opt := tc.ParseOpt{MaxBytes: int64(len(data))}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tc.StreamParse(ctx, bytes.NewReader(data), opt); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Ingest_Huge_Tree(b *testing.B) {
	ctx := context.Background()
	data := generateCollection(b, hugeArtefacts, hugeFormats, false)
	doc, err := tc.Decode(tc.JSONBytes(data))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tc.Ingest(ctx, doc); err != nil {
			b.Fatal(err)
		}
	}
}
