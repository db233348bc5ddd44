package export

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

// Grounded on usd.rs's USDA-generation tests: header tokens, the atlas
// materials, and a mesh prim's points/material binding must appear.
func TestExportUSDASimpleTriangle(t *testing.T) {
	out, pack := triangleOutput()
	got, err := ExportUSDA(out, pack)
	if err != nil {
		t.Fatalf("ExportUSDA failed: %v", err)
	}

	for _, want := range []string{
		`#usda 1.0`,
		`defaultPrim = "Root"`,
		`def Material "atlas_opaque"`,
		`def Material "atlas_cutout"`,
		`def Material "atlas_transparent"`,
		`def Material "greedy_0_opaque"`,
		`def Mesh "opaque"`,
		`rel material:binding = </Root/atlas_opaque>`,
		`def Mesh "greedy_0_opaque"`,
		`rel material:binding = </Root/greedy_0_opaque>`,
		`point3f[] points`,
		`int[] faceVertexCounts = [3]`,
	} {
		if !strings.Contains(got.USDA, want) {
			t.Errorf("expected USDA text to contain %q, got:\n%s", want, got.USDA)
		}
	}

	if len(got.AtlasPNG) == 0 {
		t.Error("expected non-empty atlas PNG bytes")
	}
	if _, ok := got.GreedyTextures["textures/greedy_0.png"]; !ok {
		t.Error("expected textures/greedy_0.png among greedy textures")
	}
}

func TestExportUSDAEmptyMeshErrors(t *testing.T) {
	out, pack := emptyOutput()
	if _, err := ExportUSDA(out, pack); err == nil {
		t.Fatal("expected an error exporting an empty mesh")
	}
}

func TestExportUSDZProducesValidZipWithAlignedEntries(t *testing.T) {
	out, pack := triangleOutput()
	data, err := ExportUSDZ(out, pack)
	if err != nil {
		t.Fatalf("ExportUSDZ failed: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("archive/zip could not read the USDZ archive: %v", err)
	}

	names := map[string]*zip.File{}
	for _, f := range zr.File {
		names[f.Name] = f
		if f.Method != zip.Store {
			t.Errorf("expected %s stored uncompressed, got method %d", f.Name, f.Method)
		}
	}
	for _, want := range []string{"root.usda", "textures/atlas.png", "textures/greedy_0.png"} {
		f, ok := names[want]
		if !ok {
			t.Errorf("expected %s in the USDZ archive", want)
			continue
		}
		offset, err := f.DataOffset()
		if err != nil {
			t.Fatalf("DataOffset for %s: %v", want, err)
		}
		if offset%64 != 0 {
			t.Errorf("expected %s's data to start 64-byte aligned, offset was %d", want, offset)
		}
	}
}
