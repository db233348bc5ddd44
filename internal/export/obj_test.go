package export

import (
	"strings"
	"testing"
)

// Grounded on obj.rs's test_export_simple_obj: a single triangle's OBJ text
// must contain its vertex/UV/normal/face lines and a usemtl/newmtl pair.
func TestExportOBJSimpleTriangle(t *testing.T) {
	out, pack := triangleOutput()
	got, err := ExportOBJ(out, pack, "test")
	if err != nil {
		t.Fatalf("ExportOBJ failed: %v", err)
	}

	for _, want := range []string{
		"v 0 0 0",
		"vt 0 0",
		"vn 0 1 0",
		"f 1/1/1 2/2/2 3/3/3",
		"usemtl test_atlas_material",
		"usemtl test_greedy_0_material",
		"mtllib test.mtl",
		"o test",
	} {
		if !strings.Contains(got.OBJ, want) {
			t.Errorf("expected OBJ text to contain %q, got:\n%s", want, got.OBJ)
		}
	}

	for _, want := range []string{
		"newmtl test_atlas_material",
		"newmtl test_greedy_0_material",
		"map_Kd test_atlas.png",
		"map_Kd test_greedy_0.png",
	} {
		if !strings.Contains(got.MTL, want) {
			t.Errorf("expected MTL text to contain %q, got:\n%s", want, got.MTL)
		}
	}

	if len(got.Textures) != 2 {
		t.Errorf("expected 2 embedded textures (atlas + greedy), got %d", len(got.Textures))
	}
	if _, ok := got.Textures["test_atlas.png"]; !ok {
		t.Error("expected test_atlas.png in Textures")
	}
	if _, ok := got.Textures["test_greedy_0.png"]; !ok {
		t.Error("expected test_greedy_0.png in Textures")
	}
}

func TestExportOBJEmptyMeshErrors(t *testing.T) {
	out, pack := emptyOutput()
	if _, err := ExportOBJ(out, pack, "empty"); err == nil {
		t.Fatal("expected an error exporting an empty mesh")
	}
}

func TestExportOBJFaceIndicesAreOneBased(t *testing.T) {
	out, pack := triangleOutput()
	got, err := ExportOBJ(out, pack, "test")
	if err != nil {
		t.Fatalf("ExportOBJ failed: %v", err)
	}
	if strings.Contains(got.OBJ, "f 0/") {
		t.Error("OBJ face indices must be 1-based, found a 0-based index")
	}
}
