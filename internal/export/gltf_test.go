package export

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func TestExportGLBProducesValidBinaryHeader(t *testing.T) {
	out, pack := triangleOutput()
	data, err := ExportGLB(out, pack)
	if err != nil {
		t.Fatalf("ExportGLB failed: %v", err)
	}
	if len(data) < 12 {
		t.Fatalf("GLB too short: %d bytes", len(data))
	}
	magic := binary.LittleEndian.Uint32(data[0:4])
	if magic != 0x46546C67 { // "glTF"
		t.Errorf("expected glTF magic, got %#x", magic)
	}
	version := binary.LittleEndian.Uint32(data[4:8])
	if version != 2 {
		t.Errorf("expected glTF version 2, got %d", version)
	}
	totalLength := binary.LittleEndian.Uint32(data[8:12])
	if int(totalLength) != len(data) {
		t.Errorf("header length %d does not match actual byte count %d", totalLength, len(data))
	}
}

func TestExportGLBEmptyMeshErrors(t *testing.T) {
	out, pack := emptyOutput()
	if _, err := ExportGLB(out, pack); err == nil {
		t.Fatal("expected an error exporting an empty mesh")
	}
}

func TestExportGLBEmbedsJSONChunk(t *testing.T) {
	out, pack := triangleOutput()
	data, err := ExportGLB(out, pack)
	if err != nil {
		t.Fatalf("ExportGLB failed: %v", err)
	}
	// First chunk (immediately after the 12-byte header) must be JSON and
	// must reference both materials the atlas/greedy paths create.
	chunkLength := binary.LittleEndian.Uint32(data[12:16])
	chunkType := data[16:20]
	if !bytes.Equal(chunkType, []byte("JSON")) {
		t.Fatalf("expected first chunk type JSON, got %q", chunkType)
	}
	json := data[20 : 20+chunkLength]
	if !bytes.Contains(json, []byte(`"materials"`)) {
		t.Error("expected materials array in glTF JSON chunk")
	}
	if !bytes.Contains(json, []byte(`"MASK"`)) {
		t.Error("expected a MASK alphaMode material for the cutout layer")
	}
}
