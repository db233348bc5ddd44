package entitymodel

import "testing"

func TestBuildChestProducesSixQuadsPerCube(t *testing.T) {
	result := Build(ChestModel(ChestNormal))
	// bottom + lid + lock, 6 faces each, no skip_faces declared.
	if len(result.Quads) != 18 {
		t.Fatalf("expected 18 quads (3 cubes x 6 faces), got %d", len(result.Quads))
	}
}

func TestBuildDoubleChestHalvesHaveDistinctTextures(t *testing.T) {
	left := Build(DoubleChestModel(ChestNormal, DoubleChestLeft))
	right := Build(DoubleChestModel(ChestNormal, DoubleChestRight))
	if len(left.Quads) == 0 || len(right.Quads) == 0 {
		t.Fatal("expected both chest halves to produce geometry")
	}
	if left.Quads[0].MaterialKey == right.Quads[0].MaterialKey {
		t.Error("expected left/right double chest halves to use distinct textures")
	}
}

func TestBuildQuadsAreWoundCCWFromNormal(t *testing.T) {
	result := Build(ChestModel(ChestNormal))
	for i, q := range result.Quads {
		edge1 := q.Positions[1].Sub(q.Positions[0])
		edge2 := q.Positions[3].Sub(q.Positions[0])
		cross := edge1.Cross(edge2)
		if cross.Dot(q.Normal) < 0 {
			t.Errorf("quad %d: winding is not CCW from outward normal", i)
		}
	}
}

func TestModelForIdentifierKnownAndUnknown(t *testing.T) {
	if _, ok := ModelForIdentifier("minecraft:chest", nil); !ok {
		t.Error("expected chest to be recognized")
	}
	if _, ok := ModelForIdentifier("minecraft:stone", nil); ok {
		t.Error("expected stone to not be an entity model")
	}
}

func TestSlimeCutoutCubeIsAlwaysCutout(t *testing.T) {
	result := Build(slimeModel(1))
	foundCutout := false
	for _, q := range result.Quads {
		if q.Layer.String() == "cutout" {
			foundCutout = true
		}
	}
	if !foundCutout {
		t.Error("expected slime's inner cube to force cutout layer")
	}
}

func TestSpiderHasHeadBodyAndEightLegs(t *testing.T) {
	model := spiderModel()
	if len(model.Parts) != 10 {
		t.Fatalf("expected head + body + 8 legs = 10 parts, got %d", len(model.Parts))
	}
}
