package light

import "testing"

func TestCornerAOBothSidesOpaqueIsDarkest(t *testing.T) {
	ao := CornerAO(CornerNeighbors{Side1Opaque: true, Side2Opaque: true, CornerOpaque: true})
	if ao != 0 {
		t.Errorf("expected AO level 0, got %d", ao)
	}
}

func TestCornerAOAllOpenIsBrightest(t *testing.T) {
	ao := CornerAO(CornerNeighbors{})
	if ao != 3 {
		t.Errorf("expected AO level 3, got %d", ao)
	}
}

func TestCornerAOOneSideOpaque(t *testing.T) {
	ao := CornerAO(CornerNeighbors{Side1Opaque: true})
	if ao != 2 {
		t.Errorf("expected AO level 2, got %d", ao)
	}
}

func TestAOMultiplierRange(t *testing.T) {
	if m := AOMultiplier(3, 1.0); m != 1.0 {
		t.Errorf("expected full brightness at AO 3, got %v", m)
	}
	if m := AOMultiplier(0, 1.0); m != 0.0 {
		t.Errorf("expected zero brightness at AO 0 with full intensity, got %v", m)
	}
}

func TestCornerLightDisabledChannelsContributeZero(t *testing.T) {
	n := CornerNeighbors{Side1Light: 15, Side1Sky: 15}
	level := CornerLight(n, Config{}, false)
	if level != 0 {
		t.Errorf("expected 0 when both channels disabled, got %d", level)
	}
}

func TestCornerLightSkyFallbackWhenNoOpaqueAbove(t *testing.T) {
	level := CornerLight(CornerNeighbors{}, Config{SkyLightEnabled: true, SkyLightLevel: 15}, false)
	if level != 15 {
		t.Errorf("expected constant sky fallback of 15, got %d", level)
	}
}

func TestCornerLightSkyFromGridWhenOpaqueAbove(t *testing.T) {
	n := CornerNeighbors{Side1Sky: 7, Side2Sky: 3, CornerSky: 5, SelfFaceSky: 2}
	level := CornerLight(n, Config{SkyLightEnabled: true, SkyLightLevel: 15}, true)
	if level != 7 {
		t.Errorf("expected max of grid values (7), got %d", level)
	}
}

func TestTriangulateAODiagonalPicksLargerSumDiagonal(t *testing.T) {
	tri1, tri2 := TriangulateAODiagonal([4]int{3, 0, 3, 0})
	if tri1 != ([3]int{0, 2, 1}) || tri2 != ([3]int{0, 3, 2}) {
		t.Errorf("expected 0-2 diagonal when 0+2 > 1+3, got %v %v", tri1, tri2)
	}

	tri1, tri2 = TriangulateAODiagonal([4]int{3, 1, 1, 3})
	if tri1 != ([3]int{0, 2, 1}) {
		t.Errorf("expected 0-2 diagonal when 0+2 equals 1+3, got %v", tri1)
	}

	tri1, tri2 = TriangulateAODiagonal([4]int{0, 3, 1, 3})
	if tri1 != ([3]int{1, 0, 3}) || tri2 != ([3]int{1, 3, 2}) {
		t.Errorf("expected flipped 1-3 diagonal when 1+3 > 0+2, got %v %v", tri1, tri2)
	}
}
