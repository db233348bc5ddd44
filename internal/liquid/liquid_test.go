package liquid

import "testing"

func TestCornerHeightSourcePresentIsFull(t *testing.T) {
	samples := [4]ColumnSample{{Present: true, IsSource: true}, {}, {}, {}}
	h, emitted := CornerHeight(samples, false)
	if !emitted {
		t.Fatal("expected corner to be emitted")
	}
	if h != 14.0/16.0 {
		t.Errorf("expected 14/16, got %v", h)
	}
}

func TestCornerHeightSourceAboveClampsToFull(t *testing.T) {
	samples := [4]ColumnSample{{Present: true, IsSource: true}, {}, {}, {}}
	h, _ := CornerHeight(samples, true)
	if h != 1.0 {
		t.Errorf("expected full height 1.0 when same liquid above, got %v", h)
	}
}

func TestCornerHeightWeightedFlowAverage(t *testing.T) {
	samples := [4]ColumnSample{
		{Present: true, Level: 1},
		{Present: true, Level: 3},
		{Present: false},
		{Present: false},
	}
	h, emitted := CornerHeight(samples, false)
	if !emitted {
		t.Fatal("expected corner to be emitted")
	}
	avg := float32(4) / 2
	want := 1.0 - (avg+1)/9.0
	if h != want {
		t.Errorf("expected %v, got %v", want, h)
	}
}

func TestCornerHeightAllAbsentNotEmitted(t *testing.T) {
	_, emitted := CornerHeight([4]ColumnSample{}, false)
	if emitted {
		t.Error("expected no corner to be emitted when all four are absent")
	}
}

func TestFlowDirectionStillWaterIsZero(t *testing.T) {
	if d := FlowDirection(1, 1, 1, 1); d != 0 {
		t.Errorf("expected 0 for uniform heights, got %v", d)
	}
}

func TestShouldEmitSideAgainstNonLiquidNeighbor(t *testing.T) {
	if !ShouldEmitSide(0.5, 0.5, false) {
		t.Error("expected side face against a non-liquid neighbor")
	}
}

func TestShouldEmitSideSameHeightSameLiquidSkipped(t *testing.T) {
	if ShouldEmitSide(0.5, 0.5, true) {
		t.Error("expected no side face between equal-height liquid columns")
	}
}

func TestShouldEmitSideDifferingHeights(t *testing.T) {
	if !ShouldEmitSide(0.5, 0.6, true) {
		t.Error("expected side face when heights differ")
	}
}
