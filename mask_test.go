package easicube

import (
	"errors"
	"testing"
)

var goodPixelLabels = []string{"Vegetation", "Not vegetated", "Water"}

func testClassifiedCube() *Dataset {
	ds := NewDataset(testAcqs(OffsetApplied, OffsetApplied), 2, 2)
	scl := ds.AddBand(SCL_BAND, 0)
	// slice 0: vegetation, water, cloud, nodata
	copy(scl.Data[:4], []float64{4, 6, 8, 0})
	// slice 1: not vegetated, cloud shadow, snow, vegetation
	copy(scl.Data[4:], []float64{5, 3, 11, 4})
	red := ds.AddBand("B04", -9999)
	for i := range red.Data {
		red.Data[i] = float64(100 + i)
	}
	return ds
}

func TestBuildMask(t *testing.T) {
	ds := testClassifiedCube()
	m, err := BuildMask(ds, SCL_BAND, SCLDef, goodPixelLabels)
	if err != nil {
		t.Fatal(err)
	}
	tn, y, x := ds.Shape()
	if m.T != tn || m.Y != y || m.X != x || len(m.Data) != tn*y*x {
		t.Fatalf("mask shape %dx%dx%d, want %dx%dx%d", m.T, m.Y, m.X, tn, y, x)
	}
	want := []bool{true, true, false, false, true, false, false, true}
	for i, w := range want {
		if m.Data[i] != w {
			t.Errorf("cell %d: got %v, want %v (code %v)", i, m.Data[i], w, ds.Band(SCL_BAND).Data[i])
		}
	}
}

func TestBuildMaskOrderIndependent(t *testing.T) {
	ds := testClassifiedCube()
	a, err := BuildMask(ds, SCL_BAND, SCLDef, []string{"Water", "Vegetation", "Not vegetated"})
	if err != nil {
		t.Fatal(err)
	}
	b, err := BuildMask(ds, SCL_BAND, SCLDef, goodPixelLabels)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			t.Fatalf("label order changed mask at cell %d", i)
		}
	}
}

func TestBuildMaskUnknownLabel(t *testing.T) {
	ds := testClassifiedCube()
	_, err := BuildMask(ds, SCL_BAND, SCLDef, []string{"Vegetation", "Glacier"})
	if !errors.Is(err, ErrUnknownLabel) {
		t.Fatalf("got %v, want ErrUnknownLabel", err)
	}
}

func TestBuildMaskMissingBand(t *testing.T) {
	ds := testClassifiedCube()
	_, err := BuildMask(ds, "QA60", SCLDef, goodPixelLabels)
	if !errors.Is(err, ErrBandNotInDataset) {
		t.Fatalf("got %v, want ErrBandNotInDataset", err)
	}
}

func TestBuildMaskRejectsFractionalCodes(t *testing.T) {
	ds := NewDataset(testAcqs(OffsetApplied), 1, 2)
	scl := ds.AddBand(SCL_BAND, 0)
	scl.Data[0] = 4.5
	scl.Data[1] = 4
	m, err := BuildMask(ds, SCL_BAND, SCLDef, []string{"Vegetation"})
	if err != nil {
		t.Fatal(err)
	}
	if m.Data[0] || !m.Data[1] {
		t.Errorf("got %v, want [false true]", m.Data)
	}
}

func TestApplyMask(t *testing.T) {
	ds := testClassifiedCube()
	m, err := BuildMask(ds, SCL_BAND, SCLDef, goodPixelLabels)
	if err != nil {
		t.Fatal(err)
	}
	out, err := ApplyMask(ds, m)
	if err != nil {
		t.Fatal(err)
	}
	red := ds.Band("B04")
	got := out.Band("B04")
	for i := range red.Data {
		if m.Data[i] {
			if got.Data[i] != red.Data[i] {
				t.Errorf("kept cell %d changed: %v != %v", i, got.Data[i], red.Data[i])
			}
		} else if got.Data[i] != red.NoData {
			t.Errorf("rejected cell %d not no-data: %v", i, got.Data[i])
		}
	}
	// the source dataset is untouched
	for i := range red.Data {
		if red.Data[i] != float64(100+i) {
			t.Fatalf("input mutated at %d", i)
		}
	}
}

func TestApplyMaskShapeMismatch(t *testing.T) {
	ds := testClassifiedCube()
	m := &Mask{Data: make([]bool, 4), T: 1, Y: 2, X: 2}
	if _, err := ApplyMask(ds, m); !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("got %v, want ErrShapeMismatch", err)
	}
}
