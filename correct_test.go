package easicube

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"
)

func testAcqs(states ...OffsetState) []Acquisition {
	base := time.Date(2022, 1, 10, 0, 0, 0, 0, time.UTC)
	acqs := make([]Acquisition, len(states))
	for i, s := range states {
		acqs[i] = Acquisition{
			Time:        base.AddDate(0, 0, i*5),
			SceneID:     fmt.Sprintf("scene-%d", i),
			OffsetState: s,
		}
	}
	return acqs
}

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCorrectOffsetPerSlice(t *testing.T) {
	// same raw pixel on two acquisitions, one with the offset already baked
	// in upstream and one without
	ds := NewDataset(testAcqs(OffsetPending, OffsetApplied), 1, 1)
	b := ds.AddBand("B04", -9999)
	b.Data[0] = 1000
	b.Data[1] = 1000
	meta := map[string]BandScaling{"B04": {Scale: 0.0001, Offset: -0.1}}
	out, err := Correct(ds, meta)
	if err != nil {
		t.Fatal(err)
	}
	got := out.Band("B04").Data
	if !almost(got[0], 0.0) {
		t.Errorf("pending slice: got %v, want 0.0", got[0])
	}
	if !almost(got[1], 0.1) {
		t.Errorf("applied slice: got %v, want 0.1", got[1])
	}
	// input stays untouched
	if b.Data[0] != 1000 || b.Data[1] != 1000 {
		t.Errorf("input mutated: %v", b.Data)
	}
}

func TestCorrectIdentity(t *testing.T) {
	ds := NewDataset(testAcqs(OffsetPending), 2, 2)
	b := ds.AddBand("SCL", 0)
	for i := range b.Data {
		b.Data[i] = float64(i + 4)
	}
	// undeclared band passes through
	out, err := Correct(ds, map[string]BandScaling{})
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range out.Band("SCL").Data {
		if v != b.Data[i] {
			t.Fatalf("undeclared band changed at %d: %v != %v", i, v, b.Data[i])
		}
	}
	// scale=1, offset=0 is the identity as well
	out, err = Correct(ds, map[string]BandScaling{"SCL": {Scale: 1, Offset: 0}})
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range out.Band("SCL").Data {
		if v != b.Data[i] {
			t.Fatalf("identity scaling changed at %d: %v != %v", i, v, b.Data[i])
		}
	}
}

func TestCorrectPreservesNoData(t *testing.T) {
	ds := NewDataset(testAcqs(OffsetPending), 1, 2)
	b := ds.AddBand("B08", -9999)
	b.Data[0] = -9999
	b.Data[1] = 500
	out, err := Correct(ds, map[string]BandScaling{"B08": {Scale: 0.0001, Offset: -0.1}})
	if err != nil {
		t.Fatal(err)
	}
	got := out.Band("B08").Data
	if got[0] != -9999 {
		t.Errorf("no-data pixel corrected: %v", got[0])
	}
	if !almost(got[1], 500*0.0001-0.1) {
		t.Errorf("valid pixel: got %v", got[1])
	}
}

func TestCorrectAppliedSliceOnlyScales(t *testing.T) {
	// an applied slice must never receive the additive offset, no matter
	// how large the raw value
	ds := NewDataset(testAcqs(OffsetApplied), 1, 3)
	b := ds.AddBand("B02", 0)
	raw := []float64{1, 2000, 10000}
	copy(b.Data, raw)
	out, err := Correct(ds, map[string]BandScaling{"B02": {Scale: 0.0001, Offset: -0.1}})
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range out.Band("B02").Data {
		if !almost(v, raw[i]*0.0001) {
			t.Errorf("pixel %d: got %v, want %v", i, v, raw[i]*0.0001)
		}
	}
}

func TestCorrectUnknownBand(t *testing.T) {
	ds := NewDataset(testAcqs(OffsetPending), 1, 1)
	ds.AddBand("B04", 0)
	_, err := Correct(ds, map[string]BandScaling{"B99": {Scale: 1}})
	if !errors.Is(err, ErrBandNotInDataset) {
		t.Fatalf("got %v, want ErrBandNotInDataset", err)
	}
}

func TestCorrectUnknownOffsetState(t *testing.T) {
	ds := NewDataset(testAcqs(OffsetApplied, OffsetUnknown), 1, 1)
	ds.AddBand("B04", 0)
	_, err := Correct(ds, map[string]BandScaling{"B04": {Scale: 0.0001, Offset: -0.1}})
	if !errors.Is(err, ErrOffsetStateUnknown) {
		t.Fatalf("got %v, want ErrOffsetStateUnknown", err)
	}
}

func TestCorrectEmptyDataset(t *testing.T) {
	ds := NewDataset(testAcqs(OffsetPending), 1, 1)
	if _, err := Correct(ds, nil); !errors.Is(err, ErrEmptyDataset) {
		t.Fatalf("got %v, want ErrEmptyDataset", err)
	}
}
