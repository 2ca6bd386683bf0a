package easicube

import "testing"

func TestDatasetShapeAndIndex(t *testing.T) {
	ds := NewDataset(testAcqs(OffsetApplied, OffsetPending, OffsetApplied), 4, 5)
	tn, y, x := ds.Shape()
	if tn != 3 || y != 4 || x != 5 {
		t.Fatalf("shape = %d,%d,%d", tn, y, x)
	}
	if ds.SliceSize() != 20 {
		t.Fatalf("slice size = %d", ds.SliceSize())
	}
	if i := ds.Index(2, 3, 4); i != 59 {
		t.Fatalf("Index(2,3,4) = %d", i)
	}
	b := ds.AddBand("B04", 0)
	if len(b.Data) != 60 {
		t.Fatalf("band len = %d", len(b.Data))
	}
	if ds.Band("B04") != b || ds.Band("B08") != nil {
		t.Fatal("band lookup broken")
	}
	if ts := ds.Times(); len(ts) != 3 || !ts[0].Before(ts[1]) {
		t.Fatalf("times = %v", ts)
	}
}

func TestEmptyLike(t *testing.T) {
	ds := NewDataset(testAcqs(OffsetApplied), 2, 2)
	ds.AddBand("B04", 0)
	ds.GeoTransform = [6]float64{300000, 10, 0, 6100000, 0, -10}
	ds.Projection = "EPSG:32755"
	out := ds.emptyLike()
	if len(out.Bands) != 0 {
		t.Fatal("emptyLike carried bands")
	}
	if out.GeoTransform != ds.GeoTransform || out.Projection != ds.Projection {
		t.Fatal("grid metadata lost")
	}
	out.Acquisitions[0].OffsetState = OffsetUnknown
	if ds.Acquisitions[0].OffsetState != OffsetApplied {
		t.Fatal("acquisitions aliased")
	}
}
