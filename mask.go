package easicube

import "fmt"

// Mask marks per-pixel acceptability over the full cube shape.
type Mask struct {
	Data []bool
	T    int
	Y    int
	X    int
}

func (m *Mask) matches(d *Dataset) bool {
	t, y, x := d.Shape()
	return m.T == t && m.Y == y && m.X == x && len(m.Data) == t*y*x
}

// BuildMask derives a quality mask from a classification band: true exactly
// where the pixel code resolves to one of the accepted labels, false
// elsewhere including no-data pixels. Label resolution is set-based and an
// unknown label fails fast rather than silently matching nothing.
func BuildMask(ds *Dataset, band string, def *CategoryDef, accepted []string) (m *Mask, err error) {
	b := ds.Band(band)
	if b == nil {
		err = fmt.Errorf("%w: %s", ErrBandNotInDataset, band)
		return
	}
	set, err := def.resolve(accepted)
	if err != nil {
		return
	}
	t, y, x := ds.Shape()
	m = &Mask{
		Data: make([]bool, t*y*x),
		T:    t,
		Y:    y,
		X:    x,
	}
	for i, v := range b.Data {
		if v == b.NoData {
			continue
		}
		code := int(v)
		if float64(code) != v || code < 0 {
			// fractional or negative values cannot be classification codes
			continue
		}
		if _, ok := set[code]; ok {
			m.Data[i] = true
		}
	}
	return
}

// ApplyMask filters every band of the cube elementwise: pixels where the
// mask is false become the band's no-data sentinel, the rest pass through
// unchanged. Returns a new dataset.
func ApplyMask(ds *Dataset, m *Mask) (out *Dataset, err error) {
	if !m.matches(ds) {
		err = ErrShapeMismatch
		return
	}
	out = ds.emptyLike()
	for _, b := range ds.Bands {
		nb := out.AddBand(b.Name, b.NoData)
		for i, v := range b.Data {
			if m.Data[i] {
				nb.Data[i] = v
			} else {
				nb.Data[i] = b.NoData
			}
		}
	}
	return
}
