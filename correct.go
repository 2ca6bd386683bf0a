package easicube

import "fmt"

// Correct converts raw band values to physical units: value*Scale, plus
// Offset added only on acquisitions still awaiting it. The per-slice
// conditional is mandatory: upstream encoding bakes the offset into some
// acquisitions and not others, so a uniform correction would corrupt part
// of the cube. Bands without a BandScaling entry pass through unchanged,
// as do no-data pixels. Correct is meant to run exactly once per cube; it
// returns a new dataset and leaves the input untouched.
func Correct(ds *Dataset, meta map[string]BandScaling) (out *Dataset, err error) {
	if len(ds.Bands) == 0 {
		err = ErrEmptyDataset
		return
	}
	for name := range meta {
		if ds.Band(name) == nil {
			err = fmt.Errorf("%w: %s", ErrBandNotInDataset, name)
			return
		}
	}
	if len(meta) > 0 {
		// a silently assumed default is the defect this correction
		// exists to fix, so refuse to guess
		for i, acq := range ds.Acquisitions {
			if acq.OffsetState == OffsetUnknown {
				err = fmt.Errorf("%w: slice %d (%s)", ErrOffsetStateUnknown, i, acq.SceneID)
				return
			}
		}
	}
	out = ds.emptyLike()
	n := ds.SliceSize()
	for _, b := range ds.Bands {
		nb := out.AddBand(b.Name, b.NoData)
		sc, scaled := meta[b.Name]
		if !scaled {
			copy(nb.Data, b.Data)
			continue
		}
		for t, acq := range ds.Acquisitions {
			addOffset := acq.OffsetState == OffsetPending
			for i := t * n; i < (t+1)*n; i++ {
				v := b.Data[i]
				if v == b.NoData {
					nb.Data[i] = v
					continue
				}
				v *= sc.Scale
				if addOffset {
					v += sc.Offset
				}
				nb.Data[i] = v
			}
		}
	}
	return
}
