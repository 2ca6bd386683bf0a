package easicube

import "math"

// BandStats summarizes the valid pixels of one band.
type BandStats struct {
	Band       string
	Min        float64
	Max        float64
	Mean       float64
	StdDev     float64
	ValidCount int
}

// Summary computes per-band statistics over valid pixels, skipping no-data
// sentinels and, when a mask is given, pixels the mask rejects.
func Summary(ds *Dataset, m *Mask) (stats []BandStats, err error) {
	if len(ds.Bands) == 0 {
		err = ErrEmptyDataset
		return
	}
	if m != nil && !m.matches(ds) {
		err = ErrShapeMismatch
		return
	}
	stats = make([]BandStats, len(ds.Bands))
	for bi, b := range ds.Bands {
		s := BandStats{Band: b.Name, Min: math.Inf(1), Max: math.Inf(-1)}
		var sum, sumSq float64
		for i, v := range b.Data {
			if v == b.NoData || (m != nil && !m.Data[i]) {
				continue
			}
			if v < s.Min {
				s.Min = v
			}
			if v > s.Max {
				s.Max = v
			}
			sum += v
			sumSq += v * v
			s.ValidCount++
		}
		if s.ValidCount > 0 {
			n := float64(s.ValidCount)
			s.Mean = sum / n
			variance := sumSq/n - s.Mean*s.Mean
			if variance > 0 {
				s.StdDev = math.Sqrt(variance)
			}
		} else {
			s.Min, s.Max = 0, 0
		}
		stats[bi] = s
	}
	return
}
