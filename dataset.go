package easicube

import "time"

// Dataset is an in-memory raster data cube: named bands sharing one spatial
// grid, projection and time axis. Band buffers are flat T*Y*X row-major.
type Dataset struct {
	Bands        []*Band
	Acquisitions []Acquisition
	XSize        int
	YSize        int
	GeoTransform [6]float64
	Projection   string
}

func NewDataset(acqs []Acquisition, ySize, xSize int) *Dataset {
	return &Dataset{
		Acquisitions: acqs,
		XSize:        xSize,
		YSize:        ySize,
	}
}

// Shape returns the cube dimensions (time, y, x).
func (d *Dataset) Shape() (t, y, x int) {
	return len(d.Acquisitions), d.YSize, d.XSize
}

// SliceSize is the pixel count of one time-slice.
func (d *Dataset) SliceSize() int {
	return d.YSize * d.XSize
}

// Index flattens (t,y,x) into a band buffer offset.
func (d *Dataset) Index(t, y, x int) int {
	return (t*d.YSize+y)*d.XSize + x
}

// Band returns the named band, or nil when absent.
func (d *Dataset) Band(name string) *Band {
	for _, b := range d.Bands {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// AddBand allocates a zeroed band over the dataset grid and appends it.
func (d *Dataset) AddBand(name string, noData float64) *Band {
	b := &Band{
		Name:   name,
		Data:   make([]float64, len(d.Acquisitions)*d.YSize*d.XSize),
		NoData: noData,
	}
	d.Bands = append(d.Bands, b)
	return b
}

// Times returns the acquisition timestamps in axis order.
func (d *Dataset) Times() []time.Time {
	ts := make([]time.Time, len(d.Acquisitions))
	for i, a := range d.Acquisitions {
		ts[i] = a.Time
	}
	return ts
}

// emptyLike makes a bandless dataset carrying the same grid and time axis.
func (d *Dataset) emptyLike() *Dataset {
	out := &Dataset{
		Acquisitions: make([]Acquisition, len(d.Acquisitions)),
		XSize:        d.XSize,
		YSize:        d.YSize,
		GeoTransform: d.GeoTransform,
		Projection:   d.Projection,
	}
	copy(out.Acquisitions, d.Acquisitions)
	return out
}
