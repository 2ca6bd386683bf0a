package easicube

import (
	"encoding/json"
	"time"
)

type AnyJson = json.RawMessage

type GdalGeo = []byte

// OffsetState records whether the radiometric add-offset was already baked
// into the stored raw values of one acquisition. Upstream encoding is
// inconsistent across acquisitions, so the state is tracked per time-slice
// and never guessed.
type OffsetState int8

const (
	OffsetUnknown OffsetState = iota // not determinable from scene metadata
	OffsetApplied                    // offset already in the raw values
	OffsetPending                    // offset still to be added
)

// BandScaling holds the linear correction parameters of one measurement band.
// physical = raw*Scale + Offset, applied exactly once per pixel.
type BandScaling struct {
	Scale  float64
	Offset float64
}

// Acquisition is one time-slice of the cube.
type Acquisition struct {
	Time        time.Time
	SceneID     string
	OffsetState OffsetState
}

// Band is one named layer of the cube, flat T*Y*X row-major buffer.
type Band struct {
	Name   string
	Data   []float64
	NoData float64
}

// Query describes a cube load request.
type Query struct {
	Product      string
	Span         [4]float64 // lon1,lon2,lat1,lat2
	Start        time.Time
	End          time.Time
	OutputSRID   int
	Measurements []string
}

// SceneSource points at one acquisition on disk.
type SceneSource struct {
	Path      string
	Time      time.Time
	BandOrder []string // band names in file order
}
