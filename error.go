package easicube

import "errors"

var (
	ErrGdalDriverCreate   = errors.New("gdal driver create err")
	ErrGdalDriverOpen     = errors.New("gdal driver open err")
	ErrGdalEmptyShp       = errors.New("gdal shp is empty")
	ErrVoidSrid           = errors.New("gdal shp with void srid")
	ErrInvalidWKT         = errors.New("invalid WKT")
	ErrInvalidTif         = errors.New("invalid tif")
	ErrWrongTif           = errors.New("malformed tif")
	ErrTifReadFailed      = errors.New("tif read failed")
	ErrTifWriteFailed     = errors.New("tif write failed")
	ErrEmptyScenes        = errors.New("no scenes to load")
	ErrGridMismatch       = errors.New("scene grid differs from cube grid")
	ErrBandNotInDataset   = errors.New("band metadata references absent band")
	ErrOffsetStateUnknown = errors.New("offset state undetermined for acquisition")
	ErrUnknownLabel       = errors.New("label not in category definition")
	ErrBadCategoryDef     = errors.New("invalid category definition")
	ErrShapeMismatch      = errors.New("mask shape differs from dataset shape")
	ErrSliceOutOfRange    = errors.New("time slice out of range")
	ErrEmptyDataset       = errors.New("dataset has no bands")
)
