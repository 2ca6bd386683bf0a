package easicube

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/minhkhacode/easicube/log"
	"github.com/minhkhacode/easicube/utils"

	"github.com/google/uuid"
	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

// LoadCube reads the requested measurements of each scene into one cube.
// Scenes are stacked on the time axis in timestamp order and must share the
// cube grid exactly; resampling onto a different grid is out of scope.
// Per-band scale/offset declared by the scenes comes back as the metadata
// for Correct; the per-acquisition offset flag is read from scene metadata
// and left OffsetUnknown when absent, so Correct can refuse to guess.
func (g *CubeToolbox) LoadCube(q Query, scenes []SceneSource) (ds *Dataset, meta map[string]BandScaling, err error) {
	picked := make([]SceneSource, 0, len(scenes))
	for _, s := range scenes {
		if !q.Start.IsZero() && s.Time.Before(q.Start) {
			continue
		}
		if !q.End.IsZero() && s.Time.After(q.End) {
			continue
		}
		picked = append(picked, s)
	}
	if len(picked) == 0 {
		err = ErrEmptyScenes
		return
	}
	sort.SliceStable(picked, func(i, j int) bool {
		return picked[i].Time.Before(picked[j].Time)
	})
	log.Info(g.logTag+"start cube load", zap.String("product", q.Product),
		zap.Int("scenes", len(picked)), zap.Strings("measurements", q.Measurements))

	acqs := make([]Acquisition, len(picked))
	for t, s := range picked {
		acqs[t] = Acquisition{
			Time:        s.Time,
			SceneID:     utils.GetFilenameWithoutExt(s.Path),
			OffsetState: OffsetUnknown,
		}
	}
	meta = map[string]BandScaling{}
	n := 0
	for t, s := range picked {
		if !utils.ContainsAll(s.BandOrder, q.Measurements) {
			for _, name := range q.Measurements {
				if utils.IndexOf(s.BandOrder, name) < 0 {
					err = fmt.Errorf(ErrMeasurementMissingTemplate, name, s.Path)
					return
				}
			}
		}
		var sds gdal.Dataset
		if sds, err = gdal.Open(s.Path, gdal.ReadOnly); err != nil {
			log.Error(g.logTag+"open scene failed", zap.String("path", s.Path), zap.Error(err))
			err = ErrInvalidTif
			return
		}
		ds, err = g.readScene(sds, s, q.Measurements, t, ds, meta, acqs)
		sds.Close()
		if err != nil {
			ds = nil
			return
		}
		n++
	}
	log.Info(g.logTag+"cube load done", zap.Int("slices", n),
		zap.Int("x", ds.XSize), zap.Int("y", ds.YSize))
	return
}

// readScene fills time-slice t of the cube from one open scene dataset.
// The first scene fixes the grid; later scenes must match it.
func (g *CubeToolbox) readScene(sds gdal.Dataset, s SceneSource, measurements []string,
	t int, cube *Dataset, meta map[string]BandScaling, acqs []Acquisition) (out *Dataset, err error) {
	out = cube
	x := sds.RasterXSize()
	y := sds.RasterYSize()
	if bc := sds.RasterCount(); bc < len(s.BandOrder) {
		log.Error(g.logTag+"scene bands not enough", zap.String("path", s.Path),
			zap.Int("bands", bc), zap.Int("declared", len(s.BandOrder)))
		err = ErrWrongTif
		return
	}
	gt := sds.GeoTransform()
	if cube == nil {
		cube = NewDataset(acqs, y, x)
		cube.GeoTransform = gt
		cube.Projection = sds.Projection()
		out = cube
	} else if x != cube.XSize || y != cube.YSize || gt != cube.GeoTransform {
		log.Error(g.logTag+"scene off grid", zap.String("path", s.Path),
			zap.Int("x", x), zap.Int("y", y))
		err = ErrGridMismatch
		return
	}
	acqs[t].OffsetState = offsetStateOf(sds.MetadataItem(MD_OFFSET_APPLIED, MD_DOMAIN_DEFAULT))
	if acqs[t].OffsetState == OffsetUnknown {
		log.Warn(g.logTag+"scene lacks offset flag", zap.String("path", s.Path))
	}
	n := cube.SliceSize()
	for _, name := range measurements {
		band := sds.RasterBand(utils.IndexOf(s.BandOrder, name) + 1)
		nb := cube.Band(name)
		if nb == nil {
			noData, ok := band.NoDataValue()
			if !ok {
				noData = DEFAULT_NODATA
			}
			nb = cube.AddBand(name, noData)
		}
		if t == 0 {
			if sc, scaled := bandScalingOf(band); scaled {
				meta[name] = sc
			}
		} else if sc, scaled := bandScalingOf(band); scaled && sc != meta[name] {
			log.Warn(g.logTag+"band scaling differs between scenes",
				zap.String("band", name), zap.String("path", s.Path))
		}
		buf := nb.Data[t*n : (t+1)*n]
		if err = band.IO(gdal.Read, 0, 0, x, y, buf, x, y, 0, 0); err != nil {
			log.Error(g.logTag+"read scene band failed", zap.String("band", name),
				zap.String("path", s.Path), zap.Error(err))
			err = ErrTifReadFailed
			return
		}
	}
	return
}

func bandScalingOf(band gdal.RasterBand) (sc BandScaling, declared bool) {
	scale, hasScale := band.GetScale()
	offset, hasOffset := band.GetOffset()
	if !hasScale && !hasOffset {
		return
	}
	if !hasScale || scale == 0 {
		scale = 1
	}
	sc = BandScaling{Scale: scale, Offset: offset}
	declared = true
	return
}

func offsetStateOf(flag string) OffsetState {
	switch strings.ToUpper(strings.TrimSpace(flag)) {
	case "TRUE", "YES", "1":
		return OffsetApplied
	case "FALSE", "NO", "0":
		return OffsetPending
	}
	return OffsetUnknown
}

// ExportGeoTIFF writes one time-slice of the cube to a GeoTIFF for the
// display layer, grid, projection and no-data preserved. An empty out path
// gets a unique name under the toolbox scratch directory.
func (g *CubeToolbox) ExportGeoTIFF(ds *Dataset, t int, out string) (path string, err error) {
	if len(ds.Bands) == 0 {
		err = ErrEmptyDataset
		return
	}
	if t < 0 || t >= len(ds.Acquisitions) {
		err = ErrSliceOutOfRange
		return
	}
	path = out
	if path == "" {
		path = filepath.Join(g.tmpDir, fmt.Sprintf(TMP_TIF, uuid.NewString()))
	}
	driver, err := gdal.GetDriverByName(TIF_DRIVER_NAME)
	if err != nil {
		log.Error(g.logTag+"get tif driver failed", zap.Error(err))
		err = ErrGdalDriverCreate
		return
	}
	ods := driver.Create(path, ds.XSize, ds.YSize, len(ds.Bands), gdal.Float64, []string{"COMPRESS=LZW"})
	defer ods.Close()
	ods.SetGeoTransform(ds.GeoTransform)
	ods.SetProjection(ds.Projection)
	n := ds.SliceSize()
	for i, b := range ds.Bands {
		ob := ods.RasterBand(i + 1)
		ob.SetNoDataValue(b.NoData)
		buf := b.Data[t*n : (t+1)*n]
		if err = ob.IO(gdal.Write, 0, 0, ds.XSize, ds.YSize, buf, ds.XSize, ds.YSize, 0, 0); err != nil {
			log.Error(g.logTag+"write slice band failed", zap.String("band", b.Name), zap.Error(err))
			err = ErrTifWriteFailed
			return
		}
	}
	log.Info(g.logTag+"exported slice", zap.Int("t", t), zap.String("path", path))
	return
}

// ExportCube writes every time-slice of the cube into a fresh subdirectory
// of dir, one GeoTIFF per acquisition named by scene ID.
func (g *CubeToolbox) ExportCube(ds *Dataset, dir string) (paths []string, err error) {
	sub, err := utils.GetUniqSubDir(dir)
	if err != nil {
		return
	}
	paths = make([]string, len(ds.Acquisitions))
	for t, acq := range ds.Acquisitions {
		if paths[t], err = g.ExportGeoTIFF(ds, t, filepath.Join(sub, acq.SceneID+FILE_EXT_TIF)); err != nil {
			paths = nil
			return
		}
	}
	return
}
