package easicube

import (
	"github.com/minhkhacode/easicube/log"
	"github.com/minhkhacode/easicube/utils"

	"github.com/lukeroth/gdal"
	"go.uber.org/zap"
)

// AOIZone is one named area of interest read from a shapefile.
type AOIZone struct {
	Name string
	Geom GdalGeo // WKB in EPSG:4326
}

const SHP_FIELD_NAME = "name"

var fieldNameGbk, _ = utils.Utf8StrToGbk(SHP_FIELD_NAME)

// parseAOI unions every feature of the shapefile into one polygon in
// EPSG:4326.
func (g *CubeToolbox) parseAOI(shp string) (ret gdal.Geometry, err error) {
	driver := gdal.OGRDriverByName(SHP_DRIVER_NAME)
	ds, ok := driver.Open(shp, 0)
	if !ok {
		err = ErrGdalDriverOpen
		return
	}
	defer ds.Destroy()
	var (
		layer   = ds.LayerByIndex(0)
		srid    int
		feature *gdal.Feature
		gc      []destroyable
	)
	if srid, err = g.getSrid(layer.SpatialReference()); err != nil {
		return
	}
	defer func() {
		for _, v := range gc {
			v.Destroy()
		}
	}()
	ret = gdal.Create(gdal.GT_Polygon)
	for {
		if feature = layer.NextFeature(); feature != nil {
			gc = append(gc, *feature)
			gc = append(gc, ret)
			ret = ret.Union(feature.Geometry())
		} else {
			break
		}
	}
	if ret.IsEmpty() {
		gc = append(gc, ret)
		err = ErrGdalEmptyShp
		return
	}
	if srid != UNIVERSAL_SRID {
		var tRef gdal.SpatialReference
		if tRef, err = g.getSridRef(UNIVERSAL_SRID); err == nil {
			if err = ret.TransformTo(tRef); err != nil {
				log.Error(g.logTag+"aoi transform failed", zap.Error(err))
			}
		}
		if err != nil {
			gc = append(gc, ret)
		}
	}
	return
}

// GetAOIWkt reduces an AOI shapefile to a single WKT polygon (EPSG:4326).
func (g *CubeToolbox) GetAOIWkt(shp string) (ret string, err error) {
	log.Info(g.logTag+"start aoi wkt trans", zap.String("shp", shp))
	geo, err := g.parseAOI(shp)
	if err != nil {
		return
	}
	ret, err = geo.ToWKT()
	geo.Destroy()
	return
}

// GetAOISpan returns the (lon1,lon2,lat1,lat2) envelope of an AOI
// shapefile, ready to drop into a Query.
func (g *CubeToolbox) GetAOISpan(shp string) (span [4]float64, err error) {
	geo, err := g.parseAOI(shp)
	if err != nil {
		return
	}
	defer geo.Destroy()
	envelop := geo.Envelope()
	span[0] = envelop.MinX()
	span[1] = envelop.MaxX()
	span[2] = envelop.MinY()
	span[3] = envelop.MaxY()
	return
}

// GetAOIGeoJSON renders the AOI outline as GeoJSON for the display layer.
func (g *CubeToolbox) GetAOIGeoJSON(shp string) (ret AnyJson, err error) {
	geo, err := g.parseAOI(shp)
	if err != nil {
		return
	}
	ret = utils.S2B(geo.ToJSON())
	geo.Destroy()
	return
}

// ListAOIZones reads per-feature named zones from an AOI shapefile,
// trans-coding GBK attribute values when the sidecar .cpg says so.
func (g *CubeToolbox) ListAOIZones(shp string) (ret []AOIZone, err error) {
	driver := gdal.OGRDriverByName(SHP_DRIVER_NAME)
	ds, ok := driver.Open(shp, 0)
	if !ok {
		err = ErrGdalDriverOpen
		return
	}
	defer ds.Destroy()
	utf8 := utils.ShpEncodingUtf8(shp)
	layer := ds.LayerByIndex(0)
	def := layer.Definition()
	nameIdx := def.FieldIndex(SHP_FIELD_NAME)
	if nameIdx < 0 {
		nameIdx = def.FieldIndex(fieldNameGbk)
	}
	n := 128
	if nf, ok := layer.FeatureCount(false); ok && nf > 0 {
		n = nf
	}
	ret = make([]AOIZone, 0, n)
	var (
		feature *gdal.Feature
		wkb     []byte
		name    string
		e       error
		gc      []destroyable
	)
	defer func() {
		for _, v := range gc {
			v.Destroy()
		}
	}()
	for {
		if feature = layer.NextFeature(); feature == nil {
			log.Info(g.logTag+"got aoi zones", zap.String("shp", shp), zap.Int("count", len(ret)))
			return
		}
		gc = append(gc, *feature)
		wkb, e = feature.Geometry().ToWKB()
		if len(wkb) < 3 || e != nil {
			log.Error(g.logTag+"err in wkb trans", zap.Int64("fid", feature.FID()), zap.Error(e))
			continue
		}
		name = ""
		if nameIdx >= 0 {
			name = feature.FieldAsString(nameIdx)
			if !utf8 {
				if name, e = utils.GbkStrToUtf8(name); e != nil {
					log.Error(g.logTag+"err in trans-encoding name", zap.Int64("fid", feature.FID()), zap.Error(e))
					continue
				}
			}
			name = utils.PurifyForUtf8(name)
		}
		ret = append(ret, AOIZone{
			Name: name,
			Geom: wkb,
		})
	}
}
