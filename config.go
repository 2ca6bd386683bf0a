package easicube

const (
	FILE_EXT_TIF    = ".tif"
	SHP_DRIVER_NAME = "ESRI Shapefile"
	TIF_DRIVER_NAME = "GTiff"

	UNIVERSAL_SRID    = 4326
	WEB_MERCATOR_SRID = 3857

	// scene metadata item carrying the per-acquisition offset flag
	MD_OFFSET_APPLIED = "BOA_ADD_OFFSET_APPLIED"
	MD_DOMAIN_DEFAULT = ""

	// Sentinel-2 L2A scene classification band
	SCL_BAND = "SCL"

	// fill value for pixels outside the valid range
	DEFAULT_NODATA = 0

	// largest classification code a CategoryDef accepts
	MAX_CATEGORY_CODE = 255

	ErrMeasurementMissingTemplate = `measurement [%s] not found in scene %s`

	TMP_TIF = "slice_%s.tif"
)
