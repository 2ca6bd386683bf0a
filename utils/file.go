package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	FILE_EXT_SHP = ".shp"
	FILE_EXT_CPG = ".cpg"

	UTF8  = "UTF8"
	UTF_8 = "UTF-8"
)

func GetUniqSubDir(parentPath string) (path string, err error) {
	path = filepath.Join(parentPath, uuid.NewString())
	err = os.Mkdir(path, os.ModePerm)
	return
}

func GetFilenameWithoutExt(path string) (name string) {
	name = filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(path))
	return
}

// ShpEncodingUtf8 reads the sidecar .cpg to decide attribute encoding;
// anything but an explicit UTF-8 marker is treated as GBK.
func ShpEncodingUtf8(shp string) bool {
	enc, err := os.ReadFile(strings.TrimSuffix(shp, FILE_EXT_SHP) + FILE_EXT_CPG)
	if err != nil || len(enc) == 0 {
		return false
	}
	encStr := strings.ToUpper(strings.TrimSpace(string(enc)))
	return encStr == UTF_8 || encStr == UTF8
}
