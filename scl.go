package easicube

import (
	"fmt"
	"sort"
)

// CategoryDef is the code<->label mapping of one classification band.
// Codes are unique, non-negative and bounded; labels are unique.
type CategoryDef struct {
	labels map[int]string
	codes  map[string]int
}

func NewCategoryDef(categories map[int]string) (def *CategoryDef, err error) {
	if len(categories) == 0 {
		err = fmt.Errorf("%w: no categories", ErrBadCategoryDef)
		return
	}
	def = &CategoryDef{
		labels: make(map[int]string, len(categories)),
		codes:  make(map[string]int, len(categories)),
	}
	for code, label := range categories {
		if code < 0 || code > MAX_CATEGORY_CODE {
			err = fmt.Errorf("%w: code %d out of range", ErrBadCategoryDef, code)
			return
		}
		if label == "" {
			err = fmt.Errorf("%w: empty label for code %d", ErrBadCategoryDef, code)
			return
		}
		if _, ok := def.codes[label]; ok {
			err = fmt.Errorf("%w: duplicate label %q", ErrBadCategoryDef, label)
			return
		}
		def.labels[code] = label
		def.codes[label] = code
	}
	return
}

// Code resolves a semantic label to its classification code.
func (c *CategoryDef) Code(label string) (code int, ok bool) {
	code, ok = c.codes[label]
	return
}

// Label resolves a classification code to its semantic label.
func (c *CategoryDef) Label(code int) (label string, ok bool) {
	label, ok = c.labels[code]
	return
}

// Labels lists all labels ordered by code.
func (c *CategoryDef) Labels() []string {
	codes := make([]int, 0, len(c.labels))
	for code := range c.labels {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	ret := make([]string, len(codes))
	for i, code := range codes {
		ret[i] = c.labels[code]
	}
	return ret
}

// resolve turns accepted labels into a code set; order does not matter.
func (c *CategoryDef) resolve(labels []string) (set map[int]struct{}, err error) {
	set = make(map[int]struct{}, len(labels))
	for _, label := range labels {
		code, ok := c.codes[label]
		if !ok {
			err = fmt.Errorf("%w: %q", ErrUnknownLabel, label)
			return
		}
		set[code] = struct{}{}
	}
	return
}

// SCLDef is the Sentinel-2 L2A scene classification scheme.
var SCLDef, _ = NewCategoryDef(map[int]string{
	0:  "No data",
	1:  "Saturated or defective",
	2:  "Dark area pixels",
	3:  "Cloud shadows",
	4:  "Vegetation",
	5:  "Not vegetated",
	6:  "Water",
	7:  "Unclassified",
	8:  "Cloud medium probability",
	9:  "Cloud high probability",
	10: "Thin cirrus",
	11: "Snow ice",
})
