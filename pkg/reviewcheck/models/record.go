// Package models defines data structures for review document auditing.
package models

import (
	"fmt"
	"strconv"
)

// Role classifies a document by the file type rule that matched its name.
type Role string

const (
	// RoleChecklist marks a review checklist document.
	RoleChecklist Role = "checklist"
	// RoleRecord marks a review record document.
	RoleRecord Role = "record"
	// RoleUnknown marks a document no file type rule matched.
	RoleUnknown Role = "unknown"
)

// ImageStatus is the tri-state result of an image presence check.
type ImageStatus string

const (
	// ImagePresent means a picture is anchored at the checked cell.
	ImagePresent ImageStatus = "present"
	// ImageAbsent means no picture is anchored at the checked cell.
	ImageAbsent ImageStatus = "absent"
	// ImageUnsupported means the file format carries no embedded pictures.
	ImageUnsupported ImageStatus = "unsupported"
)

// ExtractedRecord holds everything pulled out of one document.
type ExtractedRecord struct {
	// Path is the full path of the source file.
	Path string `json:"path"`
	// Filename is the base name of the source file.
	Filename string `json:"filename"`
	// CellValues contains the extracted scalars, one per configured cell.
	CellValues []interface{} `json:"cell_values"`
	// CellLabels names the cells positionally, aligned 1:1 with CellValues.
	// It may be shorter than CellValues; trailing values are unlabeled.
	CellLabels []string `json:"cell_labels"`
	// ImageResults contains one status per configured image check cell.
	ImageResults []ImageStatus `json:"image_results"`
	// Role is the document classification from filename matching.
	Role Role `json:"role"`
}

// ValueByLabel returns the value at the first position whose label equals
// label, formatted as a string. The second result is false when the label
// does not occur or its position lies beyond CellValues.
func (r *ExtractedRecord) ValueByLabel(label string) (string, bool) {
	for i, l := range r.CellLabels {
		if l == label {
			if i >= len(r.CellValues) {
				return "", false
			}
			return FormatValue(r.CellValues[i]), true
		}
	}
	return "", false
}

// FormatValue renders an extracted scalar the way it appears in reports
// and comparisons.
func FormatValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
