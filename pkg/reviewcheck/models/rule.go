package models

// FileTypeRule describes one class of document to audit: how to recognize
// its files and which cells to read from them.
type FileTypeRule struct {
	// Name is a human-readable rule name used as a report section title.
	Name string `json:"name"`
	// Role is the classification assigned to matching files.
	Role Role `json:"role"`
	// FilePattern is a glob matched against base file names.
	FilePattern string `json:"file_pattern"`
	// TargetSheet is the sheet to read. Empty means the first sheet.
	TargetSheet string `json:"target_sheet,omitempty"`
	// TargetCells lists the A1-style addresses to extract.
	TargetCells []string `json:"target_cells"`
	// CellLabels names the target cells positionally. It may be shorter
	// than TargetCells; trailing cells stay unlabeled.
	CellLabels []string `json:"cell_labels"`
	// ImageCheckCells lists the addresses checked for embedded pictures.
	ImageCheckCells []string `json:"image_check_cells"`
}
