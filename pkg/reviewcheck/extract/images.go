package extract

import (
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/reviewcheck/pkg/reviewcheck/models"
)

// Images reports whether each requested cell anchors an embedded picture.
// Formats that cannot carry embedded pictures (CSV, legacy xls) yield
// unsupported markers. Read failures yield absent markers rather than an
// error, so a damaged workbook degrades to "no stamp" instead of
// aborting the run.
func Images(path, sheet string, cells []string) []models.ImageStatus {
	if len(cells) == 0 {
		return []models.ImageStatus{}
	}
	if strings.ToLower(filepath.Ext(path)) != ".xlsx" {
		return uniformStatus(len(cells), models.ImageUnsupported)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return uniformStatus(len(cells), models.ImageAbsent)
	}
	defer f.Close()

	name, err := resolveSheet(f, sheet)
	if err != nil {
		return uniformStatus(len(cells), models.ImageAbsent)
	}
	pictureCells, err := f.GetPictureCells(name)
	if err != nil {
		return uniformStatus(len(cells), models.ImageAbsent)
	}

	anchored := make(map[string]bool, len(pictureCells))
	for _, cell := range pictureCells {
		anchored[cell] = true
	}

	statuses := make([]models.ImageStatus, len(cells))
	for i, cell := range cells {
		if anchored[cell] {
			statuses[i] = models.ImagePresent
		} else {
			statuses[i] = models.ImageAbsent
		}
	}
	return statuses
}

func uniformStatus(n int, status models.ImageStatus) []models.ImageStatus {
	statuses := make([]models.ImageStatus, n)
	for i := range statuses {
		statuses[i] = status
	}
	return statuses
}
