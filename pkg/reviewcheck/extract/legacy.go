package extract

import (
	"fmt"
	"os"

	"github.com/richardlehane/mscfb"
)

// classifyLegacy inspects a file with a .xls extension. Old Excel
// workbooks are OLE compound files carrying a "Workbook" (BIFF8) or
// "Book" (BIFF5) stream; those report ErrLegacyFormat so the caller can
// log the precise reason the file was skipped. Anything else under the
// extension is not a workbook at all.
func classifyLegacy(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := mscfb.New(f)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		if entry.Name == "Workbook" || entry.Name == "Book" {
			return fmt.Errorf("%w: %s", ErrLegacyFormat, path)
		}
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}
