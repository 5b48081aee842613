package extract

import "errors"

// ErrUnsupportedFormat indicates a file no extractor can read.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ErrLegacyFormat indicates a pre-2007 OLE compound workbook (.xls),
// which the OOXML reader cannot open.
var ErrLegacyFormat = errors.New("legacy xls workbook")
