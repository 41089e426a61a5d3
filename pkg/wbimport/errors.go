package wbimport

import "fmt"

// MissingSheetError reports a sheet the import cannot proceed without: the
// template sheet anchoring all derivation, or the summary sheet feeding the
// totals view.
type MissingSheetError struct {
	Sheet string
}

func (e *MissingSheetError) Error() string {
	return fmt.Sprintf("expected sheet %q not found in workbook", e.Sheet)
}
