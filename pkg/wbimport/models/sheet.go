package models

// Sheet is one decoded worksheet part.
type Sheet struct {
	// Name is the sheet name as declared in the workbook definition.
	Name string `json:"name"`
	// Path is the worksheet part path inside the package (e.g.
	// "xl/worksheets/sheet1.xml").
	Path string `json:"path"`
	// Cells maps A1-style refs to decoded payloads. Cells absent from the
	// map are empty.
	Cells map[string]*CellPayload `json:"-"`
	// Dimension is the declared sheet extent, when present.
	Dimension *string `json:"dimension"`
	// FormulaCount is the number of cells carrying a formula node.
	FormulaCount int `json:"formula_cells"`
	// CommentCount is the number of comment entries reachable through the
	// sheet's relationship part.
	CommentCount int `json:"comment_count"`
	// DataValidationCount is the number of data-validation rule entries.
	DataValidationCount int `json:"data_validation_count"`
	// HiddenRows lists hidden row numbers, sorted ascending.
	HiddenRows []int `json:"hidden_rows"`
}

// Value returns the effective value at ref: the decoded value when
// present, otherwise the cached literal. Nil for empty cells.
func (s *Sheet) Value(ref string) *string {
	cell, ok := s.Cells[ref]
	if !ok {
		return nil
	}
	if cell.Value != nil {
		return cell.Value
	}
	return cell.Cached
}

// Formula returns the formula text at ref, or nil when the cell has no
// formula.
func (s *Sheet) Formula(ref string) *string {
	cell, ok := s.Cells[ref]
	if !ok {
		return nil
	}
	return cell.Formula
}

// DefinedName is one workbook-level defined name.
type DefinedName struct {
	// Name is the defined name.
	Name string `json:"name"`
	// LocalSheetID scopes the name to one sheet, when present.
	LocalSheetID *string `json:"localSheetId"`
	// Text is the raw formula text the name refers to.
	Text string `json:"text"`
}
