package models

import "encoding/json"

// MainSheetRow is one row of the summary sheet's totals window, carrying
// the payloads of a fixed column set verbatim.
type MainSheetRow struct {
	Row int
	// Cells maps column letter to the payload at that column, nil when the
	// cell is empty.
	Cells map[string]*CellPayload
}

// MarshalJSON renders the column payloads flat beside the row number
// ({"row":7,"A":{...},...}), matching the artifact contract.
func (r MainSheetRow) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(r.Cells)+1)
	flat["row"] = r.Row
	for col, cell := range r.Cells {
		flat[col] = cell
	}
	return json.Marshal(flat)
}

// ScenarioTotals snapshots a scenario's header/total cells (E2 through J2)
// and its visible-row count.
type ScenarioTotals struct {
	Scenario string
	// Cells maps refs "E2".."J2" to the payloads at those cells.
	Cells map[string]*CellPayload
	// VisibleRows counts rows of the visible window not marked hidden.
	VisibleRows int
}

// MarshalJSON renders the cell payloads flat beside the scenario name and
// visible-row count ({"scenario":...,"E2":{...},...,"visible_rows":n}).
func (t ScenarioTotals) MarshalJSON() ([]byte, error) {
	flat := make(map[string]any, len(t.Cells)+2)
	flat["scenario"] = t.Scenario
	flat["visible_rows"] = t.VisibleRows
	for ref, cell := range t.Cells {
		flat[ref] = cell
	}
	return json.Marshal(flat)
}

// TotalsView is the totals projection over the decoded sheets.
type TotalsView struct {
	ScenarioTotals []ScenarioTotals `json:"scenario_totals"`
	MainSheetRows  []MainSheetRow   `json:"main_sheet_rows"`
}

// SheetVisibility is the per-scenario visibility projection. Section names
// are pointers so an unnamed section renders as null rather than "".
type SheetVisibility struct {
	Name               string    `json:"name"`
	HiddenRowsCount    int       `json:"hidden_rows_count"`
	VisibleServiceRows int       `json:"visible_service_rows"`
	VisibleSections    []*string `json:"visible_sections"`
	HiddenSections     []*string `json:"hidden_sections"`
	HiddenRowsSorted   []int     `json:"hidden_rows_sorted"`
}

// SheetProfile summarizes one decoded sheet for the workbook profile.
type SheetProfile struct {
	Name                string  `json:"name"`
	Dimension           *string `json:"dimension"`
	FormulaCells        int     `json:"formula_cells"`
	CommentCount        int     `json:"comment_count"`
	DataValidationCount int     `json:"data_validation_count"`
	HiddenRowsCount     int     `json:"hidden_rows_count"`
}

// WorkbookProfile is the workbook-level projection: per-sheet stats in
// canonical sheet order plus the defined names.
type WorkbookProfile struct {
	SheetCount   int            `json:"sheet_count"`
	SheetNames   []string       `json:"sheet_names"`
	DefinedNames []DefinedName  `json:"defined_names"`
	Sheets       []SheetProfile `json:"sheets"`
}

// Summary is the run-level record printed after a successful import.
type Summary struct {
	Input        string `json:"input"`
	OutputDir    string `json:"output_dir"`
	Sections     int    `json:"sections"`
	Services     int    `json:"services"`
	Scenarios    int    `json:"scenarios"`
	FormulaCells int    `json:"formula_cells"`
}
