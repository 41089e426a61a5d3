package wbimport

import (
	"fmt"
	"strconv"

	"github.com/tiendc/go-deepcopy"

	"github.com/sizerlab/wbimport/pkg/wbimport/models"
)

// mainColumns is the fixed column set carried verbatim from the summary
// sheet's row window into the totals view.
var mainColumns = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "N"}

// totalsCells are the per-scenario header/total cells snapshot into the
// totals view.
var totalsCells = []string{"E2", "F2", "G2", "H2", "I2", "J2"}

// buildTotals projects the summary sheet's row window and each scenario's
// row-2 totals. Payloads are deep-copied out of the sheet cell maps so the
// view owns its data outright.
func buildTotals(sheets map[string]*models.Sheet, order []string, opts Options) (*models.TotalsView, error) {
	main, ok := sheets[opts.SummarySheet]
	if !ok {
		return nil, &MissingSheetError{Sheet: opts.SummarySheet}
	}

	mainRows := []models.MainSheetRow{}
	for row := opts.MainRowStart; row <= opts.MainRowEnd; row++ {
		cells := make(map[string]*models.CellPayload, len(mainColumns))
		for _, col := range mainColumns {
			payload, err := copyPayload(main.Cells[col+strconv.Itoa(row)])
			if err != nil {
				return nil, err
			}
			cells[col] = payload
		}
		mainRows = append(mainRows, models.MainSheetRow{Row: row, Cells: cells})
	}

	scenarioTotals := []models.ScenarioTotals{}
	for _, name := range order {
		if name == opts.SummarySheet {
			continue
		}
		sheet := sheets[name]

		cells := make(map[string]*models.CellPayload, len(totalsCells))
		for _, ref := range totalsCells {
			payload, err := copyPayload(sheet.Cells[ref])
			if err != nil {
				return nil, err
			}
			cells[ref] = payload
		}

		scenarioTotals = append(scenarioTotals, models.ScenarioTotals{
			Scenario:    name,
			Cells:       cells,
			VisibleRows: visibleRows(sheet.HiddenRows, opts.VisibleRowStart, opts.VisibleRowEnd),
		})
	}

	return &models.TotalsView{
		ScenarioTotals: scenarioTotals,
		MainSheetRows:  mainRows,
	}, nil
}

// copyPayload clones a cell payload so views never alias sheet state. Nil
// stays nil.
func copyPayload(src *models.CellPayload) (*models.CellPayload, error) {
	if src == nil {
		return nil, nil
	}
	dst := &models.CellPayload{}
	if err := deepcopy.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("copy cell payload %s: %w", src.Ref, err)
	}
	return dst, nil
}

// visibleRows counts the rows of the inclusive window not present in the
// sorted hidden list.
func visibleRows(hidden []int, start, end int) int {
	hiddenSet := make(map[int]bool, len(hidden))
	for _, row := range hidden {
		hiddenSet[row] = true
	}

	count := 0
	for row := start; row <= end; row++ {
		if !hiddenSet[row] {
			count++
		}
	}
	return count
}
