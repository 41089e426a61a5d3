package wbimport

import (
	"github.com/sizerlab/wbimport/pkg/wbimport/models"
	"github.com/sizerlab/wbimport/pkg/wbimport/parser"
)

// Result bundles the four projections of one import run.
type Result struct {
	DomainModel *models.DomainModel
	Totals      *models.TotalsView
	Visibility  []models.SheetVisibility
	Profile     *models.WorkbookProfile
}

// FormulaCells sums the formula-cell counts over all sheets.
func (r *Result) FormulaCells() int {
	total := 0
	for _, sheet := range r.Profile.Sheets {
		total += sheet.FormulaCells
	}
	return total
}

// Import opens the workbook package at path, decodes every indexed sheet,
// and derives the domain model and the secondary views. The archive handle
// is released on every exit path; no output is produced on failure.
func Import(path string, opts Options) (*Result, error) {
	container, err := parser.OpenContainer(path)
	if err != nil {
		return nil, err
	}
	defer container.Close()

	shared, err := parser.SharedStrings(container)
	if err != nil {
		return nil, err
	}

	entries, defined, err := parser.IndexWorkbook(container)
	if err != nil {
		return nil, err
	}

	order := make([]string, 0, len(entries))
	sheets := make(map[string]*models.Sheet, len(entries))
	for _, entry := range entries {
		sheet, err := parser.ParseSheet(container, entry.Name, entry.Path, shared)
		if err != nil {
			return nil, err
		}
		order = append(order, entry.Name)
		sheets[entry.Name] = sheet
	}

	domain, err := buildDomainModel(sheets, order, opts)
	if err != nil {
		return nil, err
	}

	totals, err := buildTotals(sheets, order, opts)
	if err != nil {
		return nil, err
	}

	return &Result{
		DomainModel: domain,
		Totals:      totals,
		Visibility:  buildVisibility(sheets, order, domain.Sections, opts),
		Profile:     buildProfile(sheets, order, defined),
	}, nil
}
