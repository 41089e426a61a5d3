package wbimport

import (
	"strconv"

	"github.com/sizerlab/wbimport/pkg/wbimport/models"
)

// buildVisibility projects per-sheet visibility: hidden-row counts, the
// count of visible named service rows, and which sections are hidden. A
// section counts as hidden iff its header row is hidden; its body rows are
// not inspected for that classification.
func buildVisibility(sheets map[string]*models.Sheet, order []string, sections []models.Section, opts Options) []models.SheetVisibility {
	visibility := []models.SheetVisibility{}

	for _, name := range order {
		if name == opts.SummarySheet {
			continue
		}
		sheet := sheets[name]

		hidden := make(map[int]bool, len(sheet.HiddenRows))
		for _, row := range sheet.HiddenRows {
			hidden[row] = true
		}

		visibleSections := []*string{}
		hiddenSections := []*string{}
		visibleServiceRows := 0

		for _, section := range sections {
			if hidden[section.HeaderRow] {
				hiddenSections = append(hiddenSections, copyName(section.Name))
			} else {
				visibleSections = append(visibleSections, copyName(section.Name))
			}

			for row := section.StartRow; row <= section.EndRow; row++ {
				if hidden[row] {
					continue
				}
				if sheet.Value("B"+strconv.Itoa(row)) != nil {
					visibleServiceRows++
				}
			}
		}

		visibility = append(visibility, models.SheetVisibility{
			Name:               name,
			HiddenRowsCount:    len(sheet.HiddenRows),
			VisibleServiceRows: visibleServiceRows,
			VisibleSections:    visibleSections,
			HiddenSections:     hiddenSections,
			HiddenRowsSorted:   append([]int{}, sheet.HiddenRows...),
		})
	}

	return visibility
}

// copyName clones an optional section name so the view owns its strings.
// An unnamed section stays nil and serializes as null.
func copyName(name *string) *string {
	if name == nil {
		return nil
	}
	clone := *name
	return &clone
}
