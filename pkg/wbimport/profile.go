package wbimport

import "github.com/sizerlab/wbimport/pkg/wbimport/models"

// buildProfile summarizes every decoded sheet in canonical order, together
// with the workbook's defined names.
func buildProfile(sheets map[string]*models.Sheet, order []string, defined []models.DefinedName) *models.WorkbookProfile {
	profiles := []models.SheetProfile{}
	for _, name := range order {
		sheet := sheets[name]
		profiles = append(profiles, models.SheetProfile{
			Name:                name,
			Dimension:           sheet.Dimension,
			FormulaCells:        sheet.FormulaCount,
			CommentCount:        sheet.CommentCount,
			DataValidationCount: sheet.DataValidationCount,
			HiddenRowsCount:     len(sheet.HiddenRows),
		})
	}

	return &models.WorkbookProfile{
		SheetCount:   len(order),
		SheetNames:   order,
		DefinedNames: defined,
		Sheets:       profiles,
	}
}
