package wbimport

import (
	"strconv"

	"github.com/sizerlab/wbimport/pkg/wbimport/models"
)

// buildServiceItems walks the sections' row ranges in header-row order and
// emits one service item per row that carries a name or crm id. A row
// nominally covered by more than one section is claimed by the earliest
// section; rows with neither name nor id are structural blanks and are
// skipped.
func buildServiceItems(base *models.Sheet, sections []models.Section) []models.ServiceItem {
	claimed := make(map[int]bool)
	services := []models.ServiceItem{}

	for _, section := range sections {
		for row := section.StartRow; row <= section.EndRow; row++ {
			if claimed[row] {
				continue
			}
			claimed[row] = true

			r := strconv.Itoa(row)
			name := base.Value("B" + r)
			crmID := base.Value("C" + r)
			if name == nil && crmID == nil {
				continue
			}

			services = append(services, models.ServiceItem{
				Row:             row,
				Section:         section.Name,
				ServiceName:     name,
				CRMID:           crmID,
				DefaultEffort:   base.Value("D" + r),
				TemplateS:       base.Value("E" + r),
				TemplateM:       base.Value("F" + r),
				TemplateL:       base.Value("G" + r),
				TemplateCustom:  base.Value("H" + r),
				TemplateDetails: base.Value("I" + r),
			})
		}
	}

	return services
}
