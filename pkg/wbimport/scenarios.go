package wbimport

import (
	"strconv"

	"github.com/sizerlab/wbimport/pkg/wbimport/models"
)

// sheetLayout describes where a scenario sheet keeps its custom tier,
// details column and grand custom total.
type sheetLayout struct {
	variant         models.Layout
	customCol       string
	detailCol       string
	totalsTotalCell *string
}

// detectLayout inspects H1 and J1. The exact pair H1="Totals", J1="Custom"
// marks the extended layout (custom in J, details in K, grand total in H2);
// everything else is the standard layout (custom in H, details in I, no
// separate total cell). Both shapes coexist historically in one workbook.
func detectLayout(sheet *models.Sheet) sheetLayout {
	h1 := sheet.Value("H1")
	j1 := sheet.Value("J1")

	if h1 != nil && *h1 == "Totals" && j1 != nil && *j1 == "Custom" {
		total := "H2"
		return sheetLayout{
			variant:         models.LayoutExtended,
			customCol:       "J",
			detailCol:       "K",
			totalsTotalCell: &total,
		}
	}

	return sheetLayout{
		variant:   models.LayoutStandard,
		customCol: "H",
		detailCol: "I",
	}
}

// buildScenario diffs one scenario sheet against the template's service
// items. A service row becomes an override when any of its five tracked
// values differs from the template's under normalization.
func buildScenario(sheet *models.Sheet, services []models.ServiceItem) models.Scenario {
	layout := detectLayout(sheet)

	overrides := []models.Override{}
	for _, service := range services {
		r := strconv.Itoa(service.Row)
		current := models.ValueSet{
			S:       sheet.Value("E" + r),
			M:       sheet.Value("F" + r),
			L:       sheet.Value("G" + r),
			Custom:  sheet.Value(layout.customCol + r),
			Details: sheet.Value(layout.detailCol + r),
		}

		if overridden(current, service) {
			overrides = append(overrides, models.Override{
				Row:         service.Row,
				ServiceName: service.ServiceName,
				Changes:     current,
			})
		}
	}

	return models.Scenario{
		Name:          sheet.Name,
		OverrideCount: len(overrides),
		Overrides:     overrides,
		TotalsRow2: models.TotalsRow2{
			S:               sheet.Value("E2"),
			M:               sheet.Value("F2"),
			L:               sheet.Value("G2"),
			Custom:          sheet.Value(layout.customCol + "2"),
			Layout:          layout.variant,
			CustomTotalCell: layout.customCol + "2",
			TotalsTotalCell: layout.totalsTotalCell,
		},
	}
}

// overridden compares the five tracked values against the template's
// stored values, exhaustively over the ValueSet fields.
func overridden(current models.ValueSet, service models.ServiceItem) bool {
	return !equalValues(current.S, service.TemplateS) ||
		!equalValues(current.M, service.TemplateM) ||
		!equalValues(current.L, service.TemplateL) ||
		!equalValues(current.Custom, service.TemplateCustom) ||
		!equalValues(current.Details, service.TemplateDetails)
}

// buildDomainModel derives sections and service items from the template
// sheet, then diffs every other non-summary sheet against them as a
// scenario. The template sheet is a required anchor; its absence is fatal.
func buildDomainModel(sheets map[string]*models.Sheet, order []string, opts Options) (*models.DomainModel, error) {
	base, ok := sheets[opts.TemplateSheet]
	if !ok {
		return nil, &MissingSheetError{Sheet: opts.TemplateSheet}
	}

	sections := buildSections(base)
	services := buildServiceItems(base, sections)

	scenarios := []models.Scenario{}
	for _, name := range order {
		if name == opts.TemplateSheet || name == opts.SummarySheet {
			continue
		}
		scenarios = append(scenarios, buildScenario(sheets[name], services))
	}

	return &models.DomainModel{
		Sections:      sections,
		SectionCount:  len(sections),
		ServiceCount:  len(services),
		ServiceItems:  services,
		Scenarios:     scenarios,
		ScenarioCount: len(scenarios),
	}, nil
}
