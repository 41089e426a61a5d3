package models

// Layout identifies one of the two historical scenario-sheet column
// arrangements.
type Layout string

const (
	// LayoutStandard keeps the custom tier in column H and details in I.
	LayoutStandard Layout = "standard"
	// LayoutExtended moves the custom tier to column J and details to K,
	// with a grand custom total in H2. Detected by H1="Totals", J1="Custom".
	LayoutExtended Layout = "extended"
)

// ValueSet holds the five tracked values of a service row.
type ValueSet struct {
	S       *string `json:"S"`
	M       *string `json:"M"`
	L       *string `json:"L"`
	Custom  *string `json:"Custom"`
	Details *string `json:"Details"`
}

// Override records a service row whose tracked values differ from the
// template's.
type Override struct {
	// Row is the service row number.
	Row int `json:"row"`
	// ServiceName is the template's name for the service.
	ServiceName *string `json:"service_name"`
	// Changes is the scenario's full five-value snapshot for the row.
	Changes ValueSet `json:"changes"`
}

// TotalsRow2 is the per-scenario snapshot of the row-2 total cells.
type TotalsRow2 struct {
	S      *string `json:"S"`
	M      *string `json:"M"`
	L      *string `json:"L"`
	Custom *string `json:"Custom"`
	// Layout is the detected layout variant.
	Layout Layout `json:"layout"`
	// CustomTotalCell is the address of the custom-tier total ("H2" or "J2"
	// depending on layout).
	CustomTotalCell string `json:"custom_total_cell"`
	// TotalsTotalCell is the grand-total cell on extended layouts, nil on
	// standard ones.
	TotalsTotalCell *string `json:"totals_total_cell"`
}

// Scenario is one non-template, non-summary sheet diffed against the
// template.
type Scenario struct {
	Name          string     `json:"name"`
	OverrideCount int        `json:"override_count"`
	Overrides     []Override `json:"overrides"`
	TotalsRow2    TotalsRow2 `json:"totals_row2"`
}

// DomainModel aggregates sections, service items and scenarios for one
// import run.
type DomainModel struct {
	Sections      []Section     `json:"sections"`
	SectionCount  int           `json:"section_count"`
	ServiceCount  int           `json:"service_count"`
	ServiceItems  []ServiceItem `json:"service_items"`
	Scenarios     []Scenario    `json:"scenarios"`
	ScenarioCount int           `json:"scenario_count"`
}
