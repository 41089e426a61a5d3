package models

// Section is a named, contiguous row range in the template sheet,
// identified by a totalling formula in column E.
type Section struct {
	// HeaderRow is the row carrying the section's totalling formula.
	HeaderRow int `json:"header_row"`
	// Name is the section display name (column B of the header row).
	Name *string `json:"name"`
	// CRMID is the external identifier (column C of the header row).
	CRMID *string `json:"crm_id"`
	// StartRow and EndRow bound the rows the section owns, inclusive.
	StartRow int `json:"start_row"`
	EndRow   int `json:"end_row"`
}

// ServiceItem is one service row within a section's range.
type ServiceItem struct {
	// Row is the template-sheet row number.
	Row int `json:"row"`
	// Section is the owning section's display name.
	Section *string `json:"section"`
	// ServiceName is the service display name (column B).
	ServiceName *string `json:"service_name"`
	// CRMID is the external identifier (column C).
	CRMID *string `json:"crm_id"`
	// DefaultEffort is the default effort value (column D).
	DefaultEffort *string `json:"default_effort"`
	// Template values for the three sizing tiers, the custom tier and the
	// details column (columns E through I of the template sheet).
	TemplateS       *string `json:"template_S"`
	TemplateM       *string `json:"template_M"`
	TemplateL       *string `json:"template_L"`
	TemplateCustom  *string `json:"template_Custom"`
	TemplateDetails *string `json:"template_Details"`
}
