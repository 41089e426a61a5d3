// Package wbimport rebuilds the scenario domain model from a sizer
// workbook package.
package wbimport

// Options configures an import run.
type Options struct {
	// TemplateSheet is the anchor sheet defining section and service
	// structure. Its absence is fatal.
	TemplateSheet string
	// SummarySheet is the workbook's summary sheet. It is excluded from
	// scenario derivation and feeds the totals view's main-row window.
	SummarySheet string
	// MainRowStart and MainRowEnd bound the summary-sheet row window
	// carried into the totals view, inclusive.
	MainRowStart int
	MainRowEnd   int
	// VisibleRowStart and VisibleRowEnd bound the window used to count a
	// scenario's visible rows, inclusive.
	VisibleRowStart int
	VisibleRowEnd   int
}

// DefaultOptions returns the options matching the historical workbook
// shape.
func DefaultOptions() Options {
	return Options{
		TemplateSheet:   "Scenario Template",
		SummarySheet:    "Max Engagement Quick Sizer",
		MainRowStart:    7,
		MainRowEnd:      30,
		VisibleRowStart: 1,
		VisibleRowEnd:   130,
	}
}
