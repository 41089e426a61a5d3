// Package models defines data structures for workbook imports.
package models

// CellPayload is one decoded cell of a worksheet.
type CellPayload struct {
	// Ref is the A1-style cell address (e.g. "E4").
	Ref string `json:"ref"`
	// Value is the decoded cell value after shared-string / inline /
	// boolean resolution. Nil when the cell carries no resolvable value.
	Value *string `json:"value"`
	// Cached is the raw text of the value node before resolution. For a
	// shared-string cell this is the table index, for a formula cell the
	// last cached result. Nil when the value node is absent.
	Cached *string `json:"cached"`
	// Formula is the formula text, without the leading "=". Nil when the
	// cell has no formula node.
	Formula *string `json:"formula,omitempty"`
	// SharedSI is the shared-formula group id, when the formula node
	// carries one.
	SharedSI *string `json:"shared_si,omitempty"`
}

// Empty reports whether the payload carries neither a formula nor any
// value. Empty payloads are never stored in a sheet's cell map.
func (p *CellPayload) Empty() bool {
	return p.Formula == nil && p.Value == nil && p.Cached == nil
}
