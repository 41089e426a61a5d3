package parser

import (
	"encoding/xml"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/sizerlab/wbimport/pkg/wbimport/models"
)

// Cell type attribute values the decoder distinguishes.
const (
	cellTypeSharedString = "s"
	cellTypeInlineString = "inlineStr"
	cellTypeBoolean      = "b"
)

// ParseSheet decodes one worksheet part into a sheet record: the cell map,
// the declared dimension, hidden rows, and the formula, comment and
// data-validation counts.
func ParseSheet(c *Container, name, partPath string, shared []string) (*models.Sheet, error) {
	data, err := c.Part(partPath)
	if err != nil {
		return nil, err
	}

	var ws xlsxWorksheet
	if err := xml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("decode sheet %q (%s): %w", name, partPath, err)
	}

	sheet := &models.Sheet{
		Name:  name,
		Path:  partPath,
		Cells: make(map[string]*models.CellPayload),
	}

	for _, row := range ws.Rows {
		if row.Hidden {
			sheet.HiddenRows = append(sheet.HiddenRows, row.R)
		}
		for _, cell := range row.Cells {
			payload := decodeCell(cell, shared)
			if payload.Formula != nil {
				sheet.FormulaCount++
			}
			if payload.Ref == "" || payload.Empty() {
				continue
			}
			sheet.Cells[payload.Ref] = payload
		}
	}
	sort.Ints(sheet.HiddenRows)

	if ws.Dimension != nil {
		dim := ws.Dimension.Ref
		sheet.Dimension = &dim
	}
	sheet.DataValidationCount = len(ws.DataValidations)

	count, err := commentCount(c, partPath)
	if err != nil {
		return nil, err
	}
	sheet.CommentCount = count

	return sheet, nil
}

// decodeCell builds the payload for one cell element: decoded value, raw
// cached literal, and formula text with its shared-formula group id.
func decodeCell(cell xlsxCell, shared []string) *models.CellPayload {
	payload := &models.CellPayload{Ref: cell.R}

	if cell.F != nil {
		formula := cell.F.Content
		payload.Formula = &formula
		payload.SharedSI = cell.F.SI
	}

	payload.Value = decodeValue(cell, shared)
	if cell.V != nil {
		cached := cell.V.Content
		payload.Cached = &cached
	}

	return payload
}

// decodeValue resolves a cell's value by type precedence: shared-string
// index, inline string, boolean, then the raw literal. An unresolvable
// shared-string index degrades to the raw index text rather than failing
// the parse.
func decodeValue(cell xlsxCell, shared []string) *string {
	switch {
	case cell.T == cellTypeSharedString && cell.V != nil:
		raw := cell.V.Content
		idx, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil || idx < 0 || idx >= len(shared) {
			return &raw
		}
		resolved := shared[idx]
		return &resolved

	case cell.T == cellTypeInlineString:
		if cell.Is == nil || cell.Is.T == nil {
			return nil
		}
		text := cell.Is.T.Content
		return &text

	case cell.T == cellTypeBoolean && cell.V != nil:
		text := "FALSE"
		if cell.V.Content == "1" {
			text = "TRUE"
		}
		return &text

	case cell.V != nil:
		raw := cell.V.Content
		return &raw
	}

	return nil
}

// commentCount resolves the sheet's own relationships part, named by
// convention next to the sheet part, and counts comment entries across all
// relationships whose type ends in "/comments". Missing rels or comment
// parts count as zero.
func commentCount(c *Container, sheetPath string) (int, error) {
	relsPath := "xl/worksheets/_rels/" + path.Base(sheetPath) + ".rels"
	if !c.Has(relsPath) {
		return 0, nil
	}

	data, err := c.Part(relsPath)
	if err != nil {
		return 0, err
	}
	var rels xlsxRelationships
	if err := xml.Unmarshal(data, &rels); err != nil {
		return 0, fmt.Errorf("decode %s: %w", relsPath, err)
	}

	count := 0
	for _, rel := range rels.Relationships {
		if !strings.HasSuffix(rel.Type, "/comments") {
			continue
		}
		target := normalizeTarget(rel.Target)
		if !c.Has(target) {
			continue
		}

		commentData, err := c.Part(target)
		if err != nil {
			return 0, err
		}
		var comments xlsxComments
		if err := xml.Unmarshal(commentData, &comments); err != nil {
			return 0, fmt.Errorf("decode %s: %w", target, err)
		}
		count += len(comments.Comments)
	}

	return count, nil
}
