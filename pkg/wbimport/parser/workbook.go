package parser

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/sizerlab/wbimport/pkg/wbimport/models"
)

// SheetEntry pairs a declared sheet name with its resolved part path.
// Declaration order from the workbook definition is the canonical sheet
// order for every downstream consumer.
type SheetEntry struct {
	Name string
	Path string
}

// IndexWorkbook decodes the workbook definition and its relationships part
// into the ordered sheet list and the workbook-level defined names. Sheets
// whose relationship id has no resolvable target are skipped.
func IndexWorkbook(c *Container) ([]SheetEntry, []models.DefinedName, error) {
	wbData, err := c.Part(PartWorkbook)
	if err != nil {
		return nil, nil, err
	}
	var wb xlsxWorkbook
	if err := xml.Unmarshal(wbData, &wb); err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", PartWorkbook, err)
	}

	relData, err := c.Part(PartWorkbookRels)
	if err != nil {
		return nil, nil, err
	}
	var rels xlsxRelationships
	if err := xml.Unmarshal(relData, &rels); err != nil {
		return nil, nil, fmt.Errorf("decode %s: %w", PartWorkbookRels, err)
	}

	relTargets := make(map[string]string, len(rels.Relationships))
	for _, rel := range rels.Relationships {
		relTargets[rel.ID] = rel.Target
	}

	entries := []SheetEntry{}
	for _, sheet := range wb.Sheets {
		target, ok := relTargets[sheet.RID]
		if !ok || target == "" {
			continue
		}
		entries = append(entries, SheetEntry{
			Name: sheet.Name,
			Path: normalizeTarget(target),
		})
	}

	defined := []models.DefinedName{}
	for _, dn := range wb.DefinedNames {
		defined = append(defined, models.DefinedName{
			Name:         dn.Name,
			LocalSheetID: dn.LocalSheetID,
			Text:         dn.Text,
		})
	}

	return entries, defined, nil
}

// normalizeTarget turns a relationship target into a full in-package part
// path. Targets may be given from the package root, relative to the xl
// directory, or with parent-directory segments.
func normalizeTarget(target string) string {
	if strings.HasPrefix(target, "xl/") {
		return target
	}
	if strings.HasPrefix(target, "worksheets/") {
		return "xl/" + target
	}
	return "xl/" + strings.ReplaceAll(target, "../", "")
}
