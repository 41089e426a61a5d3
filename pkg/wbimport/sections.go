package wbimport

import (
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/efp"

	"github.com/sizerlab/wbimport/pkg/wbimport/models"
	"github.com/sizerlab/wbimport/pkg/wbimport/parser"
)

// sectionColumn is the template-sheet column holding section totalling
// formulas.
const sectionColumn = "E"

// buildSections derives sections from the template sheet: every column-E
// cell whose formula is a recognized section total yields one section, with
// name and crm id read from columns B and C of the same row. The result is
// sorted by header row ascending; that order fixes row-claiming precedence
// and display order downstream.
func buildSections(base *models.Sheet) []models.Section {
	sections := []models.Section{}

	for ref, cell := range base.Cells {
		col, row := parser.SplitRef(ref)
		if col != sectionColumn || cell.Formula == nil {
			continue
		}

		start, end, ok := sectionRange(*cell.Formula)
		if !ok {
			continue
		}

		sections = append(sections, models.Section{
			HeaderRow: row,
			Name:      base.Value("B" + strconv.Itoa(row)),
			CRMID:     base.Value("C" + strconv.Itoa(row)),
			StartRow:  start,
			EndRow:    end,
		})
	}

	sort.Slice(sections, func(i, j int) bool {
		return sections[i].HeaderRow < sections[j].HeaderRow
	})
	return sections
}

// sectionRange matches the two recognized section-total formula shapes,
// SUM(E<r1>:E<r2>) and SUM(E<r>), and returns the inclusive row range. Any
// other formula shape is not a section; that is intentional behavior, not
// an error.
func sectionRange(formula string) (start, end int, ok bool) {
	ps := efp.ExcelParser()
	tokens := ps.Parse(formula)
	if len(tokens) != 3 {
		return 0, 0, false
	}

	fnStart, operand, fnStop := tokens[0], tokens[1], tokens[2]
	if fnStart.TType != efp.TokenTypeFunction || fnStart.TSubType != efp.TokenSubTypeStart ||
		!strings.EqualFold(fnStart.TValue, "SUM") {
		return 0, 0, false
	}
	if operand.TType != efp.TokenTypeOperand || operand.TSubType != efp.TokenSubTypeRange {
		return 0, 0, false
	}
	if fnStop.TType != efp.TokenTypeFunction || fnStop.TSubType != efp.TokenSubTypeStop {
		return 0, 0, false
	}

	first, rest, ranged := strings.Cut(operand.TValue, ":")
	start, ok = columnRow(first)
	if !ok {
		return 0, 0, false
	}
	if !ranged {
		return start, start, true
	}

	end, ok = columnRow(rest)
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

// columnRow parses a plain section-column ref ("E12"), rejecting absolute
// markers and other columns.
func columnRow(ref string) (int, bool) {
	col, row := parser.SplitRef(ref)
	if col != sectionColumn || row == 0 {
		return 0, false
	}
	return row, true
}
