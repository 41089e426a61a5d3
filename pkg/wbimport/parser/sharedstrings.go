package parser

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// SharedStrings loads the shared-string table as an ordered sequence of
// flat strings. A workbook without the part uses only inline and literal
// cells, so an absent part yields an empty table, not an error.
func SharedStrings(c *Container) ([]string, error) {
	if !c.Has(PartSharedStrings) {
		return nil, nil
	}

	data, err := c.Part(PartSharedStrings)
	if err != nil {
		return nil, err
	}

	var sst xlsxSST
	if err := xml.Unmarshal(data, &sst); err != nil {
		return nil, fmt.Errorf("decode %s: %w", PartSharedStrings, err)
	}

	table := make([]string, 0, len(sst.SI))
	for _, si := range sst.SI {
		table = append(table, flattenSI(si))
	}
	return table, nil
}

// flattenSI resolves one table entry: a direct text node wins, otherwise
// all rich-text run texts are concatenated in document order.
func flattenSI(si xlsxSI) string {
	if si.T != nil {
		return si.T.Content
	}

	var b strings.Builder
	for _, run := range si.R {
		b.WriteString(run.T.Content)
	}
	return b.String()
}
