package parser

import (
	"errors"
	"testing"
)

func TestIndexWorkbook(t *testing.T) {
	c := openPackage(t, map[string]string{
		PartWorkbook: `<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <sheets>
    <sheet name="Max Engagement Quick Sizer" sheetId="1" r:id="rId1"/>
    <sheet name="Scenario Template" sheetId="2" r:id="rId2"/>
    <sheet name="Orphan" sheetId="3" r:id="rId9"/>
  </sheets>
  <definedNames>
    <definedName name="PrintRange" localSheetId="0">'Max Engagement Quick Sizer'!$A$1:$N$30</definedName>
    <definedName name="Global">Template!$B$4</definedName>
  </definedNames>
</workbook>`,
		PartWorkbookRels: `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
  <Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="../worksheets/sheet2.xml"/>
</Relationships>`,
	})

	entries, defined, err := IndexWorkbook(c)
	if err != nil {
		t.Fatalf("IndexWorkbook failed: %v", err)
	}

	// Declaration order preserved, unresolvable rId9 silently skipped.
	if len(entries) != 2 {
		t.Fatalf("expected 2 sheets, got %d", len(entries))
	}
	if entries[0].Name != "Max Engagement Quick Sizer" || entries[0].Path != "xl/worksheets/sheet1.xml" {
		t.Errorf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].Name != "Scenario Template" || entries[1].Path != "xl/worksheets/sheet2.xml" {
		t.Errorf("unexpected second entry: %+v", entries[1])
	}

	if len(defined) != 2 {
		t.Fatalf("expected 2 defined names, got %d", len(defined))
	}
	if defined[0].Name != "PrintRange" || defined[0].LocalSheetID == nil || *defined[0].LocalSheetID != "0" {
		t.Errorf("unexpected defined name: %+v", defined[0])
	}
	if defined[1].LocalSheetID != nil {
		t.Errorf("expected nil localSheetId, got %q", *defined[1].LocalSheetID)
	}
	if defined[1].Text != "Template!$B$4" {
		t.Errorf("unexpected defined-name text %q", defined[1].Text)
	}
}

func TestIndexWorkbookMissingParts(t *testing.T) {
	tests := []struct {
		name  string
		parts map[string]string
		want  string
	}{
		{
			name:  "no workbook definition",
			parts: map[string]string{PartWorkbookRels: minimalWorkbookRelsXML},
			want:  PartWorkbook,
		},
		{
			name:  "no workbook relationships",
			parts: map[string]string{PartWorkbook: minimalWorkbookXML},
			want:  PartWorkbookRels,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := openPackage(t, tt.parts)
			_, _, err := IndexWorkbook(c)

			var missing *MissingPartError
			if !errors.As(err, &missing) {
				t.Fatalf("expected MissingPartError, got %v", err)
			}
			if missing.Part != tt.want {
				t.Errorf("expected missing part %q, got %q", tt.want, missing.Part)
			}
		})
	}
}

func TestNormalizeTarget(t *testing.T) {
	tests := []struct {
		target   string
		expected string
	}{
		{"xl/worksheets/sheet1.xml", "xl/worksheets/sheet1.xml"},
		{"worksheets/sheet1.xml", "xl/worksheets/sheet1.xml"},
		{"../worksheets/sheet1.xml", "xl/worksheets/sheet1.xml"},
		{"comments1.xml", "xl/comments1.xml"},
	}

	for _, tt := range tests {
		if got := normalizeTarget(tt.target); got != tt.expected {
			t.Errorf("normalizeTarget(%q) = %q, expected %q", tt.target, got, tt.expected)
		}
	}
}

func TestOpenContainerInvalidArchive(t *testing.T) {
	if _, err := OpenContainer("/nonexistent/book.xlsx"); err == nil {
		t.Error("expected error for nonexistent archive")
	}
}
