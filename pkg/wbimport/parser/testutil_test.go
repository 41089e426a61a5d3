package parser

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

// writePackage assembles a workbook package from literal part contents and
// returns its path.
func writePackage(t *testing.T, parts map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.xlsx")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create package: %v", err)
	}
	defer f.Close()

	w := zip.NewWriter(f)
	for name, content := range parts {
		part, err := w.Create(name)
		if err != nil {
			t.Fatalf("create part %s: %v", name, err)
		}
		if _, err := part.Write([]byte(content)); err != nil {
			t.Fatalf("write part %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close package: %v", err)
	}

	return path
}

// openPackage opens an assembled package and registers cleanup.
func openPackage(t *testing.T, parts map[string]string) *Container {
	t.Helper()

	c, err := OpenContainer(writePackage(t, parts))
	if err != nil {
		t.Fatalf("OpenContainer failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

const minimalWorkbookXML = `<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
  <sheets>
    <sheet name="Sheet1" sheetId="1" r:id="rId1"/>
  </sheets>
</workbook>`

const minimalWorkbookRelsXML = `<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet1.xml"/>
</Relationships>`
