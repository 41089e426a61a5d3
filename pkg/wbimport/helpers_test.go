package wbimport

import (
	"archive/zip"
	"io"
	"os"
	"testing"

	"github.com/sizerlab/wbimport/pkg/wbimport/models"
)

func str(s string) *string { return &s }

// sheetOf builds an in-memory decoded sheet from plain values and formula
// texts.
func sheetOf(name string, values map[string]string, formulas map[string]string) *models.Sheet {
	sheet := &models.Sheet{
		Name:  name,
		Path:  "xl/worksheets/test.xml",
		Cells: make(map[string]*models.CellPayload),
	}

	for ref, value := range values {
		sheet.Cells[ref] = &models.CellPayload{Ref: ref, Value: str(value), Cached: str(value)}
	}
	for ref, formula := range formulas {
		cell, ok := sheet.Cells[ref]
		if !ok {
			cell = &models.CellPayload{Ref: ref}
			sheet.Cells[ref] = cell
		}
		cell.Formula = str(formula)
		sheet.FormulaCount++
	}

	return sheet
}

// rewriteZipWithout copies a zip archive, dropping the named entry.
func rewriteZipWithout(t *testing.T, src, dst, drop string) {
	t.Helper()

	r, err := zip.OpenReader(src)
	if err != nil {
		t.Fatalf("open source archive: %v", err)
	}
	defer r.Close()

	out, err := os.Create(dst)
	if err != nil {
		t.Fatalf("create archive: %v", err)
	}
	defer out.Close()

	w := zip.NewWriter(out)
	for _, f := range r.File {
		if f.Name == drop {
			continue
		}
		dstPart, err := w.Create(f.Name)
		if err != nil {
			t.Fatalf("create entry %s: %v", f.Name, err)
		}
		srcPart, err := f.Open()
		if err != nil {
			t.Fatalf("open entry %s: %v", f.Name, err)
		}
		if _, err := io.Copy(dstPart, srcPart); err != nil {
			t.Fatalf("copy entry %s: %v", f.Name, err)
		}
		srcPart.Close()
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
}
