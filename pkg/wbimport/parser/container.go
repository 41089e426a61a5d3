// Package parser decodes the zip-of-XML workbook package into sheets.
package parser

import (
	"archive/zip"
	"fmt"
	"io"
)

// Required package part names.
const (
	PartWorkbook      = "xl/workbook.xml"
	PartWorkbookRels  = "xl/_rels/workbook.xml.rels"
	PartSharedStrings = "xl/sharedStrings.xml"
)

// MissingPartError reports a structurally required package part that is
// absent from the archive.
type MissingPartError struct {
	Part string
}

func (e *MissingPartError) Error() string {
	return fmt.Sprintf("required package part %q not found", e.Part)
}

// Container gives named-part access to an open workbook package. Parts are
// read on demand; the container must be closed after use.
type Container struct {
	rc    *zip.ReadCloser
	parts map[string]*zip.File
}

// OpenContainer opens the archive at path. It fails when the path is not a
// readable zip archive.
func OpenContainer(path string) (*Container, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook archive %s: %w", path, err)
	}

	parts := make(map[string]*zip.File, len(rc.File))
	for _, f := range rc.File {
		parts[f.Name] = f
	}

	return &Container{rc: rc, parts: parts}, nil
}

// Close releases the archive handle.
func (c *Container) Close() error {
	return c.rc.Close()
}

// Has reports whether the named part exists in the package.
func (c *Container) Has(name string) bool {
	_, ok := c.parts[name]
	return ok
}

// Part returns the raw bytes of the named part. A missing part yields a
// MissingPartError; callers for optional parts should check Has first.
func (c *Container) Part(name string) ([]byte, error) {
	f, ok := c.parts[name]
	if !ok {
		return nil, &MissingPartError{Part: name}
	}

	r, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open part %q: %w", name, err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read part %q: %w", name, err)
	}
	return data, nil
}
