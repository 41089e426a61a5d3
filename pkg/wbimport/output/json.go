// Package output serializes import results to JSON artifacts.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ToJSON marshals v, optionally indented for human inspection.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// WriteArtifact writes v as an indented JSON file under dir.
func WriteArtifact(dir, name string, v any) error {
	data, err := ToJSON(v, true)
	if err != nil {
		return fmt.Errorf("serialize %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

// CopyArtifact duplicates an already-written artifact from srcDir into
// dstDir.
func CopyArtifact(srcDir, dstDir, name string) error {
	data, err := os.ReadFile(filepath.Join(srcDir, name))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(dstDir, name), data, 0644); err != nil {
		return fmt.Errorf("copy %s: %w", name, err)
	}
	return nil
}
