// Package main provides the CLI entry point for wbimport.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sizerlab/wbimport/pkg/wbimport"
	"github.com/sizerlab/wbimport/pkg/wbimport/models"
	"github.com/sizerlab/wbimport/pkg/wbimport/output"
)

// The four artifacts a successful run writes.
var artifacts = []string{
	"domain_model.json",
	"totals.json",
	"visibility.json",
	"workbook_profile.json",
}

var (
	inputPath   string
	outputDir   string
	analysisDir string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wbimport",
		Short: "Import scenario workbook data into JSON artifacts",
		Long: `wbimport parses a sizer workbook (xlsx) and refreshes the JSON
artifacts describing its sections, services, scenario overrides,
totals, visibility and workbook profile.`,
		RunE: run,
	}

	rootCmd.Flags().StringVar(&inputPath, "input", "", "Path to XLSX file")
	rootCmd.Flags().StringVar(&outputDir, "output-dir", "", "Directory for data artifacts")
	rootCmd.Flags().StringVar(&analysisDir, "analysis-dir", "", "Optional secondary output directory for analysis copies")
	rootCmd.MarkFlagRequired("input")
	rootCmd.MarkFlagRequired("output-dir")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	result, err := wbimport.Import(inputPath, wbimport.DefaultOptions())
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	if err := writeArtifacts(result, outputDir); err != nil {
		return fmt.Errorf("failed to write artifacts: %w", err)
	}

	if analysisDir != "" {
		if err := copyArtifacts(outputDir, analysisDir); err != nil {
			return fmt.Errorf("failed to write analysis copies: %w", err)
		}
	}

	summary, err := buildSummary(result, inputPath, outputDir)
	if err != nil {
		return err
	}
	jsonData, err := output.ToJSON(summary, false)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	fmt.Println(string(jsonData))

	return nil
}

func writeArtifacts(result *wbimport.Result, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	payloads := map[string]any{
		"domain_model.json":     result.DomainModel,
		"totals.json":           result.Totals,
		"visibility.json":       result.Visibility,
		"workbook_profile.json": result.Profile,
	}
	for _, name := range artifacts {
		if err := output.WriteArtifact(dir, name, payloads[name]); err != nil {
			return err
		}
	}
	return nil
}

func copyArtifacts(srcDir, dstDir string) error {
	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return err
	}
	for _, name := range artifacts {
		if err := output.CopyArtifact(srcDir, dstDir, name); err != nil {
			return err
		}
	}
	return nil
}

func buildSummary(result *wbimport.Result, input, dir string) (*models.Summary, error) {
	absInput, err := filepath.Abs(input)
	if err != nil {
		return nil, err
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	return &models.Summary{
		Input:        absInput,
		OutputDir:    absDir,
		Sections:     result.DomainModel.SectionCount,
		Services:     result.DomainModel.ServiceCount,
		Scenarios:    result.DomainModel.ScenarioCount,
		FormulaCells: result.FormulaCells(),
	}, nil
}
