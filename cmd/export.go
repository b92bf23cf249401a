package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sellonet/sellonet-web/internal/export"
	"github.com/sellonet/sellonet-web/internal/progress"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a static snapshot of the landing page",
	Long:  `Writes index.html plus one page per technology tab, linked with plain anchors, for hosting without the server.`,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	reg, renderer, err := newRenderer()
	if err != nil {
		return err
	}

	exporter := &export.Exporter{
		Registry:    reg,
		Renderer:    renderer,
		OutputDir:   outputDir,
		Title:       cfg.Title,
		Description: cfg.Description,
		Year:        time.Now().Year(),
		Reporter:    progress.NewReporter(),
	}
	pageCount, err := exporter.Generate()
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Printf("Static site exported: %s (%d pages)\n", outputDir, pageCount)
	return nil
}
