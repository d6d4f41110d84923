package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/quickref/internal/progress"
	"github.com/ziadkadry99/quickref/internal/site"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Export the cheatsheet as a static page",
	Long:  `Writes a self-contained index.html and a search index to the output directory, optionally serving it afterwards.`,
	RunE:  runSite,
}

func init() {
	siteCmd.Flags().Bool("serve", false, "start a local HTTP server after exporting")
	siteCmd.Flags().Int("port", 8080, "port for the local server")
	siteCmd.Flags().Bool("open", false, "open browser automatically when serving")
	siteCmd.Flags().String("output", "", "override output directory (defaults to output_dir from config)")
	rootCmd.AddCommand(siteCmd)
}

func runSite(cmd *cobra.Command, args []string) error {
	cfg, renderer, err := loadRenderer()
	if err != nil {
		return err
	}

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	exporter := site.NewExporter(renderer, outputDir)
	if verbose {
		exporter.Progress = progress.NewReporter()
	}
	sections, err := exporter.Export()
	if err != nil {
		return fmt.Errorf("exporting site: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Static page exported: %s (%d sections)\n", outputDir, sections)

	serve, _ := cmd.Flags().GetBool("serve")
	if !serve {
		return nil
	}

	port, _ := cmd.Flags().GetInt("port")
	openBrowser, _ := cmd.Flags().GetBool("open")
	if err := site.Serve(outputDir, port, openBrowser); err != nil {
		return fmt.Errorf("serving site: %w", err)
	}
	return nil
}
