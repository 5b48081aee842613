// Package main provides the CLI entry point for reviewcheck.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/reviewcheck/pkg/reviewcheck"
	"github.com/example/reviewcheck/pkg/reviewcheck/config"
	"github.com/example/reviewcheck/pkg/reviewcheck/report"
)

var (
	configPath string
	outputPath string
	noColor    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reviewcheck",
		Short: "Audit review checklists against review records",
		Long: `reviewcheck scans a directory of review documents, pairs checklist
and record spreadsheets by project name, validates approval dates,
reviewer names, and stamp images, and writes a tabular report.`,
		Args: cobra.NoArgs,
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&configPath, "ini", "i", "config.ini", "Config file path")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Report file path (default: next to the config file)")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored console output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	// Validate config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found: %s", configPath)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	result, err := reviewcheck.Run(cfg, reviewcheck.Options{Output: outputPath})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	report.PrintVerdicts(out, result.Verdicts)
	report.PrintSummary(out, result.Summary)
	fmt.Fprintf(out, "report saved to %s\n", result.OutputPath)

	return nil
}
