// Package main implements metrickit-validate, the CI-time referential
// integrity checker for the content corpus. It builds the compiled-in
// content store, checks every calculator and glossary reference against
// slug catalogs exported from the owning systems, and exits non-zero when
// a guide links to a calculator that does not exist.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shifang52221/metrickit-content/internal/catalog"
	"github.com/shifang52221/metrickit-content/internal/content"
	"github.com/shifang52221/metrickit-content/internal/integrity"
	"github.com/shifang52221/metrickit-content/internal/store"
)

var (
	calculatorsPath string
	glossaryPath    string
	outputFormat    string
)

var rootCmd = &cobra.Command{
	Use:   "metrickit-validate",
	Short: "Check the guide corpus for dangling calculator and glossary references",
	Long: `metrickit-validate builds the content store from the compiled-in corpus
and verifies every cross-catalog reference. Dangling calculator references
break user-facing links and fail the run; dangling glossary references are
reported as warnings.`,
	SilenceUsage: true,
	RunE:         runValidate,
}

func init() {
	rootCmd.Flags().
		StringVar(&calculatorsPath, "calculators", "", "path to the calculator slug catalog (YAML, required)")
	rootCmd.Flags().
		StringVar(&glossaryPath, "glossary", "", "path to the glossary slug catalog (YAML, optional)")
	rootCmd.Flags().
		StringVar(&outputFormat, "format", "text", "output format: text or json")
	_ = rootCmd.MarkFlagRequired("calculators")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	if outputFormat != "text" && outputFormat != "json" {
		return fmt.Errorf("unknown output format %q", outputFormat)
	}

	// Building the store re-runs the structural checks the server performs
	// at startup; a broken corpus fails validation before any reference
	// checking happens.
	contentStore, err := store.New(content.Guides(), content.CategoryIntros())
	if err != nil {
		return fmt.Errorf("content store construction failed: %w", err)
	}

	calculators, err := catalog.LoadFile(calculatorsPath)
	if err != nil {
		return err
	}

	var glossary integrity.GlossaryCatalog
	if glossaryPath != "" {
		g, err := catalog.LoadFile(glossaryPath)
		if err != nil {
			return err
		}
		glossary = g
	}

	report := integrity.Validate(contentStore.ListGuides(), calculators, glossary)

	switch outputFormat {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	default:
		printTextReport(cmd, &report, len(contentStore.ListGuides()))
	}

	if report.HasErrors() {
		return fmt.Errorf("%d dangling calculator reference(s)", len(report.Errors()))
	}
	return nil
}

func printTextReport(cmd *cobra.Command, report *integrity.Report, guideCount int) {
	out := cmd.OutOrStdout()

	for _, f := range report.Findings {
		fmt.Fprintln(out, f.String())
	}

	fmt.Fprintf(out, "checked %d guide(s): %d error(s), %d warning(s)\n",
		guideCount, len(report.Errors()), len(report.Warnings()))
}
