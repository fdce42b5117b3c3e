// Package main is the entry point of the radar resume/job matcher.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var cfgPath string
	root := &cobra.Command{
		Use:          "radar",
		Short:        "Match a resume against a job description",
		Long:         "Internship Radar scores how well a resume fits a job description (TF-IDF cosine similarity) and lists the job's skills missing from the resume.",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(cfgPath)
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ./config.yaml or ~/.config/radar/config.yaml)")

	root.AddCommand(
		newTUICmd(&cfgPath),
		newAnalyzeCmd(&cfgPath),
		newTaxonomyCmd(&cfgPath),
	)
	return root
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
