package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"radar/internal/loader"
	"radar/internal/logging"
)

type analyzeOptions struct {
	resume  string
	job     string
	jsonOut bool
	out     string
}

func newAnalyzeCmd(cfgPath *string) *cobra.Command {
	var opts analyzeOptions
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a resume against a job description and print the report",
		Long:  "Loads a resume and a job description (.txt, .pdf or .docx; \"-\" reads stdin), prints the match score and missing skills, and optionally writes the report to a file.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAnalyze(cmd.InOrStdin(), cmd.OutOrStdout(), *cfgPath, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.resume, "resume", "r", "", "Path to the resume file, or - for stdin (required)")
	cmd.Flags().StringVarP(&opts.job, "job", "j", "", "Path to the job description file, or - for stdin (required)")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Print the analysis as JSON")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Also write the text report to this file")

	if err := cmd.MarkFlagRequired("resume"); err != nil {
		panic(fmt.Sprintf("failed to mark resume flag as required: %v", err))
	}
	if err := cmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}
	return cmd
}

func runAnalyze(stdin io.Reader, stdout io.Writer, cfgPath string, opts analyzeOptions) error {
	if opts.resume == "-" && opts.job == "-" {
		return errors.New("only one of --resume and --job can read stdin")
	}
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	format := logging.FormatText
	if opts.jsonOut {
		format = logging.FormatJSON
	}
	logging.Init(format, logLevel(cfg))

	a, err := buildApp(cfg)
	if err != nil {
		return err
	}
	resume, err := readInput(stdin, opts.resume)
	if err != nil {
		return err
	}
	job, err := readInput(stdin, opts.job)
	if err != nil {
		return err
	}

	res, err := a.svc.Analyze(resume, job)
	if err != nil {
		return err
	}
	report := a.svc.Report(res)

	if opts.out != "" {
		if dir := filepath.Dir(opts.out); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create output directory %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(opts.out, []byte(report), 0o644); err != nil {
			return fmt.Errorf("failed to write report to %s: %w", opts.out, err)
		}
	}

	if opts.jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	_, err = io.WriteString(stdout, report)
	return err
}

func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		return loader.ReadAll(stdin)
	}
	doc, err := loader.Load(path)
	if err != nil {
		return "", err
	}
	return doc.Content, nil
}
