package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"radar/internal/logging"
	"radar/internal/tui"
)

func newTUICmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive resume/job matcher",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI(*cfgPath)
		},
	}
}

func runTUI(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	// The alternate screen owns the terminal; logs go to a file or nowhere.
	closer, err := logging.InitFile(cfg.Log.File, logLevel(cfg))
	if err != nil {
		return err
	}
	defer closer.Close()

	a, err := buildApp(cfg)
	if err != nil {
		return err
	}
	m := tui.New(a.svc, tui.Options{
		Summarizer:   a.summarizer,
		MaxSentences: cfg.Summarizer.MaxSentences,
		ExportDir:    cfg.Export.Dir,
	})
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
