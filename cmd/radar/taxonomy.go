package main

import (
	"github.com/spf13/cobra"
)

func newTaxonomyCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "taxonomy",
		Short: "Print the active skill taxonomy as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			a, err := buildApp(cfg)
			if err != nil {
				return err
			}
			data, err := a.svc.Matcher().Taxonomy().Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
