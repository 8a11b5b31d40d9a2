package cmd

import (
	"github.com/spf13/cobra"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Run a single lineage and catalog reconcile pass and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		a, err := newApp(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.worker.RunOnce(cmd.Context()); err != nil {
			return err
		}
		logger.Info("reconcile finished", "lineages", a.lineages.Len())
		return nil
	},
}
