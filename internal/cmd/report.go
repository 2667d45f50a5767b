package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/sahla-io/dukkan/internal/analytics"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the sales report to stdout",
	Long: `Generates the full catalog sales report (totals, top performer, units
per product) without touching the model provider. Intended for staff use
and for piping into files or other tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, span := tracer.Start(cmd.Context(), "report")
		defer span.End()

		_, store, err := loadCatalog()
		if err != nil {
			return err
		}

		fmt.Print(analytics.NewEngine(store).Report(time.Now()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
