package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sahla-io/dukkan/internal/catalog"
	"github.com/sahla-io/dukkan/internal/config"
	"github.com/sahla-io/dukkan/internal/policy"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local environment and configuration",
	Long: `Runs a series of read-only checks: configuration resolves, the catalog
file parses and validates, and the model credential looks plausible.
Exits non-zero if any check fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, span := tracer.Start(cmd.Context(), "doctor")
		defer span.End()

		failed := 0
		check := func(ok bool, format string, a ...interface{}) {
			mark := "ok  "
			if !ok {
				mark = "FAIL"
				failed++
			}
			fmt.Printf("[%s] %s\n", mark, fmt.Sprintf(format, a...))
		}

		cfg, err := config.Load()
		check(err == nil, "configuration resolves")
		if err != nil {
			fmt.Printf("       %v\n", err)
			return fmt.Errorf("%d check(s) failed", failed)
		}

		store, err := catalog.Load(cfg.CatalogPath)
		check(err == nil, "catalog at %s loads and validates", cfg.CatalogPath)
		if err != nil {
			fmt.Printf("       %v\n", err)
		} else {
			check(store.Len() > 0, "catalog has products (%d)", store.Len())
		}

		check(cfg.OpenAIAPIKey != "", "model credential is set (DUKKAN_OPENAI_API_KEY)")
		if cfg.OpenAIAPIKey != "" {
			check(strings.HasPrefix(cfg.OpenAIAPIKey, "sk-"), "credential has the expected sk- prefix")
		}
		check(cfg.Model != "", "model name is set (%s)", cfg.Model)

		role := policy.ParseRole(cfg.DefaultRole)
		check(strings.EqualFold(cfg.DefaultRole, role.String()),
			"default_role %q parses as %s", cfg.DefaultRole, role)

		if failed > 0 {
			return fmt.Errorf("%d check(s) failed", failed)
		}
		fmt.Println("All checks passed.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
