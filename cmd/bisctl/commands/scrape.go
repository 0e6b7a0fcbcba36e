package commands

import (
	"errors"
	"fmt"

	"github.com/meur/bisforge/internal/config"
	"github.com/meur/bisforge/internal/fetch"
	"github.com/meur/bisforge/internal/scrape"
	"github.com/spf13/cobra"
)

var scrapeRole *string

func init() {
	scrapeRole = scrapeCmd.Flags().StringP("role", "r", "dps", "Enchant guide role: tank, dps or healer.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url> [--role dps]",
	Short: "Scrapes a gear guide and its enchant guide and prints the import string.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		svc := scrape.New(fetch.New(cfg.FetchProfile()), newLogger(), nil, scrape.Options{
			AllowedDomain: cfg.Server.AllowedDomain,
		})

		result, err := svc.Full(cmd.Context(), args[0], *scrapeRole)
		if err != nil && !errors.Is(err, scrape.ErrNoGear) {
			return err
		}

		out := cmd.OutOrStdout()
		renderGear(out, result.GearItems)
		renderEnchants(out, result.Enchants)
		fmt.Fprintf(out, "gear: %s, enchants: %s\n", result.GearReason, result.EnchantReason)
		fmt.Fprintln(out, result.ImportString)

		return err
	},
}
