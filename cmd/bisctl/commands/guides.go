package commands

import (
	"fmt"
	"strings"

	"github.com/meur/bisforge/internal/models"
	"github.com/meur/bisforge/internal/storage"
	"github.com/spf13/cobra"
)

var (
	guidesDb    *string
	guidesClass *string

	addClass *string
	addSpec  *string
	addRole  *string
)

func init() {
	guidesDb = guidesCmd.PersistentFlags().String("db", "./bisforge.db", "The guide catalog database.")
	guidesClass = guidesCmd.Flags().String("class", "", "Only list guides for this class.")

	addClass = guidesAddCmd.Flags().String("class", "", "Class of the guide, e.g. death-knight.")
	addSpec = guidesAddCmd.Flags().String("spec", "", "Specialization of the guide, e.g. blood.")
	addRole = guidesAddCmd.Flags().String("role", "dps", "Role of the guide: tank, dps or healer.")
	guidesAddCmd.MarkFlagRequired("class")
	guidesAddCmd.MarkFlagRequired("spec")

	guidesCmd.AddCommand(guidesAddCmd)
	guidesCmd.AddCommand(guidesRmCmd)
	rootCmd.AddCommand(guidesCmd)
}

func openCatalog() (*storage.Store, error) {
	return storage.New(*guidesDb)
}

var guidesCmd = &cobra.Command{
	Use:   "guides [--db <path/to/bisforge.db>] [--class <class>]",
	Short: "Lists the curated gear guides.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCatalog()
		if err != nil {
			return err
		}
		defer store.Close()

		guides, err := store.GetGuides(*guidesClass)
		if err != nil {
			return err
		}

		renderGuides(cmd.OutOrStdout(), guides)
		return nil
	},
}

var guidesAddCmd = &cobra.Command{
	Use:   "add <url> --class <class> --spec <spec> [--role dps]",
	Short: "Adds or replaces a guide in the catalog.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCatalog()
		if err != nil {
			return err
		}
		defer store.Close()

		guide, err := store.CreateGuide(models.GuideSeed{
			Class: *addClass,
			Spec:  *addSpec,
			Role:  models.Role(*addRole),
			URL:   args[0],
		})
		if err != nil {
			return err
		}

		renderGuides(cmd.OutOrStdout(), []models.Guide{*guide})
		return nil
	},
}

var guidesRmCmd = &cobra.Command{
	Use:   "rm <id|url>",
	Short: "Removes a guide from the catalog by id or url.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openCatalog()
		if err != nil {
			return err
		}
		defer store.Close()

		id := args[0]
		if strings.Contains(id, "://") {
			id = storage.GuideID(strings.TrimSpace(id))
		}

		deleted, err := store.DeleteGuide(id)
		if err != nil {
			return err
		}
		if !deleted {
			return fmt.Errorf("no guide %s", args[0])
		}

		fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", id)
		return nil
	},
}
