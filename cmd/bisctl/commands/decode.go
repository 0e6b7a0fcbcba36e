package commands

import (
	"github.com/meur/bisforge/internal/importstring"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(decodeCmd)
}

var decodeCmd = &cobra.Command{
	Use:   "decode <import-string>",
	Short: "Prints the gear and enchant sections of an import string.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		decoded, err := importstring.Decode(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		renderGear(out, decoded.Gear)
		renderEnchants(out, decoded.Enchants)
		return nil
	},
}
