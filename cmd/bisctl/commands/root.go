package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/meur/bisforge/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose *bool

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log extraction details to stderr.")
}

var rootCmd = &cobra.Command{
	Use:          "bisctl",
	Short:        "bisctl scrapes Wowhead BiS guides and decodes import strings.",
	SilenceUsage: true,
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() *zap.Logger {
	if !*verbose {
		return zap.NewNop()
	}
	return logging.NewOrNop(logging.Config{Level: "debug", Development: true})
}
