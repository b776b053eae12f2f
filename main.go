//go:build !( js || wasm)

package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/tyck/tyck/cmd"
	"github.com/tyck/tyck/internal/log"
)

func main() {
	slog.SetDefault(log.DefaultLogger)
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "tyck [subcommand]",
	Short:        "tyck ✓\n runtime type contracts for dynamic values and function calls",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.CheckCmd)
	rootCmd.AddCommand(cmd.CallCmd)
	rootCmd.AddCommand(cmd.ReplCmd)
}
