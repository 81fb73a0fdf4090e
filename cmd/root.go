package cmd

import (
	"errors"
	"fmt"
	"os"

	"itemgen/core/logger"
	"itemgen/feature/generator"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir is the directory searched for .env and itemgen.yaml.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "itemgen",
	Short: "Item registry code generator",
	Long: `itemgen fetches an item catalog (a JSON array of records with id, name
and stackSize) and generates Go source declaring one variable per item plus an
id-indexed lookup table.

It is meant to run from go generate, a Makefile or CI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with the development config gives readable CLI output
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err), zap.String("kind", kindOf(err)))
			_ = l.Sync()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func kindOf(err error) string {
	var stale *staleError
	if errors.As(err, &stale) {
		return stale.Kind()
	}
	return generator.KindOf(err)
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "Directory holding .env and itemgen.yaml")
}
