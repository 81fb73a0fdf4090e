package cmd

import (
	"fmt"
	"os"

	"itemgen/core/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	checkSource string
	checkFile   string
	checkStyle  styleFlags
)

// staleError reports a generated file that no longer matches its catalog.
type staleError struct {
	File string
}

func (e *staleError) Error() string {
	return fmt.Sprintf("%s is out of date; run itemgen generate", e.File)
}

// Kind classifies the error for logging.
func (e *staleError) Kind() string { return "stale" }

// checkCmd verifies a committed generated file is current.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify a generated file matches the current catalog",
	Long: `Regenerate the registry in memory and compare it with an existing file.
The provenance timestamp is ignored. Exits with status 1 when the file is stale.

Example:
  itemgen check --source https://example.com/items.json --file item/items.go --package item`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkSource, "source", "", "Catalog locator")
	checkCmd.Flags().StringVar(&checkFile, "file", "", "Generated file to verify (defaults to generate.output)")
	checkStyle.register(checkCmd)

	RootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(func(c *config.Config) {
		if cmd.Flags().Changed("source") {
			c.Generate.Source = checkSource
		}
		if cmd.Flags().Changed("file") {
			c.Generate.Output = checkFile
		}
		checkStyle.apply(cmd, c)
	})
	if err != nil {
		return err
	}

	file := cfg.Generate.Output
	existing, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("read generated file: %w", err)
	}

	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()

	res, err := a.service().Check(cmd.Context(), a.params(), existing)
	if err != nil {
		return err
	}
	if !res.UpToDate {
		return &staleError{File: file}
	}

	a.log.Info("Generated file is up to date",
		zap.String("file", file),
		zap.Int("items", res.Registry.Len()),
	)
	return nil
}
