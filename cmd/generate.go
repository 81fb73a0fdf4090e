package cmd

import (
	"itemgen/core/config"

	"github.com/spf13/cobra"
)

var (
	generateSource string
	generateOutput string
	generateStyle  styleFlags
)

// generateCmd renders the registry and writes it to the output target.
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the item registry source file",
	Long: `Fetch the catalog, build the registry and write the generated Go file.

Sources: http(s) URLs, s3://bucket/key, db:<table> or a file path.
Outputs: a file path (written atomically), s3://bucket/key or "-" for stdout.

Examples:
  itemgen generate --source https://example.com/items.json --output item/items.go --package item
  itemgen generate --source db:items --output - --package item`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateSource, "source", "", "Catalog locator")
	generateCmd.Flags().StringVar(&generateOutput, "output", "", `Output target ("-" for stdout)`)
	generateStyle.register(generateCmd)

	RootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(func(c *config.Config) {
		if cmd.Flags().Changed("source") {
			c.Generate.Source = generateSource
		}
		if cmd.Flags().Changed("output") {
			c.Generate.Output = generateOutput
		}
		generateStyle.apply(cmd, c)
	})
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()

	_, err = a.service().Run(cmd.Context(), a.params())
	return err
}
