package cmd

import (
	"fmt"
	"strconv"

	"itemgen/core/config"
	"itemgen/feature/generator"
	"itemgen/feature/normalize"
	"itemgen/feature/registry"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var itemSource string

// itemCmd shows one catalog record as the generator sees it.
var itemCmd = &cobra.Command{
	Use:   "item [name|id]",
	Short: "View how a catalog item is generated",
	Long: `Fetch the catalog and show the generated identifier, id, name and stack
size of one item, looked up by numeric id, catalog name or identifier.`,
	Args: cobra.ExactArgs(1),
	RunE: runItem,
}

func init() {
	itemCmd.Flags().StringVar(&itemSource, "source", "", "Catalog locator")
	RootCmd.AddCommand(itemCmd)
}

func runItem(cmd *cobra.Command, args []string) error {
	query := args[0]
	cfg, err := loadConfig(func(c *config.Config) {
		if cmd.Flags().Changed("source") {
			c.Generate.Source = itemSource
		}
	}, "Generate.Output", "Emit.Package")
	if err != nil {
		return err
	}

	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() { _ = a.log.Sync() }()

	a.log.Info("Looking up item...", zap.String("query", query))
	data, err := a.fetcher.Fetch(cmd.Context(), cfg.Generate.Source)
	if err != nil {
		return err
	}
	reg, err := generator.Build(cfg.Generate.Source, data, cfg.Emit, cfg.Generate.MaxID)
	if err != nil {
		return err
	}

	item, ok := findItem(reg, query)
	if !ok {
		return fmt.Errorf("item %q not found in %s", query, cfg.Generate.Source)
	}

	fmt.Println("\n--- Item Detail View ---")
	fmt.Printf("Query:          %s\n", query)
	fmt.Printf("Identifier:     %s\n", item.Identifier)
	fmt.Printf("ID:             %d\n", item.ID)
	fmt.Printf("Name:           %s\n", item.Name)
	fmt.Printf("Stack Size:     %d\n", item.StackSize)
	fmt.Printf("Record Index:   %d\n", item.Index)
	fmt.Println("------------------------")
	fmt.Printf("Catalog Items:  %d\n", reg.Len())
	fmt.Printf("Table Size:     %d\n", reg.Size())
	fmt.Println("------------------------")
	return nil
}

// findItem resolves a query as an id first, then as a name, then as an identifier.
func findItem(reg *registry.Registry, query string) (normalize.Item, bool) {
	if id, err := strconv.Atoi(query); err == nil {
		if item, ok := reg.Lookup(id); ok {
			return item, true
		}
	}
	if item, ok := reg.ByName(query); ok {
		return item, true
	}
	return reg.ByIdentifier(query)
}
