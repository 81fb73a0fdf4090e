package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"itemgen/core/config"
	"itemgen/feature/catalog"
	"itemgen/feature/normalize"
)

// Prints the identifier derived for each name given as an argument, or for
// every record of the configured catalog when no argument is given, and lists
// identifiers shared by more than one name.
func main() {
	names := os.Args[1:]

	if len(names) == 0 {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatal(err)
		}
		if cfg.Generate.Source == "" {
			log.Fatal("usage: debug_identifier [name...] (or set GENERATE_SOURCE)")
		}

		fmt.Printf("Loading catalog %s...\n", cfg.Generate.Source)
		data, err := catalog.NewFetcher(cfg.Source).Fetch(context.Background(), cfg.Generate.Source)
		if err != nil {
			log.Fatal(err)
		}
		records, err := catalog.Decode(cfg.Generate.Source, data)
		if err != nil {
			log.Fatal(err)
		}
		for _, rec := range records {
			if name, ok := rec[normalize.FieldName].(string); ok {
				names = append(names, name)
			}
		}
		fmt.Printf("Loaded %d names\n\n", len(names))
	}

	byIdent := make(map[string][]string)
	for _, name := range names {
		ident := normalize.Identifier(name)
		byIdent[ident] = append(byIdent[ident], name)
		if ident == "" {
			ident = "(none)"
		}
		fmt.Printf("%-32q -> %s\n", name, ident)
	}

	var conflicts []string
	for ident, group := range byIdent {
		if ident != "" && len(group) > 1 {
			conflicts = append(conflicts, ident)
		}
	}
	sort.Strings(conflicts)

	if len(conflicts) == 0 {
		fmt.Println("\nNo identifier conflicts")
		return
	}
	fmt.Printf("\n=== %d identifier conflicts ===\n", len(conflicts))
	for _, ident := range conflicts {
		fmt.Printf("%s: %q\n", ident, byIdent[ident])
	}
	os.Exit(1)
}
