package cmd

import (
	"context"
	"fmt"
	"os"

	"itemgen/core/config"
	"itemgen/core/database"
	"itemgen/core/logger"
	"itemgen/core/storage"
	"itemgen/feature/catalog"
	"itemgen/feature/generator"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// styleFlags are the emit style overrides shared by generate and check.
type styleFlags struct {
	pkg       string
	typeName  string
	tableName string
	maxID     int
}

func (f *styleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.pkg, "package", "", "Package name of the generated file")
	cmd.Flags().StringVar(&f.typeName, "type-name", "", "Name of the item type (default Item)")
	cmd.Flags().StringVar(&f.tableName, "table-name", "", "Name of the lookup table variable (default items)")
	cmd.Flags().IntVar(&f.maxID, "max-id", 0, "Largest accepted item id")
}

func (f *styleFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("package") {
		cfg.Emit.Package = f.pkg
	}
	if cmd.Flags().Changed("type-name") {
		cfg.Emit.TypeName = f.typeName
	}
	if cmd.Flags().Changed("table-name") {
		cfg.Emit.TableName = f.tableName
	}
	if cmd.Flags().Changed("max-id") {
		cfg.Generate.MaxID = f.maxID
	}
}

// app bundles what a command needs once configuration is loaded.
type app struct {
	cfg     *config.Config
	log     *zap.Logger
	fetcher catalog.Fetcher
	store   storage.Client
}

// loadConfig reads the configuration and applies overrides before validation.
func loadConfig(override func(*config.Config), except ...string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if override != nil {
		override(cfg)
	}
	if err := cfg.Validate(except...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newApp builds the logger and connects only the backends the run uses.
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	l = logger.WithRunID(l, uuid.NewString())

	a := &app{cfg: cfg, log: l}
	opts := []catalog.Option{}

	source := cfg.Generate.Source
	if catalog.SchemeOf(source) == catalog.SchemeStorage || storage.IsLocator(cfg.Generate.Output) {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		a.store = store
		opts = append(opts, catalog.WithStorage(store))
	}

	if catalog.SchemeOf(source) == catalog.SchemeDatabase {
		db, err := database.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		opts = append(opts, catalog.WithDatabase(db))
		l.Debug("Database connected", zap.String("host", cfg.Database.Host), zap.String("name", cfg.Database.Name))
	}

	a.fetcher = catalog.NewFetcher(cfg.Source, opts...)
	return a, nil
}

func (a *app) service() *generator.Service {
	return generator.NewService(a.fetcher, generator.NewOutputSink(os.Stdout, a.store), a.log)
}

func (a *app) params() generator.Params {
	return generator.Params{
		Source: a.cfg.Generate.Source,
		Output: a.cfg.Generate.Output,
		Style:  a.cfg.Emit,
		MaxID:  a.cfg.Generate.MaxID,
	}
}
