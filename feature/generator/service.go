package generator

import (
	"context"
	"fmt"
	"time"

	"itemgen/feature/catalog"
	"itemgen/feature/emit"
	"itemgen/feature/normalize"
	"itemgen/feature/registry"

	"go.uber.org/zap"
)

// Params are the inputs of one generator run.
type Params struct {
	// Source is the catalog locator.
	Source string
	// Output is the target the generated file is written to.
	Output string
	Style  emit.Style
	// MaxID bounds accepted ids; zero means normalize.DefaultMaxID.
	MaxID int
}

// Result is the outcome of a successful run.
type Result struct {
	Registry *registry.Registry
	Source   []byte
}

// CheckResult reports whether an existing generated file is current.
type CheckResult struct {
	Result
	UpToDate bool
}

// Service runs the fetch, normalize, build and emit pipeline.
type Service struct {
	fetcher catalog.Fetcher
	sink    Sink
	logger  *zap.Logger
	now     func() time.Time
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithClock replaces time.Now for the provenance timestamp.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) { s.now = now }
}

// NewService creates a new generator service.
func NewService(fetcher catalog.Fetcher, sink Sink, logger *zap.Logger, opts ...ServiceOption) *Service {
	s := &Service{
		fetcher: fetcher,
		sink:    sink,
		logger:  logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate fetches the catalog and renders it without writing anything.
func (s *Service) Generate(ctx context.Context, p Params) (*Result, error) {
	if err := p.Style.Validate(); err != nil {
		return nil, &emit.EmitError{Reason: "invalid style", Err: err}
	}

	start := time.Now()
	log := s.logger.With(zap.String("source", p.Source))

	data, err := s.fetcher.Fetch(ctx, p.Source)
	if err != nil {
		return nil, err
	}
	log.Debug("Catalog fetched", zap.Int("bytes", len(data)))

	reg, err := Build(p.Source, data, p.Style, p.MaxID)
	if err != nil {
		return nil, err
	}
	log.Debug("Registry built",
		zap.Int("items", reg.Len()),
		zap.Int("table_size", reg.Size()),
		zap.Int("gaps", len(reg.Gaps())),
	)

	src, err := emit.Emit(reg, p.Style, s.now())
	if err != nil {
		return nil, err
	}

	log.Info("Registry generated",
		zap.Int("items", reg.Len()),
		zap.Int("table_size", reg.Size()),
		zap.Int("bytes", len(src)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return &Result{Registry: reg, Source: src}, nil
}

// Run generates the registry and writes it to p.Output.
// Nothing is written when any stage fails.
func (s *Service) Run(ctx context.Context, p Params) (*Result, error) {
	if p.Output == "" {
		return nil, fmt.Errorf("no output target given")
	}

	res, err := s.Generate(ctx, p)
	if err != nil {
		return nil, err
	}

	if err := s.sink.Write(ctx, p.Output, res.Source); err != nil {
		return nil, fmt.Errorf("write output: %w", err)
	}
	s.logger.Info("Output written", zap.String("output", p.Output))
	return res, nil
}

// Check regenerates the registry and compares it with existing, ignoring the
// provenance timestamp.
func (s *Service) Check(ctx context.Context, p Params, existing []byte) (*CheckResult, error) {
	res, err := s.Generate(ctx, p)
	if err != nil {
		return nil, err
	}
	return &CheckResult{Result: *res, UpToDate: emit.Equivalent(res.Source, existing)}, nil
}

// Build is the pure part of the pipeline: it decodes and normalizes catalog
// bytes and assembles the registry.
func Build(locator string, data []byte, style emit.Style, maxID int) (*registry.Registry, error) {
	records, err := catalog.Decode(locator, data)
	if err != nil {
		return nil, err
	}

	items, err := normalize.Normalize(records, normalize.Options{MaxID: maxID})
	if err != nil {
		return nil, err
	}

	return registry.Build(items, style.Reserved()...)
}
