// Package generator wires the catalog pipeline together.
//
// A run fetches the catalog through a catalog.Fetcher, decodes and normalizes
// it, builds the registry and renders it with the emit package. Run then hands
// the text to a Sink; Check compares it against an existing file instead.
//
// # Ports
//
//   - catalog.Fetcher: where the catalog comes from (HTTP, file, S3, database).
//   - Sink: where the generated file goes (stdout, file, S3).
//
// Both are injected, so the pipeline itself has no hidden inputs besides the
// clock, which can be replaced with WithClock.
//
// # Failure
//
// Every stage either succeeds or stops the run; nothing is written on failure.
// KindOf maps an error to its kind tag for reporting.
//
// # Usage
//
//	svc := generator.NewService(fetcher, generator.NewOutputSink(os.Stdout, nil), logger)
//	res, err := svc.Run(ctx, generator.Params{
//	    Source: "https://example.com/items.json",
//	    Output: "internal/item/items_gen.go",
//	    Style:  emit.Style{Package: "item"},
//	})
package generator
