// Package catalog retrieves and decodes item catalogs.
//
// A catalog is a JSON array of records, each with an integer "id", a string
// "name" and an integer "stackSize". The Router fetches it from the location a
// locator names:
//
//   - http:// or https:// : a single GET; any status other than 200 fails.
//   - s3://bucket/key : an object read through core/storage.
//   - db:table : the id, name and stack_size columns of a table, read through
//     core/database and re-encoded as the JSON catalog form.
//   - file:// or a plain path : a local file.
//
// There is no retry. A failed or timed out read is a *FetchError.
//
// # Decoding
//
// Decode keeps numbers as json.Number so that the normalizer can tell integers
// from fractions. Malformed JSON is a *FetchError; JSON of the wrong shape is a
// *normalize.SchemaError.
package catalog
