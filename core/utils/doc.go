// Package utils provides strict value conversion helpers shared by the catalog
// sources. Values decoded from JSON or scanned from a database arrive as any;
// these helpers turn them into Go values without silently truncating.
package utils
