// Package exposure is the catalog entry point for the occupational
// exposure models. It resolves models by route and name, evaluates them
// with optional overrides and scenario selections, and runs batches of
// evaluations concurrently.
package exposure
