// Package report renders model results into deterministic human-readable
// text, JSON and DOT equation graphs, and writes text reports to files.
// Values are listed in the model's declared parameter order so reports are
// stable and reviewable across runs.
package report
