// Package charts renders the report figures with gonum.org/v1/plot.
//
// Each chart is written once as a JPEG at 300 dpi under the renderer's
// directory, using a fixed file name. A chart function also returns the
// aggregate it drew, which is the only part of its output that is meant to
// be compared between runs.
package charts
