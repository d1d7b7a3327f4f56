// Package shared holds helpers used across workpulse packages that belong
// to no single stage of the pipeline.
//
// The testutil subpackage provides a capturing slog handler and raw CSV
// fixtures for the productivity and mental-health inputs.
package shared
