// Package config loads the batch job configuration from a YAML file.
//
// The file names the two raw input tables, the two cleaned output tables and
// a handful of optional report and telemetry sinks:
//
//	input_data:
//	  productivity_file: data/raw/productivity.csv
//	  mental_health_file: data/raw/mental_health.csv
//	output_data:
//	  productivity_file: data/clean/productivity_cleaned.csv
//	  mental_health_file: data/clean/mental_health_cleaned.csv
//	figures_dir: figures
//	cleaning:
//	  strict: true
//
// Relative paths are resolved against the directory holding the file. A
// missing file, malformed YAML or an absent required key fails immediately
// with a CONFIG error that names the offending key.
package config
