// Package dataset loads raw CSV tables into gota dataframes and exposes the
// typed column accessors the cleaners and aggregators build on.
//
// Accessors fail loudly: an absent column is a MISSING_FIELD error and a
// column that cannot be read as numbers is a TYPE_MISMATCH error. The only
// lenient operation is DropColumns, which ignores absent names.
package dataset
