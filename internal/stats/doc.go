// Package stats computes the descriptive tables reported for the cleaned
// productivity and mental-health tables.
//
// Every aggregator reads a dataframe without modifying it and returns a
// Table. Nothing here prints; rendering is left to the exporter and charts
// packages.
//
// Groups follow a caller-supplied order and only observed groups appear.
// With no order, observed groups are sorted, which is how a plain group-by
// would list them.
package stats
