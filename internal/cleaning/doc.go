// Package cleaning turns the two raw survey tables into analysis-ready
// tables.
//
// CleanProductivity keeps IT rows with a 0, 50 or 100 remote-work
// frequency, labels them Remote, Hybrid or Onsite and derives a 1-5
// motivation score. CleanMentalHealth buckets three 1-5 ratings into
// Low/Medium/High, prunes columns and keeps three job roles.
//
// Options.Strict selects how degenerate input is handled. Strict mode turns
// a zero normalizing maximum, an out-of-domain frequency or an out-of-range
// rating into a VALIDATION error; lenient mode keeps the arithmetic as is
// (NaN scores, "High" buckets).
package cleaning
