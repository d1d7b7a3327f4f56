package cleaning

import "log/slog"

// Options controls cleaning behaviour.
type Options struct {
	// Strict rejects degenerate input instead of producing NaN or
	// miscategorised values.
	Strict bool
	Logger *slog.Logger
}

// DefaultOptions returns strict options logging to the default logger.
func DefaultOptions() Options {
	return Options{Strict: true}
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Report summarises what a cleaner did to its input.
type Report struct {
	Dataset        string
	RowsIn         int
	RowsOut        int
	DroppedColumns []string
	// Maxima holds the normalizing maximum of each rescaled column.
	Maxima map[string]float64
}
