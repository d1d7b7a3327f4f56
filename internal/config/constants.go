package config

// DefaultConfigLocations are searched in order when no path is given.
var DefaultConfigLocations = []string{
	"config.yaml",
	"configs/config.yaml",
	"../config.yaml",
}

const (
	// DefaultFiguresDir is where chart images are written
	DefaultFiguresDir = "figures"
	// DefaultLogFile is used when logging output includes a file
	DefaultLogFile = "logs/workpulse.log"
)
