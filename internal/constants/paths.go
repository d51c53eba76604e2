package constants

// Log file names and rotation settings.
const (
	// CLILogFileName is the name of the global CLI log file.
	// This file is located in ~/.rcli/logs/rcli.log
	CLILogFileName = "rcli.log"

	// LogMaxSizeMB is the size at which the CLI log is rotated.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files kept.
	LogMaxBackups = 3

	// LogMaxAgeDays is the number of days rotated logs are kept.
	LogMaxAgeDays = 28

	// LogCompress enables gzip compression of rotated logs.
	LogCompress = true
)

// Configuration file names.
const (
	// ConfigFileName is the name of both the global and project config files.
	ConfigFileName = "config.yaml"

	// DotEnvFileName is loaded from the working directory before config resolution.
	DotEnvFileName = ".env"
)
