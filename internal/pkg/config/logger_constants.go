package config

// Accepted log levels.
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Accepted log output types.
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)
