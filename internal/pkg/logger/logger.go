// Package logger provides leveled logging backed by slog, writing either to
// the console or to a rotated log file.
package logger

// Logger is the leveled logging interface shared by the console and file
// implementations.
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
