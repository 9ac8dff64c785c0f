package core

// Logger interface for ray casting diagnostics
type Logger interface {
	Printf(format string, args ...interface{})
}
