package ports

// Logger defines the interface for hook diagnostics.
type Logger interface {
	Debug(message string)
	Error(message string)
}
