package output

// LoggerPort is a leveled structured logger. args alternate key and value.
type LoggerPort interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)

	// WithField returns a child logger that adds key=value to every entry.
	WithField(key string, value any) LoggerPort
	WithFields(fields map[string]any) LoggerPort

	// Close flushes buffered entries.
	Close() error
}
