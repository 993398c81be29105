package grid

// Logger is the injected logging capability. Absence of a logger never
// changes behavior; components fall back to a no-op.
type Logger interface {
	Printf(format string, v ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

func orNopLogger(log Logger) Logger {
	if log == nil {
		return nopLogger{}
	}
	return log
}
