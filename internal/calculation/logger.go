package calculation

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// kindLogger prefixes every message with the calculator identifier.
type kindLogger struct {
	next   Logger
	prefix string
}

func withKind(l Logger, kind string) Logger {
	if _, ok := l.(NopLogger); ok {
		return l
	}
	return kindLogger{next: l, prefix: "[" + kind + "] "}
}

func (k kindLogger) Debugf(format string, args ...any) { k.next.Debugf(k.prefix+format, args...) }
func (k kindLogger) Infof(format string, args ...any)  { k.next.Infof(k.prefix+format, args...) }
func (k kindLogger) Warnf(format string, args ...any)  { k.next.Warnf(k.prefix+format, args...) }
func (k kindLogger) Errorf(format string, args ...any) { k.next.Errorf(k.prefix+format, args...) }
