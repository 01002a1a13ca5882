package hubtel

// RequestLogger is the interface used by [Client] for logging HTTP
// requests and errors. It is installed into the underlying transport,
// so every request, retry, and transport failure goes through it.
//
// The method set matches zap's SugaredLogger, which can be supplied
// directly via [WithRequestLogger]. Ensure your implementation redacts
// credentials from request and response bodies before persisting logs.
type RequestLogger interface {
	Errorf(format string, v ...any)
	Warnf(format string, v ...any)
	Debugf(format string, v ...any)
}

// NoopLogger is a [RequestLogger] that silently discards all log
// messages. It is the default logger used when no logger is provided.
type NoopLogger struct{}

func (l *NoopLogger) Errorf(_ string, _ ...any) {}
func (l *NoopLogger) Warnf(_ string, _ ...any)  {}
func (l *NoopLogger) Debugf(_ string, _ ...any) {}
