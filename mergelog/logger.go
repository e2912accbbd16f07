// Package mergelog provides the structured logging interface used across
// the merge engine.
package mergelog

import "log/slog"

// Logger is the interface the merge engine uses for structured logging.
//
// The interface is minimal but compatible with popular logging libraries:
// variadic key-value pairs follow the same convention as log/slog.
//
// # Usage with log/slog
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
//	logger := mergelog.NewSlogAdapter(slog.New(handler))
//
//	doc, err := merge.Merge(cfg, inputs, logger)
type Logger interface {
	// Debug logs at debug level. Use for per-reference, per-path detail.
	Debug(msg string, attrs ...any)

	// Info logs at info level. Use for per-input, per-stage progress.
	Info(msg string, attrs ...any)

	// Warn logs at warn level. Use for supplemented, non-fatal conditions
	// such as a duplicate operationId left as-is.
	Warn(msg string, attrs ...any)

	// Error logs at error level. Use immediately before returning a fatal
	// oaserrors type.
	Error(msg string, attrs ...any)

	// With returns a new Logger with the given attributes prepended to
	// every subsequent log call.
	With(attrs ...any) Logger
}

// NopLogger is a no-op Logger. It is the default when no logger is
// configured.
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}
func (n NopLogger) With(_ ...any) Logger   { return n }

var _ Logger = NopLogger{}

// SlogAdapter wraps a *slog.Logger to implement Logger.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter wraps logger as a Logger. A nil logger uses slog.Default().
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }
func (s *SlogAdapter) Info(msg string, attrs ...any)  { s.logger.Info(msg, attrs...) }
func (s *SlogAdapter) Warn(msg string, attrs ...any)  { s.logger.Warn(msg, attrs...) }
func (s *SlogAdapter) Error(msg string, attrs ...any) { s.logger.Error(msg, attrs...) }

func (s *SlogAdapter) With(attrs ...any) Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ Logger = (*SlogAdapter)(nil)
