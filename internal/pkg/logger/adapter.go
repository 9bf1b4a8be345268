package logger

import (
	"log/slog"

	"chainregistry/internal/app/port"
)

// slogAdapter implements port.Logger on top of a slog logger.
type slogAdapter struct {
	l *slog.Logger
}

// NewSlogAdapter returns a port.Logger backed by the package-level logger.
func NewSlogAdapter() port.Logger {
	return &slogAdapter{}
}

// NewAdapter returns a port.Logger writing to l, tagged with a component name.
func NewAdapter(l *slog.Logger, component string) port.Logger {
	return &slogAdapter{l: l.With("component", component)}
}

// Nop returns a port.Logger that discards everything. Useful in tests.
func Nop() port.Logger {
	return &slogAdapter{l: slog.New(slog.DiscardHandler)}
}

func (a *slogAdapter) Info(msg string, args ...any) {
	if a.l == nil {
		Info(msg, args...)
		return
	}
	a.l.Info(msg, args...)
}

func (a *slogAdapter) Debug(msg string, args ...any) {
	if a.l == nil {
		Debug(msg, args...)
		return
	}
	a.l.Debug(msg, args...)
}

func (a *slogAdapter) Warn(msg string, args ...any) {
	if a.l == nil {
		Warn(msg, args...)
		return
	}
	a.l.Warn(msg, args...)
}

func (a *slogAdapter) Error(msg string, args ...any) {
	if a.l == nil {
		Error(msg, args...)
		return
	}
	a.l.Error(msg, args...)
}
