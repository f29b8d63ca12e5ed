package sliderpath

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards all records. Enabled reports
// false so callers skip building attributes altogether.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger sets the logger used by the package. By default nothing is
// logged. Passing nil restores that behavior.
//
// Only [slog.LevelDebug] is used: it reports which algorithm flattened a
// path, how many segments a composite path had, and when a perfect circle
// fell back to Bézier flattening.
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger set by [SetLogger].
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// debugEnabled guards debug records on hot paths so that the variadic
// arguments aren't built when nobody listens.
func debugEnabled() (*slog.Logger, bool) {
	l := Logger()
	return l, l.Enabled(context.Background(), slog.LevelDebug)
}
