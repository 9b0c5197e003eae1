package logger

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/npillmayer/schuko/tracing"
)

// Tracer implements tracing.Trace on top of a charm log, so that library
// traces share the writer and format of the command's log.
type Tracer struct {
	log    *log.Logger
	level  tracing.TraceLevel
	prefix string
}

// NewTracer creates a tracer writing through l. Messages above level are
// dropped before they reach l, and l filters by its own level as well.
func NewTracer(l *log.Logger, level tracing.TraceLevel) *Tracer {
	return &Tracer{log: l, level: level}
}

// TraceLevelFor maps a charm log level to the closest trace level.
func TraceLevelFor(level log.Level) tracing.TraceLevel {
	switch {
	case level <= log.DebugLevel:
		return tracing.LevelDebug
	case level <= log.InfoLevel:
		return tracing.LevelInfo
	}
	return tracing.LevelError
}

// InstallTracer makes every tracing.Select return a tracer writing through l.
func InstallTracer(l *log.Logger, level tracing.TraceLevel) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace {
		return NewTracer(l, level)
	}))
}

// P is part of interface Trace
func (t *Tracer) P(key string, val any) tracing.Trace {
	return &Tracer{
		log:    t.log,
		level:  t.level,
		prefix: t.prefix + fmt.Sprintf("[%s=%v] ", key, val),
	}
}

// Debugf is part of interface Trace
func (t *Tracer) Debugf(s string, args ...any) {
	if t.level < tracing.LevelDebug {
		return
	}
	t.log.Debug(t.prefix + fmt.Sprintf(s, args...))
}

// Infof is part of interface Trace
func (t *Tracer) Infof(s string, args ...any) {
	if t.level < tracing.LevelInfo {
		return
	}
	t.log.Info(t.prefix + fmt.Sprintf(s, args...))
}

// Errorf is part of interface Trace
func (t *Tracer) Errorf(s string, args ...any) {
	t.log.Error(t.prefix + fmt.Sprintf(s, args...))
}

// SetTraceLevel is part of interface Trace
func (t *Tracer) SetTraceLevel(l tracing.TraceLevel) {
	t.level = l
}

// GetTraceLevel is part of interface Trace
func (t *Tracer) GetTraceLevel() tracing.TraceLevel {
	return t.level
}

// SetOutput is part of interface Trace
func (t *Tracer) SetOutput(w io.Writer) {
	t.log.SetOutput(w)
}
