// Package logger builds the process-wide structured logger.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

type Config struct {
	Level  string // "debug", "info", "warn", "error"
	Format string // "text", "json", "console"
	// File, when set, receives the log output instead of Output. It is
	// opened in append mode.
	File   string
	Output io.Writer
}

var current atomic.Pointer[slog.Logger]

// New builds a logger from cfg. The returned closer releases the log file,
// if one was opened; it is never nil.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	var closer io.Closer = nopCloser{}
	out := cfg.Output
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closer = f, f
	}
	if out == nil {
		out = os.Stderr
	}

	level := parseLevel(cfg.Level)
	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	case "text":
		handler = slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	default:
		handler = &consoleHandler{w: out, level: level}
	}
	return slog.New(handler), closer, nil
}

// Init replaces the process logger and slog's default with one built from
// cfg. Callers close the returned closer on shutdown.
func Init(cfg Config) (io.Closer, error) {
	lg, closer, err := New(cfg)
	if err != nil {
		return nil, err
	}
	current.Store(lg)
	slog.SetDefault(lg)
	return closer, nil
}

// L returns the process logger. Before Init it logs at info level to
// stderr in console format.
func L() *slog.Logger {
	if lg := current.Load(); lg != nil {
		return lg
	}
	lg := slog.New(&consoleHandler{w: os.Stderr, level: slog.LevelInfo})
	current.CompareAndSwap(nil, lg)
	return current.Load()
}

func parseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// consoleHandler writes one human-friendly line per record:
//
//	12:00:00.000 INFO  state switch  from=gameplay to=paused frame=412
type consoleHandler struct {
	w     io.Writer
	level slog.Level
	attrs []slog.Attr
	group string
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Time.Format("15:04:05.000"))
	sb.WriteByte(' ')
	sb.WriteString(levelTag(r.Level))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)

	if len(h.attrs) > 0 || r.NumAttrs() > 0 {
		sb.WriteByte(' ')
	}
	for _, a := range h.attrs {
		writeAttr(&sb, h.group, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, h.group, a)
		return true
	})

	sb.WriteByte('\n')
	_, err := io.WriteString(h.w, sb.String())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &consoleHandler{
		w:     h.w,
		level: h.level,
		attrs: append(append([]slog.Attr{}, h.attrs...), attrs...),
		group: h.group,
	}
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &consoleHandler{
		w:     h.w,
		level: h.level,
		attrs: append([]slog.Attr{}, h.attrs...),
		group: joinKey(h.group, name),
	}
}

func levelTag(l slog.Level) string {
	switch {
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARN "
	case l >= slog.LevelInfo:
		return "INFO "
	default:
		return "DEBUG"
	}
}

func writeAttr(sb *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := joinKey(group, a.Key)
	if a.Value.Kind() == slog.KindGroup {
		for _, inner := range a.Value.Group() {
			writeAttr(sb, key, inner)
		}
		return
	}

	sb.WriteByte(' ')
	sb.WriteString(key)
	sb.WriteByte('=')
	switch a.Value.Kind() {
	case slog.KindDuration:
		sb.WriteString(a.Value.Duration().Round(time.Microsecond).String())
	default:
		sb.WriteString(a.Value.String())
	}
}

func joinKey(group, key string) string {
	if group == "" {
		return key
	}
	if key == "" {
		return group
	}
	return group + "." + key
}
