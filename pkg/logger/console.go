package logger

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gookit/color"
)

var _ slog.Handler = (*consoleHandler)(nil)

// consoleHandler writes human readable lines: "[time ]level: message key=value".
type consoleHandler struct {
	mu        *sync.Mutex
	w         io.Writer
	level     slog.Leveler
	timestamp bool
	colorize  bool
	prefix    string
	attrs     []byte
}

func newConsoleHandler(w io.Writer, level slog.Leveler, timestamp, colorize bool) *consoleHandler {
	return &consoleHandler{mu: &sync.Mutex{}, w: w, level: level, timestamp: timestamp, colorize: colorize}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	if h.timestamp && !r.Time.IsZero() {
		buf.WriteString(r.Time.Format(time.RFC3339))
		buf.WriteByte(' ')
	}
	buf.WriteString(h.levelLabel(r.Level))
	buf.WriteString(": ")
	buf.WriteString(r.Message)
	buf.Write(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&buf, h.prefix, a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	cp := *h
	buf := bytes.NewBuffer(append([]byte(nil), h.attrs...))
	for _, a := range attrs {
		appendAttr(buf, h.prefix, a)
	}
	cp.attrs = buf.Bytes()
	return &cp
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	cp := *h
	cp.prefix = h.prefix + name + "."
	return &cp
}

func (h *consoleHandler) levelLabel(l slog.Level) string {
	name := LevelName(l)
	if !h.colorize {
		return name
	}
	switch {
	case l >= LevelError:
		return color.Red.Sprint(name)
	case l >= LevelWarn:
		return color.Yellow.Sprint(name)
	case l >= LevelInfo:
		return color.Green.Sprint(name)
	case l >= LevelVerbose:
		return color.Cyan.Sprint(name)
	case l >= LevelDebug:
		return color.Blue.Sprint(name)
	default:
		return color.Magenta.Sprint(name)
	}
}

func appendAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		group := prefix
		if a.Key != "" {
			group += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			appendAttr(buf, group, ga)
		}
		return
	}
	fmt.Fprintf(buf, " %s%s=%s", prefix, a.Key, quoteIfNeeded(a.Value.String()))
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
