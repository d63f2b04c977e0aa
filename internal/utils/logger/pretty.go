package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	stdlog "log"
	"sync"

	"github.com/fatih/color"
	"golang.org/x/exp/slog"
)

// PrettyHandler - цветной текстовый обработчик slog для локальной разработки.
type PrettyHandler struct {
	opts   *slog.HandlerOptions
	attrs  []slog.Attr
	out    *stdlog.Logger
	mu     *sync.Mutex
	groups []string
}

func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &PrettyHandler{
		opts: opts,
		out:  stdlog.New(w, "", 0),
		mu:   &sync.Mutex{},
	}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	level := r.Level.String() + ":"

	switch r.Level {
	case slog.LevelDebug:
		level = color.MagentaString(level)
	case slog.LevelInfo:
		level = color.BlueString(level)
	case slog.LevelWarn:
		level = color.YellowString(level)
	case slog.LevelError:
		level = color.RedString(level)
	}

	fields := make(map[string]any, r.NumAttrs()+len(h.attrs))
	r.Attrs(func(a slog.Attr) bool {
		fields[a.Key] = a.Value.Any()
		return true
	})
	for _, a := range h.attrs {
		fields[a.Key] = a.Value.Any()
	}

	var suffix string
	if len(fields) > 0 {
		b, err := json.MarshalIndent(fields, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal attrs: %w", err)
		}
		suffix = color.WhiteString(string(b))
	}

	timeStr := r.Time.Format("[15:04:05.000]")
	msg := color.CyanString(r.Message)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.out.Println(timeStr, level, msg, suffix)

	return nil
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &PrettyHandler{
		opts:   h.opts,
		attrs:  append(append([]slog.Attr(nil), h.attrs...), attrs...),
		out:    h.out,
		mu:     h.mu,
		groups: h.groups,
	}
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		opts:   h.opts,
		attrs:  h.attrs,
		out:    h.out,
		mu:     h.mu,
		groups: append(append([]string(nil), h.groups...), name),
	}
}
