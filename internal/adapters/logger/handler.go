package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/mart/internal/ui/output"
	"go.trai.ch/mart/internal/ui/style"
)

// mark is the icon and color a record is drawn with.
type mark struct {
	icon  string
	color lipgloss.Color
}

func markFor(level slog.Level) mark {
	switch {
	case level >= slog.LevelError:
		return mark{icon: style.Cross, color: style.Red}
	case level >= slog.LevelWarn:
		return mark{icon: style.Warning, color: style.Yellow}
	default:
		return mark{color: style.Slate}
	}
}

// PrettyHandler is a slog.Handler that writes one colored line per record:
// an optional severity icon, the message, then key=value pairs.
// Keys inside groups are joined with dots.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string // group path applied to later attrs, e.g. "mirror."
	suffix string // pre-rendered attrs from WithAttrs
}

// NewPrettyHandler creates a PrettyHandler writing to w. A nil w means os.Stderr.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{out: output.New(w), level: level}
}

// Enabled implements slog.Handler.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	m := markFor(r.Level)

	var line strings.Builder
	if m.icon != "" {
		line.WriteString(m.icon + " ")
	}
	line.WriteString(r.Message)
	line.WriteString(h.suffix)
	r.Attrs(func(attr slog.Attr) bool {
		appendAttr(&line, h.prefix, attr)
		return true
	})

	colored := h.out.String(line.String()).Foreground(termenv.RGBColor(string(m.color)))
	_, err := io.WriteString(h.out, colored.String()+"\n")
	return err
}

// WithAttrs implements slog.Handler.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	var b strings.Builder
	b.WriteString(h.suffix)
	for _, attr := range attrs {
		appendAttr(&b, h.prefix, attr)
	}

	next := *h
	next.suffix = b.String()
	return &next
}

// WithGroup implements slog.Handler.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

// appendAttr writes " key=value", flattening group attrs into dotted keys.
func appendAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	if attr.Value.Kind() == slog.KindGroup {
		inner := prefix
		if attr.Key != "" {
			inner += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			appendAttr(b, inner, member)
		}
		return
	}

	b.WriteString(" " + prefix + attr.Key + "=" + attr.Value.String())
}
