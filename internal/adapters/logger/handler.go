package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

const (
	colorSlate  = "#667085"
	colorRed    = "#D93025"
	colorYellow = "#F59E0B"
	colorTeal   = "#0E9384"

	iconCross     = "✗"
	iconWarning   = "!"
	iconOperation = "▸"

	taskCategory = "TASK"
)

// PrettyHandler is a slog.Handler that writes one colored line per record.
//
// Messages of the form "[CATEGORY] subject: text" are build operation lines. The category
// is folded into a marker and the subject is set in bold, so that "[TASK] main: up to date"
// renders as "▸ main: up to date".
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	// attrs are preformatted so that groups opened later do not qualify them.
	attrs  []string
	prefix string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
// Colors are disabled when NO_COLOR is set.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   termenv.NewOutput(w, termenv.WithProfile(colorProfile()), termenv.WithTTY(true)),
		level: level,
	}
}

func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	color := h.out.Color(colorSlate)
	marker := ""
	switch {
	case r.Level >= slog.LevelError:
		color, marker = h.out.Color(colorRed), iconCross
	case r.Level >= slog.LevelWarn:
		color, marker = h.out.Color(colorYellow), iconWarning
	}

	var b strings.Builder
	if op, ok := parseOperation(r.Message); ok {
		if marker == "" {
			marker = h.out.String(iconOperation).Foreground(h.out.Color(colorTeal)).String()
		} else {
			marker = h.out.String(marker).Foreground(color).String()
		}
		b.WriteString(marker + " ")
		b.WriteString(h.out.String(op.label()).Foreground(color).Bold().String())
		b.WriteString(h.out.String(": " + op.text).Foreground(color).String())
	} else {
		msg := r.Message
		if marker != "" {
			msg = marker + " " + msg
		}
		b.WriteString(h.out.String(msg).Foreground(color).String())
	}

	parts := append([]string(nil), h.attrs...)
	r.Attrs(func(attr slog.Attr) bool {
		parts = appendAttr(parts, h.prefix, attr)
		return true
	})
	if len(parts) > 0 {
		b.WriteString(" " + h.out.String(strings.Join(parts, " ")).Foreground(h.out.Color(colorSlate)).String())
	}

	b.WriteString("\n")
	_, err := h.out.WriteString(b.String())
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append([]string(nil), h.attrs...)
	for _, attr := range attrs {
		clone.attrs = appendAttr(clone.attrs, h.prefix, attr)
	}
	return &clone
}

// WithGroup returns a new Handler that qualifies later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

// operation is a message of the form "[CATEGORY] subject: text".
type operation struct {
	category string
	subject  string
	text     string
}

func parseOperation(msg string) (operation, bool) {
	if !strings.HasPrefix(msg, "[") {
		return operation{}, false
	}
	category, rest, ok := strings.Cut(msg[1:], "] ")
	if !ok || category == "" || strings.ContainsAny(category, " ]") {
		return operation{}, false
	}
	subject, text, ok := strings.Cut(rest, ": ")
	if !ok || subject == "" {
		return operation{}, false
	}
	return operation{category: category, subject: subject, text: text}, true
}

// label is the subject, followed by the category unless it is a task.
func (o operation) label() string {
	if o.category == taskCategory {
		return o.subject
	}
	return o.subject + " (" + strings.ToLower(strings.ReplaceAll(o.category, "_", " ")) + ")"
}

func appendAttr(parts []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return parts
	}
	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, a := range attr.Value.Group() {
			parts = appendAttr(parts, prefix, a)
		}
		return parts
	}

	value := attr.Value.String()
	if value == "" || strings.ContainsAny(value, " \t\n\"=") {
		value = strconv.Quote(value)
	}
	return append(parts, prefix+attr.Key+"="+value)
}
