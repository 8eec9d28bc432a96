package logger

import (
	"cmp"
	"context"
	"io"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/libscan/internal/ui/output"
	"go.trai.ch/libscan/internal/ui/style"
)

// cycleKey holds one or more cut cycle paths. They are rendered below the message, one per line.
const cycleKey = "cycle"

// locationKeys lead every attribute list, in this order.
var locationKeys = []string{"category", "app", "file", "import", "depth"}

// PrettyHandler is a slog.Handler producing colored, human-readable lines.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a PrettyHandler writing to w, or stderr when w is nil.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level.Level()
	}

	levelVar := &slog.LevelVar{}
	levelVar.Set(level)

	return &PrettyHandler{
		out:   output.New(w),
		level: levelVar,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record.
//
// The line reads "<icon> message key=value ...". Location attributes come first
// in a fixed order and the others follow in the order they were added.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var msg string
	var color termenv.Color

	switch r.Level {
	case slog.LevelWarn:
		msg = style.Warning + " " + r.Message
		color = termenv.RGBColor(string(style.Yellow))
	case slog.LevelError:
		msg = style.Cross + " " + r.Message
		color = termenv.RGBColor(string(style.Red))
	default:
		msg = r.Message
		color = termenv.RGBColor(string(style.Slate))
	}

	// Add handler-level attrs
	attrs := make([]slog.Attr, 0, len(h.attrs)+r.NumAttrs())
	attrs = append(attrs, h.attrs...)

	// Add record-level attrs
	r.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)
		return true
	})

	slices.SortStableFunc(attrs, func(a, b slog.Attr) int {
		return cmp.Compare(keyRank(a.Key), keyRank(b.Key))
	})

	var attrParts, cycles []string
	for _, attr := range attrs {
		if attr.Key == cycleKey {
			cycles = append(cycles, cyclePaths(attr.Value)...)
			continue
		}
		attrParts = append(attrParts, formatAttr(h.group, attr))
	}

	if len(attrParts) > 0 {
		msg += " " + strings.Join(attrParts, " ")
	}
	for _, c := range cycles {
		msg += "\n    " + style.Cycle + " " + c
	}

	styled := h.out.String(msg).Foreground(color)
	_, err := h.out.WriteString(styled.String() + "\n")

	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)

	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: newAttrs,
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: name,
	}
}

// formatAttr formats a single attribute for output.
// If a group is set, the key is prefixed with the group name.
func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}

// cyclePaths unpacks a cycle attribute holding either one path or a list of paths.
func cyclePaths(v slog.Value) []string {
	if v.Kind() == slog.KindAny {
		if paths, ok := v.Any().([]string); ok {
			return paths
		}
	}
	return []string{v.String()}
}

func keyRank(key string) int {
	if i := slices.Index(locationKeys, key); i >= 0 {
		return i
	}
	return len(locationKeys)
}

// orderedKeys returns the keys of m with location keys first and the rest sorted.
func orderedKeys(m map[string]any) []string {
	keys := slices.Sorted(maps.Keys(m))
	slices.SortStableFunc(keys, func(a, b string) int {
		return cmp.Compare(keyRank(a), keyRank(b))
	})
	return keys
}
