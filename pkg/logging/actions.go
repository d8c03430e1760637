package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// ActionsWriter renders log events as GitHub Actions workflow commands.
// Warnings and errors become annotations, with a "file" field attached as
// the annotation's file. Debug events only show when step debugging is on.
// Everything else is a plain line.
type ActionsWriter struct {
	Out io.Writer
}

// NewActionsWriter returns a writer that emits workflow commands to out.
func NewActionsWriter(out io.Writer) *ActionsWriter {
	return &ActionsWriter{Out: out}
}

// skipped from the rendered field list
var actionsReserved = []string{
	zerolog.LevelFieldName,
	zerolog.TimestampFieldName,
	zerolog.MessageFieldName,
	zerolog.CallerFieldName,
}

// Write implements io.Writer for events without a level.
func (w *ActionsWriter) Write(p []byte) (int, error) {
	return w.WriteLevel(zerolog.NoLevel, p)
}

// WriteLevel implements zerolog.LevelWriter.
func (w *ActionsWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	var event map[string]any
	dec := json.NewDecoder(bytes.NewReader(p))
	dec.UseNumber()
	if err := dec.Decode(&event); err != nil {
		// not a zerolog event, pass it through
		return w.Out.Write(p)
	}

	text := actionsText(event)

	var line string
	switch {
	case level == zerolog.ErrorLevel, level == zerolog.FatalLevel, level == zerolog.PanicLevel:
		line = "::error" + actionsProperties(event) + "::" + escapeData(text)
	case level == zerolog.WarnLevel:
		line = "::warning" + actionsProperties(event) + "::" + escapeData(text)
	case level <= zerolog.DebugLevel:
		line = "::debug::" + escapeData(text)
	default:
		line = text
	}

	if _, err := io.WriteString(w.Out, line+"\n"); err != nil {
		return 0, err
	}
	return len(p), nil
}

// actionsText is the message followed by the remaining fields as key=value
// pairs, sorted by key.
func actionsText(event map[string]any) string {
	var b strings.Builder
	if msg, ok := event[zerolog.MessageFieldName].(string); ok {
		b.WriteString(msg)
	}

	keys := make([]string, 0, len(event))
	for k := range event {
		if !slices.Contains(actionsReserved, k) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	for _, k := range keys {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%s", k, actionsValue(event[k]))
	}
	return b.String()
}

func actionsValue(v any) string {
	switch v := v.(type) {
	case string:
		if strings.ContainsAny(v, " \t") {
			return fmt.Sprintf("%q", v)
		}
		return v
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = actionsValue(item)
		}
		return "[" + strings.Join(parts, ",") + "]"
	default:
		return fmt.Sprint(v)
	}
}

func actionsProperties(event map[string]any) string {
	file, ok := event["file"].(string)
	if !ok || file == "" {
		return ""
	}
	return " file=" + escapeProperty(file)
}

// escapeData escapes a workflow command message.
func escapeData(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A").Replace(s)
}

// escapeProperty escapes a workflow command property value.
func escapeProperty(s string) string {
	return strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A", ":", "%3A", ",", "%2C").Replace(s)
}
