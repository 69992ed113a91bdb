package logger

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"strings"
)

type Fields map[string]any

var std = log.New(os.Stderr, "", log.LstdFlags)

var sensitiveKeys = map[string]struct{}{
	"password":      {},
	"passwordhash":  {},
	"password_hash": {},
	"channelkey":    {},
	"channel_key":   {},
	"authorization": {},
}

// Personal data keys keep only their last few characters so log lines can
// still be matched against a customer record.
var personalKeys = map[string]struct{}{
	"contactnumber":  {},
	"contact_number": {},
	"email":          {},
}

const personalVisibleChars = 4

// SetOutput redirects log lines, e.g. away from an interactive prompt.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

func Info(message string, fields Fields) {
	std.Printf("INFO %s %s", message, fieldsJSON(fields))
}

func Error(message string, err error, fields Fields) {
	base := Fields{}
	for k, v := range fields {
		base[k] = v
	}
	if err != nil {
		base["error"] = err.Error()
	}

	std.Printf("ERROR %s %s", message, fieldsJSON(base))
}

func SanitizePayload(payload any) any {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "<unavailable>"
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "<unavailable>"
	}

	return sanitizeValue(data)
}

func fieldsJSON(fields Fields) string {
	if fields == nil {
		fields = Fields{}
	}

	sanitized := SanitizePayload(fields)
	b, err := json.Marshal(sanitized)
	if err != nil {
		return `{}`
	}

	return string(b)
}

func sanitizeValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, inner := range typed {
			if isSensitiveKey(key) {
				out[key] = "******"
				continue
			}
			if s, ok := inner.(string); ok && isPersonalKey(key) {
				out[key] = maskPersonal(s)
				continue
			}
			out[key] = sanitizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, sanitizeValue(item))
		}
		return out
	default:
		return value
	}
}

func isSensitiveKey(key string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "-", ""))
	_, ok := sensitiveKeys[normalized]
	return ok
}

func isPersonalKey(key string) bool {
	_, ok := personalKeys[strings.ToLower(strings.TrimSpace(key))]
	return ok
}

// maskPersonal keeps the trailing characters of value; short values are
// masked whole.
func maskPersonal(value string) string {
	runes := []rune(value)
	if len(runes) <= personalVisibleChars {
		return strings.Repeat("*", len(runes))
	}
	hidden := len(runes) - personalVisibleChars
	return strings.Repeat("*", hidden) + string(runes[hidden:])
}
