package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Key prefixes that mark a value as key material, longest first.
var sensitiveValuePrefixes = []string{
	"akira_rust_",
	"akira_",
}

// Attribute names whose non-empty values are always fully redacted.
var sensitiveKeyPatterns = []string{
	"password",
	"secret",
	"token",
	"key",
	"credential",
	"auth",
	"bearer",
}

const redactedValue = "***REDACTED***"

func redactSensitive(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindString:
		// Prefix masking wins over key-name redaction so the log keeps a hint.
		s := a.Value.String()
		if prefix, ok := sensitivePrefix(s); ok {
			return slog.String(a.Key, maskValue(s, prefix))
		}
		if s != "" && IsSensitiveKey(a.Key) {
			return slog.String(a.Key, redactedValue)
		}
		if masked := maskEmbedded(s); masked != s {
			return slog.String(a.Key, masked)
		}
	case slog.KindAny:
		// Errors and Stringers are rendered as text by the handler anyway.
		var s string
		switch v := a.Value.Any().(type) {
		case error:
			s = v.Error()
		case fmt.Stringer:
			s = v.String()
		default:
			return a
		}
		if masked := maskEmbedded(s); masked != s {
			return slog.String(a.Key, masked)
		}
	case slog.KindGroup:
		attrs := a.Value.Group()
		out := make([]slog.Attr, len(attrs))
		for i, attr := range attrs {
			out[i] = redactSensitive(attr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
	}
	return a
}

func sensitivePrefix(value string) (string, bool) {
	for _, prefix := range sensitiveValuePrefixes {
		if strings.HasPrefix(value, prefix) {
			return prefix, true
		}
	}
	return "", false
}

// maskEmbedded masks every key-like token inside free text, such as an
// error message that quotes a key.
func maskEmbedded(s string) string {
	const marker = "akira_"
	if !strings.Contains(s, marker) {
		return s
	}

	var b strings.Builder
	for {
		i := strings.Index(s, marker)
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		end := i + len(marker)
		for end < len(s) && isKeyByte(s[end]) {
			end++
		}
		token := s[i:end]
		prefix, _ := sensitivePrefix(token)
		b.WriteString(s[:i])
		b.WriteString(maskValue(token, prefix))
		s = s[end:]
	}
}

// isKeyByte reports whether c belongs to the base64url alphabet.
func isKeyByte(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-' || c == '_'
}

// maskValue keeps the prefix and the first and last 3 body characters.
func maskValue(value, prefix string) string {
	body := value[len(prefix):]
	if len(body) <= 6 {
		return prefix + "***"
	}
	return prefix + body[:3] + "..." + body[len(body)-3:]
}

// RedactString masks a key-like value before it is printed outside the logger.
func RedactString(value string) string {
	if prefix, ok := sensitivePrefix(value); ok {
		return maskValue(value, prefix)
	}
	return value
}

// IsSensitiveKey reports whether an attribute name suggests sensitive content.
func IsSensitiveKey(key string) bool {
	keyLower := strings.ToLower(key)
	for _, pattern := range sensitiveKeyPatterns {
		if strings.Contains(keyLower, pattern) {
			return true
		}
	}
	return false
}

// IsSensitiveValue reports whether a value carries an AKIRA key prefix.
func IsSensitiveValue(value string) bool {
	_, ok := sensitivePrefix(value)
	return ok
}
