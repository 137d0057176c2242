package util

import "fmt"

// Stringify renders an opaque worker result as text. Strings pass through
// unchanged; everything else uses the default Go formatting.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case error:
		return t.Error()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Truncate shortens s to at most n runes, appending an ellipsis when content
// was cut. Used for log previews of worker results.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
