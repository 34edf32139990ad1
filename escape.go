package latexbuild

import "strings"

// latexReplacer escapes the ten LaTeX special characters. Built once; the
// single-pass replacement never rescans its own output, so the braces in the
// backslash expansion are safe.
var latexReplacer = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// EscapeString escapes LaTeX special characters in s.
func EscapeString(s string) string {
	return latexReplacer.Replace(s)
}

// EscapeValue applies EscapeString to every string reachable from v,
// recursing through maps and slices. Non-string leaves are returned
// unchanged.
func EscapeValue(v any) any {
	switch val := v.(type) {
	case string:
		return EscapeString(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = EscapeValue(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = EscapeValue(item)
		}
		return out
	case []string:
		out := make([]string, len(val))
		for i, item := range val {
			out[i] = EscapeString(item)
		}
		return out
	default:
		return v
	}
}
