package template

import (
	"strings"
	"text/template"
)

// defaultFuncs returns the built-in template functions.
func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		"codefence": codefence,
		"indent":    indent,
		"trim":      strings.TrimSpace,
		"upper":     strings.ToUpper,
		"lower":     strings.ToLower,
		"join":      strings.Join,
		"default":   defaultValue,
		"truncate":  truncate,
	}
}

// codefence wraps text in a triple-backtick fence on its own lines.
func codefence(s string) string {
	return "```\n" + s + "\n```"
}

// indent adds a space prefix to each line of the input.
func indent(s string, spaces int) string {
	prefix := strings.Repeat(" ", spaces)
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}

// defaultValue returns the default if the value is nil or an empty string.
func defaultValue(val, defaultVal any) any {
	if val == nil {
		return defaultVal
	}
	if s, ok := val.(string); ok && s == "" {
		return defaultVal
	}
	return val
}

// truncate cuts a string to maxLen, appending an ellipsis when cut.
// For maxLen <= 3 the string is simply cut.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
