package template

import (
	"regexp"
	"strings"
)

// helperNames lists the built-in helper function names; arguments to
// these are rewritten as variable references during conversion.
var helperNames = []string{
	"codefence", "indent", "trim", "upper", "lower", "join", "default", "truncate",
}

var (
	ifPattern   = regexp.MustCompile(`\{\{#if\s+(\w+)\}\}`)
	eachPattern = regexp.MustCompile(`\{\{#each\s+(\w+)\}\}`)
	varPattern  = regexp.MustCompile(`\{\{([a-zA-Z_]\w*)\}\}`)
)

// goTemplateKeywords are reserved words never treated as variables.
var goTemplateKeywords = map[string]bool{
	"else": true, "end": true, "if": true, "range": true,
	"with": true, "define": true, "template": true, "block": true,
}

// convertSyntax converts Handlebars-like syntax to Go template syntax:
//
//	{{variable}}                -> {{.variable}}
//	{{#if x}}...{{/if}}         -> {{if .x}}...{{end}}
//	{{#each xs}}...{{/each}}    -> {{range .xs}}...{{end}}
//	{{helper arg "lit" 3}}      -> {{helper .arg "lit" 3}}
func convertSyntax(input string) string {
	result := ifPattern.ReplaceAllString(input, "{{if .$1}}")
	result = strings.ReplaceAll(result, "{{/if}}", "{{end}}")
	result = eachPattern.ReplaceAllString(result, "{{range .$1}}")
	result = strings.ReplaceAll(result, "{{/each}}", "{{end}}")

	for _, helper := range helperNames {
		result = convertHelperArgs(result, helper)
	}

	return varPattern.ReplaceAllStringFunc(result, func(match string) string {
		name := varPattern.FindStringSubmatch(match)[1]
		if goTemplateKeywords[name] {
			return match
		}
		return "{{." + name + "}}"
	})
}

// convertHelperArgs rewrites bareword arguments of a helper call as
// variable references, leaving string and numeric literals alone.
func convertHelperArgs(input, helper string) string {
	callPattern := regexp.MustCompile(`\{\{` + helper + `\s+([^}]+)\}\}`)
	return callPattern.ReplaceAllStringFunc(input, func(match string) string {
		args := callPattern.FindStringSubmatch(match)[1]
		fields := strings.Fields(args)
		for i, f := range fields {
			if isQuoted(f) || isNumeric(f) || strings.HasPrefix(f, ".") {
				continue
			}
			fields[i] = "." + f
		}
		return "{{" + helper + " " + strings.Join(fields, " ") + "}}"
	})
}

func isQuoted(s string) bool {
	if len(s) < 2 {
		return false
	}
	return (strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)) ||
		(strings.HasPrefix(s, "`") && strings.HasSuffix(s, "`"))
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i, ch := range s {
		if ch == '-' && i == 0 {
			continue
		}
		if ch == '.' {
			continue
		}
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}

// extractVariables returns the deduplicated variable names referenced
// by a template, in first-appearance order.
func extractVariables(templateStr string) []string {
	seen := make(map[string]bool)
	var result []string

	add := func(name string) {
		if !goTemplateKeywords[name] && !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}

	for _, match := range varPattern.FindAllStringSubmatch(templateStr, -1) {
		add(match[1])
	}
	controlPattern := regexp.MustCompile(`\{\{#(?:if|each)\s+([a-zA-Z_]\w*)\}\}`)
	for _, match := range controlPattern.FindAllStringSubmatch(templateStr, -1) {
		add(match[1])
	}
	helperArgPattern := regexp.MustCompile(`\{\{(?:` + strings.Join(helperNames, "|") + `)\s+([a-zA-Z_]\w*)`)
	for _, match := range helperArgPattern.FindAllStringSubmatch(templateStr, -1) {
		add(match[1])
	}
	return result
}
