// Package template renders prompt templates with variable substitution.
//
// Templates use a simplified Handlebars-like syntax that is converted
// to Go template syntax before execution:
//
//	Hello, {{name}}!
//	{{#if tree}}Structure:\n{{codefence tree}}{{/if}}
//
// # Built-in Functions
//
//   - codefence(s string) string - wrap text in a ``` fence
//   - indent(s string, spaces int) string - prefix each line with spaces
//   - trim(s string) string - remove leading/trailing whitespace
//   - upper/lower(s string) string - change case
//   - join(slice []string, sep string) string - join strings
//   - default(val, defaultVal any) any - fallback for nil/empty values
//   - truncate(s string, maxLen int) string - cut with ellipsis
//
// # Example
//
//	engine := template.NewEngine()
//	out, err := engine.Render("# Your Task\n{{task}}", map[string]any{"task": "Fix the bug"})
package template
