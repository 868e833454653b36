package template

import (
	"fmt"
	"strings"
	"text/template"
)

// Engine renders prompt templates with variable substitution.
type Engine struct {
	funcs template.FuncMap
}

// NewEngine creates a template engine with the default helpers.
func NewEngine() *Engine {
	return &Engine{funcs: defaultFuncs()}
}

// Render executes the template with the given variables. The template
// string uses Handlebars-like syntax which is converted to Go template
// syntax before execution. Rendering is deterministic: the same
// template and variables always produce the same output.
func (e *Engine) Render(templateStr string, variables map[string]any) (string, error) {
	if templateStr == "" {
		return "", ErrEmpty
	}

	tmpl, err := template.New("prompt").Funcs(e.funcs).Parse(convertSyntax(templateStr))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrParse, err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, variables); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecute, err)
	}
	return buf.String(), nil
}

// Parse validates the template and returns the variable names it
// references.
func (e *Engine) Parse(templateStr string) ([]string, error) {
	if templateStr == "" {
		return nil, ErrEmpty
	}
	if _, err := template.New("prompt").Funcs(e.funcs).Parse(convertSyntax(templateStr)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return extractVariables(templateStr), nil
}

// AddFunc registers a custom helper available to subsequent renders.
func (e *Engine) AddFunc(name string, fn any) {
	e.funcs[name] = fn
}

// ValidateVariables checks that every required variable is provided.
func ValidateVariables(required []string, provided map[string]any) error {
	for _, name := range required {
		if _, ok := provided[name]; !ok {
			return fmt.Errorf("%w: %s", ErrVariable, name)
		}
	}
	return nil
}
