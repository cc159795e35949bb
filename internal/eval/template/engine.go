package template

import (
	"fmt"

	"github.com/aescanero/hbs/pkg/registry"
	"github.com/aymerick/raymond"
)

// Engine renders Handlebars templates with the helpers and partials of one run
type Engine struct {
	registry *registry.Set
}

// NewEngine creates a new template engine bound to set
func NewEngine(set *registry.Set) *Engine {
	if set == nil {
		set = registry.NewSet()
	}
	return &Engine{registry: set}
}

// Registry returns the set the engine binds onto compiled templates
func (e *Engine) Registry() *registry.Set {
	return e.registry
}

// Compile parses a template and binds the registered helpers and partials
func (e *Engine) Compile(templateStr string) (tmpl *raymond.Template, err error) {
	tmpl, err = raymond.Parse(templateStr)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	// raymond panics on helpers it cannot call
	defer func() {
		if r := recover(); r != nil {
			tmpl = nil
			err = fmt.Errorf("failed to bind helpers: %v", r)
		}
	}()

	if helpers := e.registry.Helpers(); len(helpers) > 0 {
		tmpl.RegisterHelpers(helpers)
	}
	if partials := e.registry.Partials(); len(partials) > 0 {
		tmpl.RegisterPartials(partials)
	}

	return tmpl, nil
}

// Render renders a template with the given data
func (e *Engine) Render(templateStr string, data any) (string, error) {
	tmpl, err := e.Compile(templateStr)
	if err != nil {
		return "", fmt.Errorf("failed to compile template: %w", err)
	}

	return Exec(tmpl, data)
}

// Exec executes a compiled template, turning helper panics into errors
func Exec(tmpl *raymond.Template, data any) (result string, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = ""
			err = fmt.Errorf("template execution failed: %v", r)
		}
	}()

	result, err = tmpl.Exec(data)
	if err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}

	return result, nil
}

// ValidateTemplate validates a template without rendering it
func (e *Engine) ValidateTemplate(templateStr string) error {
	_, err := raymond.Parse(templateStr)
	return err
}
