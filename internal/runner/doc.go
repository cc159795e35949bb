// Package runner wires one hbs invocation together: it builds the registry
// of the run, loads helpers, partials and data, then renders every template.
package runner
