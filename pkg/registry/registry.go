// Package registry defines the contract between hbs and helper modules.
//
// A helper module is a Go plugin built with -buildmode=plugin that exports a
// Register function matching RegisterFunc:
//
//	package main
//
//	import (
//	    "strings"
//
//	    "github.com/aescanero/hbs/pkg/registry"
//	)
//
//	func Register(r registry.Registry) {
//	    r.RegisterHelper("shout", func(s string) string {
//	        return strings.ToUpper(s) + "!"
//	    })
//	}
//
// Helpers follow the raymond helper conventions: a function with exactly one
// return value, optionally taking *raymond.Options as its last parameter.
package registry

import (
	"fmt"
	"maps"
	"reflect"
	"sync"
)

// Registry receives helpers and partials from helper modules
type Registry interface {
	RegisterHelper(name string, helper any)
	RegisterPartial(name, source string)
}

// RegisterFunc is the signature of the Register symbol a helper module exports
type RegisterFunc = func(Registry)

// ValidateHelper reports whether helper can be bound to a template under name
func ValidateHelper(name string, helper any) error {
	if name == "" {
		return fmt.Errorf("helper name is empty")
	}
	if helper == nil {
		return fmt.Errorf("helper %q is nil", name)
	}
	fn := reflect.TypeOf(helper)
	if fn.Kind() != reflect.Func {
		return fmt.Errorf("helper %q must be a function, got %T", name, helper)
	}
	if fn.NumOut() != 1 {
		return fmt.Errorf("helper %q must return exactly one value, returns %d", name, fn.NumOut())
	}
	return nil
}

// Set is the helper and partial table of one run. Later registrations
// replace earlier ones with the same name.
type Set struct {
	mu       sync.RWMutex
	helpers  map[string]any
	partials map[string]string
}

// NewSet creates an empty set
func NewSet() *Set {
	return &Set{
		helpers:  make(map[string]any),
		partials: make(map[string]string),
	}
}

// RegisterHelper adds or replaces a helper. Callers registering untrusted
// helpers should check them with ValidateHelper first.
func (s *Set) RegisterHelper(name string, helper any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.helpers[name] = helper
}

// RegisterPartial adds or replaces a partial
func (s *Set) RegisterPartial(name, source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.partials[name] = source
}

// Helper returns the helper registered under name
func (s *Set) Helper(name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.helpers[name]
	return h, ok
}

// Partial returns the partial registered under name
func (s *Set) Partial(name string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.partials[name]
	return p, ok
}

// Helpers returns a copy of the helper table
func (s *Set) Helpers() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.helpers)
}

// Partials returns a copy of the partial table
func (s *Set) Partials() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.partials)
}
