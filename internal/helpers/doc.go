// Package helpers loads helper modules.
//
// A helper module is a Go plugin exporting
//
//	func Register(r registry.Registry)
//
// Modules are opened one at a time in the order given, since opening a
// plugin runs its init functions. A module that lacks Register, or exports it
// with another signature, is skipped with a warning; a module that fails to
// open or registers an invalid helper fails the load.
package helpers
