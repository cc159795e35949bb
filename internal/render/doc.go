// Package render executes template files and writes their output.
//
// Each template is read, compiled and executed in its own goroutine. The
// output of a.hbs lands in <OutputDir>/a.<Extension>; the output directory
// is created when missing. A failure aborts the pass but files written by
// templates that finished first are kept.
package render
