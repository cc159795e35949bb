// Package resolve turns the path arguments of hbs into concrete files.
//
// A single argument is resolved in three steps:
//   - a glob pattern (containing * ? [ or {) is expanded relative to the
//     working directory, ** included
//   - a literal path is looked up as given, with each candidate extension
//     appended, or as <dir>/index<ext> when it names a directory
//   - a bare name that matched nothing on disk is looked up the same way in
//     the module search directories (hbs_modules by default), which are
//     tried in the working directory and every ancestor
//
// An argument that matches nothing resolves to an empty list.
//
// Example usage:
//
//	r := resolve.New(".", []string{"hbs_modules"}, logger).WithExtensions(".hbs")
//	files, err := r.ExpandAny(ctx, []string{"layout", "partials/*.hbs"})
package resolve
