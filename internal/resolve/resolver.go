package resolve

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"syscall"

	"github.com/aescanero/hbs/internal/errs"
	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/zap"
)

// Resolver resolves module names, literal paths and glob patterns
type Resolver struct {
	cwd         string
	modulePaths []string
	extensions  []string
	logger      *zap.Logger
}

// New creates a resolver rooted at cwd. An empty cwd means the process
// working directory.
func New(cwd string, modulePaths []string, logger *zap.Logger) *Resolver {
	if cwd == "" {
		cwd = "."
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		cwd:         cwd,
		modulePaths: modulePaths,
		logger:      logger,
	}
}

// WithExtensions returns a copy of the resolver that also tries the given
// extensions when looking up literal paths and modules
func (r *Resolver) WithExtensions(exts ...string) *Resolver {
	clone := *r
	clone.extensions = slices.Clone(exts)
	return &clone
}

// Resolve resolves a single argument to zero or more files
func (r *Resolver) Resolve(ctx context.Context, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if pattern == "" {
		return nil, nil
	}

	if hasMeta(pattern) {
		r.logger.Debug("expanding glob", zap.String("pattern", pattern))
		return r.glob(pattern)
	}

	file, err := r.lookup(r.join(pattern))
	if err != nil {
		return nil, err
	}
	if file != "" {
		return []string{file}, nil
	}

	if isExplicitPath(pattern) {
		r.logger.Debug("no file matched", zap.String("path", pattern))
		return nil, nil
	}

	r.logger.Debug("trying module resolution", zap.String("module", pattern))
	file, err = r.resolveModule(pattern)
	if err != nil {
		return nil, err
	}
	if file != "" {
		r.logger.Debug("resolved module", zap.String("module", pattern), zap.String("file", file))
		return []string{file}, nil
	}

	r.logger.Debug("nothing matched", zap.String("pattern", pattern))
	return nil, nil
}

// glob expands a pattern relative to the working directory
func (r *Resolver) glob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(r.join(pattern), doublestar.WithFilesOnly())
	if err != nil {
		if errors.Is(err, doublestar.ErrBadPattern) {
			return nil, errs.Wrap(errs.ErrInvalidArgumentType, pattern, err)
		}
		return nil, errs.Wrap(errs.ErrFileIO, pattern, err)
	}
	return matches, nil
}

// resolveModule looks name up in every module search directory
func (r *Resolver) resolveModule(name string) (string, error) {
	for _, dir := range r.searchDirs() {
		file, err := r.lookup(filepath.Join(dir, name))
		if err != nil {
			return "", err
		}
		if file != "" {
			return file, nil
		}
	}
	return "", nil
}

// searchDirs expands relative module paths against the working directory
// and each of its ancestors
func (r *Resolver) searchDirs() []string {
	var dirs []string
	for _, mp := range r.modulePaths {
		if mp == "" {
			continue
		}
		if filepath.IsAbs(mp) {
			dirs = append(dirs, mp)
			continue
		}

		dir, err := filepath.Abs(r.cwd)
		if err != nil {
			dirs = append(dirs, r.join(mp))
			continue
		}
		for {
			dirs = append(dirs, filepath.Join(dir, mp))
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}
	return dirs
}

// lookup returns the first existing file among base, base+ext and
// base/index+ext, or "" when none exists
func (r *Resolver) lookup(base string) (string, error) {
	candidates := []string{base}
	for _, ext := range r.extensions {
		candidates = append(candidates, base+ext)
	}
	for _, ext := range r.extensions {
		candidates = append(candidates, filepath.Join(base, "index"+ext))
	}

	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
				continue
			}
			return "", errs.Wrap(errs.ErrFileIO, candidate, err)
		}
		if info.Mode().IsRegular() {
			return candidate, nil
		}
	}
	return "", nil
}

func (r *Resolver) join(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(r.cwd, p)
}

// hasMeta reports whether p contains glob metacharacters
func hasMeta(p string) bool {
	return strings.ContainsAny(p, "*?[{")
}

// isExplicitPath reports whether p can only name a file, never a module
func isExplicitPath(p string) bool {
	if filepath.IsAbs(p) {
		return true
	}
	for _, prefix := range []string{"./", "../", "." + string(filepath.Separator), ".." + string(filepath.Separator)} {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return p == "." || p == ".."
}
