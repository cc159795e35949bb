// Package partials registers partial templates read from disk.
package partials

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/aescanero/hbs/internal/errs"
	"github.com/aescanero/hbs/pkg/registry"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Loader reads partial files and registers them by name
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a partial loader
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// Name returns the partial name of a file: its base name without extension
func Name(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Load reads all files concurrently and registers them in list order, so
// the last file with a given name wins
func (l *Loader) Load(ctx context.Context, files []string, r registry.Registry) error {
	sources := make([]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := os.ReadFile(file)
			if err != nil {
				return errs.Wrap(errs.ErrFileIO, file, err)
			}
			sources[i] = string(content)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, file := range files {
		name := Name(file)
		l.logger.Debug("registering partial", zap.String("name", name), zap.String("file", file))
		r.RegisterPartial(name, sources[i])
	}
	return nil
}
