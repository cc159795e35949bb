package helpers

import (
	"context"
	"errors"
	"fmt"
	"plugin"

	"github.com/aescanero/hbs/internal/errs"
	"github.com/aescanero/hbs/pkg/registry"
	"go.uber.org/zap"
)

// RegisterSymbol is the symbol a helper module must export
const RegisterSymbol = "Register"

// Module is an opened helper module
type Module interface {
	Lookup(symbol string) (plugin.Symbol, error)
}

// Opener opens the helper module stored at path
type Opener func(path string) (Module, error)

// OpenPlugin opens a Go plugin
func OpenPlugin(path string) (Module, error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Loader loads helper modules into a registry
type Loader struct {
	open   Opener
	logger *zap.Logger
}

// NewLoader creates a loader. A nil opener means OpenPlugin.
func NewLoader(open Opener, logger *zap.Logger) *Loader {
	if open == nil {
		open = OpenPlugin
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{open: open, logger: logger}
}

// Load opens every file in order and lets it register its helpers into r.
// Modules without a usable Register function are skipped with a warning.
func (l *Loader) Load(ctx context.Context, files []string, r registry.Registry) error {
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := l.loadFile(file, r); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) loadFile(file string, r registry.Registry) error {
	l.logger.Debug("loading helper module", zap.String("file", file))

	module, err := l.open(file)
	if err != nil {
		return errs.Wrap(errs.ErrModuleLoad, file, err)
	}

	sym, err := module.Lookup(RegisterSymbol)
	if err != nil {
		l.logger.Warn("helper module does not export a Register function, cannot import",
			zap.String("file", file),
		)
		return nil
	}

	register, ok := sym.(registry.RegisterFunc)
	if !ok {
		l.logger.Warn("helper module Register has the wrong signature, cannot import",
			zap.String("file", file),
			zap.String("type", fmt.Sprintf("%T", sym)),
		)
		return nil
	}

	rec := &recorder{target: r}
	register(rec)
	if err := errors.Join(rec.errs...); err != nil {
		return errs.Wrap(errs.ErrModuleLoad, file, err)
	}

	l.logger.Debug("registered helper module",
		zap.String("file", file),
		zap.Strings("helpers", rec.helpers),
	)
	return nil
}

// recorder validates what a module registers before passing it on
type recorder struct {
	target  registry.Registry
	helpers []string
	errs    []error
}

func (r *recorder) RegisterHelper(name string, helper any) {
	if err := registry.ValidateHelper(name, helper); err != nil {
		r.errs = append(r.errs, err)
		return
	}
	r.helpers = append(r.helpers, name)
	r.target.RegisterHelper(name, helper)
}

func (r *recorder) RegisterPartial(name, source string) {
	if name == "" {
		r.errs = append(r.errs, fmt.Errorf("partial name is empty"))
		return
	}
	r.target.RegisterPartial(name, source)
}
