package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aescanero/hbs/internal/config"
	"github.com/aescanero/hbs/internal/data"
	"github.com/aescanero/hbs/internal/eval/cel"
	"github.com/aescanero/hbs/internal/eval/template"
	"github.com/aescanero/hbs/internal/helpers"
	"github.com/aescanero/hbs/internal/partials"
	"github.com/aescanero/hbs/internal/render"
	"github.com/aescanero/hbs/internal/resolve"
	"github.com/aescanero/hbs/pkg/registry"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

var (
	// TemplateExtensions are tried for template and partial references
	TemplateExtensions = []string{".hbs", ".handlebars"}
	// HelperExtensions are tried for helper module references
	HelperExtensions = []string{".so"}
)

// Options are the per-invocation arguments, usually taken from the command line
type Options struct {
	Templates []string
	Partials  []string
	Helpers   []string
	Data      []string
	Stdin     bool
	OutputDir string
	Extension string
	Stdout    bool
}

// Runner executes render runs
type Runner struct {
	cfg     *config.Config
	logger  *zap.Logger
	stdin   io.Reader
	stdout  io.Writer
	cwd     string
	open    helpers.Opener
	fetcher data.Fetcher
}

// Option configures a Runner
type Option func(*Runner)

// WithStdin sets the reader used for --stdin
func WithStdin(r io.Reader) Option {
	return func(rn *Runner) { rn.stdin = r }
}

// WithStdout sets the writer used in stdout mode
func WithStdout(w io.Writer) Option {
	return func(rn *Runner) { rn.stdout = w }
}

// WithWorkingDir roots path resolution at dir
func WithWorkingDir(dir string) Option {
	return func(rn *Runner) { rn.cwd = dir }
}

// WithOpener replaces the helper module opener
func WithOpener(open helpers.Opener) Option {
	return func(rn *Runner) { rn.open = open }
}

// WithFetcher replaces the remote data fetcher
func WithFetcher(f data.Fetcher) Option {
	return func(rn *Runner) { rn.fetcher = f }
}

// New creates a runner
func New(cfg *config.Config, logger *zap.Logger, opts ...Option) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	rn := &Runner{
		cfg:    cfg,
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
	for _, opt := range opts {
		opt(rn)
	}
	if rn.fetcher == nil {
		rn.fetcher = data.NewRedisFetcher(cfg.RedisTimeout, logger)
	}
	return rn
}

// Run loads helpers, partials and data concurrently, then renders the templates
func (rn *Runner) Run(ctx context.Context, opts Options) error {
	set := registry.NewSet()
	if rn.cfg.BuiltinHelpers {
		template.RegisterBuiltins(set, cel.NewEvaluator())
	}

	resolver := resolve.New(rn.cwd, rn.cfg.ModulePaths, rn.logger)

	var ctxData map[string]any

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		files, err := resolver.WithExtensions(HelperExtensions...).Expand(gctx, opts.Helpers)
		if err != nil {
			return fmt.Errorf("failed to resolve helpers: %w", err)
		}
		return helpers.NewLoader(rn.open, rn.logger).Load(gctx, files, set)
	})
	g.Go(func() error {
		files, err := resolver.WithExtensions(TemplateExtensions...).Expand(gctx, opts.Partials)
		if err != nil {
			return fmt.Errorf("failed to resolve partials: %w", err)
		}
		return partials.NewLoader(rn.logger).Load(gctx, files, set)
	})
	g.Go(func() error {
		d, err := data.NewAggregator(resolver, rn.fetcher, rn.logger).Aggregate(gctx, opts.Data)
		if err != nil {
			return err
		}
		ctxData = d
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if opts.Stdin {
		if f, ok := rn.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			rn.logger.Warn("reading data from stdin, which is a terminal; end input with Ctrl-D")
		}
		d, err := data.ReadStdin(rn.stdin)
		if err != nil {
			return err
		}
		ctxData = d
	}

	files, err := resolver.WithExtensions(TemplateExtensions...).Expand(ctx, opts.Templates)
	if err != nil {
		return fmt.Errorf("failed to resolve templates: %w", err)
	}
	if len(files) == 0 {
		rn.logger.Warn("no templates matched", zap.Strings("templates", opts.Templates))
		return nil
	}

	rn.logger.Debug("rendering templates",
		zap.Int("templates", len(files)),
		zap.Int("helpers", len(set.Helpers())),
		zap.Int("partials", len(set.Partials())),
	)

	outputDir := opts.OutputDir
	if rn.cwd != "" && !filepath.IsAbs(outputDir) {
		outputDir = filepath.Join(rn.cwd, outputDir)
	}

	return render.NewRenderer(template.NewEngine(set), rn.stdout, rn.logger).Render(ctx, files, render.Options{
		OutputDir: outputDir,
		Extension: opts.Extension,
		Data:      ctxData,
		Stdout:    opts.Stdout,
	})
}
