package render

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aescanero/hbs/internal/errs"
	"github.com/aescanero/hbs/internal/eval/template"
	"github.com/natefinch/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultExtension is the extension of rendered files when none is given
const DefaultExtension = "html"

// Options controls one render pass
type Options struct {
	// OutputDir receives rendered files; empty means the working directory
	OutputDir string
	// Extension of rendered files, with or without a leading dot
	Extension string
	// Data is the context every template is executed against
	Data map[string]any
	// Stdout writes rendered output to the renderer's writer instead of files
	Stdout bool
}

// Renderer renders template files with an engine
type Renderer struct {
	engine *template.Engine
	stdout io.Writer
	logger *zap.Logger
}

// NewRenderer creates a renderer that writes stdout output to w
func NewRenderer(engine *template.Engine, w io.Writer, logger *zap.Logger) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{
		engine: engine,
		stdout: w,
		logger: logger,
	}
}

// OutputPath returns where the rendered form of file is written
func OutputPath(file, outputDir, extension string) string {
	if outputDir == "" {
		outputDir = "."
	}
	extension = strings.TrimPrefix(extension, ".")
	if extension == "" {
		extension = DefaultExtension
	}
	base := filepath.Base(file)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, stem+"."+extension)
}

// Render renders every file concurrently. In stdout mode the outputs are
// written in file order after all renders succeeded; otherwise each output
// is written to its file as soon as it is rendered.
func (r *Renderer) Render(ctx context.Context, files []string, opts Options) error {
	data := opts.Data
	if data == nil {
		data = map[string]any{}
	}

	if !opts.Stdout && len(files) > 0 {
		dir := opts.OutputDir
		if dir == "" {
			dir = "."
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errs.Wrap(errs.ErrFileIO, dir, err)
		}
	}

	outputs := make([]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			r.logger.Debug("rendering template", zap.String("file", file))
			out, err := r.renderFile(file, data)
			if err != nil {
				return err
			}

			if opts.Stdout {
				outputs[i] = out
				return nil
			}

			dest := OutputPath(file, opts.OutputDir, opts.Extension)
			if err := writeFile(dest, out); err != nil {
				return errs.Wrap(errs.ErrFileIO, dest, err)
			}
			r.logger.Info("wrote rendered template",
				zap.String("output", dest),
				zap.String("template", file),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if opts.Stdout {
		for i, out := range outputs {
			if _, err := io.WriteString(r.stdout, out); err != nil {
				return errs.Wrap(errs.ErrFileIO, files[i], err)
			}
		}
	}
	return nil
}

func (r *Renderer) renderFile(file string, data map[string]any) (string, error) {
	content, err := os.ReadFile(file)
	if err != nil {
		return "", errs.Wrap(errs.ErrFileIO, file, err)
	}

	tmpl, err := r.engine.Compile(string(content))
	if err != nil {
		return "", errs.Wrap(errs.ErrTemplateCompile, file, err)
	}

	out, err := template.Exec(tmpl, data)
	if err != nil {
		return "", errs.Wrap(errs.ErrTemplateCompile, file, err)
	}
	return out, nil
}

// writeFile replaces dest atomically. New files get 0644 instead of the
// 0600 of the temporary file.
func writeFile(dest, content string) error {
	_, statErr := os.Stat(dest)
	if err := atomic.WriteFile(dest, bytes.NewReader([]byte(content))); err != nil {
		return err
	}
	if errors.Is(statErr, fs.ErrNotExist) {
		return os.Chmod(dest, 0o644)
	}
	return nil
}
