package data

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/aescanero/hbs/internal/errs"
	"github.com/aescanero/hbs/internal/resolve"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Extensions are tried when a data reference names a file without extension
var Extensions = []string{".json", ".yaml", ".yml"}

// Aggregator builds the data object of a run
type Aggregator struct {
	resolver *resolve.Resolver
	fetcher  Fetcher
	logger   *zap.Logger
}

// NewAggregator creates an aggregator. A nil fetcher disables remote sources.
func NewAggregator(resolver *resolve.Resolver, fetcher Fetcher, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		resolver: resolver.WithExtensions(Extensions...),
		fetcher:  fetcher,
		logger:   logger,
	}
}

// source is one decoded data document
type source struct {
	name string
	doc  any
}

// Aggregate parses inline JSON items and loads every referenced document,
// then deep-merges inline objects followed by referenced objects
func (a *Aggregator) Aggregate(ctx context.Context, items any) (map[string]any, error) {
	list, err := resolve.Normalize(items)
	if err != nil {
		return nil, err
	}

	var (
		inline []source
		refs   []string
	)
	for _, item := range list {
		a.logger.Debug("attempting to parse data as JSON", zap.String("data", item))
		var v any
		if err := json.Unmarshal([]byte(item), &v); err == nil {
			inline = append(inline, source{name: "inline", doc: v})
			continue
		}
		refs = append(refs, item)
	}

	loaded, err := a.loadRefs(ctx, refs)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any)
	for _, src := range append(inline, loaded...) {
		obj, ok := src.doc.(map[string]any)
		if !ok {
			a.logger.Warn("data source is not an object, skipping",
				zap.String("source", src.name),
				zap.String("kind", kindOf(src.doc)),
			)
			continue
		}
		Merge(out, obj)
	}
	return out, nil
}

// loadRefs resolves and decodes every reference concurrently, keeping
// argument order and glob order in the result
func (a *Aggregator) loadRefs(ctx context.Context, refs []string) ([]source, error) {
	results := make([][]source, len(refs))

	g, ctx := errgroup.WithContext(ctx)
	for i, ref := range refs {
		g.Go(func() error {
			var (
				docs []source
				err  error
			)
			if IsRedisRef(ref) && a.fetcher != nil {
				docs, err = a.loadRemote(ctx, ref)
			} else {
				docs, err = a.loadFiles(ctx, ref)
			}
			if err != nil {
				return err
			}
			results[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []source
	for _, docs := range results {
		out = append(out, docs...)
	}
	return out, nil
}

func (a *Aggregator) loadRemote(ctx context.Context, ref string) ([]source, error) {
	content, err := a.fetcher.Fetch(ctx, ref)
	if err != nil {
		return nil, err
	}
	name := ref
	if opts, key, err := ParseRedisRef(ref); err == nil {
		name = "redis://" + opts.Addr + "#" + key
	}
	doc, err := decode(name, content)
	if err != nil {
		return nil, err
	}
	return []source{{name: name, doc: doc}}, nil
}

func (a *Aggregator) loadFiles(ctx context.Context, ref string) ([]source, error) {
	files, err := a.resolver.Resolve(ctx, ref)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		a.logger.Warn("data reference matched no files", zap.String("data", ref))
	}

	docs := make([]source, len(files))
	g, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a.logger.Debug("loading data file", zap.String("file", file))
			content, err := os.ReadFile(file)
			if err != nil {
				return errs.Wrap(errs.ErrFileIO, file, err)
			}
			doc, err := decode(file, content)
			if err != nil {
				return err
			}
			docs[i] = source{name: file, doc: doc}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

// decode parses YAML files by extension and everything else as JSON
func decode(name string, content []byte) (any, error) {
	var v any
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &v); err != nil {
			return nil, errs.Wrap(errs.ErrJSONParse, name, err)
		}
		return normalize(v), nil
	default:
		if err := json.Unmarshal(content, &v); err != nil {
			return nil, errs.Wrap(errs.ErrJSONParse, name, err)
		}
		return v, nil
	}
}
