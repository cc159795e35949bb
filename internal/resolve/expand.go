package resolve

import (
	"context"
	"fmt"

	"github.com/aescanero/hbs/internal/errs"
	"golang.org/x/sync/errgroup"
)

// Normalize turns a string or a list of strings into a list of strings
func Normalize(v any) ([]string, error) {
	switch val := v.(type) {
	case string:
		return []string{val}, nil
	case []string:
		return val, nil
	case []any:
		out := make([]string, 0, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, errs.Wrap(errs.ErrInvalidArgumentType, "",
					fmt.Errorf("expected string at index %d, given %T", i, item))
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, errs.Wrap(errs.ErrInvalidArgumentType, "",
			fmt.Errorf("expected string or list of strings, given %T", v))
	}
}

// Expand resolves every pattern concurrently and concatenates the results
// in the order the patterns were given
func (r *Resolver) Expand(ctx context.Context, patterns []string) ([]string, error) {
	results := make([][]string, len(patterns))

	g, ctx := errgroup.WithContext(ctx)
	for i, pattern := range patterns {
		g.Go(func() error {
			files, err := r.Resolve(ctx, pattern)
			if err != nil {
				return err
			}
			results[i] = files
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var files []string
	for _, result := range results {
		files = append(files, result...)
	}
	return files, nil
}

// ExpandAny normalizes v and expands it
func (r *Resolver) ExpandAny(ctx context.Context, v any) ([]string, error) {
	patterns, err := Normalize(v)
	if err != nil {
		return nil, err
	}
	return r.Expand(ctx, patterns)
}
