package data

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aescanero/hbs/internal/errs"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Fetcher loads the raw content of a remote data source
type Fetcher interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

// IsRedisRef reports whether ref names a Redis key
func IsRedisRef(ref string) bool {
	return strings.HasPrefix(ref, "redis://") || strings.HasPrefix(ref, "rediss://")
}

// ParseRedisRef splits redis://[user:pass@]host:port/db#key into client
// options and a key
func ParseRedisRef(ref string) (*redis.Options, string, error) {
	u, err := url.Parse(ref)
	if err != nil {
		return nil, "", fmt.Errorf("invalid redis reference: %w", err)
	}

	key := u.Fragment
	if key == "" {
		return nil, "", fmt.Errorf("redis reference %s has no #key", redact(u))
	}
	u.Fragment = ""
	u.RawFragment = ""

	opts, err := redis.ParseURL(u.String())
	if err != nil {
		return nil, "", fmt.Errorf("invalid redis reference: %w", err)
	}
	return opts, key, nil
}

// RedisFetcher reads JSON documents stored as string values in Redis
type RedisFetcher struct {
	timeout time.Duration
	logger  *zap.Logger
}

// NewRedisFetcher creates a fetcher whose requests time out after timeout
func NewRedisFetcher(timeout time.Duration, logger *zap.Logger) *RedisFetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisFetcher{timeout: timeout, logger: logger}
}

// Fetch returns the value stored at the key ref points to
func (f *RedisFetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	opts, key, err := ParseRedisRef(ref)
	if err != nil {
		return nil, errs.Wrap(errs.ErrInvalidArgumentType, "", err)
	}

	client := redis.NewClient(opts)
	defer func() { _ = client.Close() }()

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	f.logger.Debug("loading data from redis",
		zap.String("addr", opts.Addr),
		zap.Int("db", opts.DB),
		zap.String("key", key),
	)

	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.Wrap(errs.ErrFileIO, key, fmt.Errorf("key not found in redis at %s", opts.Addr))
		}
		return nil, errs.Wrap(errs.ErrFileIO, key, fmt.Errorf("failed to load data: %w", err))
	}

	return data, nil
}

// redact hides credentials before a reference reaches a log or error
func redact(u *url.URL) string {
	c := *u
	c.Fragment = ""
	return c.Redacted()
}
