package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/rueidis"

	"github.com/reelkit/slotcue/internal/domain"
	"github.com/reelkit/slotcue/internal/domain/movie"
)

// RedisConfig holds connection parameters for a Redis catalog source.
type RedisConfig struct {
	Addrs     []string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
}

// RedisSource loads a catalog snapshot from Redis via rueidis. The store
// holds the catalog as an ordered list of JSON documents under
// "<prefix>catalog"; list order becomes catalog order. The source reads
// once at startup and is closed afterwards — the running process keeps
// only the immutable in-memory Catalog.
type RedisSource struct {
	client rueidis.Client
	prefix string
}

// NewRedisSource creates a Redis catalog source.
func NewRedisSource(cfg RedisConfig) (*RedisSource, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "slotcue:"
	}

	return &RedisSource{client: client, prefix: prefix}, nil
}

// Ping checks connectivity.
func (s *RedisSource) Ping(ctx context.Context) error {
	cmd := s.client.B().Ping().Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// WaitForReady polls Ping until the store responds or timeout expires.
func (s *RedisSource) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", domain.ErrCatalogUnavailable, ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// Close shuts down the client.
func (s *RedisSource) Close() {
	s.client.Close()
}

// movieDoc is the stored JSON shape of one catalog entry.
type movieDoc struct {
	Title       string   `json:"title"`
	Genre       string   `json:"genre"`
	ReleaseYear int      `json:"release_year"`
	Director    string   `json:"director"`
	Language    string   `json:"language"`
	Keywords    []string `json:"keywords"`
}

func (d movieDoc) toDomain() movie.Movie {
	return movie.New(d.Title, d.Genre, d.ReleaseYear, d.Director, d.Language, d.Keywords)
}

// Load reads the full catalog list and converts it into an immutable
// Catalog. An empty list is an error: a recommender with nothing to
// recommend should fail at startup, not at request time.
func (s *RedisSource) Load(ctx context.Context) (Catalog, error) {
	key := s.prefix + "catalog"
	cmd := s.client.B().Lrange().Key(key).Start(0).Stop(-1).Build()

	raw, err := s.client.Do(ctx, cmd).AsStrSlice()
	if err != nil {
		return Catalog{}, fmt.Errorf("lrange %s: %w", key, err)
	}
	if len(raw) == 0 {
		return Catalog{}, fmt.Errorf("%w: list %q has no entries", domain.ErrEmptyCatalog, key)
	}

	movies := make([]movie.Movie, 0, len(raw))
	for i, doc := range raw {
		var d movieDoc
		if err := json.Unmarshal([]byte(doc), &d); err != nil {
			return Catalog{}, fmt.Errorf("decode catalog entry %d: %w", i, err)
		}
		movies = append(movies, d.toDomain())
	}

	return New(movies), nil
}
