package factory

import (
	"context"
	"fmt"

	"soulful-home-be/pkg/database"
	"soulful-home-be/pkg/docstore"
)

type Options struct {
	Driver      string // "file" | "memory" | "redis" | "postgres"
	Dir         string
	RedisURL    string
	RedisPrefix string
	PostgresDSN string
	Verbose     bool
}

func NewStore(ctx context.Context, opts Options) (docstore.Store, error) {
	switch opts.Driver {
	case "", "file":
		dir := opts.Dir
		if dir == "" {
			dir = "./data"
		}
		return docstore.NewFileStore(dir)
	case "memory":
		return docstore.NewMemoryStore(), nil
	case "redis":
		return docstore.NewRedisStoreFromURL(ctx, opts.RedisURL, opts.RedisPrefix)
	case "postgres":
		if opts.PostgresDSN == "" {
			return nil, fmt.Errorf("postgres store requires DB_CONNECTION_STRING")
		}
		db, err := database.NewGormDBFromDSN(opts.PostgresDSN, opts.Verbose)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		return docstore.NewPostgresStore(db)
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", opts.Driver)
	}
}
