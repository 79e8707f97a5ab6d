package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/framesketch/framesketch/internal/config"
	"github.com/framesketch/framesketch/internal/server"
	"github.com/framesketch/framesketch/pkg/cache"
	"github.com/framesketch/framesketch/pkg/enhance"
	"github.com/framesketch/framesketch/pkg/pipeline"
	"github.com/framesketch/framesketch/pkg/store"
)

// serveCommand creates the serve command, which runs the HTTP generation API.
func (c *CLI) serveCommand() *cobra.Command {
	var configPath string
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP generation API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Server.Listen = listen
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	cmd.Flags().StringVar(&listen, "listen", "", "listen address override (e.g. :8080)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cfg config.Config) error {
	cacheImpl, err := buildCache(ctx, cfg)
	if err != nil {
		return err
	}

	runner := pipeline.NewRunner(cacheImpl, nil, c.Logger)
	defer runner.Close()

	if cfg.Enhancer.URL != "" {
		runner.Enhancer = enhance.NewClient(cfg.Enhancer.URL)
		c.Logger.Infof("Enhancement sidecar at %s", cfg.Enhancer.URL)
	}

	st, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close(context.Background())

	c.Logger.Infof("Listening on %s (cache: %s)", cfg.Server.Listen, cfg.Cache.Backend)

	srv := server.New(runner, c.Logger,
		server.WithStore(st),
		server.WithAddr(cfg.Server.Listen),
	)
	return srv.Run(ctx)
}

// buildCache constructs the cache backend named by the config.
func buildCache(ctx context.Context, cfg config.Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case "file":
		dir := cfg.Cache.Dir
		if dir == "" {
			dir = config.CacheDir()
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	case "none":
		return cache.NewNullCache(), nil
	default:
		return cache.NewMemoryCache(cfg.Cache.Capacity), nil
	}
}

// buildStore selects MongoDB when a URI is configured, otherwise the seeded
// in-memory store.
func buildStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	if cfg.Mongo.URI == "" {
		return store.NewMemory(), nil
	}
	return store.NewMongo(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
}
