package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/rushteam/feedkit/config"
	"github.com/rushteam/feedkit/core"
	"github.com/rushteam/feedkit/datagen"
	"github.com/rushteam/feedkit/engine"
	"github.com/rushteam/feedkit/feast"
	"github.com/rushteam/feedkit/feature"
	"github.com/rushteam/feedkit/pipeline"
	"github.com/rushteam/feedkit/store"
)

const usage = `usage: feedkit [-config config.yaml] <command>

commands:
  seed       generate synthetic events/users and write them to the store
  recommend  run the batch recommendation pipeline over the store
  demo       seed an in-memory store and run the pipeline once
`

func main() {
	configPath := flag.String("config", "config.yaml", "path to yaml config")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("load config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := flag.Arg(0)
	if cmd == "demo" {
		cfg.Store = "memory"
	}

	events, users, err := buildStores(cfg)
	if err != nil {
		logger.Fatal("init store", zap.Error(err))
	}
	defer events.Close()

	switch cmd {
	case "seed":
		err = runSeed(ctx, cfg, events, users, logger)
	case "recommend":
		err = runRecommend(ctx, cfg, events, users, logger)
	case "demo":
		if err = runSeed(ctx, cfg, events, users, logger); err == nil {
			err = runRecommend(ctx, cfg, events, users, logger)
		}
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		logger.Fatal("command failed", zap.String("command", cmd), zap.Error(err))
	}
}

// buildStores 按配置构建存储后端；redis 时同一个连接同时充当
// 事件与用户存储。
func buildStores(cfg *config.Config) (core.EventStore, core.UserStore, error) {
	switch cfg.Store {
	case "redis":
		rs, err := store.NewRedisStore(cfg.Redis.Addr, cfg.Redis.DB)
		if err != nil {
			return nil, nil, err
		}
		return rs, rs, nil
	case "memory":
		ms := store.NewMemoryStore()
		return ms, ms, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend: %s", cfg.Store)
	}
}

func runSeed(ctx context.Context, cfg *config.Config, events core.EventStore, users core.UserStore, logger *zap.Logger) error {
	gen := datagen.NewGenerator(cfg.Datagen.Seed)
	seeder := datagen.NewSeeder(events, users, gen)

	userIDs, eventIDs, err := seeder.Seed(ctx, cfg.Datagen.Users)
	if err != nil {
		return err
	}

	logger.Info("store seeded",
		zap.Int("users", len(userIDs)),
		zap.Int("events", len(eventIDs)),
	)
	return nil
}

func runRecommend(ctx context.Context, cfg *config.Config, events core.EventStore, users core.UserStore, logger *zap.Logger) error {
	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithWorkers(cfg.Recommend.Workers),
		engine.WithThreshold(cfg.Recommend.Threshold),
		engine.WithExcludeRules(cfg.Recommend.ExcludeRules),
	}

	if cfg.Feast.Host != "" {
		client, err := feast.NewGrpcClient(cfg.Feast.Host, cfg.Feast.Port, cfg.Feast.Project)
		if err != nil {
			return err
		}
		defer client.Close()
		opts = append(opts, engine.WithEncoder(feature.NewCorpusEncoder(
			feature.WithProvider(&feature.FeastProvider{
				Client:    client,
				EntityKey: cfg.Feast.EntityKey,
				Features:  cfg.Feast.Features,
			}),
		)))
	}

	if cfg.Recommend.PipelineFile != "" {
		pcfg, err := pipeline.LoadFromYAML(cfg.Recommend.PipelineFile)
		if err != nil {
			return err
		}
		p, err := pcfg.BuildPipeline(engine.DefaultNodeFactory())
		if err != nil {
			return err
		}
		opts = append(opts, engine.WithPipeline(p))
	}

	eng := engine.NewEngine(events, users, opts...)
	_, err := eng.Run(ctx)
	return err
}
