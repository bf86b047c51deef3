// Package cli implements the crawlvalue command-line interface.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/turtacn/CrawlValue-Intelligence/internal/application/analytics"
	"github.com/turtacn/CrawlValue-Intelligence/internal/config"
	"github.com/turtacn/CrawlValue-Intelligence/internal/infrastructure/database/memory"
	redisdb "github.com/turtacn/CrawlValue-Intelligence/internal/infrastructure/database/redis"
	"github.com/turtacn/CrawlValue-Intelligence/internal/infrastructure/messaging/kafka"
	"github.com/turtacn/CrawlValue-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/CrawlValue-Intelligence/internal/infrastructure/monitoring/prometheus"
)

// app carries the wired pipeline shared by all subcommands.
type app struct {
	cfg     *config.Config
	logger  logging.Logger
	service *analytics.Service
	store   *memory.DetectionStore

	closers []func() error
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("shutdown cleanup failed", logging.Err(err))
		}
	}
}

// newApp loads configuration and assembles the pipeline.  Optional
// infrastructure attaches only when enabled in configuration; everything else
// runs in-process.
func newApp(ctx context.Context, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.NewLogger(logging.LogConfig{
		Level:            cfg.Log.Level,
		Format:           cfg.Log.Format,
		OutputPaths:      cfg.Log.OutputPaths,
		ErrorOutputPaths: cfg.Log.ErrorOutputPaths,
	})
	if err != nil {
		return nil, err
	}
	logging.SetDefault(logger)

	a := &app{cfg: cfg, logger: logger}
	a.store = memory.NewDetectionStore()

	opts := []analytics.Option{
		analytics.WithStore(a.store),
		analytics.WithLogger(logger),
		analytics.WithMetrics(prometheus.NewCollector()),
	}

	if cfg.Redis.Enabled {
		cache, err := redisdb.NewCache(ctx, redisdb.CacheConfig{
			Addr:       cfg.Redis.Addr,
			Password:   cfg.Redis.Password,
			DB:         cfg.Redis.DB,
			KeyPrefix:  cfg.Redis.KeyPrefix,
			DefaultTTL: cfg.Redis.DefaultTTL,
		}, logger)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, cache.Close)
		opts = append(opts, analytics.WithCache(cache))
	}

	if cfg.Kafka.Enabled {
		producer, err := kafka.NewProducer(kafka.ProducerConfig{
			Brokers:      cfg.Kafka.Brokers,
			Acks:         cfg.Kafka.Acks,
			MaxRetries:   cfg.Kafka.MaxRetries,
			BatchTimeout: cfg.Kafka.BatchTimeout,
			WriteTimeout: cfg.Kafka.WriteTimeout,
			Source:       cfg.Kafka.Source,
		}, logger)
		if err != nil {
			return nil, err
		}
		bus := kafka.NewEventBus(producer)
		a.closers = append(a.closers, bus.Close)
		opts = append(opts, analytics.WithPublisher(bus))
	}

	a.service, err = analytics.NewPipeline(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// NewRootCommand constructs the crawlvalue command tree.
func NewRootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "crawlvalue",
		Short: "AI-crawler detection and content valuation engine",
		Long: `crawlvalue identifies AI-crawler traffic in access logs, prices every
detected access against configured market rates, and aggregates the results
into portfolio-level licensing analytics.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to configuration file")

	root.AddCommand(
		newDetectCommand(&configPath),
		newValueCommand(&configPath),
		newReportCommand(&configPath),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}

// printJSON writes v to w as indented JSON.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

//Personal.AI order the ending
