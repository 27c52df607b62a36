package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"appraiser/internal/api"
	"appraiser/internal/api/handler/v1handler"
	"appraiser/internal/appraisal"
	"appraiser/internal/comps"
	"appraiser/internal/config"
	"appraiser/internal/worker"
	"appraiser/pkg/cache"
	"appraiser/pkg/commentary"
	"appraiser/pkg/commentary/openai"
	"appraiser/pkg/kvstore"
	"appraiser/pkg/logger"
	"appraiser/pkg/metrics"
	"appraiser/pkg/ratelimit"
	"appraiser/pkg/trademark"
	"appraiser/pkg/trademark/markerapi"
	"appraiser/pkg/traffic"
	"appraiser/pkg/traffic/similarweb"
	"appraiser/pkg/whois"
	"appraiser/pkg/whois/whoisxml"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// kvPrefix namespaces appraiser keys inside a shared Redis.
const kvPrefix = "appraiser"

// getKVStore selects the key-value backend shared by the result cache and the
// rate limiter: Redis when an address is configured, otherwise the in-process
// store.
func getKVStore(ctx context.Context, cfg *config.Config) kvstore.Store {
	if cfg.Redis.Addr == "" {
		logger.Info(ctx, "no redis address configured, using in-process kv store")

		return kvstore.NewMemory()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	store := kvstore.NewRedis(client, kvPrefix)
	if err := store.Ping(ctx); err != nil {
		logger.Fatal(ctx, "could not reach redis", zap.Error(err))
	}

	return store
}

// getAdapters builds the external data-source clients from configuration.
// An adapter with no credentials stays nil and the evaluation falls back to
// its local estimator for that signal.
func getAdapters(cfg *config.Config) (whois.Client, traffic.Client, trademark.Client, commentary.Client) {
	var (
		whoisClient      whois.Client
		trafficClient    traffic.Client
		trademarkClient  trademark.Client
		commentaryClient commentary.Client
	)

	if cfg.Adapters.Whois.APIKey != "" {
		whoisClient = whoisxml.New(&http.Client{}, cfg.Adapters.Whois.APIKey)
	}
	if cfg.Adapters.Traffic.APIKey != "" {
		trafficClient = similarweb.New(&http.Client{}, cfg.Adapters.Traffic.APIKey)
	}
	if cfg.Adapters.Trademark.Username != "" {
		trademarkClient = markerapi.New(&http.Client{}, cfg.Adapters.Trademark.Username, cfg.Adapters.Trademark.Password)
	}
	if cfg.Adapters.Commentary.APIKey != "" {
		commentaryClient = openai.New(&http.Client{}, cfg.Adapters.Commentary.APIKey, cfg.Adapters.Commentary.Model)
	}

	return whoisClient, trafficClient, trademarkClient, commentaryClient
}

// getMetrics registers the OpenTelemetry Prometheus exporter with the default
// registry (served by the /metrics endpoint) and builds the recorder on top.
func getMetrics(ctx context.Context) *metrics.Recorder {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		logger.Fatal(ctx, "could not create otel exporter", zap.Error(err))
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exp),
		sdkmetric.WithView(sdkmetric.NewView(
			sdkmetric.Instrument{Name: "appraiser.evaluation.duration"},
			sdkmetric.Stream{Aggregation: sdkmetric.AggregationExplicitBucketHistogram{
				Boundaries: metrics.DefaultBuckets,
			}},
		)),
	)

	recorder, err := metrics.NewRecorder(mp.Meter("appraiser"))
	if err != nil {
		logger.Fatal(ctx, "could not create metrics recorder", zap.Error(err))
	}

	return recorder
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server := api.NewServer(deps, api.NewOptions(cfg))

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			store := getKVStore(ctx, cfg)
			whoisClient, trafficClient, trademarkClient, commentaryClient := getAdapters(cfg)

			riverClient, err := worker.Start(ctx, strg.Pool, strg, whoisClient,
				cfg.Adapters.Whois.Timeout, cfg.Appraiser.WorkerMaxWorkers)
			if err != nil {
				logger.Fatal(ctx, "could not start background workers", zap.Error(err))
			}

			appraiser := appraisal.New(appraisal.Deps{
				Storage:    strg,
				Cache:      cache.New(store, cfg.Appraiser.ResultCacheTTL),
				Matcher:    comps.NewMatcher(strg, cfg.Appraiser.CandidatePoolSize),
				Whois:      whoisClient,
				Traffic:    trafficClient,
				Trademark:  trademarkClient,
				Commentary: commentaryClient,
				Metrics:    getMetrics(ctx),
			}, appraisal.NewOptions(cfg))

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps:    v1handler.Deps{Appraiser: appraiser},
				Limiter: ratelimit.New(store, cfg.RateLimit.Ceiling, cfg.RateLimit.Window),
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping background workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop river queue client", zap.Error(err))
			}
		},
	}

	return cmd
}
