package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"

	"github.com/secmon-lab/refacto/pkg/cli/config"
	"github.com/secmon-lab/refacto/pkg/controller/server"
	"github.com/secmon-lab/refacto/pkg/infra"
	"github.com/secmon-lab/refacto/pkg/infra/lock"
	"github.com/secmon-lab/refacto/pkg/usecase"
	"github.com/secmon-lab/refacto/pkg/utils/logging"
	"github.com/secmon-lab/refacto/pkg/utils/safe"
)

func serveCommand() *cli.Command {
	var (
		addr            string
		apiToken        string
		debug           bool
		dbMigrate       bool
		pipelineTimeout time.Duration

		github    config.GitHub
		database  config.Database
		redis     config.Redis
		llm       config.LLM
		sentry    config.Sentry
		telemetry config.Telemetry
		bigQuery  config.BigQuery
	)
	serveFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Binding address",
			Value:       "127.0.0.1:8000",
			Sources:     cli.EnvVars("REFACTO_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "api-token",
			Usage:       "Bearer token required on /api routes (optional)",
			Sources:     cli.EnvVars("REFACTO_API_TOKEN"),
			Destination: &apiToken,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "Include error stack in error responses",
			Sources:     cli.EnvVars("REFACTO_DEBUG"),
			Destination: &debug,
		},
		&cli.BoolFlag{
			Name:        "db-migrate",
			Usage:       "Apply database migrations at startup",
			Sources:     cli.EnvVars("REFACTO_DB_MIGRATE"),
			Destination: &dbMigrate,
		},
		&cli.DurationFlag{
			Name:        "pipeline-timeout",
			Usage:       "Timeout of one background refactor pipeline run",
			Value:       server.DefaultPipelineTimeout,
			Sources:     cli.EnvVars("REFACTO_PIPELINE_TIMEOUT"),
			Destination: &pipelineTimeout,
		},
	}

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Server mode",
		Flags: slice.Flatten(
			serveFlags,
			github.Flags(),
			database.Flags(),
			redis.Flags(),
			llm.Flags(),
			sentry.Flags(),
			telemetry.Flags(),
			bigQuery.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logging.Default().Info("starting serve",
				slog.Any("Addr", addr),
				slog.Bool("Debug", debug),
				slog.Duration("PipelineTimeout", pipelineTimeout),
				slog.Any("GitHub", &github),
				slog.Any("Database", &database),
				slog.Any("Redis", &redis),
				slog.Any("LLM", &llm),
				slog.Any("Sentry", &sentry),
				slog.Any("Telemetry", &telemetry),
				slog.Any("BigQuery", &bigQuery),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			tracer, err := telemetry.Setup()
			if err != nil {
				return err
			}
			defer func() {
				if err := tracer.Shutdown(context.Background()); err != nil {
					logging.Default().Warn("failed to shutdown tracer provider", slog.Any("error", err))
				}
			}()

			ghClient, err := github.New()
			if err != nil {
				return err
			}
			rewriter, err := llm.New()
			if err != nil {
				return err
			}

			infraOptions := []infra.Option{
				infra.WithGitHub(ghClient),
				infra.WithRewriter(rewriter),
			}

			store, err := database.Open(ctx)
			if err != nil {
				return err
			}
			if store != nil {
				defer safe.Close(store)
				if dbMigrate {
					if err := store.Migrate(); err != nil {
						return err
					}
				}
				infraOptions = append(infraOptions, infra.WithConfigRepository(store))
			} else {
				logging.Default().Warn("db-dsn is not set, configuration is kept in memory and lost on restart")
			}

			redisClient, err := redis.NewClient(ctx)
			if err != nil {
				return err
			}
			if redisClient != nil {
				defer safe.Close(redisClient)
				infraOptions = append(infraOptions,
					infra.WithLocker(lock.NewRedisLocker(redisClient)),
					infra.WithDeliveryGuard(lock.NewRedisDeliveryGuard(redisClient, lock.DeliveryTTL)),
				)
			}

			bqClient, err := bigQuery.NewClient(ctx)
			if err != nil {
				return err
			}
			if bqClient != nil {
				defer safe.Close(bqClient)
				infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
			}

			uc := usecase.New(infra.New(infraOptions...))
			s := server.New(uc,
				server.WithWebhookSecret(github.WebhookSecret()),
				server.WithAPIToken(apiToken),
				server.WithDebug(debug),
				server.WithPipelineTimeout(pipelineTimeout),
			)

			serverErr := make(chan error, 1)
			httpServer := &http.Server{
				Addr:    addr,
				Handler: s.Mux(),

				ReadHeaderTimeout: 10 * time.Second,
				ReadTimeout:       30 * time.Second,
				WriteTimeout:      30 * time.Second,
			}

			go func() {
				logging.Default().Info("starting http server", "addr", addr)
				if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
					serverErr <- goerr.Wrap(err, "failed to listen and serve")
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-serverErr:
				return err

			case sig := <-quit:
				logging.Default().Info("shutting down server", "signal", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := httpServer.Shutdown(ctx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server")
				}
			}

			return nil
		},
	}
}
