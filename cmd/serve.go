package main

import (
	"context"
	"errors"
	"estimator/internal/api"
	"estimator/internal/api/handler/v1handler"
	"estimator/internal/config"
	"estimator/internal/estimator"
	"estimator/internal/worker"
	"estimator/pkg/blobstore"
	"estimator/pkg/blobstore/s3store"
	"estimator/pkg/logger"
	"estimator/pkg/orders"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// getBlobstores connects to the object storage and makes sure both buckets
// exist. Raw uploads are compressed when configured.
func getBlobstores(ctx context.Context, cfg *config.Config) (raw, models blobstore.Store) {
	store, err := s3store.New(ctx, s3store.Options{
		Endpoint:        cfg.Storage.Endpoint,
		Region:          cfg.Storage.Region,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		UseSSL:          cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create object storage client", zap.Error(err))
	}

	for _, bucket := range []string{cfg.Storage.RawBucket, cfg.Storage.ModelBucket} {
		if err := store.EnsureBucket(ctx, bucket); err != nil {
			logger.Fatal(ctx, "could not ensure bucket", zap.String("bucket", bucket), zap.Error(err))
		}
	}

	raw = store
	if cfg.Storage.Compress {
		raw = blobstore.NewZstd(store)
	}

	return raw, store
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
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
		Short: "Starts API server and background analysis workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			raw, models := getBlobstores(ctx, cfg)

			profiles, err := estimator.LoadMachineProfiles(cfg.Analysis.MachineProfilesPath)
			if err != nil {
				logger.Fatal(ctx, "could not load machine profiles", zap.Error(err))
			}

			est := estimator.New(estimator.Deps{
				Storage:  strg,
				Raw:      raw,
				Models:   models,
				Profiles: profiles,
			}, estimator.NewOptions(cfg))

			riverClient, err := worker.Start(ctx, strg.Pool, est, cfg.Analysis.Workers)
			if err != nil {
				logger.Fatal(ctx, "could not start analysis workers", zap.Error(err))
			}

			docs, closeDocs := getOrderStore(ctx, cfg, strg)
			defer closeDocs()

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Estimator: est,
					Orders:    orders.NewDesk(docs),
				},
				RiverClient: riverClient,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping analysis workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop analysis workers", zap.Error(err))
			}
		},
	}

	return cmd
}
