package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"example.com/storefront/internal/config"
	"example.com/storefront/internal/infra/logging"
	"example.com/storefront/internal/infra/remote"
	httpapi "example.com/storefront/internal/interface/http"
	cataloguc "example.com/storefront/internal/usecase/catalog"
	categoryuc "example.com/storefront/internal/usecase/category"
	submissionuc "example.com/storefront/internal/usecase/submission"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)
	slog.SetDefault(logger)

	client := remote.NewClient(cfg.CatalogBaseURL, cfg.CatalogTimeout, logger)
	productRepo := remote.NewProductRepository(client)
	categoryRepo := remote.NewCategoryRepository(client)

	catalogSvc := cataloguc.NewService(productRepo, categoryRepo, cataloguc.Config{
		FeaturedPageSize:     cfg.FeaturedPageSize,
		HomeCategoryPageSize: cfg.HomeCategoryPageSize,
		LatestCount:          cfg.LatestCount,
	}, logger)
	loader := categoryuc.NewLoader(categoryRepo, logger)
	forms := submissionuc.NewForms(productRepo, cfg.FormTTL, cfg.MaxOpenForms, logger)

	api := httpapi.NewAPI(httpapi.Dependencies{
		CatalogService:       catalogSvc,
		CategoryLoader:       loader,
		Forms:                forms,
		FormCategoryPageSize: cfg.FormCategoryPageSize,
		Logger:               logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      2*cfg.CatalogTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("listening", slog.String("addr", srv.Addr), slog.String("catalog", cfg.CatalogBaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	s := <-sigc
	logger.Info("shutting down", slog.String("signal", s.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("http shutdown error", slog.Any("error", err))
	}
}
