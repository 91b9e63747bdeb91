package main

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/emberandoak/storefront-core/api/routes"
	"github.com/emberandoak/storefront-core/internal/cart"
	"github.com/emberandoak/storefront-core/internal/wishlist"
	"github.com/emberandoak/storefront-core/pkg/config"
	"github.com/emberandoak/storefront-core/pkg/enums"
	"github.com/emberandoak/storefront-core/pkg/localstore"
	"github.com/emberandoak/storefront-core/pkg/logger"
	"github.com/emberandoak/storefront-core/pkg/metrics"
	"github.com/emberandoak/storefront-core/pkg/types"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "storefront-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "storefront-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	storage, closers, err := buildStorage(context.Background(), cfg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap storage", err)
		os.Exit(1)
	}
	defer func() {
		if err := closeAll(closers); err != nil {
			logg.Error(context.Background(), "error closing storage", err)
		}
	}()

	registry := prometheus.NewRegistry()
	storeMetrics := metrics.NewStoreMetrics(registry)

	var defaultShipping *types.Address
	if cfg.Shipping.HasDefaultAddress() {
		defaultShipping = &types.Address{
			Line1:      cfg.Shipping.DefaultLine1,
			City:       cfg.Shipping.DefaultCity,
			State:      cfg.Shipping.DefaultState,
			PostalCode: cfg.Shipping.DefaultPostalCode,
			Country:    cfg.Shipping.DefaultCountry,
		}
	}

	cartStore, err := cart.NewStore(cart.Params{
		Storage:         storage,
		Logger:          logg,
		Metrics:         storeMetrics,
		RecordKey:       cfg.Storage.CartKey,
		DefaultShipping: defaultShipping,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}

	wishlistStore, err := wishlist.NewStore(wishlist.Params{
		Storage:   storage,
		Logger:    logg,
		Metrics:   storeMetrics,
		RecordKey: cfg.Storage.WishlistKey,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create wishlist store", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":     cfg.App.Env,
		"addr":    addr,
		"backend": cfg.Storage.BackendKind().String(),
	})
	logg.Info(ctx, "starting storefront api")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, storage, cartStore, wishlistStore, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "storefront api stopped unexpectedly", err)
		os.Exit(1)
	}
}

func buildStorage(ctx context.Context, cfg *config.Config) (localstore.Storage, []io.Closer, error) {
	switch cfg.Storage.BackendKind() {
	case enums.StorageBackendMemory:
		return localstore.NewMemory(), nil, nil
	case enums.StorageBackendFile:
		storage, err := localstore.NewFile(cfg.Storage.FileDir)
		if err != nil {
			return nil, nil, err
		}
		return storage, nil, nil
	case enums.StorageBackendSQLite:
		storage, err := localstore.NewSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return storage, []io.Closer{storage}, nil
	case enums.StorageBackendRedis:
		storage, err := localstore.NewRedis(ctx, cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return storage, []io.Closer{storage}, nil
	}
	return localstore.Unavailable{}, nil, nil
}

func closeAll(closers []io.Closer) error {
	var err error
	for _, closer := range closers {
		err = multierr.Append(err, closer.Close())
	}
	return err
}
