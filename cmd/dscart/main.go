package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	authapp "github.com/annie29007/ds-cart/internal/auth/app"
	authfile "github.com/annie29007/ds-cart/internal/auth/infra/flatfile"
	cartapp "github.com/annie29007/ds-cart/internal/cart/app"
	cartadapter "github.com/annie29007/ds-cart/internal/cart/infra/adapter"
	catalogapp "github.com/annie29007/ds-cart/internal/catalog/app"
	"github.com/annie29007/ds-cart/internal/catalog/infra/arena"
	"github.com/annie29007/ds-cart/internal/catalog/seed"
	checkoutapp "github.com/annie29007/ds-cart/internal/checkout/app"
	checkoutadapter "github.com/annie29007/ds-cart/internal/checkout/infra/adapter"
	"github.com/annie29007/ds-cart/internal/cli"
	orderapp "github.com/annie29007/ds-cart/internal/order/app"
	orderfile "github.com/annie29007/ds-cart/internal/order/infra/flatfile"
	"github.com/annie29007/ds-cart/pkg/config"
	"github.com/annie29007/ds-cart/pkg/logger"
	"github.com/annie29007/ds-cart/pkg/shutdown"
)

func main() {
	cfg := config.Load()
	log := logger.New(logger.Options{Service: "dscart", Env: cfg.AppEnv, Level: cfg.LogLevel})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	// Catalog
	catalogSvc := catalogapp.NewService(arena.New())
	if err := seedCatalog(catalogSvc, cfg.SeedFile); err != nil {
		log.Error("catalog seed failed", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("catalog seeded", slog.Int("products", catalogSvc.Len()))

	// Auth
	authSvc := authapp.NewService(authfile.NewUserStore(cfg.UsersFile), cfg.AdminPassword)

	// Cart
	cartSvc := cartapp.NewService(cartadapter.NewCatalogServiceReader(catalogSvc))

	// Orders (receipt sink)
	orderSvc := orderapp.NewService(orderfile.NewOrderRepo(cfg.BillsFile))

	// Checkout (adapters)
	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartServiceReader(cartSvc),
		checkoutadapter.NewCatalogStockKeeper(catalogSvc),
		checkoutadapter.NewOrderServiceSink(orderSvc),
	)

	console := cli.New(os.Stdin, os.Stdout, log, cli.Services{
		Auth:     authSvc,
		Catalog:  catalogSvc,
		Cart:     cartSvc,
		Checkout: checkoutSvc,
	})

	if err := console.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("console loop error", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}

func seedCatalog(svc *catalogapp.Service, seedFile string) error {
	products := seed.Default()
	if seedFile != "" {
		loaded, err := seed.Load(seedFile)
		if err != nil {
			return err
		}
		products = loaded
	}
	return svc.Seed(products)
}
