package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/marketflow/storefront/config"
	"github.com/marketflow/storefront/internal/adapter/catalog"
	"github.com/marketflow/storefront/internal/adapter/httphandler"
	"github.com/marketflow/storefront/internal/adapter/storage"
	"github.com/marketflow/storefront/internal/core/service"
)

type stores struct {
	kv     *storage.KV
	cart   *storage.CartStore
	orders *storage.OrderStore
}

type App struct {
	cfg        config.Config
	catalog    *catalog.Catalog
	stores     stores
	service    *service.Service
	httpServer httphandler.HTTPServer
}

func New(cfg config.Config) *App {
	app := &App{cfg: cfg}

	app.initLogger()
	app.initCatalog()
	app.initStores()
	app.initCoreService()
	app.initHTTPServer()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initCatalog() {
	const op = "App.initCatalog"

	c, err := catalog.New(app.cfg.Storage.SimulatedLatency)
	if err != nil {
		app.fallDown(op, err)
	}
	app.catalog = c
}

func (app *App) initStores() {
	const op = "App.initStores"

	kv, err := storage.OpenKV(
		app.cfg.Storage.Path, app.cfg.Storage.SimulatedLatency,
	)
	if err != nil {
		app.fallDown(op, err)
	}

	cart, err := storage.NewCartStore(kv)
	if err != nil {
		app.fallDown(op, err)
	}

	orders, err := storage.NewOrderStore(kv)
	if err != nil {
		app.fallDown(op, err)
	}

	app.stores = stores{kv: kv, cart: cart, orders: orders}
}

func (app *App) initCoreService() {
	app.service = service.New(app.catalog, app.stores.cart, app.stores.orders)
}

func (app *App) initHTTPServer() {
	r := httphandler.NewRouter()
	httphandler.RegisterProducts(r, app.catalog, app.catalog)
	httphandler.RegisterCart(r, app.stores.cart, app.catalog)
	httphandler.RegisterCheckout(r, app.service)
	httphandler.RegisterOrders(r, app.stores.orders)

	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, r)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running", "addr", app.cfg.HTTPServerAddr)
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	if err := app.stores.kv.Close(); err != nil {
		slog.Error("failed to close storage", "err", err)
	}

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
