package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/hoangptkd/clone-ebay/config"
	"github.com/hoangptkd/clone-ebay/internal/adapter/catalog"
	"github.com/hoangptkd/clone-ebay/internal/adapter/httphandler"
	"github.com/hoangptkd/clone-ebay/internal/adapter/storage"
	"github.com/hoangptkd/clone-ebay/internal/core/service"
)

type App struct {
	ctx        context.Context
	cfg        config.Config
	catalog    *catalog.Store
	store      *storage.LevelDB
	storefront *service.Storefront
	browser    service.BrowseService
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initOutboundAdapters()
	app.initCoreServices()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	cat, err := catalog.Load(app.ctx, app.cfg.CatalogFile, app.cfg.FetchDelay)
	if err != nil {
		app.fallDown(op, err)
	}
	app.catalog = cat

	store, err := storage.Open(app.ctx, app.cfg.StoragePath)
	if err != nil {
		app.fallDown(op, err)
	}
	app.store = store
}

func (app *App) initCoreServices() {
	app.browser = service.NewBrowseService(app.catalog)
	app.storefront = service.NewStorefront(
		app.catalog,
		app.store,
		service.StorefrontConfig{
			PaymentDelay:     app.cfg.Checkout.PaymentDelay,
			TaxRate:          app.cfg.Checkout.TaxRate,
			ShippingFlatCost: app.cfg.Checkout.ShippingFlatCost,
		},
	)
}

func (app *App) initInboundAdapters() {
	mux := http.NewServeMux()
	httphandler.RegisterBrowse(mux, app.browser)
	httphandler.RegisterCart(mux, app.storefront)
	httphandler.RegisterWatchlist(mux, app.storefront)
	httphandler.RegisterSession(mux, app.storefront)
	httphandler.RegisterCheckout(mux, app.storefront)
	httphandler.RegisterSeller(mux, app.storefront)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.store.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
