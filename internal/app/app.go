package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter/blobstore"
	"github.com/niksmo/storefront/internal/adapter/catalog"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/kafka"
	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/pkg/retry"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/spf13/afero"
	"github.com/twmb/franz-go/pkg/sr"
)

type adapters struct {
	blobs    blobstore.BlobStore
	catalog  *catalog.Client
	producer kafka.ViewEventsProducer
	sqldb    storage.SQLDB
}

type coreServices struct {
	cart     port.CartManager
	wishlist port.WishlistManager
	browser  port.ProductsBrowser
	viewer   port.ProductViewer
	checkout port.CheckoutProcessor
	popups   port.PopupSwitcher
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	serde      schema.Serde
	adapters   adapters
	services   coreServices
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initSerde()
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

func (app *App) initSerde() {
	const op = "App.initSerde"

	srClient, err := sr.NewClient(
		sr.URLs(app.cfg.Broker.SchemaRegistryURLs...),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	subject := app.cfg.Broker.ViewEventsTopic + "-value"
	serde, err := schema.NewSerdeViewEventV1(
		app.ctx,
		schema.SubjectOpt(subject),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.serde = serde
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	blobs, err := blobstore.New(afero.NewOsFs(), app.cfg.DataDir)
	if err != nil {
		app.fallDown(op, err)
	}
	app.adapters.blobs = blobs

	app.adapters.catalog = catalog.New(
		app.cfg.Catalog.BaseURL, app.cfg.Catalog.Seed,
	)

	producer, err := kafka.NewViewEventsProducer(
		kafka.ProducerClientOpt(
			app.ctx,
			app.cfg.Broker.SeedBrokers,
			app.cfg.Broker.ViewEventsTopic,
		),
		kafka.ProducerEncoderOpt(app.serde),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.adapters.producer = producer

	sqldb, err := retry.DoWithResult(app.ctx,
		retry.RetryConfig{MaxAttempts: 3},
		func() (storage.SQLDB, error) {
			return storage.NewSQLDB(app.ctx, app.cfg.SQLDB)
		},
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.adapters.sqldb = sqldb
}

func (app *App) initCoreServices() {
	catalogService := service.NewCatalogService(app.adapters.catalog)
	cartService := service.NewCartService(app.adapters.blobs, catalogService)
	ordersRepo := storage.NewOrdersRepository(app.adapters.sqldb)

	app.services.browser = catalogService
	app.services.cart = cartService
	app.services.wishlist = service.NewWishlistService(
		app.adapters.blobs, catalogService,
	)
	app.services.viewer = service.NewRecentService(
		app.adapters.blobs, catalogService, app.adapters.producer,
	)
	app.services.checkout = service.NewCheckoutService(cartService, ordersRepo)
	app.services.popups = service.NewPopupService()
}

func (app *App) initInboundAdapters() {
	mux := http.NewServeMux()
	httphandler.RegisterProducts(mux, app.services.browser, app.services.viewer)
	httphandler.RegisterCart(mux, app.services.cart)
	httphandler.RegisterWishlist(mux, app.services.wishlist)
	httphandler.RegisterCheckout(mux, app.services.checkout)
	httphandler.RegisterPopups(mux, app.services.popups)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(app.cfg.HTTPServerAddr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	const op = "App.Run"

	go app.httpServer.Run(stopFn)

	// initial catalog sync is not fatal: the storefront starts
	// degraded and recovers through the manual refresh endpoint
	syncCtx, cancel := context.WithTimeout(app.ctx, 30*time.Second)
	defer cancel()
	if err := app.services.browser.Refresh(syncCtx); err != nil {
		slog.Warn("initial catalog sync failed",
			"op", op, "err", err)
	}

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.adapters.producer.Close()
	app.adapters.sqldb.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
