package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"uk-assist-bot/internal/logcfg"
	"uk-assist-bot/internal/server/config"
)

// App represents the application structure responsible for initializing dependencies
// and running the rate API server together with the currency refresh loop.
type App struct {
	serviceProvider *serviceProvider // The service provider for dependency injection
	config          *config.Config   // The configuration object for the application
	serverHTTP      *http.Server     // The rate API server instance
}

// NewApp creates a new instance of the application.
func NewApp(ctx context.Context) (*App, error) {
	app := &App{}
	err := app.initDeps(ctx)
	if err != nil {
		return nil, err
	}
	return app, nil
}

// Run starts the refresh loop and the HTTP server.
func (a *App) Run() {
	a.runServer()
}

// initDeps initializes all dependencies required by the application.
func (a *App) initDeps(ctx context.Context) error {
	inits := []func(context.Context) error{
		a.initConfig,
		a.initServiceProvider,
		a.initHTTPServer,
	}

	for _, f := range inits {
		err := f(ctx)
		if err != nil {
			return err
		}
	}

	return nil
}

// initConfig initializes the application configuration.
func (a *App) initConfig(_ context.Context) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	a.config = cfg
	logcfg.RunLoggerConfig(a.config.EnvLogsLevel, a.config.EnvLogFileName)
	return nil
}

// initServiceProvider initializes the service provider for dependency injection.
func (a *App) initServiceProvider(_ context.Context) error {
	a.serviceProvider = newServiceProvider(
		a.config.EnvCbrEndpoint,
		time.Duration(a.config.EnvRefreshSeconds)*time.Second,
	)
	return nil
}

// initHTTPServer initializes the rate API server with middleware and routes.
func (a *App) initHTTPServer(_ context.Context) error {
	myHandler := a.serviceProvider.Handler()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/", myHandler.GetCodes)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/{code}", myHandler.GetRate)

	a.serverHTTP = &http.Server{
		Addr:    a.config.HTTPServer,
		Handler: router,
	}

	return nil
}

// runServer starts the refresh loop and HTTP server with graceful shutdown.
func (a *App) runServer() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go a.serviceProvider.Refresher().Run(ctx)

	go func() {
		logrus.Infof("Rate API server started on: %s", a.config.HTTPServer)
		if err := a.serverHTTP.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Failed to start rate API server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	sig := <-signalChan
	logrus.Infof("Shutting down rate API server with signal : %v...", sig)
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := a.serverHTTP.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("HTTP server shutdown error")
	}

	logrus.Info("Server exited")
}
