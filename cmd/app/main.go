package main

import (
	"aquasphere/cmd"
	"aquasphere/internal/adapters/out/persistence"
	"aquasphere/internal/logger"
	"aquasphere/internal/metrics"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	httpin "aquasphere/internal/adapters/in/http"

	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	configs, err := cmd.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	appLogger := logger.New(configs.LogLevel)

	db, err := persistence.Open(persistence.Options{Driver: configs.DBDriver, DSN: configs.DSN()})
	if err != nil {
		log.Fatalf("Error opening database: %v", err)
	}
	if err = persistence.Migrate(db); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	appLogger.Info("database ready", "driver", configs.DBDriver)

	metrics.Register(prometheus.DefaultRegisterer)

	app := cmd.NewCompositionRoot(configs, db, appLogger)
	startWebServer(&app, configs.HTTPPort)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server, err := app.CreateHTTPServer()
	if err != nil {
		log.Fatalf("Error building HTTP server: %v", err)
	}

	e := httpin.NewRouter(server, app.Logger(), prometheus.DefaultGatherer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if startErr := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); startErr != nil &&
			!errors.Is(startErr, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", startErr)
		}
	}()

	app.Logger().Info("http server listening", "port", port)
	<-ctx.Done()
	app.Logger().Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}
}
