package main

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	v1 "precip-viewer/internal/controllers/http/v1"
	"precip-viewer/internal/repositories"
	"precip-viewer/pkg/httpserver"
)

const shutdownTimeout = 30 * time.Second

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Serve canned forecasts on the provider endpoints for local development",
	RunE:  runStub,
}

// @title Precipitation Stub Provider
// @version 1.0.0
// @description Canned Kosovo forecasts served on the endpoints the precipitation viewer consumes.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /
// @schemes http

// @tag.name Forecast
// @tag.description Today and weekly precipitation forecasts
func runStub(cmd *cobra.Command, _ []string) error {
	e, err := bootstrap(true)
	if err != nil {
		return err
	}
	defer e.Close()

	repo, err := repositories.NewFixtureRepository(e.cnf.Stub.FixturePath)
	if err != nil {
		return errors.Wrap(err, "load fixture")
	}

	app := httpserver.InitFiberServer(httpserver.Config{
		AppName:      e.cnf.App.Name,
		ReadTimeout:  e.cnf.Stub.ReadTimeout,
		WriteTimeout: e.cnf.Stub.WriteTimeout,
	}, e.l)
	v1.NewRouter(app, repo, repo.Location(), e.l)

	ctx, cancel := signalContext(cmd.Context())
	defer cancel()

	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(":" + e.cnf.Stub.Port)
	}()

	e.l.Info("stub provider started", map[string]any{"port": e.cnf.Stub.Port, "location": repo.Location()})

	select {
	case err := <-listenErr:
		return errors.Wrap(err, "cannot run the stub provider")
	case <-ctx.Done():
		e.l.Warning("stopping stub provider")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	return app.ShutdownWithContext(shutdownCtx)
}
