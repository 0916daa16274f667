package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/greeter"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("auth-gate-greeter")
	cfg, err := config.GetGreeterConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	verifier, err := greeter.NewAuthClient(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating auth client")
	}

	handler := greeter.NewHandler(verifier, log)

	srv := &http.Server{
		Addr:              cfg.HTTPAddress,
		Handler:           handler.Init(),
		ReadHeaderTimeout: cfg.RequestTimeout,
	}

	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		if err := srv.Shutdown(context.Background()); err != nil {
			log.Err(err).Msg("error during greeter server shutdown")
		}

		close(idleConnectionsClosed)
	}()

	log.Info().Str("address", cfg.HTTPAddress).Msg("Launching greeter HTTP server")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("greeter server error")
	}

	<-idleConnectionsClosed
	log.Info().Msg("greeter Shutdown gracefully")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
