package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-users-api/internal/adapter"
	"github.com/MKhiriev/go-users-api/internal/client"
	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/logger"
)

func main() {
	log := logger.NewClientLogger("users-api-client", false)
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	usersAdapter, err := adapter.NewHTTPUsersAdapter(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create users adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(usersAdapter, cfg.Command, os.Stdout, log)
	if err = app.Run(ctx); err != nil {
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) || errors.Is(err, client.ErrWrongArgCount) {
			fmt.Fprintln(os.Stderr, client.Usage)
		}
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}
