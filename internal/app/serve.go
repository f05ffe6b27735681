package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/oversett/oversett/internal/cli"
	"github.com/oversett/oversett/internal/httpapi"
	"github.com/oversett/oversett/internal/translation"
)

func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	envLoader := cli.AddEnvFlag(fs, ".env", "Path to the .env file")
	host := fs.String("host", "", "Bind host (defaults to SERVER_HOST)")
	port := fs.Int("port", 0, "Bind port (defaults to SERVER_PORT)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, logger, err := bootstrap(envLoader)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if *host == "" {
		*host = cfg.ServerHost
	}
	if *port == 0 {
		*port = cfg.ServerPort
	}

	registry := translation.NewRegistry(cfg.Provider)
	server := httpapi.NewServer(cfg, registry, logger, httpapi.Options{
		Host:            *host,
		Port:            *port,
		ReadTimeout:     cfg.ServerReadTimeout,
		WriteTimeout:    cfg.ServerWriteTimeout,
		ShutdownTimeout: cfg.ServerShutdownTimeout,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Start(ctx); err != nil {
		logger.Error().Err(err).Msg("server exited with error")
		return 1
	}
	return 0
}
