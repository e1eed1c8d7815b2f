package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/renato0307/keycap/internal/config"
	"github.com/renato0307/keycap/internal/logging"
	"github.com/renato0307/keycap/internal/server"
	"github.com/renato0307/keycap/internal/services"
)

// ServeCmd serves the shortcut editor over SSH
type ServeCmd struct {
	AuthorizedKeys string `help:"authorized_keys file used for public key auth (default ~/.ssh/authorized_keys)"`
	Host           string `help:"Host address to bind to" default:"localhost" env:"KEYCAP_SERVE_HOST"`
	Port           string `help:"Port to listen on" default:"23235" env:"KEYCAP_SERVE_PORT"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	settings := cli.Container.Settings
	if s.Host == config.DefaultServeHost {
		if _, hasEnv := os.LookupEnv("KEYCAP_SERVE_HOST"); !hasEnv && settings.ServeHost != "" {
			s.Host = settings.ServeHost
		}
	}
	if s.Port == config.DefaultServePort {
		if _, hasEnv := os.LookupEnv("KEYCAP_SERVE_PORT"); !hasEnv && settings.ServePort != "" {
			s.Port = settings.ServePort
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dispatcher := services.NewSerialDispatcher()
	defer dispatcher.Close()

	hub := services.NewOutcomeHub()
	srv, err := server.NewServer(server.Options{
		AuthorizedKeysPath: s.AuthorizedKeys,
		Host:               s.Host,
		Listener:           cli.Container.Listener,
		Port:               s.Port,
	}, cli.Container.NewCaptureManager(dispatcher), hub)
	if err != nil {
		return err
	}

	fmt.Printf("SSH server listening on %s\n", srv.Address())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hub.Run(ctx, dispatcher.Outcomes())
		return nil
	})
	g.Go(func() error {
		defer stop()
		return srv.Start(ctx)
	})

	if err := g.Wait(); err != nil {
		logging.Logger.Error("SSH server stopped with error", "error", err)
		return err
	}
	return nil
}
