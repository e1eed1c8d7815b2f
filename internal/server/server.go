package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/renato0307/keycap/internal/logging"
	"github.com/renato0307/keycap/internal/paths"
	"github.com/renato0307/keycap/internal/services"
	"github.com/renato0307/keycap/internal/ui"
)

// Server serves the shortcut editor over SSH
type Server struct {
	address            string
	authorizedKeysPath string
	hub                *services.OutcomeHub
	listener           ui.ListenerStatus
	manager            *services.CaptureManager
	wishServer         *ssh.Server
}

// Options configures a Server. Empty paths fall back to the defaults under
// KEYCAP_HOME and ~/.ssh.
type Options struct {
	AuthorizedKeysPath string
	HostKeyPath        string
	Host               string
	Listener           ui.ListenerStatus // Shown in each connection's list (optional)
	Port               string
}

// NewServer creates an SSH server sharing one capture manager between
// connections. hub fans dispatcher outcomes out to each connection.
func NewServer(opts Options, manager *services.CaptureManager, hub *services.OutcomeHub) (*Server, error) {
	s := &Server{
		address:            net.JoinHostPort(opts.Host, opts.Port),
		authorizedKeysPath: opts.AuthorizedKeysPath,
		hub:                hub,
		listener:           opts.Listener,
		manager:            manager,
	}

	if s.authorizedKeysPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		s.authorizedKeysPath = filepath.Join(homeDir, ".ssh", "authorized_keys")
	}

	hostKeyPath := opts.HostKeyPath
	if hostKeyPath == "" {
		sshDir := paths.GetSSHDir()
		if err := os.MkdirAll(sshDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create SSH directory: %w", err)
		}
		hostKeyPath = filepath.Join(sshDir, "id_ed25519")
	}

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(s.address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithPublicKeyAuth(s.publicKeyHandler),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	s.wishServer = wishServer
	return s, nil
}

// Address returns the listen address
func (s *Server) Address() string {
	return s.address
}

// Start serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	logging.Logger.Info("Starting SSH server", "address", s.address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.wishServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			return fmt.Errorf("SSH server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}

	logging.Logger.Info("SSH server stopped")
	return nil
}
