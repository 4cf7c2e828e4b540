// Package server exposes the hypergrid demo host over SSH.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"charm.land/wish/v2"
	"charm.land/wish/v2/bubbletea"
	"charm.land/wish/v2/logging"
	"github.com/charmbracelet/ssh"
	"github.com/hypergrid/hypergrid/internal/app"
	"github.com/hypergrid/hypergrid/internal/config"
)

// Config holds the SSH server settings.
type Config struct {
	Host    string
	Port    string
	KeyPath string
}

// Start runs the SSH server until ctx is canceled. Each connection
// gets its own desktop sized to the client's PTY.
func Start(ctx context.Context, cfg *Config) error {
	hostKeyPath := cfg.KeyPath
	if hostKeyPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolving home directory: %w", err)
		}
		hostKeyPath = filepath.Join(homeDir, ".ssh", "hypergrid_host_key")
	}

	srv, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(teaHandler),
			logging.Middleware(),
		),
	)
	if err != nil {
		return fmt.Errorf("creating SSH server: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting SSH server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down SSH server")
	return srv.Shutdown(ctx)
}

// teaHandler builds a desktop for one SSH session.
func teaHandler(session ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, active := session.Pty()
	if !active {
		return nil, nil
	}

	cfg, err := config.Load()
	if err != nil {
		log.Warn("loading config for SSH session, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}

	desktop := app.NewDesktop(app.Options{
		Config: cfg,
		Width:  pty.Window.Width,
		Height: pty.Window.Height,
	})

	return desktop, []tea.ProgramOption{
		tea.WithFPS(config.NormalFPS),
	}
}
