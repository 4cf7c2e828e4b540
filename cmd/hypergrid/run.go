package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"github.com/hypergrid/hypergrid/internal/app"
	"github.com/hypergrid/hypergrid/internal/config"
	"github.com/hypergrid/hypergrid/internal/server"
	"github.com/hypergrid/hypergrid/internal/theme"
)

func runLocal() error {
	if debugMode {
		log.SetLevel(log.DebugLevel)
	}

	if cpuProfile != "" {
		f, err := os.Create(cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %w", err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil {
				log.Warn("failed to close CPU profile file", "err", closeErr)
			}
		}()

		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %w", err)
		}
		defer pprof.StopCPUProfile()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Warn("failed to load config, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}
	theme.Initialize(cfg.Appearance.Theme)

	if debugMode {
		if configPath, err := config.Path(); err == nil {
			log.Debug("configuration", "path", configPath)
		}
	}

	p := tea.NewProgram(
		app.NewDesktop(app.Options{Config: cfg}),
		tea.WithFPS(config.NormalFPS),
		tea.WithoutSignalHandler(),
	)

	// Live reload: push fresh settings into the running program so gap
	// and animation changes take effect without a restart.
	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	go func() {
		err := config.Watch(watchCtx, func(cfg *config.Config) {
			p.Send(app.ConfigReloadedMsg{Config: cfg})
		})
		if err != nil && watchCtx.Err() == nil {
			log.Warn("config watcher stopped", "err", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		p.Send(tea.QuitMsg{})
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

func runSSHServer(sshHost, sshPort, sshKeyPath string) error {
	if debugMode {
		log.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Warn("failed to load config, using defaults", "err", err)
		cfg = config.DefaultConfig()
	}
	theme.Initialize(cfg.Appearance.Theme)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		cancel()
	}()

	if err := server.Start(ctx, &server.Config{
		Host:    sshHost,
		Port:    sshPort,
		KeyPath: sshKeyPath,
	}); err != nil {
		return fmt.Errorf("SSH server error: %w", err)
	}
	return nil
}
