// Package main implements hypergrid, an animated dwindle tiling layout
// engine with a terminal demo host. Windows are arranged in a binary
// split tree and every geometry change is eased along a cubic bezier
// curve.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/hypergrid/hypergrid/internal/config"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// Version information (set by goreleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Global flags
var (
	debugMode  bool
	cpuProfile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hypergrid",
		Short: "Animated dwindle tiling for the terminal",
		Long: `hypergrid - animated dwindle tiling for the terminal

A binary-tree tiling layout engine with bezier-eased animations.
Windows split the focused tile alternately by aspect ratio, pop in
and out with scale and fade, and glide to their new positions on
every layout change.`,
		Example: `  # Run the demo host
  hypergrid

  # Run with debug logging
  hypergrid --debug

  # Serve the demo over SSH
  hypergrid ssh --port 2222

  # Print the configuration file path
  hypergrid config path`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLocal()
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cpuProfile, "cpuprofile", "", "Write CPU profile to file")

	var sshPort, sshHost, sshKeyPath string

	sshCmd := &cobra.Command{
		Use:   "ssh",
		Short: "Serve the demo host over SSH",
		Long: `Serve the hypergrid demo host over SSH

Each connection gets its own desktop sized to the client terminal.
A host key is generated automatically if not specified.`,
		Example: `  # Start SSH server on default port
  hypergrid ssh

  # Start on custom port
  hypergrid ssh --port 2222`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSSHServer(sshHost, sshPort, sshKeyPath)
		},
	}

	sshCmd.Flags().StringVar(&sshPort, "port", "2222", "SSH server port")
	sshCmd.Flags().StringVar(&sshHost, "host", "localhost", "SSH server host")
	sshCmd.Flags().StringVar(&sshKeyPath, "key-path", "", "Path to SSH host key (auto-generated if not specified)")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage hypergrid configuration",
	}

	configPathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Path()
			if err != nil {
				return fmt.Errorf("could not determine config path: %w", err)
			}
			fmt.Println(path)
			return nil
		},
	}

	configResetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset configuration to defaults",
		Long: `Reset the hypergrid configuration file to default settings

This will overwrite your existing configuration after confirmation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return resetConfigToDefaults()
		},
	}

	configCmd.AddCommand(configPathCmd, configResetCmd)
	rootCmd.AddCommand(sshCmd, configCmd)

	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(fmt.Sprintf("%s\nCommit: %s\nBuilt: %s", version, commit, date)),
	); err != nil {
		os.Exit(1)
	}
}

// resetConfigToDefaults overwrites the config file with defaults,
// after confirmation when one already exists.
func resetConfigToDefaults() error {
	configPath, err := config.Path()
	if err != nil {
		return fmt.Errorf("could not determine config path: %w", err)
	}

	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Warning: This will overwrite your existing configuration at:\n")
		fmt.Printf("  %s\n\n", configPath)
		fmt.Printf("Are you sure you want to reset to defaults? (yes/no): ")

		var response string
		fmt.Scanln(&response)
		response = strings.ToLower(strings.TrimSpace(response))

		if response != "yes" && response != "y" {
			fmt.Println("Reset cancelled.")
			return nil
		}
	}

	var sb strings.Builder
	sb.WriteString("# hypergrid configuration\n")
	sb.WriteString("# Animation durations are in milliseconds; bezier curves are\n")
	sb.WriteString("# [x1, y1, x2, y2] control points. Per-kind settings (in/out/move)\n")
	sb.WriteString("# fall back to the base animation settings when unset.\n\n")

	data, err := toml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	sb.Write(data)

	if err := os.WriteFile(configPath, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Configuration reset to defaults\n")
	fmt.Printf("  Location: %s\n", configPath)
	return nil
}
