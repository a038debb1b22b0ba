package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-maze/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagEnvFile     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Tilt Maze SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own menu and maze; sessions share nothing.

Settings come from flags, then from the environment, then from defaults.
A .env file is loaded into the environment first if present:
  TILTMAZE_SSH_ADDR       - listen address (default :23234)
  TILTMAZE_HOST_KEY       - host key path (default ~/.tiltmaze/host_key)
  TILTMAZE_IDLE_TIMEOUT   - idle timeout, e.g. 30m (default 30m)

Examples:
  tiltmaze serve                           # Listen on :23234 with auto-generated key
  tiltmaze serve --ssh :2222               # Listen on port 2222
  tiltmaze serve --host-key ./my_host_key  # Use specific host key
  tiltmaze serve --env-file ./prod.env     # Load settings from another file

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	addServeFlags(serveCmd)
}

func addServeFlags(cmd *cobra.Command) {
	defaults := tui.DefaultSSHServerConfig()
	cmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	cmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	cmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", defaults.IdleTimeout, "Idle timeout before disconnecting")
	cmd.Flags().StringVar(&flagEnvFile, "env-file", ".env", "Environment file to load if present")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := serverConfig(cmd, flagEnvFile)
	if err != nil {
		return err
	}
	cfg.TickRate = flagFPS
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Starting Tilt Maze SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe(ctx)
}

// serverConfig resolves server settings: explicit flags win over the
// environment (after loading envFile), which wins over defaults.
func serverConfig(cmd *cobra.Command, envFile string) (tui.SSHServerConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return tui.SSHServerConfig{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := tui.DefaultSSHServerConfig()
	flags := cmd.Flags()

	cfg.Address = flagSSHAddr
	if !flags.Changed("ssh") {
		cfg.Address = getEnv("TILTMAZE_SSH_ADDR", cfg.Address)
	}

	cfg.HostKeyPath = flagHostKey
	if !flags.Changed("host-key") {
		cfg.HostKeyPath = getEnv("TILTMAZE_HOST_KEY", cfg.HostKeyPath)
	}

	cfg.IdleTimeout = flagIdleTimeout
	if !flags.Changed("idle-timeout") {
		if v := os.Getenv("TILTMAZE_IDLE_TIMEOUT"); v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				return tui.SSHServerConfig{}, fmt.Errorf("TILTMAZE_IDLE_TIMEOUT: %w", err)
			}
			cfg.IdleTimeout = d
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
