package main

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/phrazzld/scry-cards/internal/config"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// serverOptions are the command-line overrides applied on top of the loaded
// configuration. Zero values leave the configured setting alone.
type serverOptions struct {
	ConfigFile string
	Port       int
	LogLevel   string
}

// serveFunc starts the server and blocks until ctx is canceled.
type serveFunc func(ctx context.Context, cfg *config.Config) error

// newCLIApp creates the command-line application. The root action serves the
// API; the config command prints the effective configuration.
func newCLIApp(serve serveFunc, out io.Writer) *cli.App {
	app := &cli.App{
		Name:    "scry-cards",
		Usage:   "In-memory spaced repetition flashcard server",
		Version: Version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
				EnvVars: []string{config.ConfigFileEnv},
			},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Usage: "Port to listen on"},
			&cli.StringFlag{Name: "log-level", Usage: "Log level: debug|info|warn|error"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadWithOverrides(optionsFrom(c))
			if err != nil {
				return err
			}
			return serve(c.Context, cfg)
		},
		Commands: []*cli.Command{
			configCmd(),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// configCmd creates the config command.
func configCmd() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Validate and print the effective configuration",
		Action: func(c *cli.Context) error {
			cfg, err := loadWithOverrides(optionsFrom(c))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(c.App.Writer,
				"server:\n  port: %d\n  log_level: %s\n  shutdown_timeout: %s\nreview:\n  history_limit: %d\n",
				cfg.Server.Port,
				cfg.Server.LogLevel,
				cfg.Server.ShutdownTimeout,
				cfg.Review.HistoryLimit)
			return err
		},
	}
}

func optionsFrom(c *cli.Context) serverOptions {
	return serverOptions{
		ConfigFile: c.String("config"),
		Port:       c.Int("port"),
		LogLevel:   c.String("log-level"),
	}
}

// loadWithOverrides loads the configuration and applies command-line
// overrides, validating the result again.
func loadWithOverrides(opts serverOptions) (*config.Config, error) {
	cfg, err := loadAppConfig(opts.ConfigFile)
	if err != nil {
		return nil, err
	}

	if opts.Port != 0 {
		cfg.Server.Port = opts.Port
	}
	if opts.LogLevel != "" {
		cfg.Server.LogLevel = opts.LogLevel
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid command-line overrides: %w", err)
	}
	return cfg, nil
}
