package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/nanstat/internal/config"
	"github.com/katalvlaran/nanstat/internal/logger"
)

type configKey struct{}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "nanstat",
		Usage: "NaN-aware statistical reductions over JSON arrays",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to config.yaml (empty disables the file)",
				Value: config.DefaultPath(),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format (text, json, console)",
			},
		},
		Before: setup,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			reduceCmd(),
			opsCmd(),
			serveCmd(),
			versionCmd(),
		},
	}
}

// setup loads the config file, applies flag overrides and stores both the
// resolved config and the logger on ctx.
func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return ctx, err
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.LogFormat = cmd.String("log-format")
	}
	if err := cfg.Validate(); err != nil {
		return ctx, fmt.Errorf("config: %w", err)
	}
	cfg = cfg.Resolved()

	log := logger.ForFormat(cmd.Root().ErrWriter, cfg.LogFormat, logger.ParseLevel(cfg.LogLevel))
	ctx = logger.WithContext(ctx, log)
	return context.WithValue(ctx, configKey{}, cfg), nil
}

// configFrom returns the resolved config stored by setup.
func configFrom(ctx context.Context) config.Config {
	if cfg, ok := ctx.Value(configKey{}).(config.Config); ok {
		return cfg
	}
	return config.Config{}.Resolved()
}
