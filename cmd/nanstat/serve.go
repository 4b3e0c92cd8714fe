package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/nanstat/internal/logger"
	"github.com/katalvlaran/nanstat/internal/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the reduction API over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "listen address (overrides server_address)",
			},
			&cli.DurationFlag{
				Name:  "read-timeout",
				Usage: "request read timeout, headers and body (overrides read_timeout)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := configFrom(ctx)
			sc := server.Config{
				Address:      cfg.ServerAddress,
				ReadTimeout:  *cfg.ReadTimeout,
				MaxBodyBytes: *cfg.MaxBodyBytes,
				DefaultDDoF:  *cfg.DDoF,
			}
			if cmd.IsSet("addr") {
				sc.Address = cmd.String("addr")
			}
			if cmd.IsSet("read-timeout") {
				sc.ReadTimeout = cmd.Duration("read-timeout")
			}
			return server.New(sc, logger.FromContext(ctx)).Start(ctx)
		},
	}
}
