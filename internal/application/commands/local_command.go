package commands

import (
	"context"
	"fmt"
	"net"

	"github.com/urfave/cli/v3"

	"github.com/bravo68web/codecommit/internal/codecommittest"
	"github.com/bravo68web/codecommit/pkg/logger"
)

// LocalCommand serves an in-memory endpoint until interrupted. Point other
// invocations at it with --endpoint and --no-sign-request.
func (r *CommandRegistry) LocalCommand() *cli.Command {
	return &cli.Command{
		Name:  "local",
		Usage: "Run an in-memory CodeCommit endpoint for experiments",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "listen",
				Usage: "Address to listen on",
				Value: "127.0.0.1:4599",
			},
			&cli.IntFlag{
				Name:  "page-size",
				Usage: "Items per page of list operations",
				Value: 100,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ln, err := net.Listen("tcp", cmd.String("listen"))
			if err != nil {
				return err
			}

			srv := codecommittest.New()
			backend := codecommittest.NewBackend()
			backend.PageSize = int(cmd.Int("page-size"))
			if cfg := r.Config(); cfg != nil && cfg.Client.Region != "" {
				backend.Region = cfg.Client.Region
			}
			backend.Install(srv)

			srv.Serve(ln)
			defer func() { _ = srv.Close() }()

			logger.Info("local endpoint started", logger.Endpoint(srv.URL), logger.Region(backend.Region))
			if _, err := fmt.Fprintln(cmd.Root().Writer, srv.URL); err != nil {
				return err
			}

			<-ctx.Done()
			return nil
		},
	}
}
