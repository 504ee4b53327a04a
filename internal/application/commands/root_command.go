// Package commands holds the codecommit CLI command tree.
package commands

import (
	"context"
	"fmt"
	"sync"

	"github.com/urfave/cli/v3"

	"github.com/bravo68web/codecommit/internal/config"
	"github.com/bravo68web/codecommit/internal/infrastructure/otel"
	"github.com/bravo68web/codecommit/pkg/codecommit"
	"github.com/bravo68web/codecommit/pkg/logger"
)

// ClientFactory builds the service client used by commands.
type ClientFactory func(ctx context.Context, cfg *config.Config, log *logger.Logger) (*codecommit.Client, error)

type CommandRegistry struct {
	newClient ClientFactory

	mu     sync.Mutex
	cfg    *config.Config
	log    *logger.Logger
	client *codecommit.Client
}

func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{newClient: NewClient}
}

// WithClientFactory replaces how the registry builds its client.
func (r *CommandRegistry) WithClientFactory(f ClientFactory) *CommandRegistry {
	r.newClient = f
	return r
}

func (r *CommandRegistry) RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:                  "codecommit",
		Usage:                 "Work with AWS CodeCommit repositories, branches, files and pull requests",
		Suggest:               true,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a configuration file",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format: text or json",
				Value:   outputText,
			},
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "Service endpoint URL",
			},
			&cli.StringFlag{
				Name:  "region",
				Usage: "AWS region",
			},
			&cli.StringFlag{
				Name:  "profile",
				Usage: "Shared configuration profile",
			},
			&cli.BoolFlag{
				Name:  "no-sign-request",
				Usage: "Send unsigned requests",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log every call at debug level",
			},
		},
		Before: r.before,
		After:  r.after,
		Action: RootCommand(),
		Commands: []*cli.Command{
			r.RepoCommands(),
			r.BranchCommands(),
			r.FileCommands(),
			r.PullRequestCommands(),
			r.CommentCommands(),
			r.TemplateCommands(),
			r.LocalCommand(),
		},
	}
}

func RootCommand() cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		_, err := fmt.Fprintln(cmd.Root().Writer, "Use 'codecommit --help' to see available commands.")
		return err
	}
}

func (r *CommandRegistry) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return ctx, err
	}

	if v := cmd.String("endpoint"); v != "" {
		cfg.Client.Endpoint = v
	}
	if v := cmd.String("region"); v != "" {
		cfg.Client.Region = v
	}
	if v := cmd.String("profile"); v != "" {
		cfg.Credentials.Profile = v
		cfg.Credentials.Source = config.CredentialsDefault
	}
	if cmd.Bool("no-sign-request") {
		cfg.Credentials.Source = config.CredentialsAnonymous
	}
	if cmd.Bool("verbose") {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return ctx, err
	}

	switch f := cmd.String("output"); f {
	case outputText, outputJSON:
	default:
		return ctx, fmt.Errorf("unknown output format %q", f)
	}

	log, err := newLogger(ctx, cfg)
	if err != nil {
		return ctx, err
	}
	logger.SetGlobal(log)
	if cmd.Bool("no-sign-request") && cmd.String("profile") != "" {
		logger.Warn("profile is ignored for unsigned requests", logger.String("profile", cmd.String("profile")))
	}

	r.mu.Lock()
	r.cfg = cfg
	r.log = log
	r.mu.Unlock()
	return ctx, nil
}

func (r *CommandRegistry) after(ctx context.Context, cmd *cli.Command) error {
	r.mu.Lock()
	log := r.log
	r.mu.Unlock()
	if log == nil {
		return nil
	}
	return log.Close()
}

func newLogger(ctx context.Context, cfg *config.Config) (*logger.Logger, error) {
	lcfg := &logger.Config{
		Level:       cfg.Logging.Level,
		Output:      logger.OutputType(cfg.Logging.Output),
		Format:      cfg.Logging.Format,
		Development: cfg.Logging.Development,
	}
	if lcfg.Output == logger.OutputOTEL {
		return otel.NewLogger(ctx, lcfg, otel.ConfigFrom(cfg.OTEL))
	}
	return logger.New(lcfg)
}

// Client returns the service client, building it on first use.
func (r *CommandRegistry) Client(ctx context.Context) (*codecommit.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.client != nil {
		return r.client, nil
	}
	if r.cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	client, err := r.newClient(ctx, r.cfg, r.log)
	if err != nil {
		return nil, err
	}
	r.client = client
	return client, nil
}

// Config returns the configuration loaded for the current invocation.
func (r *CommandRegistry) Config() *config.Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cfg
}
