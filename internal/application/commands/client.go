package commands

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/bravo68web/codecommit/internal/config"
	"github.com/bravo68web/codecommit/pkg/codecommit"
	"github.com/bravo68web/codecommit/pkg/logger"
)

// NewClient builds a client from the CLI configuration. Static keys and
// anonymous mode are wired directly; the default source goes through the
// AWS configuration chain.
func NewClient(ctx context.Context, cfg *config.Config, log *logger.Logger) (*codecommit.Client, error) {
	apply := func(o *codecommit.Options) {
		if cfg.Client.Endpoint != "" {
			o.BaseEndpoint = cfg.Client.Endpoint
		}
		if o.Region == "" {
			o.Region = cfg.Client.Region
		}
		o.Timeout = cfg.Client.Timeout()
		o.UserAgent = cfg.Client.UserAgent
		o.VerifyContent = cfg.Client.VerifyContent
		o.Logger = log
	}

	creds := cfg.Credentials
	switch creds.Source {
	case config.CredentialsStatic:
		provider := credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, creds.SessionToken)
		return codecommit.New(codecommit.Options{Region: cfg.Client.Region, Credentials: provider}, apply)
	case config.CredentialsAnonymous:
		return codecommit.New(codecommit.Options{Region: cfg.Client.Region}, apply)
	default:
		return codecommit.NewFromDefaultConfig(ctx, cfg.Client.Region, creds.Profile, apply)
	}
}
