// Package codecommit is a client for the AWS CodeCommit API.
//
// Every operation takes a context and a request value and returns a result
// value or an error. Failures are always *errors.OperationError; a fault
// reported by the service unwraps to a *types.ServiceError whose Kind
// identifies it:
//
//	_, err := client.DeleteBranch(ctx, &codecommit.DeleteBranchRequest{...})
//	if types.IsKind(err, types.ErrorKindDefaultBranchCannotBeDeleted) {
//		...
//	}
//
// Slice and map fields of requests are stored as given when assigned
// directly, so the request aliases the caller's data. The With setters store
// a copy instead.
package codecommit

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"go.opentelemetry.io/otel/trace"

	"github.com/bravo68web/codecommit/internal/gitobject"
	"github.com/bravo68web/codecommit/internal/transport"
	"github.com/bravo68web/codecommit/internal/validation"
	"github.com/bravo68web/codecommit/pkg/errors"
	"github.com/bravo68web/codecommit/pkg/logger"
)

// DefaultRegion is used when neither Options nor the AWS configuration name one.
const DefaultRegion = "us-east-1"

// Options configures a Client.
type Options struct {
	// Region selects the regional endpoint and signing region.
	Region string

	// BaseEndpoint overrides https://codecommit.<Region>.amazonaws.com.
	BaseEndpoint string

	// Credentials signs requests. Nil sends unsigned requests, which only
	// local fakes accept.
	Credentials aws.CredentialsProvider

	// Timeout bounds each call. Zero means no client-side limit beyond ctx.
	Timeout time.Duration

	UserAgent string

	// VerifyContent checks GetBlob and GetFile content against its blob id
	// and fails with errors.ErrIntegrity on mismatch.
	VerifyContent bool

	// HTTPTransport replaces the default round tripper.
	HTTPTransport http.RoundTripper

	Logger         *logger.Logger
	TracerProvider trace.TracerProvider
}

// Endpoint returns the URL calls are sent to.
func (o Options) Endpoint() string {
	if o.BaseEndpoint != "" {
		return o.BaseEndpoint
	}
	return fmt.Sprintf("https://codecommit.%s.amazonaws.com", o.region())
}

func (o Options) region() string {
	if o.Region == "" {
		return DefaultRegion
	}
	return o.Region
}

// Client calls the service. It is safe for concurrent use.
type Client struct {
	options   Options
	transport *transport.Transport
	validator *validation.Validator
}

// New returns a Client configured by options, after applying optFns.
func New(options Options, optFns ...func(*Options)) (*Client, error) {
	for _, fn := range optFns {
		fn(&options)
	}

	t, err := transport.New(transport.Config{
		Endpoint:       options.Endpoint(),
		Region:         options.region(),
		Timeout:        options.Timeout,
		UserAgent:      options.UserAgent,
		Credentials:    options.Credentials,
		HTTPTransport:  options.HTTPTransport,
		Logger:         options.Logger,
		TracerProvider: options.TracerProvider,
	})
	if err != nil {
		return nil, err
	}

	return &Client{
		options:   options,
		transport: t,
		validator: validation.New(),
	}, nil
}

// NewFromConfig returns a Client using the region, credentials and base
// endpoint of an AWS SDK configuration.
func NewFromConfig(cfg aws.Config, optFns ...func(*Options)) (*Client, error) {
	opts := Options{
		Region:      cfg.Region,
		Credentials: cfg.Credentials,
	}
	if cfg.BaseEndpoint != nil {
		opts.BaseEndpoint = *cfg.BaseEndpoint
	}
	return New(opts, optFns...)
}

// NewFromDefaultConfig loads the default AWS configuration chain
// (environment, shared config and credentials files, instance roles) and
// returns a Client using it. Empty region or profile leave the chain's choice.
func NewFromDefaultConfig(ctx context.Context, region, profile string, optFns ...func(*Options)) (*Client, error) {
	var loadOpts []func(*config.LoadOptions) error
	if region != "" {
		loadOpts = append(loadOpts, config.WithRegion(region))
	}
	if profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errors.WrapClass(errors.ErrCredentials, err, "load AWS configuration")
	}
	return NewFromConfig(cfg, optFns...)
}

// Options returns a copy of the client's options.
func (c *Client) Options() Options {
	return c.options
}

func call[Res any, Req any](ctx context.Context, c *Client, operation string, params *Req) (*Res, error) {
	if params == nil {
		return nil, errNilRequest(operation)
	}
	if err := c.validate(operation, params); err != nil {
		return nil, err
	}
	out := new(Res)
	if err := c.transport.Do(ctx, operation, params, out); err != nil {
		return nil, err
	}
	return out, nil
}

func callNoResult[Req any](ctx context.Context, c *Client, operation string, params *Req) error {
	if params == nil {
		return errNilRequest(operation)
	}
	if err := c.validate(operation, params); err != nil {
		return err
	}
	return c.transport.Do(ctx, operation, params, nil)
}

func errNilRequest(operation string) error {
	return errors.NewOperationError(operation, errors.InvalidArgument("params", "request is required"))
}

func (c *Client) validate(operation string, params any) error {
	if err := c.validator.Struct(params); err != nil {
		return errors.NewOperationError(operation, err)
	}
	return nil
}

func (c *Client) verifyContent(operation string, blobID *string, content []byte) error {
	if !c.options.VerifyContent || blobID == nil {
		return nil
	}
	if err := gitobject.VerifyBlob(*blobID, content); err != nil {
		return errors.NewOperationError(operation, err)
	}
	return nil
}
