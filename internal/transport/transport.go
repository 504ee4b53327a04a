// Package transport delivers operation payloads to the service endpoint.
package transport

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/bravo68web/codecommit/internal/protocol"
	"github.com/bravo68web/codecommit/pkg/codecommit/types"
	"github.com/bravo68web/codecommit/pkg/errors"
	"github.com/bravo68web/codecommit/pkg/logger"
)

const tracerName = "github.com/bravo68web/codecommit"

// Config holds transport configuration
type Config struct {
	// Endpoint is the base URL, e.g. https://codecommit.us-east-1.amazonaws.com
	Endpoint string

	// Region is used for request signing
	Region string

	Timeout   time.Duration
	UserAgent string

	// Credentials signs requests; nil sends them unsigned
	Credentials aws.CredentialsProvider

	// HTTPTransport replaces the default round tripper, e.g. in tests
	HTTPTransport http.RoundTripper

	Logger         *logger.Logger
	TracerProvider trace.TracerProvider
}

// Transport sends awsJson1.1 requests over a resty client
type Transport struct {
	client   *resty.Client
	endpoint string
	region   string
	log      *logger.Logger
	tracer   trace.Tracer
}

// New creates a Transport for the given configuration
func New(cfg Config) (*Transport, error) {
	if cfg.Endpoint == "" {
		return nil, errors.InvalidArgument("endpoint", "is required")
	}
	if !strings.HasPrefix(cfg.Endpoint, "http://") && !strings.HasPrefix(cfg.Endpoint, "https://") {
		return nil, errors.InvalidArgument("endpoint", "must be an http or https URL")
	}

	log := cfg.Logger
	if log == nil {
		log = logger.Get()
	}

	tp := cfg.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}

	client := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.Endpoint, "/")).
		SetLogger(log.Sugar())

	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}

	base := cfg.HTTPTransport
	if base == nil {
		base = client.GetClient().Transport
	}
	if cfg.Credentials != nil {
		if cfg.Region == "" {
			return nil, errors.InvalidArgument("region", "is required to sign requests")
		}
		client.SetTransport(newSigningRoundTripper(base, cfg.Credentials, cfg.Region))
	} else if cfg.HTTPTransport != nil {
		client.SetTransport(base)
	}

	return &Transport{
		client:   client,
		endpoint: cfg.Endpoint,
		region:   cfg.Region,
		log:      log,
		tracer:   tp.Tracer(tracerName),
	}, nil
}

// Endpoint returns the base URL requests are sent to
func (t *Transport) Endpoint() string {
	return t.endpoint
}

// Do sends in as operation and decodes the response into out. out may be nil
// for operations without a response body. Every failure is an
// *errors.OperationError.
func (t *Transport) Do(ctx context.Context, operation string, in, out any) error {
	ctx, span := t.tracer.Start(ctx, "CodeCommit/"+operation,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("rpc.system", "aws-api"),
			attribute.String("rpc.service", "CodeCommit"),
			attribute.String("rpc.method", operation),
		),
	)
	defer span.End()

	opErr := func(status int, requestID string, err error) error {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return &errors.OperationError{
			Operation:  operation,
			StatusCode: status,
			RequestID:  requestID,
			Err:        err,
		}
	}

	body, err := protocol.Marshal(in)
	if err != nil {
		return opErr(0, "", err)
	}

	start := time.Now()
	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", protocol.ContentType).
		SetHeader(protocol.HeaderTarget, protocol.Target(operation)).
		SetBody(body).
		Post("/")
	latency := time.Since(start)

	log := t.log.WithContext(ctx).WithFields(logger.Operation(operation), logger.Latency(latency))

	if err != nil {
		log.Debug("call failed", logger.Error(err))
		if !errors.Is(err, errors.ErrCredentials) {
			err = errors.WrapClass(errors.ErrTransport, err, "send request")
		}
		return opErr(0, "", err)
	}

	status := resp.StatusCode()
	requestID := resp.Header().Get(protocol.HeaderRequestID)
	span.SetAttributes(attribute.Int("http.response.status_code", status))
	if requestID != "" {
		span.SetAttributes(attribute.String("aws.request_id", requestID))
	}

	if resp.IsError() || status < 200 || status > 299 {
		se := protocol.DecodeError(status, resp.Header(), resp.Body())
		log.Debug("service fault",
			logger.StatusCode(status),
			logger.RequestID(requestID),
			logger.ErrorKind(se.Kind.String()),
		)
		return opErr(status, requestID, se)
	}

	log.Debug("call succeeded",
		logger.StatusCode(status),
		logger.RequestID(requestID),
		logger.BodySize(len(resp.Body())),
	)

	if out == nil {
		return nil
	}
	if err := protocol.Unmarshal(resp.Body(), out); err != nil {
		return opErr(status, requestID, err)
	}
	return nil
}

// IsServiceFault reports whether err came from a service response
func IsServiceFault(err error) bool {
	_, ok := types.AsServiceError(err)
	return ok
}
