package otel

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploggrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlplog/otlploghttp"
	"go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/bravo68web/codecommit/internal/config"
	"github.com/bravo68web/codecommit/pkg/errors"
)

// Exporter protocols
const (
	ProtocolGRPC = "grpc"
	ProtocolHTTP = "http"
)

// Config holds OpenTelemetry log export configuration
type Config struct {
	// Endpoint is the OTLP collector endpoint (e.g., "localhost:4317")
	Endpoint string

	// Protocol is grpc or http
	Protocol string

	ServiceName    string
	ServiceVersion string

	// Insecure disables TLS for the collector connection
	Insecure bool

	// Headers are sent with every export request
	Headers map[string]string

	// ExportTimeout bounds a single batch export
	ExportTimeout time.Duration

	// Exporter replaces the OTLP exporter, mostly for tests
	Exporter sdklog.Exporter
}

// DefaultConfig returns a default OTEL configuration
func DefaultConfig() *Config {
	return &Config{
		Endpoint:       "localhost:4317",
		Protocol:       ProtocolGRPC,
		ServiceName:    "codecommit-cli",
		ServiceVersion: "0.1.0",
		Insecure:       true,
		Headers:        make(map[string]string),
		ExportTimeout:  5 * time.Second,
	}
}

// ConfigFrom maps the CLI's otel section onto a provider Config
func ConfigFrom(c config.OTELConfig) *Config {
	cfg := DefaultConfig()
	if c.Endpoint != "" {
		cfg.Endpoint = c.Endpoint
	}
	if c.Protocol != "" {
		cfg.Protocol = c.Protocol
	}
	if c.ServiceName != "" {
		cfg.ServiceName = c.ServiceName
	}
	cfg.Insecure = c.Insecure
	for k, v := range c.Headers {
		cfg.Headers[k] = v
	}
	return cfg
}

// Provider manages the OpenTelemetry log provider
type Provider struct {
	config      *Config
	logProvider *sdklog.LoggerProvider
	logger      log.Logger
	resource    *resource.Resource
}

// NewProvider creates a log provider exporting to the configured collector
func NewProvider(ctx context.Context, cfg *Config) (*Provider, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.ServiceVersion),
			attribute.String("rpc.service", "CodeCommit_20150413"),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	exporter := cfg.Exporter
	if exporter == nil {
		exporter, err = createExporter(ctx, cfg)
		if err != nil {
			return nil, errors.WrapClass(errors.ErrConfig, err, "failed to create OTLP exporter")
		}
	}

	var batchOpts []sdklog.BatchProcessorOption
	if cfg.ExportTimeout > 0 {
		batchOpts = append(batchOpts, sdklog.WithExportTimeout(cfg.ExportTimeout))
	}

	logProvider := sdklog.NewLoggerProvider(
		sdklog.WithResource(res),
		sdklog.WithProcessor(sdklog.NewBatchProcessor(exporter, batchOpts...)),
	)

	return &Provider{
		config:      cfg,
		logProvider: logProvider,
		logger:      logProvider.Logger(cfg.ServiceName),
		resource:    res,
	}, nil
}

func createExporter(ctx context.Context, cfg *Config) (sdklog.Exporter, error) {
	switch cfg.Protocol {
	case ProtocolHTTP:
		return createHTTPExporter(ctx, cfg)
	case ProtocolGRPC, "":
		return createGRPCExporter(ctx, cfg)
	}
	return nil, fmt.Errorf("unknown protocol %q", cfg.Protocol)
}

func createGRPCExporter(ctx context.Context, cfg *Config) (sdklog.Exporter, error) {
	opts := []otlploggrpc.Option{
		otlploggrpc.WithEndpoint(cfg.Endpoint),
	}
	if len(cfg.Headers) > 0 {
		opts = append(opts, otlploggrpc.WithHeaders(cfg.Headers))
	}

	if cfg.Insecure {
		conn, err := grpc.NewClient(
			cfg.Endpoint,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create gRPC connection: %w", err)
		}
		opts = append(opts, otlploggrpc.WithGRPCConn(conn))
	}

	return otlploggrpc.New(ctx, opts...)
}

func createHTTPExporter(ctx context.Context, cfg *Config) (sdklog.Exporter, error) {
	opts := []otlploghttp.Option{
		otlploghttp.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlploghttp.WithInsecure())
	}
	if len(cfg.Headers) > 0 {
		opts = append(opts, otlploghttp.WithHeaders(cfg.Headers))
	}

	return otlploghttp.New(ctx, opts...)
}

// Logger returns the OTEL logger
func (p *Provider) Logger() log.Logger {
	return p.logger
}

// LoggerProvider returns the underlying log provider
func (p *Provider) LoggerProvider() *sdklog.LoggerProvider {
	return p.logProvider
}

// Resource returns the OTEL resource
func (p *Provider) Resource() *resource.Resource {
	return p.resource
}

// Config returns the provider configuration
func (p *Provider) Config() *Config {
	return p.config
}

// Shutdown flushes pending records and stops the exporter
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.logProvider != nil {
		return p.logProvider.Shutdown(ctx)
	}
	return nil
}

// ForceFlush forces a flush of all pending logs
func (p *Provider) ForceFlush(ctx context.Context) error {
	if p.logProvider != nil {
		return p.logProvider.ForceFlush(ctx)
	}
	return nil
}

// Close implements io.Closer
func (p *Provider) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return p.Shutdown(ctx)
}

var _ io.Closer = (*Provider)(nil)
