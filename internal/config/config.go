package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/bravo68web/codecommit/pkg/errors"
)

// Config represents the complete CLI configuration
type Config struct {
	Client      ClientConfig      `mapstructure:"client"`
	Credentials CredentialsConfig `mapstructure:"credentials"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	OTEL        OTELConfig        `mapstructure:"otel"`
}

// ClientConfig holds service client configuration
type ClientConfig struct {
	Region string `mapstructure:"region"`

	// Endpoint overrides https://codecommit.<region>.amazonaws.com, e.g. for a local fake
	Endpoint string `mapstructure:"endpoint"`

	// TimeoutSeconds is the per-call timeout in seconds
	TimeoutSeconds int `mapstructure:"timeout"`

	UserAgent string `mapstructure:"user_agent"`

	// VerifyContent checks GetBlob and GetFile content against its blob id
	VerifyContent bool `mapstructure:"verify_content"`
}

// Timeout returns the timeout as a time.Duration
func (c *ClientConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Credential sources
const (
	CredentialsDefault   = "default"
	CredentialsStatic    = "static"
	CredentialsAnonymous = "anonymous"
)

// CredentialsConfig selects how requests are signed
type CredentialsConfig struct {
	// Source is one of default, static, anonymous
	Source          string `mapstructure:"source"`
	Profile         string `mapstructure:"profile"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	SessionToken    string `mapstructure:"session_token"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level       string `mapstructure:"level"`  // debug, info, warn, error
	Format      string `mapstructure:"format"` // json, console
	Output      string `mapstructure:"output"` // console, otel, none
	Development bool   `mapstructure:"development"`
}

// OTELConfig holds OTLP log export configuration, used when logging.output is otel
type OTELConfig struct {
	Endpoint    string            `mapstructure:"endpoint"`
	Protocol    string            `mapstructure:"protocol"` // grpc, http
	Insecure    bool              `mapstructure:"insecure"`
	ServiceName string            `mapstructure:"service_name"`
	Headers     map[string]string `mapstructure:"headers"`
}

// Load reads configuration from file and environment variables.
// Resolution order: explicit path, ./codecommit.yaml, $HOME/.config/codecommit/config.yaml,
// then environment variables (CODECOMMIT_* and the standard AWS_* variables) as overrides.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")

	v.SetEnvPrefix("CODECOMMIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapClass(errors.ErrConfig, err, "failed to read config file")
		}
	} else {
		v.SetConfigName("codecommit")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "codecommit"))
		}

		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errors.WrapClass(errors.ErrConfig, err, "failed to read config file")
			}
			// Config file not found; rely on defaults and env vars
		}
	}

	overrideFromEnv(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.WrapClass(errors.ErrConfig, err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("client.region", "us-east-1")
	v.SetDefault("client.endpoint", "")
	v.SetDefault("client.timeout", 30)
	v.SetDefault("client.user_agent", "codecommit-go")
	v.SetDefault("client.verify_content", false)

	v.SetDefault("credentials.source", CredentialsDefault)

	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "console")

	v.SetDefault("otel.endpoint", "localhost:4317")
	v.SetDefault("otel.protocol", "grpc")
	v.SetDefault("otel.insecure", true)
	v.SetDefault("otel.service_name", "codecommit-cli")
}

// overrideFromEnv applies the standard AWS environment variables
func overrideFromEnv(v *viper.Viper) {
	if region := os.Getenv("AWS_REGION"); region != "" {
		v.Set("client.region", region)
	} else if region := os.Getenv("AWS_DEFAULT_REGION"); region != "" {
		v.Set("client.region", region)
	}

	if profile := os.Getenv("AWS_PROFILE"); profile != "" {
		v.Set("credentials.profile", profile)
	}

	// Keys in the environment switch to static credentials
	if key := os.Getenv("AWS_ACCESS_KEY_ID"); key != "" {
		v.Set("credentials.access_key_id", key)
		v.Set("credentials.source", CredentialsStatic)
	}
	if secret := os.Getenv("AWS_SECRET_ACCESS_KEY"); secret != "" {
		v.Set("credentials.secret_access_key", secret)
	}
	if token := os.Getenv("AWS_SESSION_TOKEN"); token != "" {
		v.Set("credentials.session_token", token)
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Client.Region == "" && c.Client.Endpoint == "" {
		return invalid("client.region is required when no endpoint is set")
	}
	if c.Client.TimeoutSeconds < 0 {
		return invalid(fmt.Sprintf("invalid client timeout: %d", c.Client.TimeoutSeconds))
	}

	switch c.Credentials.Source {
	case CredentialsDefault, CredentialsAnonymous:
	case CredentialsStatic:
		if c.Credentials.AccessKeyID == "" || c.Credentials.SecretAccessKey == "" {
			return invalid("static credentials need access_key_id and secret_access_key")
		}
	default:
		return invalid(fmt.Sprintf("invalid credentials source: %s", c.Credentials.Source))
	}

	switch c.Logging.Output {
	case "console", "none", "":
	case "otel":
		if c.OTEL.Endpoint == "" {
			return invalid("otel.endpoint is required when logging.output is otel")
		}
		if c.OTEL.Protocol != "grpc" && c.OTEL.Protocol != "http" {
			return invalid(fmt.Sprintf("invalid otel protocol: %s", c.OTEL.Protocol))
		}
	default:
		return invalid(fmt.Sprintf("invalid logging output: %s", c.Logging.Output))
	}

	return nil
}

// EndpointURL returns the configured endpoint or the regional default
func (c *ClientConfig) EndpointURL() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return fmt.Sprintf("https://codecommit.%s.amazonaws.com", c.Region)
}

func invalid(msg string) error {
	return fmt.Errorf("%w: invalid configuration: %s", errors.ErrConfig, msg)
}
