package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bravo68web/codecommit/internal/config"
	"github.com/bravo68web/codecommit/pkg/errors"
)

// clearAWSEnv keeps ambient credentials out of the tests.
func clearAWSEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"AWS_REGION", "AWS_DEFAULT_REGION", "AWS_PROFILE",
		"AWS_ACCESS_KEY_ID", "AWS_SECRET_ACCESS_KEY", "AWS_SESSION_TOKEN",
		"CODECOMMIT_CLIENT_REGION", "CODECOMMIT_CLIENT_ENDPOINT",
	} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "codecommit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("should apply defaults under an empty file", func(t *testing.T) {
		// given
		clearAWSEnv(t)
		path := writeConfig(t, "{}\n")

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "us-east-1", cfg.Client.Region)
		assert.Equal(t, 30*time.Second, cfg.Client.Timeout())
		assert.Equal(t, "https://codecommit.us-east-1.amazonaws.com", cfg.Client.EndpointURL())
		assert.Equal(t, config.CredentialsDefault, cfg.Credentials.Source)
		assert.Equal(t, "console", cfg.Logging.Output)
		assert.Equal(t, "codecommit-cli", cfg.OTEL.ServiceName)
	})

	t.Run("should read values from the file", func(t *testing.T) {
		// given
		clearAWSEnv(t)
		path := writeConfig(t, `
client:
  region: eu-west-1
  endpoint: http://127.0.0.1:4599
  timeout: 5
  verify_content: true
credentials:
  source: anonymous
logging:
  level: debug
`)

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "eu-west-1", cfg.Client.Region)
		assert.Equal(t, "http://127.0.0.1:4599", cfg.Client.EndpointURL())
		assert.Equal(t, 5*time.Second, cfg.Client.Timeout())
		assert.True(t, cfg.Client.VerifyContent)
		assert.Equal(t, config.CredentialsAnonymous, cfg.Credentials.Source)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("should let AWS variables override the file", func(t *testing.T) {
		// given
		clearAWSEnv(t)
		t.Setenv("AWS_REGION", "ap-south-1")
		t.Setenv("AWS_ACCESS_KEY_ID", "AKID")
		t.Setenv("AWS_SECRET_ACCESS_KEY", "SECRET")
		path := writeConfig(t, "client:\n  region: eu-west-1\n")

		// when
		cfg, err := config.Load(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "ap-south-1", cfg.Client.Region)
		assert.Equal(t, config.CredentialsStatic, cfg.Credentials.Source)
		assert.Equal(t, "AKID", cfg.Credentials.AccessKeyID)
		assert.Equal(t, "SECRET", cfg.Credentials.SecretAccessKey)
	})

	t.Run("should report a missing file as a config error", func(t *testing.T) {
		// given
		clearAWSEnv(t)

		// when
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrConfig)
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	valid := func() config.Config {
		return config.Config{
			Client:      config.ClientConfig{Region: "us-east-1"},
			Credentials: config.CredentialsConfig{Source: config.CredentialsDefault},
			Logging:     config.LoggingConfig{Output: "console"},
			OTEL:        config.OTELConfig{Endpoint: "localhost:4317", Protocol: "grpc"},
		}
	}

	cases := map[string]func(c *config.Config){
		"no region or endpoint":       func(c *config.Config) { c.Client.Region = "" },
		"negative timeout":            func(c *config.Config) { c.Client.TimeoutSeconds = -1 },
		"static without keys":         func(c *config.Config) { c.Credentials.Source = config.CredentialsStatic },
		"unknown credentials source":  func(c *config.Config) { c.Credentials.Source = "vault" },
		"unknown logging output":      func(c *config.Config) { c.Logging.Output = "syslog" },
		"otel with unknown protocol":  func(c *config.Config) { c.Logging.Output = "otel"; c.OTEL.Protocol = "udp" },
		"otel without an endpoint":    func(c *config.Config) { c.Logging.Output = "otel"; c.OTEL.Endpoint = "" },
	}

	for name, mutate := range cases {
		t.Run("should reject "+name, func(t *testing.T) {
			t.Parallel()

			// given
			cfg := valid()
			mutate(&cfg)

			// when
			err := cfg.Validate()

			// then
			assert.ErrorIs(t, err, errors.ErrConfig)
		})
	}

	t.Run("should accept an endpoint without a region", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := valid()
		cfg.Client.Region = ""
		cfg.Client.Endpoint = "http://localhost:4599"

		// when / then
		assert.NoError(t, cfg.Validate())
	})
}
