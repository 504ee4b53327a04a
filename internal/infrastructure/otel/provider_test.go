package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/resource"
)

func TestNewProvider(t *testing.T) {
	t.Parallel()

	t.Run("should merge the service identity into the SDK default resource", func(t *testing.T) {
		t.Parallel()

		// given
		ctx := context.Background()
		cfg := DefaultConfig()
		cfg.ServiceName = "codecommit-test"
		cfg.Exporter = &recordingExporter{}

		// when
		provider, err := NewProvider(ctx, cfg)

		// then
		require.NoError(t, err)
		t.Cleanup(func() { _ = provider.Shutdown(ctx) })

		res := provider.Resource()
		assert.Equal(t, resource.Default().SchemaURL(), res.SchemaURL())
		name, ok := res.Set().Value(attribute.Key("service.name"))
		require.True(t, ok)
		assert.Equal(t, "codecommit-test", name.AsString())
		rpc, ok := res.Set().Value(attribute.Key("rpc.service"))
		require.True(t, ok)
		assert.Equal(t, "CodeCommit_20150413", rpc.AsString())
	})

	t.Run("should reject an unknown exporter protocol", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := DefaultConfig()
		cfg.Protocol = "carrier-pigeon"

		// when
		_, err := NewProvider(context.Background(), cfg)

		// then
		require.Error(t, err)
	})
}
