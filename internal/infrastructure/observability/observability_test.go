package observability

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/chat-insights/internal/config"
)

func TestSetupDisabledReturnsNoopProvider(t *testing.T) {
	cfg := &config.Config{ServiceName: "chat-insights", EnableTracing: true}
	provider, err := Setup(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	require.NotNil(t, provider.Tracer)
	require.NotNil(t, provider.Meter)

	_, span := provider.Tracer.Start(context.Background(), "noop")
	span.End()
	assert.NoError(t, provider.Shutdown(context.Background()))
}
