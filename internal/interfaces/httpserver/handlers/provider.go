package handlers

import (
	"github.com/rs/zerolog"

	"jan-server/services/chat-insights/internal/domain/insights"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Insights *InsightsHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(service insights.Service, log zerolog.Logger) *Provider {
	return &Provider{
		Insights: NewInsightsHandler(service, log),
	}
}
