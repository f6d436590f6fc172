package push

import (
	"context"
	"log/slog"
)

// NoopGateway is used when no push relay is configured: deliveries are
// logged and counted as accepted so the rest of the engine behaves
// normally in development.
type NoopGateway struct{}

func NewNoopGateway() *NoopGateway {
	return &NoopGateway{}
}

func (NoopGateway) SendBatch(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, error) {
	slog.DebugContext(ctx, "push disabled, dropping batch",
		slog.Int("tokens", len(tokens)),
		slog.String("title", title),
	)
	return len(tokens), nil
}
