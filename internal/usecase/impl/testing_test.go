package impl

import (
	"log/slog"
	"testing"

	"smilelink/config"
	"smilelink/internal/infra/auth"
	"smilelink/internal/infra/mock"
)

// newSeededStore wires the in-memory data source with zero latency; the impl
// tests run business rules over the same seeded dataset the demo mode uses.
func newSeededStore(t *testing.T) *mock.Store {
	t.Helper()

	cfg := &config.Config{}
	cfg.API.MockLatency = 0

	return mock.NewStore(cfg, auth.NewBcryptHasher())
}

func testLogger() *slog.Logger {
	return slog.Default()
}
