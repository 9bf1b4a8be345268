package port

import (
	"context"

	"chainregistry/internal/domain/entity"
)

// Logger is the key/value logger used by the registry, loaders and services.
// Args alternate keys and values, as with slog.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ChainRegistry defines read access to the set of known chain descriptors.
type ChainRegistry interface {
	// Get returns the descriptor for a chain id.
	Get(chainID uint64) (entity.ChainDescriptor, bool)

	// GetByNetwork returns a descriptor by its network slug or name (case-insensitive).
	GetByNetwork(nameOrSlug string) (entity.ChainDescriptor, bool)

	// All returns every descriptor sorted by chain id.
	All() []entity.ChainDescriptor

	// Filter returns the descriptors matching f, sorted by chain id.
	Filter(f entity.ChainFilter) []entity.ChainDescriptor
}

// EndpointProber checks a single RPC URL against the chain it is declared for.
type EndpointProber interface {
	Probe(ctx context.Context, chainID uint64, rpcURL string) entity.EndpointStatus
}

// HealthService probes and caches RPC endpoint health for registered chains.
type HealthService interface {
	CheckChain(ctx context.Context, chainID uint64) ([]entity.EndpointStatus, error)
	CheckAll(ctx context.Context) map[uint64][]entity.EndpointStatus
	HealthyRPCURLs(ctx context.Context, chainID uint64) ([]string, error)
}
