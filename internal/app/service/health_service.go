package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"chainregistry/internal/app/port"
	"chainregistry/internal/domain/entity"
	"chainregistry/internal/pkg/metrics"

	"github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"
)

// HealthConfig tunes caching and fan-out of endpoint probes.
type HealthConfig struct {
	CacheTTL        time.Duration
	CleanupInterval time.Duration
	MaxConcurrent   int
}

// HealthServiceImpl implements port.HealthService.
type HealthServiceImpl struct {
	registry      port.ChainRegistry
	prober        port.EndpointProber
	logger        port.Logger
	statusCache   *cache.Cache // "chainID|url" -> entity.EndpointStatus
	maxConcurrent int
}

var _ port.HealthService = (*HealthServiceImpl)(nil)

// NewHealthService creates a new instance of HealthServiceImpl.
func NewHealthService(
	registry port.ChainRegistry,
	prober port.EndpointProber,
	l port.Logger,
	cfg HealthConfig,
) *HealthServiceImpl {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 1
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.CleanupInterval <= 0 {
		cfg.CleanupInterval = 10 * time.Minute
	}
	return &HealthServiceImpl{
		registry:      registry,
		prober:        prober,
		logger:        l,
		statusCache:   cache.New(cfg.CacheTTL, cfg.CleanupInterval),
		maxConcurrent: cfg.MaxConcurrent,
	}
}

type probeTarget struct {
	chainID uint64
	url     string
}

func cacheKey(chainID uint64, url string) string {
	return strconv.FormatUint(chainID, 10) + "|" + url
}

func targetsOf(c entity.ChainDescriptor) []probeTarget {
	urls := append(c.HTTPURLs(), c.WebSocketURLs()...)
	targets := make([]probeTarget, 0, len(urls))
	for _, u := range urls {
		targets = append(targets, probeTarget{chainID: c.ID, url: u})
	}
	return targets
}

// CheckChain probes every RPC URL of one chain. Statuses come back in
// declaration order, HTTP URLs before websocket URLs.
func (s *HealthServiceImpl) CheckChain(ctx context.Context, chainID uint64) ([]entity.EndpointStatus, error) {
	c, ok := s.registry.Get(chainID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", entity.ErrChainNotFound, chainID)
	}
	return s.probeAll(ctx, targetsOf(c)), nil
}

// CheckAll probes every endpoint of every registered chain.
func (s *HealthServiceImpl) CheckAll(ctx context.Context) map[uint64][]entity.EndpointStatus {
	chains := s.registry.All()
	var targets []probeTarget
	for _, c := range chains {
		targets = append(targets, targetsOf(c)...)
	}
	s.logger.Info("Checking RPC endpoints", "chains", len(chains), "endpoints", len(targets))

	statuses := s.probeAll(ctx, targets)
	out := make(map[uint64][]entity.EndpointStatus, len(chains))
	healthy := 0
	for _, st := range statuses {
		out[st.ChainID] = append(out[st.ChainID], st)
		if st.Healthy {
			healthy++
		}
	}
	s.logger.Info("RPC endpoint check finished", "endpoints", len(statuses), "healthy", healthy)
	return out
}

// HealthyRPCURLs returns the healthy RPC URLs of a chain, fastest first.
func (s *HealthServiceImpl) HealthyRPCURLs(ctx context.Context, chainID uint64) ([]string, error) {
	statuses, err := s.CheckChain(ctx, chainID)
	if err != nil {
		return nil, err
	}
	healthy := make([]entity.EndpointStatus, 0, len(statuses))
	for _, st := range statuses {
		if st.Healthy {
			healthy = append(healthy, st)
		}
	}
	sort.SliceStable(healthy, func(i, j int) bool { return healthy[i].LatencyMs < healthy[j].LatencyMs })

	urls := make([]string, len(healthy))
	for i, st := range healthy {
		urls[i] = st.URL
	}
	return urls, nil
}

// probeAll answers from cache where possible and probes the rest with bounded
// concurrency. The result is index-aligned with targets.
func (s *HealthServiceImpl) probeAll(ctx context.Context, targets []probeTarget) []entity.EndpointStatus {
	results := make([]entity.EndpointStatus, len(targets))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.maxConcurrent)

	for i, t := range targets {
		key := cacheKey(t.chainID, t.url)
		if cached, found := s.statusCache.Get(key); found {
			results[i] = cached.(entity.EndpointStatus)
			continue
		}
		eg.Go(func() error {
			st := s.prober.Probe(egCtx, t.chainID, t.url)
			metrics.ObserveProbe(st)
			if !st.Healthy {
				s.logger.Debug("Endpoint unhealthy", "chain_id", t.chainID, "url", t.url, "error", st.Error)
			}
			// A cancelled probe says nothing about the endpoint.
			if egCtx.Err() == nil {
				s.statusCache.Set(key, st, cache.DefaultExpiration)
			}
			results[i] = st
			return nil
		})
	}
	_ = eg.Wait()
	return results
}
