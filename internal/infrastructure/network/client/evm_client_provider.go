package client

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// clientPool caches dialed clients per RPC URL so repeated probes of a
// websocket endpoint reuse the connection.
type clientPool struct {
	mu                sync.Mutex
	clients           map[string]*ethclient.Client
	connectionTimeout time.Duration
	logger            *zap.Logger
}

func newClientPool(connectionTimeout time.Duration, logger *zap.Logger) *clientPool {
	return &clientPool{
		clients:           make(map[string]*ethclient.Client),
		connectionTimeout: connectionTimeout,
		logger:            logger,
	}
}

// get returns a cached client for rpcURL, dialing a new one if needed.
func (p *clientPool) get(ctx context.Context, rpcURL string) (*ethclient.Client, error) {
	p.mu.Lock()
	c, ok := p.clients[rpcURL]
	p.mu.Unlock()
	if ok {
		return c, nil
	}

	// Dial without holding the lock so a slow endpoint does not stall the others.
	dialCtx, cancel := context.WithTimeout(ctx, p.connectionTimeout)
	defer cancel()
	dialed, err := ethclient.DialContext(dialCtx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC %s: %w", rpcURL, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if existing, ok := p.clients[rpcURL]; ok {
		dialed.Close()
		return existing, nil
	}
	p.logger.Debug("Dialed RPC client", zap.String("url", rpcURL))
	p.clients[rpcURL] = dialed
	return dialed, nil
}

// evict closes and forgets the client for rpcURL, so the next probe redials.
func (p *clientPool) evict(rpcURL string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.clients[rpcURL]; ok {
		c.Close()
		delete(p.clients, rpcURL)
	}
}

func (p *clientPool) closeAll() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for k, c := range p.clients {
		c.Close()
		delete(p.clients, k)
	}
}

// hostLimiters hands out one token bucket per RPC host.
type hostLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newHostLimiters(perSecond float64, burst int) *hostLimiters {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	if burst <= 0 {
		burst = 1
	}
	return &hostLimiters{limiters: make(map[string]*rate.Limiter), limit: limit, burst: burst}
}

func (h *hostLimiters) forURL(rpcURL string) *rate.Limiter {
	host := rpcURL
	if u, err := url.Parse(rpcURL); err == nil && u.Host != "" {
		host = u.Host
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	l, ok := h.limiters[host]
	if !ok {
		l = rate.NewLimiter(h.limit, h.burst)
		h.limiters[host] = l
	}
	return l
}
