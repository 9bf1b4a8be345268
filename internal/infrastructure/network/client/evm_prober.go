package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chainregistry/internal/app/port"
	"chainregistry/internal/domain/entity"

	retry "github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
)

// ProberConfig tunes endpoint probing.
type ProberConfig struct {
	ConnectionTimeout time.Duration
	CallTimeout       time.Duration
	MaxRetries        uint
	RetryDelay        time.Duration
	RatePerSecond     float64
	Burst             int
}

// EVMProber implements port.EndpointProber for EVM JSON-RPC endpoints over
// http(s) and ws(s). A probe batches eth_chainId and eth_blockNumber.
type EVMProber struct {
	cfg      ProberConfig
	pool     *clientPool
	limiters *hostLimiters
	logger   *zap.Logger
}

var _ port.EndpointProber = (*EVMProber)(nil)

// NewEVMProber creates a new EVMProber.
func NewEVMProber(cfg ProberConfig, logger *zap.Logger) *EVMProber {
	if cfg.ConnectionTimeout <= 0 {
		cfg.ConnectionTimeout = 5 * time.Second
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 5 * time.Second
	}
	logger = logger.Named("EVMProber")
	return &EVMProber{
		cfg:      cfg,
		pool:     newClientPool(cfg.ConnectionTimeout, logger),
		limiters: newHostLimiters(cfg.RatePerSecond, cfg.Burst),
		logger:   logger,
	}
}

// Probe checks that rpcURL answers and serves chainID.
// A chain id mismatch is final; transport errors are retried.
func (p *EVMProber) Probe(ctx context.Context, chainID uint64, rpcURL string) entity.EndpointStatus {
	status := entity.EndpointStatus{ChainID: chainID, URL: rpcURL, CheckedAt: time.Now().UTC()}

	var res probeResult
	err := retry.Do(
		func() error {
			if err := p.limiters.forURL(rpcURL).Wait(ctx); err != nil {
				return retry.Unrecoverable(err)
			}
			r, err := p.query(ctx, rpcURL)
			if err != nil {
				p.pool.evict(rpcURL)
				return err
			}
			res = r
			if r.chainID != chainID {
				return retry.Unrecoverable(fmt.Errorf("%w: expected %d, endpoint reports %d", entity.ErrChainIDMismatch, chainID, r.chainID))
			}
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(p.cfg.MaxRetries+1),
		retry.Delay(p.cfg.RetryDelay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)

	status.ReportedChainID = res.chainID
	status.BlockNumber = res.blockNumber
	status.Latency = res.latency
	status.LatencyMs = res.latency.Milliseconds()
	if err != nil {
		status.Error = err.Error()
		if errors.Is(err, entity.ErrChainIDMismatch) {
			p.logger.Warn("RPC endpoint serves a different chain",
				zap.Uint64("chainID", chainID), zap.Uint64("reported", res.chainID), zap.String("url", rpcURL))
		} else {
			p.logger.Debug("RPC probe failed", zap.Uint64("chainID", chainID), zap.String("url", rpcURL), zap.Error(err))
		}
		return status
	}

	status.Healthy = true
	return status
}

// Close releases every cached connection.
func (p *EVMProber) Close() {
	p.pool.closeAll()
}

type probeResult struct {
	chainID     uint64
	blockNumber uint64
	latency     time.Duration
}

func (p *EVMProber) query(ctx context.Context, rpcURL string) (probeResult, error) {
	client, err := p.pool.get(ctx, rpcURL)
	if err != nil {
		return probeResult{}, err
	}

	var chainID, blockNumber hexutil.Uint64
	batch := []rpc.BatchElem{
		{Method: "eth_chainId", Result: &chainID},
		{Method: "eth_blockNumber", Result: &blockNumber},
	}

	callCtx, cancel := context.WithTimeout(ctx, p.cfg.CallTimeout)
	defer cancel()

	start := time.Now()
	if err := client.Client().BatchCallContext(callCtx, batch); err != nil {
		return probeResult{}, fmt.Errorf("RPC batch call to %s failed: %w", rpcURL, err)
	}
	latency := time.Since(start)

	for _, elem := range batch {
		if elem.Error != nil {
			return probeResult{}, fmt.Errorf("%s on %s failed: %w", elem.Method, rpcURL, elem.Error)
		}
	}
	return probeResult{chainID: uint64(chainID), blockNumber: uint64(blockNumber), latency: latency}, nil
}
