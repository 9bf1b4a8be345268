package httpclient

import (
	"context"
	"fmt"
	"time"

	"chainregistry/internal/domain/entity"

	jsoniter "github.com/json-iterator/go"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DefaultChainlistURL is the public Chainlist feed.
const DefaultChainlistURL = "https://chainid.network/chains.json"

// ChainlistClient downloads and converts the Chainlist feed.
type ChainlistClient struct {
	client  *fasthttp.Client
	url     string
	timeout time.Duration
	logger  *zap.Logger
}

// NewChainlistClient creates a new instance of ChainlistClient.
func NewChainlistClient(url string, timeout time.Duration, logger *zap.Logger) *ChainlistClient {
	if url == "" {
		url = DefaultChainlistURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &ChainlistClient{
		client: &fasthttp.Client{
			Name:                "chainregistry",
			MaxResponseBodySize: 64 << 20,
		},
		url:     url,
		timeout: timeout,
		logger:  logger.Named("ChainlistClient"),
	}
}

// FetchChains downloads the raw Chainlist records.
func (c *ChainlistClient) FetchChains(ctx context.Context) ([]ChainRaw, error) {
	c.logger.Debug("Requesting chain list", zap.String("url", c.url))

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	req.SetRequestURI(c.url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	if deadline, ok := ctx.Deadline(); ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("failed to execute request to %s: %w", c.url, err)
		}
	} else {
		if err := c.client.DoTimeout(req, resp, c.timeout); err != nil {
			return nil, fmt.Errorf("failed to execute request to %s with default timeout: %w", c.url, err)
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		c.logger.Error("Chainlist request failed",
			zap.String("url", c.url),
			zap.Int("statusCode", resp.StatusCode()))
		return nil, fmt.Errorf("chainlist request to %s failed with status %d", c.url, resp.StatusCode())
	}

	var chains []ChainRaw
	if err := json.Unmarshal(resp.Body(), &chains); err != nil {
		return nil, fmt.Errorf("failed to unmarshal chainlist response from %s: %w", c.url, err)
	}
	c.logger.Info("Fetched chain list", zap.Int("count", len(chains)))
	return chains, nil
}

// FetchDescriptors downloads the feed and converts it. When ids is non-empty
// only those chains are returned. Records that cannot be converted or fail
// validation are skipped with a warning.
func (c *ChainlistClient) FetchDescriptors(ctx context.Context, ids ...uint64) ([]entity.ChainDescriptor, error) {
	raws, err := c.FetchChains(ctx)
	if err != nil {
		return nil, err
	}

	want := make(map[uint64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	out := make([]entity.ChainDescriptor, 0, len(raws))
	for _, raw := range raws {
		if len(want) > 0 && (raw.ChainID <= 0 || !want[uint64(raw.ChainID)]) {
			continue
		}
		d, ok := ToDescriptor(raw)
		if !ok {
			c.logger.Debug("Skipping chainlist record without usable RPC", zap.Int64("chainID", raw.ChainID), zap.String("name", raw.Name))
			continue
		}
		if err := d.Validate(); err != nil {
			c.logger.Warn("Skipping invalid chainlist record", zap.Int64("chainID", raw.ChainID), zap.Error(err))
			continue
		}
		out = append(out, d)
	}

	if len(want) > 0 && len(out) < len(want) {
		c.logger.Warn("Some requested chains were not imported", zap.Int("requested", len(want)), zap.Int("imported", len(out)))
	}
	return out, nil
}
