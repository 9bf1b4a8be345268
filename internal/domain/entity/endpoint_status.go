package entity

import "time"

// EndpointStatus is the outcome of probing one RPC URL of a chain.
type EndpointStatus struct {
	ChainID         uint64    `json:"chainId"`
	URL             string    `json:"url"`
	Healthy         bool      `json:"healthy"`
	ReportedChainID uint64    `json:"reportedChainId,omitempty"`
	BlockNumber     uint64    `json:"blockNumber,omitempty"`
	LatencyMs       int64     `json:"latencyMs"`
	CheckedAt       time.Time `json:"checkedAt"`
	Error           string    `json:"error,omitempty"`

	// Latency is the untruncated round trip behind LatencyMs.
	Latency time.Duration `json:"-"`
}

// ChainFilter narrows a registry listing. Zero value matches everything.
type ChainFilter struct {
	Testnet *bool
	// Query is matched case-insensitively against name, network slug and currency symbol.
	Query string
}
