package entity

import (
	"sort"
	"strconv"
	"strings"
)

// DefaultKey is the map key under which the primary RPC and explorer entries live.
const DefaultKey = "default"

// ChainDescriptor is a static record describing one blockchain network.
// Descriptors are created once (compiled in, loaded from an overlay or imported)
// and never mutated afterwards; the registry hands out clones.
type ChainDescriptor struct {
	ID             uint64                        `json:"id" yaml:"id"`
	Name           string                        `json:"name" yaml:"name"`
	Network        string                        `json:"network,omitempty" yaml:"network,omitempty"`
	NativeCurrency NativeCurrency                `json:"nativeCurrency" yaml:"nativeCurrency"`
	RPCURLs        map[string]RPCEndpoints       `json:"rpcUrls" yaml:"rpcUrls"`
	BlockExplorers map[string]BlockExplorer      `json:"blockExplorers,omitempty" yaml:"blockExplorers,omitempty"`
	Contracts      map[string]ContractDeployment `json:"contracts,omitempty" yaml:"contracts,omitempty"`
	ENSTLDs        []string                      `json:"ensTlds,omitempty" yaml:"ensTlds,omitempty"`
	SourceID       *uint64                       `json:"sourceId,omitempty" yaml:"sourceId,omitempty"`
	Testnet        *bool                         `json:"testnet,omitempty" yaml:"testnet,omitempty"`
	BlockTime      *uint64                       `json:"blockTime,omitempty" yaml:"blockTime,omitempty"` // milliseconds
	Custom         map[string]any                `json:"custom,omitempty" yaml:"custom,omitempty"`
	Fees           *FeeHooks                     `json:"fees,omitempty" yaml:"fees,omitempty"`
	Formatters     []string                      `json:"formatters,omitempty" yaml:"formatters,omitempty"`
	Serializers    []string                      `json:"serializers,omitempty" yaml:"serializers,omitempty"`
}

// NativeCurrency describes the gas token of a chain.
type NativeCurrency struct {
	Name     string `json:"name" yaml:"name"`
	Symbol   string `json:"symbol" yaml:"symbol"`
	Decimals uint8  `json:"decimals" yaml:"decimals"`
}

// RPCEndpoints groups the transport URLs of one RPC provider.
type RPCEndpoints struct {
	HTTP      []string `json:"http" yaml:"http"`
	WebSocket []string `json:"webSocket,omitempty" yaml:"webSocket,omitempty"`
}

// BlockExplorer holds explorer metadata. APIURL is optional.
type BlockExplorer struct {
	Name   string `json:"name" yaml:"name"`
	URL    string `json:"url" yaml:"url"`
	APIURL string `json:"apiUrl,omitempty" yaml:"apiUrl,omitempty"`
}

// Contract is a deployed contract address with its optional deployment block.
type Contract struct {
	Address      string  `json:"address" yaml:"address"`
	BlockCreated *uint64 `json:"blockCreated,omitempty" yaml:"blockCreated,omitempty"`
}

// ContractDeployment is either a single contract on this chain or a set of
// contracts keyed by source (L1) chain id, as used for OP-stack bridge contracts.
type ContractDeployment struct {
	Address      string              `json:"address,omitempty" yaml:"address,omitempty"`
	BlockCreated *uint64             `json:"blockCreated,omitempty" yaml:"blockCreated,omitempty"`
	Sources      map[uint64]Contract `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// FeeHooks is the declared fee extension point. It carries data only.
type FeeHooks struct {
	BaseFeeMultiplier     *float64 `json:"baseFeeMultiplier,omitempty" yaml:"baseFeeMultiplier,omitempty"`
	DefaultPriorityFeeWei *uint64  `json:"defaultPriorityFeeWei,omitempty" yaml:"defaultPriorityFeeWei,omitempty"`
}

// IsTestnet reports the testnet flag, treating an absent flag as false.
func (c ChainDescriptor) IsTestnet() bool {
	return c.Testnet != nil && *c.Testnet
}

// HexID returns the chain id in the 0x-prefixed form returned by eth_chainId.
func (c ChainDescriptor) HexID() string {
	return "0x" + strconv.FormatUint(c.ID, 16)
}

// Slug returns the network slug, deriving it from Name when Network is empty.
func (c ChainDescriptor) Slug() string {
	if c.Network != "" {
		return strings.ToLower(c.Network)
	}
	return Slugify(c.Name)
}

// Slugify lowercases s and collapses every run of non-alphanumeric characters into a dash.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// DefaultRPCURL returns the first default HTTP URL, or "" if there is none.
func (c ChainDescriptor) DefaultRPCURL() string {
	if def, ok := c.RPCURLs[DefaultKey]; ok && len(def.HTTP) > 0 {
		return def.HTTP[0]
	}
	return ""
}

// HTTPURLs returns every HTTP RPC URL: default first, then the remaining
// providers in key order, without duplicates.
func (c ChainDescriptor) HTTPURLs() []string {
	return c.collectURLs(func(e RPCEndpoints) []string { return e.HTTP })
}

// WebSocketURLs returns every websocket RPC URL in the same order as HTTPURLs.
func (c ChainDescriptor) WebSocketURLs() []string {
	return c.collectURLs(func(e RPCEndpoints) []string { return e.WebSocket })
}

func (c ChainDescriptor) collectURLs(pick func(RPCEndpoints) []string) []string {
	keys := make([]string, 0, len(c.RPCURLs))
	for k := range c.RPCURLs {
		if k != DefaultKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := c.RPCURLs[DefaultKey]; ok {
		keys = append([]string{DefaultKey}, keys...)
	}

	seen := make(map[string]struct{})
	var urls []string
	for _, k := range keys {
		for _, u := range pick(c.RPCURLs[k]) {
			if _, dup := seen[u]; dup {
				continue
			}
			seen[u] = struct{}{}
			urls = append(urls, u)
		}
	}
	return urls
}

// DefaultExplorer returns the default block explorer if one is declared.
func (c ChainDescriptor) DefaultExplorer() (BlockExplorer, bool) {
	be, ok := c.BlockExplorers[DefaultKey]
	return be, ok
}

// Contract returns a single-address contract by name.
// Contracts that are only declared per source chain are not returned here; use ContractOn.
func (c ChainDescriptor) Contract(name string) (Contract, bool) {
	d, ok := c.Contracts[name]
	if !ok || d.Address == "" {
		return Contract{}, false
	}
	return Contract{Address: d.Address, BlockCreated: d.BlockCreated}, true
}

// ContractOn returns the named contract as deployed for sourceChain. A
// single-address contract is returned regardless of sourceChain.
func (c ChainDescriptor) ContractOn(name string, sourceChain uint64) (Contract, bool) {
	d, ok := c.Contracts[name]
	if !ok {
		return Contract{}, false
	}
	if sc, ok := d.Sources[sourceChain]; ok {
		return sc, true
	}
	if d.Address != "" {
		return Contract{Address: d.Address, BlockCreated: d.BlockCreated}, true
	}
	return Contract{}, false
}

// ContractNames lists declared contract names in sorted order.
func (c ChainDescriptor) ContractNames() []string {
	names := make([]string, 0, len(c.Contracts))
	for n := range c.Contracts {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
