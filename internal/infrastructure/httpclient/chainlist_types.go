package httpclient

// NetworkTypeRaw is the network classification used by Chainlist.
type NetworkTypeRaw string

const (
	NetworkMainnetRaw NetworkTypeRaw = "mainnet"
	NetworkTestnetRaw NetworkTypeRaw = "testnet"
)

// ChainRaw is one record of https://chainid.network/chains.json.
type ChainRaw struct {
	Name      string         `json:"name"`
	Chain     string         `json:"chain"`
	Icon      string         `json:"icon,omitempty"`
	RPC       []string       `json:"rpc"`
	Features  []FeatureRaw   `json:"features,omitempty"`
	Faucets   []string       `json:"faucets,omitempty"`
	Currency  CurrencyRaw    `json:"nativeCurrency"`
	InfoURL   string         `json:"infoURL"`
	ShortName string         `json:"shortName"`
	ChainID   int64          `json:"chainId"`
	NetworkID int64          `json:"networkId"`
	Slip44    int64          `json:"slip44,omitempty"`
	Ens       *EnsRaw        `json:"ens,omitempty"`
	Explorers []ExplorerRaw  `json:"explorers,omitempty"`
	Title     string         `json:"title,omitempty"`
	Parent    *ParentRaw     `json:"parent,omitempty"`
	Network   NetworkTypeRaw `json:"network,omitempty"`
	RedFlags  []string       `json:"redFlags,omitempty"`
}

type CurrencyRaw struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

type ExplorerRaw struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Standard string `json:"standard"`
	Icon     string `json:"icon,omitempty"`
}

type EnsRaw struct {
	Registry string `json:"registry"`
}

type FeatureRaw struct {
	Name string `json:"name"`
}

// ParentRaw links an L2 to its settlement chain, e.g. Chain "eip155-1".
type ParentRaw struct {
	Type    string      `json:"type"`
	Chain   string      `json:"chain"`
	Bridges []BridgeRaw `json:"bridges,omitempty"`
}

type BridgeRaw struct {
	URL string `json:"url"`
}
