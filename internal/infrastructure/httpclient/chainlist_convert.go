package httpclient

import (
	"strconv"
	"strings"

	"chainregistry/internal/domain/entity"

	"github.com/ethereum/go-ethereum/common"
)

var testnetNameMarkers = []string{"testnet", "sepolia", "goerli"}

// ToDescriptor converts a Chainlist record. ok is false when the record has
// no positive chain id or no usable HTTP RPC URL.
func ToDescriptor(raw ChainRaw) (entity.ChainDescriptor, bool) {
	if raw.ChainID <= 0 {
		return entity.ChainDescriptor{}, false
	}

	var endpoints entity.RPCEndpoints
	seen := make(map[string]bool, len(raw.RPC))
	for _, u := range raw.RPC {
		u = strings.TrimSpace(u)
		if u == "" || strings.Contains(u, "${") || seen[u] {
			continue
		}
		seen[u] = true
		switch {
		case strings.HasPrefix(u, "https://"), strings.HasPrefix(u, "http://"):
			endpoints.HTTP = append(endpoints.HTTP, u)
		case strings.HasPrefix(u, "wss://"), strings.HasPrefix(u, "ws://"):
			endpoints.WebSocket = append(endpoints.WebSocket, u)
		}
	}
	if len(endpoints.HTTP) == 0 {
		return entity.ChainDescriptor{}, false
	}

	d := entity.ChainDescriptor{
		ID:      uint64(raw.ChainID),
		Name:    strings.TrimSpace(raw.Name),
		Network: entity.Slugify(raw.ShortName),
		NativeCurrency: entity.NativeCurrency{
			Name:   raw.Currency.Name,
			Symbol: raw.Currency.Symbol,
		},
		RPCURLs: map[string]entity.RPCEndpoints{entity.DefaultKey: endpoints},
	}
	if raw.Currency.Decimals > 0 && raw.Currency.Decimals <= 255 {
		d.NativeCurrency.Decimals = uint8(raw.Currency.Decimals)
	}

	for i, ex := range raw.Explorers {
		if ex.URL == "" {
			continue
		}
		key := ex.Name
		if i == 0 || len(d.BlockExplorers) == 0 {
			key = entity.DefaultKey
		}
		if d.BlockExplorers == nil {
			d.BlockExplorers = make(map[string]entity.BlockExplorer)
		}
		if _, dup := d.BlockExplorers[key]; dup || key == "" {
			continue
		}
		name := ex.Name
		if name == "" {
			name = raw.Name + " Explorer"
		}
		d.BlockExplorers[key] = entity.BlockExplorer{Name: name, URL: strings.TrimRight(ex.URL, "/")}
	}

	if raw.Ens != nil && common.IsHexAddress(raw.Ens.Registry) {
		d.Contracts = map[string]entity.ContractDeployment{
			"ensRegistry": {Address: raw.Ens.Registry},
		}
	}

	if raw.Parent != nil {
		if id, ok := parseCAIP2(raw.Parent.Chain); ok && id != d.ID {
			d.SourceID = &id
		}
	}

	if t := detectTestnet(raw); t != nil {
		d.Testnet = t
	}
	return d, true
}

// parseCAIP2 reads an "eip155-N" chain reference.
func parseCAIP2(ref string) (uint64, bool) {
	rest, ok := strings.CutPrefix(ref, "eip155-")
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseUint(rest, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

func detectTestnet(raw ChainRaw) *bool {
	yes, no := true, false
	if raw.Network == NetworkTestnetRaw {
		return &yes
	}
	name := strings.ToLower(raw.Name)
	for _, marker := range testnetNameMarkers {
		if strings.Contains(name, marker) {
			return &yes
		}
	}
	if raw.Network == NetworkMainnetRaw {
		return &no
	}
	return nil
}
