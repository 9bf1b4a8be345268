package networkdefinition

import "chainregistry/internal/domain/entity"

// multicall3Address is the deterministic Multicall3 deployment shared by most EVM chains.
const multicall3Address = "0xcA11bde05977b3631167028862bE2a173976CA11"

func ptr[T any](v T) *T { return &v }

func ether(name string) entity.NativeCurrency {
	return entity.NativeCurrency{Name: name, Symbol: "ETH", Decimals: 18}
}

func rpc(http ...string) map[string]entity.RPCEndpoints {
	return map[string]entity.RPCEndpoints{entity.DefaultKey: {HTTP: http}}
}

func rpcWS(http, ws []string) map[string]entity.RPCEndpoints {
	return map[string]entity.RPCEndpoints{entity.DefaultKey: {HTTP: http, WebSocket: ws}}
}

func explorer(name, url, apiURL string) map[string]entity.BlockExplorer {
	return map[string]entity.BlockExplorer{entity.DefaultKey: {Name: name, URL: url, APIURL: apiURL}}
}

// multicall3 leaves BlockCreated unset when no block is given; an explicit 0 is kept.
func multicall3(blockCreated ...uint64) entity.ContractDeployment {
	d := entity.ContractDeployment{Address: multicall3Address}
	if len(blockCreated) > 0 {
		d.BlockCreated = ptr(blockCreated[0])
	}
	return d
}

func onSource(sourceID uint64, address string, blockCreated uint64) entity.ContractDeployment {
	c := entity.Contract{Address: address}
	if blockCreated > 0 {
		c.BlockCreated = ptr(blockCreated)
	}
	return entity.ContractDeployment{Sources: map[uint64]entity.Contract{sourceID: c}}
}

// opStack returns the OP-stack L2 predeploys merged with extra.
func opStack(extra map[string]entity.ContractDeployment) map[string]entity.ContractDeployment {
	out := map[string]entity.ContractDeployment{
		"gasPriceOracle":         {Address: "0x420000000000000000000000000000000000000F"},
		"l1Block":                {Address: "0x4200000000000000000000000000000000000015"},
		"l2CrossDomainMessenger": {Address: "0x4200000000000000000000000000000000000007"},
		"l2Erc721Bridge":         {Address: "0x4200000000000000000000000000000000000014"},
		"l2StandardBridge":       {Address: "0x4200000000000000000000000000000000000010"},
		"l2ToL1MessagePasser":    {Address: "0x4200000000000000000000000000000000000016"},
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

var (
	opStackFormatters  = []string{"block", "transaction", "transactionReceipt"}
	opStackSerializers = []string{"transaction"}
)
