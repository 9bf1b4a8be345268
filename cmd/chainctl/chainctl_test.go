package main

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"chainregistry/internal/domain/entity"
	"chainregistry/internal/infrastructure/chainloader"
	"chainregistry/internal/pkg/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags clears flag values left behind by an earlier Execute on the shared rootCmd.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListTestnets(t *testing.T) {
	out, err := run(t, "list", "--testnet")
	require.NoError(t, err)
	assert.Contains(t, out, "sepolia")
	assert.Contains(t, out, "bittensor-testnet")
	assert.NotContains(t, out, "https://mainnet.base.org")
}

func TestShow(t *testing.T) {
	out, err := run(t, "show", "0x2105")
	require.NoError(t, err)
	assert.Contains(t, out, "Base (chain 8453, 0x2105)")
	assert.Contains(t, out, "portal@1: 0x49048044D57e1C92A77f79988d21Fa8fAF74E97e")
	assert.Contains(t, out, "multicall3: 0xcA11bde05977b3631167028862bE2a173976CA11")

	_, err = run(t, "show", "atlantis")
	assert.ErrorIs(t, err, entity.ErrChainNotFound)
}

func TestValidateWithOverlay(t *testing.T) {
	dir := t.TempDir()
	overlay := `
id: 42069
name: Subtensor Local
nativeCurrency: {name: TAO, symbol: TAO, decimals: 18}
rpcUrls:
  default:
    http: [http://localhost:9944]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "local.yml"), []byte(overlay), 0o644))

	out, err := run(t, "validate", "--overlay", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "28 chain descriptors are valid")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yml"), []byte("id: 0\nname: x\n"), 0o644))
	_, err = run(t, "validate", "--overlay", dir)
	assert.ErrorIs(t, err, entity.ErrInvalidDescriptor)
}

func TestDescribeFees(t *testing.T) {
	fee := uint64(1_500_000_000)
	mult := 1.2
	c := entity.ChainDescriptor{
		ID:             1,
		Name:           "Fee Chain",
		NativeCurrency: entity.NativeCurrency{Name: "Ether", Symbol: "ETH", Decimals: 18},
		RPCURLs:        map[string]entity.RPCEndpoints{entity.DefaultKey: {HTTP: []string{"https://rpc.example"}}},
		Fees:           &entity.FeeHooks{BaseFeeMultiplier: &mult, DefaultPriorityFeeWei: &fee},
	}
	out := describe(c)
	assert.Contains(t, out, "defaultPriorityFee: 1.5 gwei")
	assert.Contains(t, out, "baseFeeMultiplier: 1.2")
}

const chainlistFeed = `[
  {
    "name": "OP Mainnet",
    "chain": "ETH",
    "rpc": ["https://mainnet.optimism.io", "https://optimism-mainnet.infura.io/v3/${INFURA_API_KEY}"],
    "nativeCurrency": {"name": "Ether", "symbol": "ETH", "decimals": 18},
    "shortName": "oeth",
    "chainId": 10,
    "explorers": [{"name": "etherscan", "url": "https://optimistic.etherscan.io", "standard": "EIP3091"}]
  },
  {
    "name": "Ethereum Mainnet",
    "chain": "ETH",
    "rpc": ["https://eth.example"],
    "nativeCurrency": {"name": "Ether", "symbol": "ETH", "decimals": 18},
    "shortName": "eth",
    "chainId": 1
  },
  {
    "name": "Sepolia",
    "chain": "ETH",
    "rpc": ["https://rpc.sepolia.example"],
    "nativeCurrency": {"name": "Sepolia Ether", "symbol": "ETH", "decimals": 18},
    "shortName": "sep",
    "chainId": 11155111
  }
]`

func TestImportWritesLoadableOverlay(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(chainlistFeed))
	}))
	defer feed.Close()

	path := filepath.Join(t.TempDir(), "imported.yml")
	out, err := run(t, "import", "--url", feed.URL, "--ids", "10,11155111", "--out", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 2 chain descriptors to "+path)

	chains, err := chainloader.NewChainFileLoader(logger.Nop()).LoadFile(path)
	require.NoError(t, err)
	require.Len(t, chains, 2)
	require.NoError(t, entity.ValidateSet(chains))

	byID := map[uint64]entity.ChainDescriptor{}
	for _, c := range chains {
		byID[c.ID] = c
	}
	require.Contains(t, byID, uint64(10))
	require.Contains(t, byID, uint64(11155111))
	assert.Equal(t, "OP Mainnet", byID[10].Name)
	assert.Equal(t, "https://mainnet.optimism.io", byID[10].DefaultRPCURL())
	assert.NotContains(t, byID[10].RPCURLs[entity.DefaultKey].HTTP, "https://optimism-mainnet.infura.io/v3/${INFURA_API_KEY}")

	_, err = run(t, "import", "--url", feed.URL)
	assert.Error(t, err, "--out is required")
}

// jsonRPCNode answers batched eth_chainId and eth_blockNumber calls.
func jsonRPCNode(chainID, block uint64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var reqs []struct {
			ID     stdjson.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := stdjson.NewDecoder(r.Body).Decode(&reqs); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		resps := make([]map[string]any, 0, len(reqs))
		for _, req := range reqs {
			resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
			switch req.Method {
			case "eth_chainId":
				resp["result"] = fmt.Sprintf("0x%x", chainID)
			case "eth_blockNumber":
				resp["result"] = fmt.Sprintf("0x%x", block)
			default:
				resp["error"] = map[string]any{"code": -32601, "message": "method not found"}
			}
			resps = append(resps, resp)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = stdjson.NewEncoder(w).Encode(resps)
	}
}

func writeLocalOverlay(t *testing.T, rpcURL string) string {
	t.Helper()
	dir := t.TempDir()
	overlay := fmt.Sprintf(`
id: 42069
name: Subtensor Local
network: subtensor-local
nativeCurrency: {name: TAO, symbol: TAO, decimals: 18}
rpcUrls:
  default:
    http: [%s]
`, rpcURL)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "local.yml"), []byte(overlay), 0o644))
	return dir
}

func TestHealthTableForOverlayChain(t *testing.T) {
	node := httptest.NewServer(jsonRPCNode(42069, 0x2a))
	defer node.Close()

	out, err := run(t, "probe", "subtensor-local", "--overlay", writeLocalOverlay(t, node.URL))
	require.NoError(t, err)
	assert.Contains(t, out, "URL")
	assert.Contains(t, out, node.URL)
	assert.Regexp(t, `true\s+\d+ms\s+42\s`, out)
}

func TestWrongChainEndpointFailsCommand(t *testing.T) {
	node := httptest.NewServer(jsonRPCNode(1, 7))
	defer node.Close()

	out, err := run(t, "probe", "42069", "--overlay", writeLocalOverlay(t, node.URL))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no healthy RPC endpoint")
	assert.Contains(t, out, entity.ErrChainIDMismatch.Error())
}
