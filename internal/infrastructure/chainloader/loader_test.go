package chainloader

import (
	"os"
	"path/filepath"
	"testing"

	"chainregistry/internal/domain/entity"
	"chainregistry/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const singleYAML = `
id: 42069
name: Subtensor Local
network: subtensor-local
nativeCurrency: {name: TAO, symbol: TAO, decimals: 18}
rpcUrls:
  default:
    http: [http://localhost:9944]
    webSocket: [ws://localhost:9944]
testnet: true
custom:
  substrateRpc: ws://localhost:9944
`

const listYAML = `
- id: 10
  name: OP Mainnet
  nativeCurrency: {name: Ether, symbol: ETH, decimals: 18}
  rpcUrls:
    default:
      http: [https://mainnet.optimism.io]
  contracts:
    portal:
      sources:
        1:
          address: "0xbEb5Fc579115071764c7423A4f12eDde41f106Ed"
          blockCreated: 17365802
- id: 7
  name: Seven
  nativeCurrency: {name: Seven, symbol: SVN, decimals: 18}
  rpcUrls:
    default:
      http: [https://seven.example]
`

const listJSON = `[
  {"id": 100, "name": "Gnosis", "nativeCurrency": {"name": "xDAI", "symbol": "XDAI", "decimals": 18},
   "rpcUrls": {"default": {"http": ["https://rpc.gnosischain.com"]}},
   "blockExplorers": {"default": {"name": "Gnosisscan", "url": "https://gnosisscan.io"}}}
]`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func newLoader() *ChainFileLoader {
	return NewChainFileLoader(logger.Nop())
}

func TestLoadFileSingleYAML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "local.yml", singleYAML)

	chains, err := newLoader().LoadFile(p)
	require.NoError(t, err)
	require.Len(t, chains, 1)

	c := chains[0]
	assert.Equal(t, uint64(42069), c.ID)
	assert.Equal(t, "subtensor-local", c.Slug())
	assert.True(t, c.IsTestnet())
	assert.Equal(t, []string{"ws://localhost:9944"}, c.WebSocketURLs())
	assert.Equal(t, "ws://localhost:9944", c.Custom["substrateRpc"])
}

func TestLoadFileListYAMLWithSources(t *testing.T) {
	p := writeFile(t, t.TempDir(), "l2.yaml", listYAML)

	chains, err := newLoader().LoadFile(p)
	require.NoError(t, err)
	require.Len(t, chains, 2)

	portal, ok := chains[0].ContractOn("portal", 1)
	require.True(t, ok)
	assert.Equal(t, "0xbEb5Fc579115071764c7423A4f12eDde41f106Ed", portal.Address)
	require.NotNil(t, portal.BlockCreated)
	assert.Equal(t, uint64(17365802), *portal.BlockCreated)
}

func TestLoadFileJSON(t *testing.T) {
	p := writeFile(t, t.TempDir(), "gnosis.json", listJSON)

	chains, err := newLoader().LoadFile(p)
	require.NoError(t, err)
	require.Len(t, chains, 1)
	assert.Equal(t, "gnosis", chains[0].Slug())
	ex, ok := chains[0].DefaultExplorer()
	require.True(t, ok)
	assert.Equal(t, "Gnosisscan", ex.Name)
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	p := writeFile(t, t.TempDir(), "bad.yml", "id: 5\nname: Broken\nnativeCurrency: {name: X, symbol: X}\n")

	_, err := newLoader().LoadFile(p)
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidDescriptor)
	assert.Contains(t, err.Error(), "bad.yml")
}

func TestLoadFileUnsupported(t *testing.T) {
	p := writeFile(t, t.TempDir(), "chains.toml", "")
	_, err := newLoader().LoadFile(p)
	assert.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.json", listJSON)
	writeFile(t, dir, "a.yml", singleYAML)
	writeFile(t, dir, "README.md", "not a descriptor")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	chains, err := newLoader().LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, chains, 2)
	assert.Equal(t, uint64(42069), chains[0].ID, "files load in lexical order")
	assert.Equal(t, uint64(100), chains[1].ID)
}

func TestLoadDirMissing(t *testing.T) {
	_, err := newLoader().LoadDir(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src, err := newLoader().LoadFile(writeFile(t, dir, "l2.yaml", listYAML))
	require.NoError(t, err)

	out := filepath.Join(dir, "out.yml")
	require.NoError(t, WriteFile(out, src))

	back, err := newLoader().LoadFile(out)
	require.NoError(t, err)
	assert.Equal(t, src, back)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("a.yaml"))
	assert.True(t, IsSupported("a.YML"))
	assert.True(t, IsSupported("a.json"))
	assert.False(t, IsSupported("a.txt"))
}
