package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinch-dev/clinch/internal/adapters/forge"
	"github.com/clinch-dev/clinch/internal/adapters/forge/broadcast"
	"github.com/clinch-dev/clinch/internal/adapters/fs"
	"github.com/clinch-dev/clinch/internal/adapters/repository/contracts"
	"github.com/clinch-dev/clinch/internal/adapters/security"
	"github.com/clinch-dev/clinch/internal/logging"
	"github.com/clinch-dev/clinch/internal/usecase"
)

const (
	userTokenAddr  = "0xabcd000000000000000000000000000000000001"
	builtTokenAddr = "0xabcd000000000000000000000000000000000002"
	builtVaultAddr = "0x7a11000000000000000000000000000000000003"

	userABI  = `[{"type":"function","name":"userFn","inputs":[],"outputs":[],"stateMutability":"view"}]`
	buildABI = `[{"type":"function","name":"buildFn","inputs":[],"outputs":[],"stateMutability":"view"}]`

	onDiskBroadcast = `{
  "chain": 1,
  "timestamp": 1700000000123,
  "transactions": [
    {"hash": "0x01", "transactionType": "CREATE", "contractName": "Token", "contractAddress": "` + builtTokenAddr + `",
     "transaction": {"from": "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"}},
    {"hash": "0x02", "transactionType": "CREATE", "contractName": "Vault", "contractAddress": "` + builtVaultAddr + `",
     "transaction": {"from": "0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"}}
  ],
  "receipts": []
}`
)

type onDiskProject struct {
	root     string
	registry string
	store    *contracts.RegistryStore
	add      *usecase.AddContract
	sync     *usecase.SyncRegistry
}

func writeProjectFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newOnDiskProject(t *testing.T) *onDiskProject {
	t.Helper()
	log := logging.Discard()
	root := t.TempDir()
	registry := filepath.Join(root, ".clinch")

	writeProjectFile(t, filepath.Join(root, "broadcast", "Deploy.s.sol", "1", "run-latest.json"), onDiskBroadcast)
	writeProjectFile(t, filepath.Join(root, "out", "Token.sol", "Token.json"), `{"abi":`+buildABI+`}`)
	writeProjectFile(t, filepath.Join(root, "out", "Vault.sol", "Vault.json"), `{"abi":`+buildABI+`}`)
	writeProjectFile(t, filepath.Join(root, "user-token.json"), userABI)

	store := contracts.NewRegistryStore(registry, log)
	vault := fs.NewABIVault(registry, root, log)
	parser := broadcast.NewParser(filepath.Join(root, "broadcast"))
	ingestor := usecase.NewIngestTranscript(parser, forge.NewArtifactLocator(filepath.Join(root, "out"), log),
		vault, security.NewLeakScanner(), log)

	return &onDiskProject{
		root:     root,
		registry: registry,
		store:    store,
		add:      usecase.NewAddContract(store, vault, log),
		sync:     usecase.NewSyncRegistry(store, parser, ingestor, nil, usecase.NopProgress{}, log),
	}
}

// vaultFiles lists the references of every file under abis/
func (p *onDiskProject) vaultFiles(t *testing.T) []string {
	t.Helper()
	entries, err := os.ReadDir(filepath.Join(p.registry, "abis"))
	require.NoError(t, err)
	var refs []string
	for _, e := range entries {
		refs = append(refs, "abis/"+e.Name())
	}
	sort.Strings(refs)
	return refs
}

func (p *onDiskProject) referencedABIs(ctx context.Context) []string {
	var refs []string
	for _, c := range p.store.Load(ctx) {
		if c.ABI != "" {
			refs = append(refs, c.ABI)
		}
	}
	sort.Strings(refs)
	return refs
}

func TestSyncRegistry_VaultOnDisk(t *testing.T) {
	ctx := context.Background()

	t.Run("rejected candidate leaves the registered abi untouched", func(t *testing.T) {
		p := newOnDiskProject(t)
		added, err := p.add.Run(ctx, usecase.AddContractParams{
			Name: "Token", Address: userTokenAddr, Network: "mainnet", ABIPath: "user-token.json",
		})
		require.NoError(t, err)
		require.True(t, added.ABICaptured)
		tokenFile := filepath.Join(p.registry, filepath.FromSlash(added.Contract.ABI))
		before, err := os.ReadFile(tokenFile)
		require.NoError(t, err)

		result, err := p.sync.Run(ctx, usecase.SyncParams{})
		require.NoError(t, err)
		require.Len(t, result.Conflicts, 1)
		assert.Equal(t, "Token", result.Conflicts[0].Contract.Name)
		require.Len(t, result.Synced, 1)
		assert.Equal(t, "abis/Vault-0x7a11.json", result.Synced[0].ABI)

		after, err := os.ReadFile(tokenFile)
		require.NoError(t, err)
		assert.Equal(t, before, after)

		assert.Equal(t, p.referencedABIs(ctx), p.vaultFiles(t))
	})

	t.Run("failed save discards the abis it stored", func(t *testing.T) {
		p := newOnDiskProject(t)
		_, err := p.add.Run(ctx, usecase.AddContractParams{
			Name: "Token", Address: userTokenAddr, Network: "mainnet", ABIPath: "user-token.json",
		})
		require.NoError(t, err)

		// A directory in the way of the temp file makes the save fail
		require.NoError(t, os.MkdirAll(p.store.Path()+".tmp", 0755))

		_, err = p.sync.Run(ctx, usecase.SyncParams{})
		require.Error(t, err)

		assert.Equal(t, []string{"abis/Token-0xabcd.json"}, p.vaultFiles(t))
		assert.Equal(t, p.referencedABIs(ctx), p.vaultFiles(t))
	})
}
