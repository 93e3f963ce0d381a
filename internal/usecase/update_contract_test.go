package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/clinch-dev/clinch/internal/domain"
	"github.com/clinch-dev/clinch/internal/domain/models"
	"github.com/clinch-dev/clinch/internal/logging"
)

func ptr[T any](v T) *T { return &v }

func seededRepo() *memRepo {
	return newMemRepo(
		&models.Contract{Name: "Token", Address: addrA, Network: "mainnet", ABI: "abis/Token-0x5fbd.json", TxHash: "0xaa", DeployedAt: 100},
		&models.Contract{Name: "Vault", Address: addrB, Network: "sepolia", DeployedAt: 200},
	)
}

func TestUpdateContract(t *testing.T) {
	ctx := context.Background()

	t.Run("only supplied fields change", func(t *testing.T) {
		repo := seededRepo()
		uc := NewUpdateContract(repo, &mockVault{}, logging.Discard())

		result, err := uc.Run(ctx, UpdateContractParams{Name: "token", Verified: ptr(true)})
		require.NoError(t, err)
		assert.False(t, result.Before.Verified)

		got := repo.contracts[0]
		assert.True(t, got.Verified)
		assert.Equal(t, "Token", got.Name)
		assert.Equal(t, addrA, got.Address)
		assert.Equal(t, "mainnet", got.Network)
		assert.Equal(t, "abis/Token-0x5fbd.json", got.ABI)
		assert.Equal(t, "0xaa", got.TxHash)
		assert.Equal(t, int64(100), got.DeployedAt)
		assert.Equal(t, []string{"Token", "Vault"}, repo.names())
	})

	t.Run("no fields", func(t *testing.T) {
		repo := seededRepo()
		_, err := NewUpdateContract(repo, &mockVault{}, logging.Discard()).Run(ctx, UpdateContractParams{Name: "Token"})
		assert.True(t, errors.Is(err, domain.ErrNoUpdates))
		assert.Equal(t, 0, repo.saves)
	})

	t.Run("unknown name", func(t *testing.T) {
		repo := seededRepo()
		_, err := NewUpdateContract(repo, &mockVault{}, logging.Discard()).Run(ctx, UpdateContractParams{Name: "Nope", Verified: ptr(true)})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Equal(t, 0, repo.saves)
	})

	t.Run("rename onto existing name", func(t *testing.T) {
		repo := seededRepo()
		_, err := NewUpdateContract(repo, &mockVault{}, logging.Discard()).Run(ctx, UpdateContractParams{Name: "Token", NewName: ptr("vault")})
		var conflict *domain.NameConflictError
		require.ErrorAs(t, err, &conflict)
		assert.Equal(t, "VAULT_MAINNET", conflict.Suggestion)
		assert.Equal(t, 0, repo.saves)
	})

	t.Run("rename to own name in other case", func(t *testing.T) {
		repo := seededRepo()
		_, err := NewUpdateContract(repo, &mockVault{}, logging.Discard()).Run(ctx, UpdateContractParams{Name: "Token", NewName: ptr("TOKEN")})
		require.NoError(t, err)
		assert.Equal(t, "TOKEN", repo.contracts[0].Name)
	})

	t.Run("invalid address rejected", func(t *testing.T) {
		repo := seededRepo()
		_, err := NewUpdateContract(repo, &mockVault{}, logging.Discard()).Run(ctx, UpdateContractParams{Name: "Token", Address: ptr("nope")})
		assert.True(t, errors.Is(err, domain.ErrInvalidAddress))
	})

	t.Run("moving onto another address reports aliases", func(t *testing.T) {
		repo := seededRepo()
		result, err := NewUpdateContract(repo, &mockVault{}, logging.Discard()).Run(ctx, UpdateContractParams{
			Name: "Token", Address: ptr(addrB), Network: ptr("Sepolia"),
		})
		require.NoError(t, err)
		require.Len(t, result.Aliases, 1)
		assert.Equal(t, "Vault", result.Aliases[0].Name)
		assert.Equal(t, "sepolia", repo.contracts[0].Network)
	})

	t.Run("abi captured under final name", func(t *testing.T) {
		repo := seededRepo()
		vault := &mockVault{}
		vault.On("Capture", mock.Anything, "Vault.json", "Treasury", addrB).Return("abis/Treasury-0xe7f1.json", true)

		result, err := NewUpdateContract(repo, vault, logging.Discard()).Run(ctx, UpdateContractParams{
			Name: "Vault", NewName: ptr("Treasury"), ABIPath: "Vault.json",
		})
		require.NoError(t, err)
		assert.True(t, result.ABICaptured)
		assert.Equal(t, "abis/Treasury-0xe7f1.json", repo.contracts[1].ABI)
		vault.AssertExpectations(t)
	})

	t.Run("recapture under a new name removes the old file", func(t *testing.T) {
		repo := seededRepo()
		vault := &mockVault{}
		vault.On("Capture", mock.Anything, "Token.json", "Coin", addrA).Return("abis/Coin-0x5fbd.json", true)
		vault.On("Remove", mock.Anything, "abis/Token-0x5fbd.json").Return(true)

		result, err := NewUpdateContract(repo, vault, logging.Discard()).Run(ctx, UpdateContractParams{
			Name: "Token", NewName: ptr("Coin"), ABIPath: "Token.json",
		})
		require.NoError(t, err)
		assert.True(t, result.OldABIRemoved)
		assert.Equal(t, "abis/Coin-0x5fbd.json", repo.contracts[0].ABI)
		vault.AssertExpectations(t)
	})

	t.Run("recapture onto the same file keeps it", func(t *testing.T) {
		repo := seededRepo()
		vault := &mockVault{}
		vault.On("Capture", mock.Anything, "Token.json", "Token", addrA).Return("abis/Token-0x5fbd.json", true)

		result, err := NewUpdateContract(repo, vault, logging.Discard()).Run(ctx, UpdateContractParams{
			Name: "Token", ABIPath: "Token.json",
		})
		require.NoError(t, err)
		assert.False(t, result.OldABIRemoved)
		vault.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})

	t.Run("rename without abi keeps the referenced file", func(t *testing.T) {
		repo := seededRepo()
		vault := &mockVault{}

		_, err := NewUpdateContract(repo, vault, logging.Discard()).Run(ctx, UpdateContractParams{
			Name: "Token", NewName: ptr("Coin"),
		})
		require.NoError(t, err)
		assert.Equal(t, "abis/Token-0x5fbd.json", repo.contracts[0].ABI)
		vault.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
	})

	t.Run("failed save drops the new file and keeps the old one", func(t *testing.T) {
		repo := seededRepo()
		repo.saveErr = errors.New("disk full")
		vault := &mockVault{}
		vault.On("Capture", mock.Anything, "Token.json", "Coin", addrA).Return("abis/Coin-0x5fbd.json", true)
		vault.On("Remove", mock.Anything, "abis/Coin-0x5fbd.json").Return(true)

		_, err := NewUpdateContract(repo, vault, logging.Discard()).Run(ctx, UpdateContractParams{
			Name: "Token", NewName: ptr("Coin"), ABIPath: "Token.json",
		})
		require.ErrorContains(t, err, "disk full")
		vault.AssertExpectations(t)
		vault.AssertNotCalled(t, "Remove", mock.Anything, "abis/Token-0x5fbd.json")
	})
}
