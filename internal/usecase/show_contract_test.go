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
)

func TestShowContract(t *testing.T) {
	ctx := context.Background()
	repo := newMemRepo(
		&models.Contract{Name: "Token", Address: addrA, Network: "mainnet", ABI: "abis/Token-0x5fbd.json"},
		&models.Contract{Name: "TokenProxy", Address: addrA, Network: "mainnet"},
		&models.Contract{Name: "Vault", Address: addrB, Network: "sepolia", ABI: "abis/Vault-0xe7f1.json"},
	)

	vault := &mockVault{}
	vault.On("Read", mock.Anything, "abis/Token-0x5fbd.json").Return([]byte(`[]`), nil)
	vault.On("Read", mock.Anything, "abis/Vault-0xe7f1.json").Return(nil, errors.New("gone"))

	summarize := func(data []byte) (*ABISummary, error) {
		return &ABISummary{Functions: 3}, nil
	}
	uc := NewShowContract(repo, vault, summarize)

	t.Run("details with aliases and abi", func(t *testing.T) {
		result, err := uc.Run(ctx, "token")
		require.NoError(t, err)
		assert.Equal(t, "Token", result.Contract.Name)
		assert.Equal(t, []string{"TokenProxy"}, names(result.Aliases))
		require.NotNil(t, result.ABI)
		assert.Equal(t, 3, result.ABI.Functions)
		assert.NoError(t, result.ABIError)
	})

	t.Run("unreadable abi is reported not fatal", func(t *testing.T) {
		result, err := uc.Run(ctx, "Vault")
		require.NoError(t, err)
		assert.Nil(t, result.ABI)
		assert.ErrorContains(t, result.ABIError, "gone")
	})

	t.Run("not found", func(t *testing.T) {
		_, err := uc.Run(ctx, "Nope")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
