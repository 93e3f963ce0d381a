package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinch-dev/clinch/internal/domain/models"
)

func TestListNetworks(t *testing.T) {
	repo := newMemRepo(
		&models.Contract{Name: "A", Network: "sepolia", Verified: true},
		&models.Contract{Name: "B", Network: "mainnet"},
		&models.Contract{Name: "C", Network: "sepolia"},
		&models.Contract{Name: "D", Network: "devnet", Verified: true},
	)

	result, err := NewListNetworks(repo).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []NetworkStatus{
		{Name: "sepolia", ChainID: 11155111, Known: true, Total: 2, Verified: 1},
		{Name: "mainnet", ChainID: 1, Known: true, Total: 1, Verified: 0},
		{Name: "devnet", Known: false, Total: 1, Verified: 1},
	}, result.Networks)
	assert.NotEmpty(t, result.Known)
}
