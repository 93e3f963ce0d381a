package usecase

import (
	"context"

	"github.com/samber/lo"

	"github.com/clinch-dev/clinch/internal/domain"
	"github.com/clinch-dev/clinch/internal/domain/models"
)

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	// Networks holds the networks present in the registry, in first-seen order
	Networks []NetworkStatus
	// Known is the built-in chain id table
	Known []domain.KnownNetwork
}

// NetworkStatus summarizes the registry entries on one network
type NetworkStatus struct {
	Name     string `json:"name" yaml:"name"`
	ChainID  uint64 `json:"chainId,omitempty" yaml:"chainId,omitempty"`
	Known    bool   `json:"known" yaml:"known"`
	Total    int    `json:"total" yaml:"total"`
	Verified int    `json:"verified" yaml:"verified"`
}

// ListNetworks reports per-network counts
type ListNetworks struct {
	repo ContractRepository
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(repo ContractRepository) *ListNetworks {
	return &ListNetworks{repo: repo}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context) (*ListNetworksResult, error) {
	contracts := uc.repo.Load(ctx)

	byNetwork := lo.GroupBy(contracts, func(c *models.Contract) string { return c.Network })
	order := lo.Uniq(lo.Map(contracts, func(c *models.Contract, _ int) string { return c.Network }))

	networks := make([]NetworkStatus, 0, len(order))
	for _, name := range order {
		group := byNetwork[name]
		chainID, _ := domain.ChainID(name)
		networks = append(networks, NetworkStatus{
			Name:     name,
			ChainID:  chainID,
			Known:    domain.IsKnownNetwork(name),
			Total:    len(group),
			Verified: lo.CountBy(group, func(c *models.Contract) bool { return c.Verified }),
		})
	}

	return &ListNetworksResult{
		Networks: networks,
		Known:    domain.KnownNetworks(),
	}, nil
}
