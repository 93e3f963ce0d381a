package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"

	"github.com/clinch-dev/clinch/internal/domain"
	"github.com/clinch-dev/clinch/internal/domain/models"
)

// ContractListResult contains the result of listing contracts
type ContractListResult struct {
	Contracts []*models.Contract
	// Total is the size of the registry before filtering
	Total   int
	Summary ContractSummary
}

// ContractSummary provides summary statistics for the listed contracts
type ContractSummary struct {
	Total      int
	Verified   int
	Unverified int
	ByNetwork  map[string]int
}

// ListContracts is the use case behind list and find
type ListContracts struct {
	repo ContractRepository
}

// NewListContracts creates a new ListContracts use case
func NewListContracts(repo ContractRepository) *ListContracts {
	return &ListContracts{repo: repo}
}

// Run executes the use case
func (uc *ListContracts) Run(ctx context.Context, filter domain.ContractFilter) (*ContractListResult, error) {
	all := uc.repo.Load(ctx)

	contracts := FilterContracts(all, filter)
	contracts = SortContracts(contracts, filter.Sort)

	return &ContractListResult{
		Contracts: contracts,
		Total:     len(all),
		Summary:   Summarize(contracts),
	}, nil
}

// FilterContracts applies a filter while keeping registry order.
func FilterContracts(contracts []*models.Contract, filter domain.ContractFilter) []*models.Contract {
	network := strings.ToLower(strings.TrimSpace(filter.Network))
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	var fuzzyNames map[string]bool
	if query != "" && filter.Fuzzy {
		names := lo.Map(contracts, func(c *models.Contract, _ int) string { return c.Name })
		fuzzyNames = make(map[string]bool)
		for _, match := range fuzzy.Find(query, names) {
			fuzzyNames[match.Str] = true
		}
	}

	return lo.Filter(contracts, func(c *models.Contract, _ int) bool {
		if network != "" && strings.ToLower(c.Network) != network {
			return false
		}
		if filter.Verified != nil && c.Verified != *filter.Verified {
			return false
		}
		if query == "" {
			return true
		}
		if strings.Contains(strings.ToLower(c.Name), query) ||
			strings.Contains(strings.ToLower(c.Address), query) {
			return true
		}
		return fuzzyNames[c.Name]
	})
}

// SortContracts returns a sorted copy. SortNone keeps insertion order.
func SortContracts(contracts []*models.Contract, order domain.SortOrder) []*models.Contract {
	sorted := make([]*models.Contract, len(contracts))
	copy(sorted, contracts)

	switch order {
	case domain.SortName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
		})
	case domain.SortDate:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].DeployedAt < sorted[j].DeployedAt
		})
	}
	return sorted
}

// Summarize counts verified contracts and contracts per network.
func Summarize(contracts []*models.Contract) ContractSummary {
	verified := lo.CountBy(contracts, func(c *models.Contract) bool { return c.Verified })
	return ContractSummary{
		Total:      len(contracts),
		Verified:   verified,
		Unverified: len(contracts) - verified,
		ByNetwork: lo.CountValuesBy(contracts, func(c *models.Contract) string {
			return c.Network
		}),
	}
}
