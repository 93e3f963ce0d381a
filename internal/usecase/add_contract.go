package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/clinch-dev/clinch/internal/domain"
	"github.com/clinch-dev/clinch/internal/domain/models"
)

// AddContractParams contains parameters for adding a contract
type AddContractParams struct {
	Name     string
	Address  string
	Network  string
	ABIPath  string // optional file to copy into the vault
	Verified bool
}

// AddContractResult contains the result of adding a contract
type AddContractResult struct {
	Contract *models.Contract
	// AliasOf is set when the address/network pair was already registered
	AliasOf *models.Contract
	// ABIRequested/ABICaptured report how the optional ABI copy went
	ABIRequested bool
	ABICaptured  bool
}

// AddContract registers a single contract by hand
type AddContract struct {
	repo  ContractRepository
	vault ABIVault
	log   *slog.Logger
	now   func() time.Time
}

// NewAddContract creates a new AddContract use case
func NewAddContract(repo ContractRepository, vault ABIVault, log *slog.Logger) *AddContract {
	return &AddContract{
		repo:  repo,
		vault: vault,
		log:   log,
		now:   time.Now,
	}
}

// Run validates the input, resolves conflicts and appends the record. On a
// name collision nothing is written and a *domain.NameConflictError is returned.
func (uc *AddContract) Run(ctx context.Context, params AddContractParams) (*AddContractResult, error) {
	if err := domain.ValidateContract(params.Name, params.Address, params.Network); err != nil {
		return nil, err
	}

	candidate := &models.Contract{
		Name:     params.Name,
		Address:  params.Address,
		Network:  params.Network,
		Verified: params.Verified,
	}

	contracts := uc.repo.Load(ctx)

	resolution := domain.ResolveConflict(candidate, contracts)
	if err := resolution.Err(candidate); err != nil {
		return nil, err
	}

	result := &AddContractResult{
		Contract:     candidate,
		ABIRequested: params.ABIPath != "",
	}
	if resolution.Outcome == domain.OutcomeAlias {
		result.AliasOf = resolution.Existing
		uc.log.Info("registering alias",
			"name", candidate.Name, "alias_of", resolution.Existing.Name,
			"address", candidate.Address, "network", candidate.Network)
	}

	if params.ABIPath != "" {
		if ref, ok := uc.vault.Capture(ctx, params.ABIPath, candidate.Name, candidate.Address); ok {
			candidate.ABI = ref
			result.ABICaptured = true
		}
	}

	candidate.DeployedAt = uc.now().Unix()

	contracts = append(contracts, candidate)
	if err := uc.repo.Save(ctx, contracts); err != nil {
		return nil, fmt.Errorf("failed to add %q: %w", candidate.Name, err)
	}

	return result, nil
}
