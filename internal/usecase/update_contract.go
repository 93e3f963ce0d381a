package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/clinch-dev/clinch/internal/domain"
	"github.com/clinch-dev/clinch/internal/domain/models"
)

// UpdateContractParams lists the fields to change. Nil pointers are left alone.
type UpdateContractParams struct {
	Name     string // current name of the record
	NewName  *string
	Address  *string
	Network  *string
	Verified *bool
	ABIPath  string
}

// HasChanges reports whether any field was supplied
func (p UpdateContractParams) HasChanges() bool {
	return p.NewName != nil || p.Address != nil || p.Network != nil || p.Verified != nil || p.ABIPath != ""
}

// UpdateContractResult contains the record before and after the merge
type UpdateContractResult struct {
	Before *models.Contract
	After  *models.Contract
	// Aliases are records sharing the updated address and network
	Aliases      []*models.Contract
	ABIRequested bool
	ABICaptured  bool
	// OldABIRemoved is set when a recapture replaced and deleted the old file
	OldABIRemoved bool
}

// UpdateContract merges supplied fields into an existing record
type UpdateContract struct {
	repo  ContractRepository
	vault ABIVault
	log   *slog.Logger
}

// NewUpdateContract creates a new UpdateContract use case
func NewUpdateContract(repo ContractRepository, vault ABIVault, log *slog.Logger) *UpdateContract {
	return &UpdateContract{
		repo:  repo,
		vault: vault,
		log:   log,
	}
}

// Run merges the update. Fields that were not supplied keep their values.
func (uc *UpdateContract) Run(ctx context.Context, params UpdateContractParams) (*UpdateContractResult, error) {
	if !params.HasChanges() {
		return nil, domain.ErrNoUpdates
	}

	contracts := uc.repo.Load(ctx)

	index := domain.IndexByName(contracts, params.Name)
	if index < 0 {
		return nil, &domain.ContractNotFoundError{Name: params.Name}
	}

	before := contracts[index]
	after := before.Clone()

	if params.NewName != nil {
		after.Name = strings.TrimSpace(*params.NewName)
	}
	if params.Address != nil {
		after.Address = *params.Address
	}
	if params.Network != nil {
		after.Network = *params.Network
	}
	if params.Verified != nil {
		after.Verified = *params.Verified
	}
	after.Normalize()

	if err := domain.ValidateContract(after.Name, after.Address, after.Network); err != nil {
		return nil, err
	}

	others := make([]*models.Contract, 0, len(contracts)-1)
	others = append(others, contracts[:index]...)
	others = append(others, contracts[index+1:]...)

	if holder := domain.FindByName(others, after.Name); holder != nil {
		return nil, &domain.NameConflictError{
			Name:       after.Name,
			Network:    after.Network,
			Existing:   holder.Address,
			ExistingOn: holder.Network,
			Suggestion: domain.SuggestName(after.Name, after.Network),
		}
	}

	result := &UpdateContractResult{
		Before:       before,
		After:        after,
		ABIRequested: params.ABIPath != "",
	}

	if params.ABIPath != "" {
		if ref, ok := uc.vault.Capture(ctx, params.ABIPath, after.Name, after.Address); ok {
			after.ABI = ref
			result.ABICaptured = true
		}
	}

	replaced := before.ABI != "" && after.ABI != before.ABI

	contracts[index] = after
	if err := uc.repo.Save(ctx, contracts); err != nil {
		if result.ABICaptured && after.ABI != before.ABI {
			uc.vault.Remove(ctx, after.ABI)
		}
		return nil, fmt.Errorf("failed to update %q: %w", before.Name, err)
	}

	// The previous vault file goes once no record points at it any more
	if replaced && !referencesABI(contracts, before.ABI) {
		result.OldABIRemoved = uc.vault.Remove(ctx, before.ABI)
	}

	result.Aliases = domain.Aliases(contracts, after)
	if len(result.Aliases) > 0 {
		uc.log.Debug("updated contract shares its address with other names",
			"name", after.Name, "aliases", len(result.Aliases))
	}

	return result, nil
}

func referencesABI(contracts []*models.Contract, ref string) bool {
	for _, c := range contracts {
		if c.ABI == ref {
			return true
		}
	}
	return false
}
