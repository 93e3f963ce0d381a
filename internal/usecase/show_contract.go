package usecase

import (
	"context"

	"github.com/clinch-dev/clinch/internal/domain"
	"github.com/clinch-dev/clinch/internal/domain/models"
)

// ShowContractResult contains a contract and what we know around it
type ShowContractResult struct {
	Contract *models.Contract
	// Aliases are other names registered for the same address and network
	Aliases []*models.Contract
	ABI     *ABISummary
	// ABIError explains why ABI is nil when the record references one
	ABIError error
}

// ShowContract is the use case for showing contract details
type ShowContract struct {
	repo      ContractRepository
	vault     ABIVault
	summarize ABISummarizer
}

// NewShowContract creates a new ShowContract use case
func NewShowContract(repo ContractRepository, vault ABIVault, summarize ABISummarizer) *ShowContract {
	return &ShowContract{
		repo:      repo,
		vault:     vault,
		summarize: summarize,
	}
}

// Run looks the contract up by name, case-insensitive
func (uc *ShowContract) Run(ctx context.Context, name string) (*ShowContractResult, error) {
	contracts := uc.repo.Load(ctx)

	contract := domain.FindByName(contracts, name)
	if contract == nil {
		return nil, &domain.ContractNotFoundError{Name: name}
	}

	result := &ShowContractResult{
		Contract: contract,
		Aliases:  domain.Aliases(contracts, contract),
	}

	if contract.ABI != "" && uc.summarize != nil {
		data, err := uc.vault.Read(ctx, contract.ABI)
		if err != nil {
			result.ABIError = err
		} else if summary, err := uc.summarize(data); err != nil {
			result.ABIError = err
		} else {
			result.ABI = summary
		}
	}

	return result, nil
}
