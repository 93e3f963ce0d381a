package usecase

import (
	"context"
	"fmt"

	"github.com/clinch-dev/clinch/internal/domain"
	"github.com/clinch-dev/clinch/internal/domain/models"
)

// DeleteContractResult contains the removed record
type DeleteContractResult struct {
	Contract   *models.Contract
	ABIRemoved bool
}

// DeleteContract removes a record and, best-effort, its vault file
type DeleteContract struct {
	repo  ContractRepository
	vault ABIVault
}

// NewDeleteContract creates a new DeleteContract use case
func NewDeleteContract(repo ContractRepository, vault ABIVault) *DeleteContract {
	return &DeleteContract{repo: repo, vault: vault}
}

// Run deletes the named contract. Unknown names leave the registry untouched.
func (uc *DeleteContract) Run(ctx context.Context, name string) (*DeleteContractResult, error) {
	contracts := uc.repo.Load(ctx)

	index := domain.IndexByName(contracts, name)
	if index < 0 {
		return nil, &domain.ContractNotFoundError{Name: name}
	}

	removed := contracts[index]
	remaining := make([]*models.Contract, 0, len(contracts)-1)
	remaining = append(remaining, contracts[:index]...)
	remaining = append(remaining, contracts[index+1:]...)

	if err := uc.repo.Save(ctx, remaining); err != nil {
		return nil, fmt.Errorf("failed to delete %q: %w", removed.Name, err)
	}

	result := &DeleteContractResult{Contract: removed}
	if removed.ABI != "" {
		result.ABIRemoved = uc.vault.Remove(ctx, removed.ABI)
	}

	return result, nil
}
