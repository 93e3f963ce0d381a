package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/clinch-dev/clinch/internal/domain"
	"github.com/clinch-dev/clinch/internal/domain/models"
)

// DropReason explains why a creation event did not become a candidate
type DropReason string

const (
	DropLeak           DropReason = "suspected private key"
	DropInvalidAddress DropReason = "invalid contract address"
	DropInvalidName    DropReason = "invalid contract name"
)

// DroppedCandidate records a creation event that was excluded
type DroppedCandidate struct {
	Name    string
	Address string
	Reason  DropReason
}

// IngestResult contains the candidates read from one broadcast file
type IngestResult struct {
	Path      string
	ChainID   uint64
	Network   string
	Contracts []*models.Contract
	Dropped   []DroppedCandidate
	// Err is set when the transcript could not be read or parsed; Contracts
	// is empty in that case.
	Err error

	// abis holds the compiled ABI found for each candidate. Nothing reaches
	// the vault until StoreABIs is called for the accepted candidates.
	abis map[*models.Contract][]byte
}

// ABIFor returns the compiled ABI found for a candidate of this result.
func (r *IngestResult) ABIFor(c *models.Contract) ([]byte, bool) {
	data, ok := r.abis[c]
	return data, ok
}

// IngestTranscript turns a Foundry broadcast file into registry candidates
type IngestTranscript struct {
	parser    TranscriptParser
	artifacts ArtifactLocator
	vault     ABIVault
	scanner   LeakScanner
	log       *slog.Logger
}

// NewIngestTranscript creates a new IngestTranscript use case
func NewIngestTranscript(
	parser TranscriptParser,
	artifacts ArtifactLocator,
	vault ABIVault,
	scanner LeakScanner,
	log *slog.Logger,
) *IngestTranscript {
	return &IngestTranscript{
		parser:    parser,
		artifacts: artifacts,
		vault:     vault,
		scanner:   scanner,
		log:       log,
	}
}

// Ingest never fails: unreadable transcripts yield an empty result with Err
// set, and every returned record is normalized and leak-free.
func (uc *IngestTranscript) Ingest(ctx context.Context, transcriptPath string) *IngestResult {
	result := &IngestResult{
		Path:      transcriptPath,
		Contracts: []*models.Contract{},
		abis:      make(map[*models.Contract][]byte),
	}

	broadcast, err := uc.parser.ParseBroadcastFile(transcriptPath)
	if err != nil {
		uc.log.Error("failed to read broadcast", "path", transcriptPath, "error", err)
		result.Err = err
		return result
	}

	result.ChainID = broadcast.Chain
	result.Network = domain.NetworkName(broadcast.Chain)
	deployedAt := broadcast.TimestampSeconds()

	for _, tx := range broadcast.Transactions {
		if !tx.IsCreate() {
			continue
		}

		candidate := &models.Contract{
			Name:       tx.ContractName,
			Address:    tx.ContractAddress,
			Network:    result.Network,
			DeployedAt: deployedAt,
		}
		candidate.Normalize()

		if receipt, ok := broadcast.ReceiptFor(tx.Hash); ok {
			candidate.TxHash = receipt.TransactionHash
		}

		from := tx.From()
		if s, ok := from.(string); ok {
			candidate.Deployer = strings.TrimSpace(s)
		}

		if uc.scanner.HasLeak(candidate) {
			uc.log.Warn("skipping contract: deployer field looks like a private key",
				"contract", candidate.Name, "tx", tx.Hash)
			result.Dropped = append(result.Dropped, DroppedCandidate{
				Name: candidate.Name, Address: candidate.Address, Reason: DropLeak,
			})
			continue
		}
		if !domain.IsValidName(candidate.Name) {
			uc.log.Warn("skipping contract with unusable name", "contract", candidate.Name)
			result.Dropped = append(result.Dropped, DroppedCandidate{
				Name: candidate.Name, Address: candidate.Address, Reason: DropInvalidName,
			})
			continue
		}
		if !domain.IsValidAddress(candidate.Address) {
			uc.log.Warn("skipping contract with invalid address",
				"contract", candidate.Name, "address", candidate.Address)
			result.Dropped = append(result.Dropped, DroppedCandidate{
				Name: candidate.Name, Address: candidate.Address, Reason: DropInvalidAddress,
			})
			continue
		}

		if data, ok := uc.artifacts.FindABI(ctx, candidate.Name); ok {
			result.abis[candidate] = data
		}
		result.Contracts = append(result.Contracts, candidate)
	}

	uc.log.Debug("broadcast ingested",
		"path", transcriptPath, "network", result.Network,
		"candidates", len(result.Contracts), "dropped", len(result.Dropped))

	return result
}

// StoreABIs writes the compiled ABI of each accepted candidate into the vault
// and sets its abi reference. It returns the references written so a failed
// registry save can discard them. Candidates without an artifact, or whose
// ABI cannot be stored, keep an empty abi field.
func (uc *IngestTranscript) StoreABIs(ctx context.Context, result *IngestResult, accepted []*models.Contract) []string {
	var written []string
	for _, c := range accepted {
		data, ok := result.ABIFor(c)
		if !ok {
			continue
		}
		ref, err := uc.vault.Store(ctx, c.Name, c.Address, data)
		if err != nil {
			uc.log.Warn("failed to store ABI", "contract", c.Name, "error", err)
			continue
		}
		c.ABI = ref
		written = append(written, ref)
	}
	return written
}

// DiscardABIs removes vault files written by StoreABIs. Best-effort.
func (uc *IngestTranscript) DiscardABIs(ctx context.Context, refs []string) {
	for _, ref := range refs {
		uc.vault.Remove(ctx, ref)
	}
}
