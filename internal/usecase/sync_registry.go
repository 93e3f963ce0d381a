package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/samber/lo"

	"github.com/clinch-dev/clinch/internal/domain"
	"github.com/clinch-dev/clinch/internal/domain/models"
)

// SyncParams contains options for syncing
type SyncParams struct {
	// BroadcastPath overrides auto-discovery of run-latest.json
	BroadcastPath string
	// Git commits the registry directory after a successful sync
	Git bool
	// Push also pushes the commit; implies Git
	Push bool
}

// SyncConflict is a candidate rejected because its name was taken
type SyncConflict struct {
	Contract *models.Contract
	Err      *domain.NameConflictError
}

// SyncAlias is an accepted candidate registered as a secondary name
type SyncAlias struct {
	Contract *models.Contract
	AliasOf  *models.Contract
}

// SyncResult contains the result of syncing
type SyncResult struct {
	BroadcastPath string
	Network       string
	Synced        []*models.Contract
	Aliases       []SyncAlias
	Conflicts     []SyncConflict
	Dropped       []DroppedCandidate
	// ParseErr is set when the broadcast could not be read
	ParseErr error
	Commit   *CommitResult
	// GitErr is reported but never undoes the registry write
	GitErr error
}

// SyncRegistry ingests a broadcast file into the registry
type SyncRegistry struct {
	repo     ContractRepository
	parser   TranscriptParser
	ingestor *IngestTranscript
	vcs      VersionControl
	progress ProgressSink
	log      *slog.Logger
}

// NewSyncRegistry creates a new sync registry use case
func NewSyncRegistry(
	repo ContractRepository,
	parser TranscriptParser,
	ingestor *IngestTranscript,
	vcs VersionControl,
	progress ProgressSink,
	log *slog.Logger,
) *SyncRegistry {
	return &SyncRegistry{
		repo:     repo,
		parser:   parser,
		ingestor: ingestor,
		vcs:      vcs,
		progress: progress,
		log:      log,
	}
}

// Run performs the sync. Only a failed registry save or a missing broadcast
// file is returned as an error.
func (s *SyncRegistry) Run(ctx context.Context, params SyncParams) (*SyncResult, error) {
	path := params.BroadcastPath
	if path == "" {
		latest, err := s.parser.FindLatest()
		if err != nil {
			return nil, err
		}
		path = latest
	}

	s.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "sync",
		Message: fmt.Sprintf("Reading %s", path),
		Spinner: true,
	})

	ingested := s.ingestor.Ingest(ctx, path)
	result := &SyncResult{
		BroadcastPath: path,
		Network:       ingested.Network,
		Dropped:       ingested.Dropped,
		ParseErr:      ingested.Err,
	}

	if len(ingested.Contracts) == 0 {
		s.progress.OnProgress(ctx, ProgressEvent{Stage: "sync", Message: "No new contracts found"})
		return result, nil
	}

	contracts := s.repo.Load(ctx)
	for i, candidate := range ingested.Contracts {
		s.progress.OnProgress(ctx, ProgressEvent{
			Stage:   "sync",
			Current: i + 1,
			Total:   len(ingested.Contracts),
			Message: fmt.Sprintf("Resolving %s", candidate.Name),
			Spinner: true,
		})

		resolution := domain.ResolveConflict(candidate, contracts)
		switch resolution.Outcome {
		case domain.OutcomeNameCollision:
			conflict, _ := resolution.Err(candidate).(*domain.NameConflictError)
			result.Conflicts = append(result.Conflicts, SyncConflict{Contract: candidate, Err: conflict})
			s.log.Info("skipping contract: name already registered",
				"contract", candidate.Name, "suggestion", resolution.Suggestion)
			continue
		case domain.OutcomeAlias:
			result.Aliases = append(result.Aliases, SyncAlias{Contract: candidate, AliasOf: resolution.Existing})
		}

		contracts = append(contracts, candidate)
		result.Synced = append(result.Synced, candidate)
	}

	if len(result.Synced) > 0 {
		// Only accepted candidates reach the vault; a rejected one must not
		// touch files that may belong to a registered record.
		written := s.ingestor.StoreABIs(ctx, ingested, result.Synced)
		if err := s.repo.Save(ctx, contracts); err != nil {
			s.ingestor.DiscardABIs(ctx, written)
			return nil, fmt.Errorf("failed to save synced contracts: %w", err)
		}
	}

	s.progress.OnProgress(ctx, ProgressEvent{
		Stage:   "sync",
		Message: fmt.Sprintf("Added %d contract(s)", len(result.Synced)),
	})

	if (params.Git || params.Push) && len(result.Synced) > 0 && s.vcs != nil {
		result.Commit, result.GitErr = s.commit(ctx, result.Synced, params.Push)
		if result.GitErr != nil {
			s.log.Warn("git sync failed, registry changes are saved locally", "error", result.GitErr)
		}
	}

	return result, nil
}

func (s *SyncRegistry) commit(ctx context.Context, synced []*models.Contract, push bool) (*CommitResult, error) {
	names := lo.Map(synced, func(c *models.Contract, _ int) string { return c.Name })
	message := fmt.Sprintf("chore(clinch): sync %s", strings.Join(names, ", "))

	s.progress.OnProgress(ctx, ProgressEvent{Stage: "git", Message: "Committing registry changes", Spinner: true})
	result, err := s.vcs.CommitRegistry(ctx, filepath.Dir(s.repo.Path()), message, push)
	s.progress.OnProgress(ctx, ProgressEvent{Stage: "git", Message: "Git step finished"})
	return result, err
}
