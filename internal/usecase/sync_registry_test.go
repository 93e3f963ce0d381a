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
	"github.com/clinch-dev/clinch/internal/logging"
)

type syncFixture struct {
	repo   *memRepo
	parser *fakeParser
	vcs    *mockVCS
	sink   *recordingSink
	uc     *SyncRegistry
}

func newSyncFixture(existing ...*models.Contract) *syncFixture {
	f := &syncFixture{
		repo: newMemRepo(existing...),
		parser: &fakeParser{
			files:  map[string]*domain.BroadcastFile{broadcastPath: mainnetBroadcast()},
			latest: broadcastPath,
		},
		vcs:  &mockVCS{},
		sink: &recordingSink{},
	}
	locator := &mockLocator{}
	locator.On("FindABI", mock.Anything, mock.Anything).Return(nil, false)
	ingestor := newIngestor(f.parser, locator, &mockVault{})
	f.uc = NewSyncRegistry(f.repo, f.parser, ingestor, f.vcs, f.sink, logging.Discard())
	return f
}

func TestSyncRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("appends new contracts in one save", func(t *testing.T) {
		f := newSyncFixture(&models.Contract{Name: "Existing", Address: addrB, Network: "base"})

		result, err := f.uc.Run(ctx, SyncParams{})
		require.NoError(t, err)
		assert.Equal(t, broadcastPath, result.BroadcastPath)
		assert.Equal(t, []string{"Token", "Vault"}, names(result.Synced))
		assert.Equal(t, []string{"Existing", "Token", "Vault"}, f.repo.names())
		assert.Equal(t, 1, f.repo.saves)
		assert.NotEmpty(t, f.sink.events)
		f.vcs.AssertNotCalled(t, "CommitRegistry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("name collisions are skipped with suggestions", func(t *testing.T) {
		f := newSyncFixture(&models.Contract{Name: "token", Address: addrB, Network: "sepolia"})

		result, err := f.uc.Run(ctx, SyncParams{BroadcastPath: broadcastPath})
		require.NoError(t, err)
		assert.Equal(t, []string{"Vault"}, names(result.Synced))
		require.Len(t, result.Conflicts, 1)
		assert.Equal(t, "Token", result.Conflicts[0].Contract.Name)
		assert.Equal(t, "TOKEN_MAINNET", result.Conflicts[0].Err.Suggestion)
		assert.Equal(t, []string{"token", "Vault"}, f.repo.names())
	})

	t.Run("aliases are accepted", func(t *testing.T) {
		f := newSyncFixture(&models.Contract{Name: "OldToken", Address: addrA, Network: "mainnet"})

		result, err := f.uc.Run(ctx, SyncParams{})
		require.NoError(t, err)
		require.Len(t, result.Aliases, 1)
		assert.Equal(t, "OldToken", result.Aliases[0].AliasOf.Name)
		assert.Len(t, f.repo.contracts, 3)
	})

	t.Run("repeated sync adds nothing", func(t *testing.T) {
		f := newSyncFixture()
		_, err := f.uc.Run(ctx, SyncParams{})
		require.NoError(t, err)

		result, err := f.uc.Run(ctx, SyncParams{})
		require.NoError(t, err)
		assert.Empty(t, result.Synced)
		assert.Len(t, result.Conflicts, 2)
		assert.Equal(t, 1, f.repo.saves)
	})

	t.Run("no broadcast found", func(t *testing.T) {
		f := newSyncFixture()
		f.parser.latest = ""

		_, err := f.uc.Run(ctx, SyncParams{})
		assert.True(t, errors.Is(err, domain.ErrNoBroadcast))
	})

	t.Run("unreadable broadcast saves nothing", func(t *testing.T) {
		f := newSyncFixture()

		result, err := f.uc.Run(ctx, SyncParams{BroadcastPath: "/elsewhere.json"})
		require.NoError(t, err)
		assert.Error(t, result.ParseErr)
		assert.Equal(t, 0, f.repo.saves)
	})

	t.Run("save failure is returned", func(t *testing.T) {
		f := newSyncFixture()
		f.repo.saveErr = errors.New("disk full")

		_, err := f.uc.Run(ctx, SyncParams{})
		assert.ErrorContains(t, err, "disk full")
	})

	t.Run("git commit after sync", func(t *testing.T) {
		f := newSyncFixture()
		f.vcs.On("CommitRegistry", mock.Anything, "/project/.clinch", "chore(clinch): sync Token, Vault", true).
			Return(&CommitResult{Committed: true, Commit: "abc123", Branch: "main", Pushed: true}, nil)

		result, err := f.uc.Run(ctx, SyncParams{Push: true})
		require.NoError(t, err)
		require.NotNil(t, result.Commit)
		assert.True(t, result.Commit.Pushed)
		assert.NoError(t, result.GitErr)
		f.vcs.AssertExpectations(t)
	})

	t.Run("git failure keeps the registry", func(t *testing.T) {
		f := newSyncFixture()
		f.vcs.On("CommitRegistry", mock.Anything, mock.Anything, mock.Anything, false).
			Return(nil, errors.New("not a git repository"))

		result, err := f.uc.Run(ctx, SyncParams{Git: true})
		require.NoError(t, err)
		assert.ErrorContains(t, result.GitErr, "not a git repository")
		assert.Len(t, f.repo.contracts, 2)
	})

	t.Run("git skipped when nothing synced", func(t *testing.T) {
		f := newSyncFixture(
			&models.Contract{Name: "Token", Address: addrA, Network: "mainnet"},
			&models.Contract{Name: "Vault", Address: addrB, Network: "mainnet"},
		)

		result, err := f.uc.Run(ctx, SyncParams{Git: true})
		require.NoError(t, err)
		assert.Nil(t, result.Commit)
		f.vcs.AssertNotCalled(t, "CommitRegistry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
