package usecase

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"github.com/clinch-dev/clinch/internal/domain"
	"github.com/clinch-dev/clinch/internal/domain/models"
)

// memRepo keeps the registry in memory and copies records on the way in and
// out, the same way a file round trip would.
type memRepo struct {
	contracts []*models.Contract
	saves     int
	saveErr   error
	path      string
}

func newMemRepo(contracts ...*models.Contract) *memRepo {
	return &memRepo{contracts: cloneAll(contracts), path: "/project/.clinch/contracts.json"}
}

func cloneAll(in []*models.Contract) []*models.Contract {
	out := make([]*models.Contract, len(in))
	for i, c := range in {
		out[i] = c.Clone()
	}
	return out
}

func (r *memRepo) Load(ctx context.Context) []*models.Contract { return cloneAll(r.contracts) }

func (r *memRepo) Save(ctx context.Context, contracts []*models.Contract) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.contracts = cloneAll(contracts)
	return nil
}

func (r *memRepo) Path() string { return r.path }
func (r *memRepo) Exists() bool { return r.saves > 0 || len(r.contracts) > 0 }

func (r *memRepo) names() []string {
	names := make([]string, len(r.contracts))
	for i, c := range r.contracts {
		names[i] = c.Name
	}
	return names
}

type mockVault struct {
	mock.Mock
}

func (m *mockVault) Capture(ctx context.Context, sourcePath, name, address string) (string, bool) {
	args := m.Called(ctx, sourcePath, name, address)
	return args.String(0), args.Bool(1)
}

func (m *mockVault) Store(ctx context.Context, name, address string, data []byte) (string, error) {
	args := m.Called(ctx, name, address, data)
	return args.String(0), args.Error(1)
}

func (m *mockVault) Read(ctx context.Context, ref string) ([]byte, error) {
	args := m.Called(ctx, ref)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

func (m *mockVault) Remove(ctx context.Context, ref string) bool {
	return m.Called(ctx, ref).Bool(0)
}

type mockLocator struct {
	mock.Mock
}

func (m *mockLocator) FindABI(ctx context.Context, contractName string) ([]byte, bool) {
	args := m.Called(ctx, contractName)
	data, _ := args.Get(0).([]byte)
	return data, args.Bool(1)
}

type mockVCS struct {
	mock.Mock
}

func (m *mockVCS) CommitRegistry(ctx context.Context, dir, message string, push bool) (*CommitResult, error) {
	args := m.Called(ctx, dir, message, push)
	result, _ := args.Get(0).(*CommitResult)
	return result, args.Error(1)
}

// fakeParser serves broadcast files from memory
type fakeParser struct {
	files  map[string]*domain.BroadcastFile
	latest string
}

func (p *fakeParser) ParseBroadcastFile(file string) (*domain.BroadcastFile, error) {
	b, ok := p.files[file]
	if !ok {
		return nil, errors.New("failed to read broadcast file: no such file")
	}
	return b, nil
}

func (p *fakeParser) FindLatest() (string, error) {
	if p.latest == "" {
		return "", domain.ErrNoBroadcast
	}
	return p.latest, nil
}

// recordingSink captures progress messages
type recordingSink struct {
	NopProgress
	events []ProgressEvent
}

func (s *recordingSink) OnProgress(ctx context.Context, event ProgressEvent) {
	s.events = append(s.events, event)
}
