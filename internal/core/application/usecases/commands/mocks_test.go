package commands_test

import (
	"context"
	"log/slog"
	"testing"

	"library/internal/adapters/out/memory"
	"library/internal/core/application/usecases/commands"
	"library/internal/core/domain/model/author"
	"library/internal/core/domain/model/book"
	"library/internal/core/domain/model/library"
	"library/internal/core/domain/model/member"
	"library/internal/core/ports"
	"library/internal/testutil/logspy"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLibraryRepository struct{ mock.Mock }

func (m *MockLibraryRepository) Get(ctx context.Context) (*library.Library, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*library.Library), args.Error(1)
}

func (m *MockLibraryRepository) Save(ctx context.Context, lib *library.Library) error {
	args := m.Called(ctx, lib)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) LibraryRepository() ports.LibraryRepository {
	args := m.Called()
	return args.Get(0).(ports.LibraryRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// memoryUoWFactory runs handlers against a real in-memory store.
type memoryUoWFactory struct {
	factory *memory.UnitOfWorkFactory
}

func (f memoryUoWFactory) Create() commands.UoW {
	return f.factory.Create()
}

// newCatalogStore returns a store holding two Vazov titles, one Konstantinov
// title and members M001 and M002.
func newCatalogStore(t *testing.T) (*memory.Store, commands.UoWFactory) {
	t.Helper()

	vazov := author.New("Ivan Vazov", 1850)
	konstantinov := author.New("Aleko Konstantinov", 1863)

	lib := library.New()
	for _, b := range []*book.Book{
		book.New("Pod igoto", vazov, 1894, 25.50, "ISBN-001"),
		book.New("Nema zemya", vazov, 1900, 18.90, "ISBN-002"),
		book.New("Bay Ganyo", konstantinov, 1895, 15.00, "ISBN-003"),
	} {
		require.NoError(t, lib.AddBook(b))
		b.Release()
	}
	require.NoError(t, lib.AddMember(member.New("Petar Petrov", "M001", 2023)))
	require.NoError(t, lib.AddMember(member.New("Maria Ivanova", "M002", 2024)))
	t.Cleanup(lib.Release)

	store := memory.NewStore(lib)
	return store, memoryUoWFactory{factory: memory.NewUnitOfWorkFactory(store)}
}

func newTestLogger(t *testing.T) (*slog.Logger, *logspy.Handler) {
	t.Helper()
	spy := logspy.New()
	return spy.Logger(), spy
}
