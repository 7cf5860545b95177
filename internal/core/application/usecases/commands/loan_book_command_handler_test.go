package commands_test

import (
	"errors"
	"log/slog"
	"sync"
	"testing"

	"library/internal/core/application/usecases/commands"
	"library/internal/core/domain/model/kernel"
	"library/internal/core/domain/model/library"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLoanCommand(t *testing.T, isbn, memberID string) commands.LoanBookCommand {
	t.Helper()
	cmd, err := commands.NewLoanBookCommand(isbn, memberID, "2025-11-03", "2025-11-17")
	require.NoError(t, err)
	return cmd
}

func TestLoanBookCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	store, factory := newCatalogStore(t)
	logger, spy := newTestLogger(t)

	handler := commands.NewLoanBookCommandHandler(factory, logger)
	resp, err := handler.Handle(ctx, newLoanCommand(t, "ISBN-001", "M001"))

	require.NoError(t, err)
	require.NoError(t, resp.LoanID.Validate())
	assert.Equal(t, "ISBN-001", resp.ISBN)
	assert.Equal(t, "M001", resp.MemberID)
	assert.Equal(t, kernel.Date("2025-11-03"), resp.StartDate)
	assert.Equal(t, kernel.Date("2025-11-17"), resp.DueDate)

	assert.False(t, store.Load().IsBookAvailable("ISBN-001"))
	assert.Zero(t, spy.Count())
}

func TestLoanBookCommandHandler_Handle_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		isbn     string
		memberID string
		want     library.Outcome
	}{
		{name: "unknown book", isbn: "ISBN-999", memberID: "M001", want: library.BookNotFound},
		{name: "book already on loan", isbn: "ISBN-001", memberID: "M002", want: library.BookUnavailable},
		{name: "unknown member", isbn: "ISBN-002", memberID: "M999", want: library.MemberNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			store, factory := newCatalogStore(t)
			logger, spy := newTestLogger(t)
			handler := commands.NewLoanBookCommandHandler(factory, logger)

			_, err := handler.Handle(ctx, newLoanCommand(t, "ISBN-001", "M001"))
			require.NoError(t, err)

			_, err = handler.Handle(ctx, newLoanCommand(t, tt.isbn, tt.memberID))

			require.Error(t, err)
			assert.Equal(t, tt.want, library.OutcomeOf(err))
			assert.Equal(t, 1, store.Load().Summary().Loans, "a rejected loan is not recorded")

			require.True(t, spy.Has(slog.LevelWarn, "Loan rejected"))
			outcome, ok := spy.Attr("Loan rejected", "outcome")
			require.True(t, ok)
			assert.Equal(t, tt.want.String(), outcome.String())
		})
	}
}

func TestLoanBookCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockUoWFactory)
	logger, _ := newTestLogger(t)

	_, err := commands.NewLoanBookCommandHandler(factory, logger).Handle(t.Context(), commands.LoanBookCommand{})

	require.ErrorIs(t, err, commands.ErrLoanBookCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestLoanBookCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	store, _ := newCatalogStore(t)
	logger, spy := newTestLogger(t)

	repo := new(MockLibraryRepository)
	uow := new(MockUoW)
	factory := new(MockUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LibraryRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything).Return(store.Load(), nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	_, err := commands.NewLoanBookCommandHandler(factory, logger).Handle(ctx, newLoanCommand(t, "ISBN-001", "M001"))

	require.EqualError(t, err, "commit error")
	assert.Zero(t, spy.Count(), "infrastructure errors are not reported as rejections")
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestLoanBookCommandHandler_Handle_ConcurrentRequestsForOneBook(t *testing.T) {
	ctx := t.Context()
	store, factory := newCatalogStore(t)
	logger, _ := newTestLogger(t)
	handler := commands.NewLoanBookCommandHandler(factory, logger)

	const requests = 16
	results := make(chan error, requests)

	var wg sync.WaitGroup
	for i := range requests {
		memberID := "M001"
		if i%2 == 1 {
			memberID = "M002"
		}

		cmd := newLoanCommand(t, "ISBN-003", memberID)

		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := handler.Handle(ctx, cmd)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		assert.Equal(t, library.BookUnavailable, library.OutcomeOf(err))
	}

	assert.Equal(t, 1, succeeded)
	assert.Len(t, store.Load().ActiveLoans(), 1)
}
