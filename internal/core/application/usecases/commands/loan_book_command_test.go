package commands_test

import (
	"testing"

	"library/internal/core/application/usecases/commands"
	"library/internal/core/domain/model/kernel"
	"library/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoanBookCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewLoanBookCommand("ISBN-001", "M001", "2025-11-03", "2025-11-17")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())

	assert.Equal(t, "ISBN-001", cmd.ISBN())
	assert.Equal(t, "M001", cmd.MemberID())
	assert.Equal(t, kernel.Date("2025-11-03"), cmd.StartDate())
	assert.Equal(t, kernel.Date("2025-11-17"), cmd.DueDate())
}

func TestNewLoanBookCommand_ReversedDatesAreAccepted(t *testing.T) {
	cmd, err := commands.NewLoanBookCommand("ISBN-001", "M001", "2025-11-17", "2025-11-03")
	require.NoError(t, err)
	assert.Equal(t, kernel.Date("2025-11-17"), cmd.StartDate())
}

func TestNewLoanBookCommand_MissingFields(t *testing.T) {
	tests := []struct {
		name      string
		isbn      string
		memberID  string
		start     string
		due       string
		wantParam string
	}{
		{name: "empty isbn", isbn: "", memberID: "M001", start: "2025-11-03", due: "2025-11-17", wantParam: "isbn"},
		{name: "empty member id", isbn: "ISBN-001", memberID: "  ", start: "2025-11-03", due: "2025-11-17", wantParam: "memberId"},
		{name: "empty start date", isbn: "ISBN-001", memberID: "M001", start: "", due: "2025-11-17", wantParam: "startDate"},
		{name: "empty due date", isbn: "ISBN-001", memberID: "M001", start: "2025-11-03", due: "", wantParam: "dueDate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewLoanBookCommand(tt.isbn, tt.memberID, tt.start, tt.due)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
			assert.Contains(t, err.Error(), tt.wantParam)
		})
	}
}

func TestLoanBookCommand_NotConstructed(t *testing.T) {
	err := commands.LoanBookCommand{}.Validate()
	require.ErrorIs(t, err, commands.ErrLoanBookCommandIsNotConstructed)
}
