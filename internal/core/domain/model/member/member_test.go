package member_test

import (
	"testing"

	"library/internal/core/domain/model/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("should keep the given identifier", func(t *testing.T) {
		m := member.New("Petar Petrov", "M001", 2023)

		require.NoError(t, m.Validate())
		assert.Equal(t, "Petar Petrov", m.Name())
		assert.Equal(t, "M001", m.ID())
		assert.Equal(t, 2023, m.YearJoined())
	})

	t.Run("should replace an empty identifier with UNKNOWN", func(t *testing.T) {
		m := member.New("Maria Ivanova", "", 2024)

		assert.Equal(t, member.UnknownID, m.ID())
	})
}

func TestNewDefault(t *testing.T) {
	m := member.NewDefault()

	assert.Equal(t, "Guest", m.Name())
	assert.Equal(t, "G000", m.ID())
	assert.Equal(t, 2024, m.YearJoined())
}

func TestMember_Validate(t *testing.T) {
	var m member.Member

	assert.Equal(t, member.ErrMemberIsNotConstructed, m.Validate())
}

func TestMember_String(t *testing.T) {
	assert.Equal(t, "Petar Petrov [ID: M001]", member.New("Petar Petrov", "M001", 2023).String())
}
