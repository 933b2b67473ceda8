package leave_test

import (
	"testing"

	"elms-portal/internal/leave"
	leaveerrors "elms-portal/internal/leave/errors"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	cases := map[string]leave.Status{
		"":           leave.StatusPending,
		"pending":    leave.StatusPending,
		"Pending":    leave.StatusPending,
		" APPROVED ": leave.StatusApproved,
		"approved":   leave.StatusApproved,
		"Rejected":   leave.StatusRejected,
		"on hold":    leave.StatusUnknown,
	}
	for in, want := range cases {
		assert.Equal(t, want, leave.ParseStatus(in), "input %q", in)
	}
}

func TestParseDecision(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		s, err := leave.ParseDecision("approved")
		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, s)
	})

	t.Run("negative pending is not a decision", func(t *testing.T) {
		_, err := leave.ParseDecision("Pending")
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatus)
	})

	t.Run("negative blank", func(t *testing.T) {
		_, err := leave.ParseDecision(" ")
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatus)
	})
}

func TestPresentIsTotal(t *testing.T) {
	for _, s := range []leave.Status{leave.StatusPending, leave.StatusApproved, leave.StatusRejected, leave.StatusUnknown, leave.Status("weird")} {
		p := leave.Present(s, string(s))
		assert.NotEmpty(t, p.Icon)
		assert.NotEmpty(t, p.Color)
		assert.NotEmpty(t, p.Label)
	}
	assert.True(t, leave.StatusApproved.Decided())
	assert.False(t, leave.StatusPending.Decided())
}

func TestTypes(t *testing.T) {
	assert.True(t, leave.TypeSick.Valid())
	assert.True(t, leave.Type("Emergency Leave").Valid())
	assert.False(t, leave.Type("sick leave").Valid())
}
