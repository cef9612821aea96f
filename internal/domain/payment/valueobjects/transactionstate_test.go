package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionState_IsValid(t *testing.T) {
	for _, s := range []TransactionState{StateDraft, StatePending, StateDone, StateError, StateCancel} {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, TransactionState("refunded").IsValid())
	assert.False(t, TransactionState("").IsValid())
}

func TestTransactionState_Predicates(t *testing.T) {
	tests := []struct {
		state       TransactionState
		final       bool
		canFinalize bool
	}{
		{StateDraft, false, true},
		{StatePending, false, true},
		{StateDone, true, false},
		{StateError, true, false},
		{StateCancel, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			assert.Equal(t, tt.final, tt.state.IsFinal())
			assert.Equal(t, tt.canFinalize, tt.state.CanFinalize())
		})
	}
}
