package valueobjects

// TransactionState is the lifecycle state of a payment transaction.
//
// The only transitions this service performs are draft|pending -> done and
// draft|pending -> error. A transaction in done, error or cancel absorbs
// any further gateway notification as a no-op.
type TransactionState string

const (
	StateDraft   TransactionState = "draft"
	StatePending TransactionState = "pending"
	StateDone    TransactionState = "done"
	StateError   TransactionState = "error"
	StateCancel  TransactionState = "cancel"
)

func (s TransactionState) IsValid() bool {
	switch s {
	case StateDraft, StatePending, StateDone, StateError, StateCancel:
		return true
	default:
		return false
	}
}

// IsFinal reports whether the state accepts no further outcome.
func (s TransactionState) IsFinal() bool {
	return s == StateDone || s == StateError || s == StateCancel
}

// CanFinalize reports whether a gateway outcome may still be applied.
func (s TransactionState) CanFinalize() bool {
	return s == StateDraft || s == StatePending
}

func (s TransactionState) String() string {
	return string(s)
}
