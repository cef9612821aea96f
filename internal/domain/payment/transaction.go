package payment

import (
	"fmt"
	"time"

	vo "github.com/seralkhatem3210/urway/internal/domain/payment/valueobjects"
	"github.com/seralkhatem3210/urway/internal/shared/biztime"
)

// Transaction is a payment transaction tracked against the gateway. The
// reference is the merchant-side order identifier echoed by the gateway as
// the track id; providerReference is the gateway-assigned transaction id,
// set once when an outcome is applied and immutable afterwards.
type Transaction struct {
	id                uint
	reference         string
	amount            vo.Money
	customer          vo.Customer
	state             vo.TransactionState
	providerReference *string
	stateMessage      *string

	version   int
	createdAt time.Time
	updatedAt time.Time
}

func NewTransaction(reference string, amount vo.Money, customer vo.Customer) (*Transaction, error) {
	if reference == "" {
		return nil, fmt.Errorf("reference is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive")
	}
	if amount.Currency() == "" {
		return nil, fmt.Errorf("currency is required")
	}

	now := biztime.NowUTC()
	return &Transaction{
		reference: reference,
		amount:    amount,
		customer:  customer,
		state:     vo.StateDraft,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// MarkPending records that the payer has been redirected to the gateway's
// hosted payment page.
func (t *Transaction) MarkPending() error {
	if t.state == vo.StatePending {
		return nil
	}
	if t.state != vo.StateDraft {
		return fmt.Errorf("cannot mark transaction as pending with state %s", t.state)
	}
	t.state = vo.StatePending
	t.touch()
	return nil
}

// ApplyOutcome is the single authoritative state transition for gateway
// outcomes. It records the gateway transaction id and moves
// draft|pending -> done on success, draft|pending -> error otherwise.
// It returns false without touching the transaction when the state is
// already final, which safely absorbs duplicate notifications.
func (t *Transaction) ApplyOutcome(providerReference string, success bool, message string) bool {
	if !t.state.CanFinalize() {
		return false
	}

	if providerReference != "" {
		t.providerReference = &providerReference
	}
	if success {
		t.state = vo.StateDone
		t.stateMessage = nil
	} else {
		t.state = vo.StateError
		t.stateMessage = &message
	}
	t.touch()
	return true
}

func (t *Transaction) touch() {
	t.updatedAt = biztime.NowUTC()
	t.version++
}

func (t *Transaction) ID() uint {
	return t.id
}

// SetID sets the transaction ID after persistence (used by the repository
// after Create).
func (t *Transaction) SetID(id uint) {
	t.id = id
}

func (t *Transaction) Reference() string {
	return t.reference
}

func (t *Transaction) Amount() vo.Money {
	return t.amount
}

func (t *Transaction) Customer() vo.Customer {
	return t.customer
}

func (t *Transaction) State() vo.TransactionState {
	return t.state
}

func (t *Transaction) ProviderReference() *string {
	return t.providerReference
}

func (t *Transaction) StateMessage() *string {
	return t.stateMessage
}

func (t *Transaction) Version() int {
	return t.version
}

func (t *Transaction) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Transaction) UpdatedAt() time.Time {
	return t.updatedAt
}

func ReconstructTransaction(
	id uint,
	reference string,
	amount vo.Money,
	customer vo.Customer,
	state vo.TransactionState,
	providerReference, stateMessage *string,
	version int,
	createdAt, updatedAt time.Time,
) *Transaction {
	return &Transaction{
		id:                id,
		reference:         reference,
		amount:            amount,
		customer:          customer,
		state:             state,
		providerReference: providerReference,
		stateMessage:      stateMessage,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}
