package mappers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seralkhatem3210/urway/internal/domain/payment"
	vo "github.com/seralkhatem3210/urway/internal/domain/payment/valueobjects"
)

func TestTransactionMapper_RoundTrip(t *testing.T) {
	tx, err := payment.NewTransaction("ORD123", vo.NewMoney(10000, "SAR"), vo.Customer{
		Name:        "Payer Name",
		Email:       "payer@example.com",
		Address:     "1 Main St",
		City:        "Riyadh",
		Zip:         "12345",
		CountryCode: "SA",
		Language:    "en_US",
	})
	require.NoError(t, err)
	require.NoError(t, tx.MarkPending())
	require.True(t, tx.ApplyOutcome("TXN9", false, "declined"))
	tx.SetID(42)

	rebuilt := TransactionToDomain(TransactionToModel(tx))

	assert.Equal(t, tx.ID(), rebuilt.ID())
	assert.Equal(t, tx.Reference(), rebuilt.Reference())
	assert.True(t, tx.Amount().Equals(rebuilt.Amount()))
	assert.Equal(t, tx.Customer(), rebuilt.Customer())
	assert.Equal(t, vo.StateError, rebuilt.State())
	require.NotNil(t, rebuilt.ProviderReference())
	assert.Equal(t, "TXN9", *rebuilt.ProviderReference())
	require.NotNil(t, rebuilt.StateMessage())
	assert.Equal(t, "declined", *rebuilt.StateMessage())
	assert.Equal(t, tx.Version(), rebuilt.Version())
	assert.True(t, tx.CreatedAt().Equal(rebuilt.CreatedAt()))
}

func TestTransactionToModel_NilOptionals(t *testing.T) {
	tx, err := payment.NewTransaction("ORD123", vo.NewMoney(100, "SAR"), vo.Customer{Email: "payer@example.com"})
	require.NoError(t, err)

	model := TransactionToModel(tx)

	assert.Nil(t, model.ProviderReference)
	assert.Nil(t, model.StateMessage)
	assert.Equal(t, "draft", model.State)
}
