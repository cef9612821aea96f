package usecases

import (
	"context"
	"fmt"

	"github.com/seralkhatem3210/urway/internal/domain/payment"
	vo "github.com/seralkhatem3210/urway/internal/domain/payment/valueobjects"
	"github.com/seralkhatem3210/urway/internal/shared/errors"
)

type TransactionStatus struct {
	Reference         string
	State             vo.TransactionState
	ProviderReference *string
	StateMessage      *string
}

// GetStatusUseCase backs the payment status page poller.
type GetStatusUseCase struct {
	txRepo payment.TransactionRepository
}

func NewGetStatusUseCase(txRepo payment.TransactionRepository) *GetStatusUseCase {
	return &GetStatusUseCase{txRepo: txRepo}
}

func (uc *GetStatusUseCase) Execute(ctx context.Context, reference string) (*TransactionStatus, error) {
	if reference == "" {
		return nil, errors.NewValidationError("reference is required")
	}

	tx, err := uc.txRepo.GetByReference(ctx, reference)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get transaction %s: %w", reference, err)
	}

	return &TransactionStatus{
		Reference:         tx.Reference(),
		State:             tx.State(),
		ProviderReference: tx.ProviderReference(),
		StateMessage:      tx.StateMessage(),
	}, nil
}
