package usecases

import (
	"context"
	"fmt"

	"github.com/seralkhatem3210/urway/internal/application/payment/urway"
	"github.com/seralkhatem3210/urway/internal/domain/payment"
	vo "github.com/seralkhatem3210/urway/internal/domain/payment/valueobjects"
	"github.com/seralkhatem3210/urway/internal/shared/errors"
	"github.com/seralkhatem3210/urway/internal/shared/logger"
)

type HandleCallbackResult struct {
	Reference    string
	State        vo.TransactionState
	AlreadyFinal bool
}

// HandleCallbackUseCase verifies an inbound gateway notification and
// applies the outcome to the referenced transaction.
//
// Verification precedence: a matching notification hash, or the
// notification's own success flag, accepts the notification outright.
// Anything else triggers an independent status inquiry at the gateway; an
// inquiry that does not confirm success rejects the notification with the
// mapped response code, and an inquiry that does confirm success still
// rejects it as tampered, because the hash mismatch remains unexplained.
type HandleCallbackUseCase struct {
	txRepo  payment.TransactionRepository
	gateway *urway.Client
	logger  logger.Interface
}

func NewHandleCallbackUseCase(
	txRepo payment.TransactionRepository,
	gateway *urway.Client,
	log logger.Interface,
) *HandleCallbackUseCase {
	return &HandleCallbackUseCase{
		txRepo:  txRepo,
		gateway: gateway,
		logger:  log,
	}
}

func (uc *HandleCallbackUseCase) Execute(ctx context.Context, data map[string]string) (*HandleCallbackResult, error) {
	n := urway.Notification(data)

	tx, err := uc.locateTransaction(ctx, n)
	if err != nil {
		return nil, err
	}

	if err := uc.verifyAuthenticity(ctx, tx, n); err != nil {
		return nil, err
	}

	return uc.applyOutcome(ctx, tx, n)
}

// locateTransaction resolves the notification's track id to exactly one
// transaction. Zero or multiple matches are fatal to the request.
func (uc *HandleCallbackUseCase) locateTransaction(ctx context.Context, n urway.Notification) (*payment.Transaction, error) {
	reference := n.TrackID()
	if reference == "" {
		uc.logger.Errorw("notification without track id, transaction failed at the gateway",
			"response_code", n.ResponseCode(),
			"payload", map[string]string(n),
		)
		msg := "the transaction has failed"
		if code := n.ResponseCode(); code != "" {
			msg += fmt.Sprintf(": %s", urway.DescribeResponseCode(code))
		}
		return nil, errors.NewValidationError(msg)
	}

	matches, err := uc.txRepo.FindAllByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to look up transactions for reference %s: %w", reference, err)
	}

	switch len(matches) {
	case 0:
		uc.logger.Errorw("no transaction found for notification", "reference", reference)
		return nil, errors.NewNotFoundError(fmt.Sprintf("no transaction found for reference %s", reference))
	case 1:
		return matches[0], nil
	default:
		uc.logger.Errorw("multiple transactions share one reference",
			"reference", reference,
			"count", len(matches),
		)
		return nil, errors.NewConflictError(
			fmt.Sprintf("%d transactions found for reference %s", len(matches), reference),
		)
	}
}

func (uc *HandleCallbackUseCase) verifyAuthenticity(ctx context.Context, tx *payment.Transaction, n urway.Notification) error {
	hashValid := uc.gateway.VerifyNotification(n)
	if hashValid {
		return nil
	}

	if n.IsSuccessful() {
		// The gateway's integration contract allows notifications without
		// a usable hash when the result flag reads success. This trusts
		// client-supplied status; keep the occurrence visible.
		uc.logger.Warnw("notification accepted on result flag despite hash mismatch",
			"reference", tx.Reference(),
			"provider_reference", n.TranID(),
		)
		return nil
	}

	inquiry, err := uc.gateway.Inquire(ctx, urway.InquiryRequest{
		TrackID:       tx.Reference(),
		Amount:        n.Amount(),
		Currency:      tx.Amount().Currency(),
		CustomerEmail: tx.Customer().Email,
		Language:      tx.Customer().LanguageCode(),
	})
	if err != nil {
		return err
	}

	if !inquiry.IsSuccessful() || inquiry.ResponseCode != urway.ResponseCodeSuccess {
		uc.logger.Errorw("status inquiry did not confirm the transaction",
			"reference", tx.Reference(),
			"inquiry_response_code", inquiry.ResponseCode,
			"payload", map[string]string(n),
		)
		return errors.NewGatewayError(fmt.Sprintf(
			"ERRCODE %s : %s | the transaction %s is invalid, please try again",
			inquiry.ResponseCode,
			urway.DescribeResponseCode(inquiry.ResponseCode),
			tx.Reference(),
		))
	}

	// The inquiry confirms success, but the notification's hash still does
	// not match what the shared secrets produce: the callback payload
	// cannot be trusted.
	uc.logger.Errorw("notification hash mismatch not rescued by inquiry",
		"reference", tx.Reference(),
		"response_code", n.ResponseCode(),
		"payload", map[string]string(n),
	)
	return errors.NewIntegrityError(fmt.Sprintf(
		"ERRCODE %s : %s | the notification received for %s might be tampered, please try again",
		n.ResponseCode(),
		urway.DescribeResponseCode(n.ResponseCode()),
		tx.Reference(),
	))
}

func (uc *HandleCallbackUseCase) applyOutcome(ctx context.Context, tx *payment.Transaction, n urway.Notification) (*HandleCallbackResult, error) {
	success := n.IsSuccessful()
	message := ""
	if !success {
		message = fmt.Sprintf("ERRCODE %s : %s | transaction failed %s",
			n.ResponseCode(),
			urway.DescribeResponseCode(n.ResponseCode()),
			n.TrackID(),
		)
	}

	if !tx.ApplyOutcome(n.TranID(), success, message) {
		uc.logger.Infow("notification for already finalized transaction ignored",
			"reference", tx.Reference(),
			"state", tx.State(),
		)
		return &HandleCallbackResult{
			Reference:    tx.Reference(),
			State:        tx.State(),
			AlreadyFinal: true,
		}, nil
	}

	if err := uc.txRepo.Update(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to update transaction %s: %w", tx.Reference(), err)
	}

	uc.logger.Infow("notification processed",
		"reference", tx.Reference(),
		"provider_reference", n.TranID(),
		"state", tx.State(),
	)

	return &HandleCallbackResult{
		Reference: tx.Reference(),
		State:     tx.State(),
	}, nil
}
