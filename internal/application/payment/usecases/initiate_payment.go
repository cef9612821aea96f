package usecases

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/seralkhatem3210/urway/internal/application/payment/urway"
	"github.com/seralkhatem3210/urway/internal/domain/payment"
	vo "github.com/seralkhatem3210/urway/internal/domain/payment/valueobjects"
	"github.com/seralkhatem3210/urway/internal/shared/biztime"
	"github.com/seralkhatem3210/urway/internal/shared/errors"
	"github.com/seralkhatem3210/urway/internal/shared/logger"
)

type InitiatePaymentCommand struct {
	Reference       string
	AmountInCents   int64
	Currency        string
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	CustomerCity    string
	CustomerZip     string
	CountryCode     string
	Language        string
}

type InitiatePaymentResult struct {
	Reference   string
	RedirectURL string
}

// InitiationConfig resolves the outward-facing callback URL embedded in
// every initiation request.
type InitiationConfig struct {
	BaseURL      string
	CallbackPath string
}

func (c InitiationConfig) callbackURL() string {
	return strings.TrimRight(c.BaseURL, "/") + c.CallbackPath
}

// InitiatePaymentUseCase creates a transaction record and initiates a
// purchase at the gateway, producing the redirect URL the payer is sent
// to.
type InitiatePaymentUseCase struct {
	txRepo  payment.TransactionRepository
	gateway *urway.Client
	filter  *CurrencyFilter
	config  InitiationConfig
	logger  logger.Interface
}

func NewInitiatePaymentUseCase(
	txRepo payment.TransactionRepository,
	gateway *urway.Client,
	filter *CurrencyFilter,
	config InitiationConfig,
	log logger.Interface,
) *InitiatePaymentUseCase {
	return &InitiatePaymentUseCase{
		txRepo:  txRepo,
		gateway: gateway,
		filter:  filter,
		config:  config,
		logger:  log,
	}
}

func (uc *InitiatePaymentUseCase) Execute(ctx context.Context, cmd InitiatePaymentCommand) (*InitiatePaymentResult, error) {
	currency := strings.ToUpper(strings.TrimSpace(cmd.Currency))
	if !uc.filter.Supports(currency) {
		return nil, errors.NewValidationError(
			fmt.Sprintf("currency %s is not supported by this payment provider", currency),
		)
	}

	reference := cmd.Reference
	if reference == "" {
		reference = generateReference()
	}

	existing, err := uc.txRepo.FindAllByReference(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("failed to check reference %s: %w", reference, err)
	}
	for _, prior := range existing {
		if !prior.State().IsFinal() {
			return nil, errors.NewConflictError(
				fmt.Sprintf("an open transaction already exists for reference %s", reference),
			)
		}
	}

	customer := vo.Customer{
		Name:        cmd.CustomerName,
		Email:       cmd.CustomerEmail,
		Address:     cmd.CustomerAddress,
		City:        cmd.CustomerCity,
		Zip:         cmd.CustomerZip,
		CountryCode: cmd.CountryCode,
		Language:    cmd.Language,
	}

	tx, err := payment.NewTransaction(reference, vo.NewMoney(cmd.AmountInCents, currency), customer)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	resp, err := uc.gateway.Initiate(ctx, urway.InitiationRequest{
		TrackID:       tx.Reference(),
		Amount:        tx.Amount().Format(),
		Currency:      tx.Amount().Currency(),
		Country:       customer.CountryCode,
		CustomerEmail: customer.Email,
		Language:      customer.LanguageCode(),
		CallbackURL:   uc.config.callbackURL(),
	})
	if err != nil {
		uc.logger.Errorw("payment initiation failed", "reference", tx.Reference(), "error", err)
		return nil, err
	}

	if !resp.IsSuccessful() && resp.PayID == "" {
		uc.logger.Errorw("gateway rejected payment initiation",
			"reference", tx.Reference(),
			"response_code", resp.ResponseCode,
		)
		return nil, errors.NewGatewayError(fmt.Sprintf(
			"ERRCODE %s : %s", resp.ResponseCode, urway.DescribeResponseCode(resp.ResponseCode),
		))
	}

	if err := tx.MarkPending(); err != nil {
		return nil, fmt.Errorf("failed to mark transaction pending: %w", err)
	}

	if err := uc.txRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	uc.logger.Infow("payment initiated",
		"reference", tx.Reference(),
		"amount", tx.Amount().String(),
		"pay_id", resp.PayID,
	)

	return &InitiatePaymentResult{
		Reference:   tx.Reference(),
		RedirectURL: resp.RedirectURL(),
	}, nil
}

func generateReference() string {
	return fmt.Sprintf("ORD%s%04d", biztime.NowUTC().Format("20060102150405"), rand.IntN(10000))
}
