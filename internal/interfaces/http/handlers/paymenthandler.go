package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	paymentUsecases "github.com/seralkhatem3210/urway/internal/application/payment/usecases"
	"github.com/seralkhatem3210/urway/internal/shared/logger"
	"github.com/seralkhatem3210/urway/internal/shared/utils"
)

type PaymentHandler struct {
	initiateUC    *paymentUsecases.InitiatePaymentUseCase
	callbackUC    *paymentUsecases.HandleCallbackUseCase
	statusUC      *paymentUsecases.GetStatusUseCase
	statusPageURL string
	logger        logger.Interface
}

func NewPaymentHandler(
	initiateUC *paymentUsecases.InitiatePaymentUseCase,
	callbackUC *paymentUsecases.HandleCallbackUseCase,
	statusUC *paymentUsecases.GetStatusUseCase,
	statusPageURL string,
	log logger.Interface,
) *PaymentHandler {
	return &PaymentHandler{
		initiateUC:    initiateUC,
		callbackUC:    callbackUC,
		statusUC:      statusUC,
		statusPageURL: statusPageURL,
		logger:        log,
	}
}

type InitiatePaymentRequest struct {
	Reference       string `json:"reference"`
	AmountInCents   int64  `json:"amount_in_cents" binding:"required,gt=0"`
	Currency        string `json:"currency" binding:"required,len=3"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email" binding:"required,email"`
	CustomerAddress string `json:"customer_address"`
	CustomerCity    string `json:"customer_city"`
	CustomerZip     string `json:"customer_zip"`
	CountryCode     string `json:"country_code" binding:"required,len=2"`
	Language        string `json:"language"`
}

type InitiatePaymentResponse struct {
	Reference   string `json:"reference"`
	RedirectURL string `json:"redirect_url"`
}

// InitiatePayment creates a transaction and initiates a purchase at the
// gateway, returning the hosted payment page URL to redirect the payer to.
func (h *PaymentHandler) InitiatePayment(c *gin.Context) {
	var req InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorw("failed to bind initiation request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	cmd := paymentUsecases.InitiatePaymentCommand{
		Reference:       req.Reference,
		AmountInCents:   req.AmountInCents,
		Currency:        req.Currency,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerAddress: req.CustomerAddress,
		CustomerCity:    req.CustomerCity,
		CustomerZip:     req.CustomerZip,
		CountryCode:     req.CountryCode,
		Language:        req.Language,
	}

	result, err := h.initiateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Errorw("failed to initiate payment", "error", err, "reference", req.Reference)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "payment initiated", InitiatePaymentResponse{
		Reference:   result.Reference,
		RedirectURL: result.RedirectURL,
	})
}

// HandleCallback receives the gateway's asynchronous notification. The
// gateway posts form data, but may also redirect the payer's browser here
// with query parameters, so both POST and GET are accepted and both field
// sources are merged. A verified notification answers with a redirect to
// the payment status page; a notification that fails verification answers
// with the error envelope.
func (h *PaymentHandler) HandleCallback(c *gin.Context) {
	data := collectNotificationData(c)
	h.logger.Infow("handling gateway notification", "payload", data)

	result, err := h.callbackUC.Execute(c.Request.Context(), data)
	if err != nil {
		h.logger.Errorw("failed to process gateway notification", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Redirect(http.StatusFound, h.statusPageURL+"?reference="+result.Reference)
}

type TransactionStatusResponse struct {
	Reference         string  `json:"reference"`
	State             string  `json:"state"`
	ProviderReference *string `json:"provider_reference,omitempty"`
	StateMessage      *string `json:"state_message,omitempty"`
}

// GetStatus returns the current state of a transaction so the status page
// can poll for the outcome.
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	status, err := h.statusUC.Execute(c.Request.Context(), c.Param("reference"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", TransactionStatusResponse{
		Reference:         status.Reference,
		State:             status.State.String(),
		ProviderReference: status.ProviderReference,
		StateMessage:      status.StateMessage,
	})
}

// collectNotificationData merges form and query values into the raw field
// map handed to the verifier. The last value wins for repeated keys.
func collectNotificationData(c *gin.Context) map[string]string {
	data := make(map[string]string)

	if err := c.Request.ParseForm(); err == nil {
		for key, values := range c.Request.Form {
			if len(values) > 0 {
				data[key] = values[len(values)-1]
			}
		}
	}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			data[key] = values[len(values)-1]
		}
	}

	return data
}
