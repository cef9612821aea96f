package urway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/seralkhatem3210/urway/internal/shared/errors"
	"github.com/seralkhatem3210/urway/internal/shared/logger"
)

const (
	// Gateway action codes.
	ActionPurchase = "1"
	ActionInquiry  = "10"

	// ResultSuccessful is the gateway's success marker in both responses
	// and notifications.
	ResultSuccessful = "Successful"

	// ResponseCodeSuccess is the response code of a completed transaction.
	ResponseCodeSuccess = "000"

	// The gateway does not publish a latency budget; the timeout keeps a
	// stuck initiation or inquiry from blocking a checkout request
	// indefinitely.
	requestTimeout = 10 * time.Second

	// Maximum accepted response body size (64KB).
	maxResponseSize = 64 << 10

	// Sales channel marker sent in udf5 on every request.
	channelMarker = "ECOM"
)

// InitiationRequest carries the per-transaction data of a purchase
// initiation (action "1"). Merchant identity and secrets come from the
// client's credentials.
type InitiationRequest struct {
	TrackID       string
	Amount        string
	Currency      string
	Country       string
	CustomerEmail string
	Language      string
	CallbackURL   string
}

// InquiryRequest carries the data of a status inquiry (action "10"): the
// initiation request shape minus the order metadata.
type InquiryRequest struct {
	TrackID       string
	Amount        string
	Currency      string
	CustomerEmail string
	Language      string
}

// Response is the gateway's JSON reply to either action.
type Response struct {
	Result       string `json:"result"`
	PayID        string `json:"payid"`
	TargetURL    string `json:"targetUrl"`
	ResponseCode string `json:"responseCode"`
}

// IsSuccessful reports whether the gateway flagged the operation as
// successful.
func (r *Response) IsSuccessful() bool {
	return r.Result == ResultSuccessful
}

// RedirectURL composes the hosted payment page URL the payer is sent to.
func (r *Response) RedirectURL() string {
	return r.TargetURL + "?paymentid=" + r.PayID
}

// Client talks to the URWAY gateway over JSON HTTPS POST.
type Client struct {
	creds      Credentials
	merchantIP string
	httpClient *http.Client
	logger     logger.Interface
}

// NewClient builds a gateway client. The merchant IP is a required field
// of every gateway request; resolution failure is reported here so a
// misconfigured host fails fast instead of sending malformed requests.
func NewClient(creds Credentials, log logger.Interface) (*Client, error) {
	if !creds.Valid() {
		return nil, fmt.Errorf("incomplete urway credentials for terminal %q", creds.TerminalID)
	}

	ip, err := resolveMerchantIP()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve merchant IP: %w", err)
	}

	return &Client{
		creds:      creds,
		merchantIP: ip,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     log,
	}, nil
}

// Initiate sends a purchase initiation and returns the raw gateway
// response. Callers decide success from Result/PayID.
func (c *Client) Initiate(ctx context.Context, req InitiationRequest) (*Response, error) {
	payload := c.basePayload(req.TrackID, req.Amount, req.Currency, req.CustomerEmail, req.Language)
	payload["action"] = ActionPurchase
	payload["country"] = req.Country
	payload["udf2"] = req.CallbackURL

	return c.post(ctx, payload)
}

// Inquire sends a server-to-server status inquiry for a track id,
// independently confirming the transaction's true status at the gateway.
func (c *Client) Inquire(ctx context.Context, req InquiryRequest) (*Response, error) {
	payload := c.basePayload(req.TrackID, req.Amount, req.Currency, req.CustomerEmail, req.Language)
	payload["action"] = ActionInquiry

	return c.post(ctx, payload)
}

// basePayload assembles the fixed gateway field map shared by both
// actions, signed with the outbound initiation hash.
func (c *Client) basePayload(trackID, amount, currency, email, lang string) map[string]string {
	return map[string]string{
		"trackid":       trackID,
		"terminalId":    c.creds.TerminalID,
		"customerEmail": email,
		"merchantIp":    c.merchantIP,
		"password":      c.creds.Password,
		"currency":      currency,
		"country":       "",
		"amount":        amount,
		"udf1":          "",
		"udf2":          "",
		"udf3":          lang,
		"udf4":          "",
		"udf5":          channelMarker,
		"requestHash": InitiationHash(
			trackID, c.creds.TerminalID, c.creds.Password, c.creds.MerchantKey, amount, currency,
		),
	}
}

func (c *Client) post(ctx context.Context, payload map[string]string) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode gateway request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.creds.RequestURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build gateway request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Errorw("gateway unreachable",
			"track_id", payload["trackid"],
			"action", payload["action"],
			"error", err,
		)
		return nil, errors.NewGatewayError(
			"cannot communicate with the payment gateway, please contact the administrator",
			err.Error(),
		)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, errors.NewGatewayError("failed to read gateway response", err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Errorw("gateway returned non-2xx status",
			"track_id", payload["trackid"],
			"action", payload["action"],
			"status", resp.StatusCode,
		)
		return nil, errors.NewGatewayError(
			"cannot communicate with the payment gateway, please contact the administrator",
			fmt.Sprintf("status %d", resp.StatusCode),
		)
	}

	var gwResp Response
	if err := json.Unmarshal(raw, &gwResp); err != nil {
		return nil, errors.NewGatewayError("invalid gateway response", err.Error())
	}

	return &gwResp, nil
}

// VerifyNotification checks a notification's hash against this client's
// merchant key.
func (c *Client) VerifyNotification(n Notification) bool {
	return n.VerifyHash(c.creds.MerchantKey)
}

// resolveMerchantIP determines the host's outward IP address for the
// gateway's merchantIp field. Hostname resolution is tried first, then the
// host's interface addresses.
func resolveMerchantIP() (string, error) {
	if hostname, err := os.Hostname(); err == nil {
		if addrs, err := net.LookupIP(hostname); err == nil {
			if ip := pickIPv4(addrs); ip != "" {
				return ip, nil
			}
		}
	}

	ifaceAddrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", fmt.Errorf("failed to list interface addresses: %w", err)
	}
	ips := make([]net.IP, 0, len(ifaceAddrs))
	for _, addr := range ifaceAddrs {
		if ipnet, ok := addr.(*net.IPNet); ok {
			ips = append(ips, ipnet.IP)
		}
	}
	if ip := pickIPv4(ips); ip != "" {
		return ip, nil
	}

	return "", fmt.Errorf("no usable IPv4 address on this host")
}

func pickIPv4(addrs []net.IP) string {
	for _, addr := range addrs {
		if v4 := addr.To4(); v4 != nil && !addr.IsLoopback() {
			return v4.String()
		}
	}
	for _, addr := range addrs {
		if v4 := addr.To4(); v4 != nil {
			return v4.String()
		}
	}
	return ""
}
