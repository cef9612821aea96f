package urway

import "log/slog"

// Credentials is the merchant secret bundle for one URWAY terminal. It is
// handed to the signing and client code only; both String and LogValue
// redact the secrets so a credentials value is safe to pass through
// logging paths by accident.
type Credentials struct {
	MerchantKey string
	TerminalID  string
	Password    string
	RequestURL  string
}

func (c Credentials) Valid() bool {
	return c.MerchantKey != "" && c.TerminalID != "" && c.Password != "" && c.RequestURL != ""
}

func (c Credentials) String() string {
	return "urway credentials (terminal " + c.TerminalID + ")"
}

// LogValue implements slog.LogValuer.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("terminal_id", c.TerminalID),
		slog.String("merchant_key", "***"),
		slog.String("password", "***"),
	)
}
