package urway

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Request and notification hashes are SHA-256 digests over a pipe-joined
// field sequence, lowercase hex encoded. The two orderings below are fixed
// by the gateway; transposing any field silently breaks verification on
// every transaction, so both live here and nowhere else.
//
// Absent fields hash as empty strings, matching gateway behavior.

func hashFields(fields ...string) string {
	sum := sha256.Sum256([]byte(strings.Join(fields, "|")))
	return hex.EncodeToString(sum[:])
}

// InitiationHash computes the outbound request hash:
// orderId | terminalId | password | merchantKey | amount | currency.
// The same ordering signs both purchase initiation and status inquiry.
func InitiationHash(trackID, terminalID, password, merchantKey, amount, currency string) string {
	return hashFields(trackID, terminalID, password, merchantKey, amount, currency)
}

// NotificationHash computes the inbound notification hash:
// transactionId | merchantKey | responseCode | amount.
func NotificationHash(tranID, merchantKey, responseCode, amount string) string {
	return hashFields(tranID, merchantKey, responseCode, amount)
}

// VerifyNotificationHash recomputes the notification hash and compares it
// to the supplied digest. The comparison is exact; no case folding or
// normalization is applied.
func VerifyNotificationHash(supplied, tranID, merchantKey, responseCode, amount string) bool {
	return supplied == NotificationHash(tranID, merchantKey, responseCode, amount)
}
