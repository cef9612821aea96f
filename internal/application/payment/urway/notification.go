package urway

// Notification is the raw field map posted back by the gateway after the
// payer completes payment. Field names are fixed by the gateway; absent
// fields read as empty strings.
type Notification map[string]string

func (n Notification) TrackID() string {
	return n["TrackId"]
}

func (n Notification) TranID() string {
	return n["TranId"]
}

func (n Notification) Result() string {
	return n["Result"]
}

func (n Notification) ResponseCode() string {
	return n["ResponseCode"]
}

func (n Notification) Amount() string {
	return n["amount"]
}

func (n Notification) ResponseHash() string {
	return n["responseHash"]
}

// IsSuccessful reports whether the notification's own result flag reads
// success. This flag is client-supplied and unauthenticated; it must never
// be the sole basis for trusting a notification whose hash check failed,
// except where the gateway's integration contract explicitly allows it.
func (n Notification) IsSuccessful() bool {
	return n.Result() == ResultSuccessful
}

// VerifyHash recomputes the notification hash from the notification's own
// fields and the merchant key, and compares it to the supplied digest.
func (n Notification) VerifyHash(merchantKey string) bool {
	return VerifyNotificationHash(n.ResponseHash(), n.TranID(), merchantKey, n.ResponseCode(), n.Amount())
}
