package usecases

import "strings"

// CurrencyFilter is the provider compatibility filter: the URWAY provider
// is only offered when the checkout currency is on the configured
// allow-list. Initiation re-checks the same filter so a bypassed listing
// cannot produce a malformed gateway request.
type CurrencyFilter struct {
	supported map[string]struct{}
}

func NewCurrencyFilter(currencies []string) *CurrencyFilter {
	supported := make(map[string]struct{}, len(currencies))
	for _, code := range currencies {
		code = strings.ToUpper(strings.TrimSpace(code))
		if code != "" {
			supported[code] = struct{}{}
		}
	}
	return &CurrencyFilter{supported: supported}
}

func (f *CurrencyFilter) Supports(currency string) bool {
	_, ok := f.supported[strings.ToUpper(strings.TrimSpace(currency))]
	return ok
}
