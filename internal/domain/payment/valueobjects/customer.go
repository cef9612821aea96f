package valueobjects

import "strings"

// Customer carries the payer details forwarded to the gateway with an
// initiation request. All fields are read-only inputs; the payment core
// never mutates them.
type Customer struct {
	Name        string
	Email       string
	Address     string
	City        string
	Zip         string
	CountryCode string
	Language    string
}

// LanguageCode returns the two-letter language code the gateway expects,
// derived from whatever locale string was supplied (e.g. "en_US" -> "en").
func (c Customer) LanguageCode() string {
	lang := strings.TrimSpace(c.Language)
	if len(lang) < 2 {
		return "en"
	}
	return strings.ToLower(lang[:2])
}
