package valueobjects

import "fmt"

// Money holds an amount in the smallest currency unit plus its ISO
// currency code.
type Money struct {
	amountInCents int64
	currency      string
}

func NewMoney(amountInCents int64, currency string) Money {
	return Money{
		amountInCents: amountInCents,
		currency:      currency,
	}
}

func (m Money) AmountInCents() int64 {
	return m.amountInCents
}

func (m Money) Currency() string {
	return m.currency
}

// Format renders the amount with two decimal places, the representation
// the gateway expects in request fields and hash input.
func (m Money) Format() string {
	return fmt.Sprintf("%.2f", float64(m.amountInCents)/100.0)
}

func (m Money) Equals(other Money) bool {
	return m.amountInCents == other.amountInCents && m.currency == other.currency
}

func (m Money) IsPositive() bool {
	return m.amountInCents > 0
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Format(), m.currency)
}
