package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the storefront currency.
const DefaultCurrency = "TRY"

// Money is an immutable amount in a single currency.
type Money struct {
	amount   decimal.Decimal
	currency string
}

// NewMoney creates Money from a decimal amount
func NewMoney(amount decimal.Decimal, currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{amount: amount, currency: currency}
}

// NewMoneyFromInt creates Money from whole currency units
func NewMoneyFromInt(amount int64) Money {
	return Money{amount: decimal.NewFromInt(amount), currency: DefaultCurrency}
}

// NewMoneyFromString parses a decimal string into Money
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	return Money{amount: d, currency: DefaultCurrency}, nil
}

// ZeroMoney returns zero in the default currency
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, currency: DefaultCurrency}
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal { return m.amount }

// Currency returns the currency code
func (m Money) Currency() string {
	if m.currency == "" {
		return DefaultCurrency
	}
	return m.currency
}

// Add returns the sum. Currencies must match.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency() != other.Currency() {
		return Money{}, fmt.Errorf("currency mismatch: %s vs %s", m.Currency(), other.Currency())
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.Currency()}, nil
}

// MulInt returns the amount multiplied by an integer factor
func (m Money) MulInt(n int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(n)), currency: m.Currency()}
}

// IsNegative reports whether the amount is below zero
func (m Money) IsNegative() bool { return m.amount.IsNegative() }

// IsZero reports whether the amount is exactly zero
func (m Money) IsZero() bool { return m.amount.IsZero() }

// Equal compares amount and currency
func (m Money) Equal(other Money) bool {
	return m.Currency() == other.Currency() && m.amount.Equal(other.amount)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.String(), m.Currency())
}

// MarshalJSON renders the amount as a JSON number string with the currency.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount   string `json:"amount"`
		Currency string `json:"currency"`
	}{
		Amount:   m.amount.String(),
		Currency: m.Currency(),
	})
}

// UnmarshalJSON accepts {"amount":"123.45","currency":"TRY"}.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw struct {
		Amount   string `json:"amount"`
		Currency string `json:"currency"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d, err := decimal.NewFromString(raw.Amount)
	if err != nil {
		return fmt.Errorf("invalid money amount %q: %w", raw.Amount, err)
	}
	m.amount = d
	m.currency = raw.Currency
	if m.currency == "" {
		m.currency = DefaultCurrency
	}
	return nil
}

// Value implements driver.Valuer, persisting the bare amount.
func (m Money) Value() (driver.Value, error) {
	return m.amount.String(), nil
}

// Scan implements sql.Scanner for numeric and text columns.
func (m *Money) Scan(value any) error {
	if value == nil {
		*m = ZeroMoney()
		return nil
	}
	var d decimal.Decimal
	if err := d.Scan(value); err != nil {
		return fmt.Errorf("scan money: %w", err)
	}
	m.amount = d
	m.currency = DefaultCurrency
	return nil
}
