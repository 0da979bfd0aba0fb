package whale

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TransactionType identifies the side of a transaction.
type TransactionType string

const (
	Buy  TransactionType = "buy"
	Sell TransactionType = "sell"
)

// ParseTransactionType parses a transaction type, empty defaults to Buy.
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return Buy, nil
	case Buy:
		return Buy, nil
	case Sell:
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// Sign returns +1 for a buy and -1 for a sell.
func (t TransactionType) Sign() int {
	if t == Sell {
		return -1
	}
	return 1
}

// Transaction is a single buy or sell of a crypto asset. The record is
// immutable once created, corrections are made by removing and re-adding.
type Transaction struct {
	ID        string          `json:"id"`
	Symbol    string          `json:"symbol"`
	Quantity  Quantity        `json:"quantity"`
	PricePaid Money           `json:"price_paid"`
	Type      TransactionType `json:"transaction_type,omitempty"`
	Date      Date            `json:"date,omitzero"`
	CreatedAt time.Time       `json:"created_at,omitzero"`
}

// NewTransaction builds a validated transaction with a fresh id and
// creation timestamp. The type defaults to Buy when empty.
func NewTransaction(symbol string, quantity Quantity, pricePaid Money, typ TransactionType, on Date) (Transaction, error) {
	tx := Transaction{
		ID:        uuid.NewString(),
		Symbol:    NormalizeSymbol(symbol),
		Quantity:  quantity,
		PricePaid: pricePaid,
		Type:      typ,
		Date:      on,
		CreatedAt: time.Now().UTC(),
	}
	if tx.Type == "" {
		tx.Type = Buy
	}
	return tx, tx.Validate()
}

// Validate checks the transaction invariants.
func (t Transaction) Validate() error {
	if t.Symbol == "" {
		return fmt.Errorf("transaction has no symbol")
	}
	if t.Type != Buy && t.Type != Sell {
		return fmt.Errorf("unknown transaction type: %q", t.Type)
	}
	if t.Quantity.IsNegative() {
		return fmt.Errorf("transaction quantity %s is negative", t.Quantity)
	}
	if t.PricePaid.IsNegative() {
		return fmt.Errorf("transaction price %s is negative", t.PricePaid)
	}
	return nil
}

// When returns the transaction's calendar day, falling back to the creation
// timestamp when no explicit date was recorded.
func (t Transaction) When() Date {
	if !t.Date.IsZero() {
		return t.Date
	}
	if !t.CreatedAt.IsZero() {
		return DateOf(t.CreatedAt)
	}
	return Date{}
}

// Notional is the total money moved by the transaction: quantity times
// unit price paid.
func (t Transaction) Notional() Money {
	return t.PricePaid.Mul(t.Quantity)
}

// Equal reports whether two transactions are the same record.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Symbol == o.Symbol &&
		t.Quantity.Equal(o.Quantity) &&
		t.PricePaid.Equal(o.PricePaid) &&
		t.Type == o.Type &&
		t.When() == o.When()
}

// MarshalJSON writes the transaction with a stable key order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("symbol", t.Symbol)
	w.Append("quantity", t.Quantity)
	w.Append("price_paid", t.PricePaid)
	w.Optional("transaction_type", t.Type)
	if !t.Date.IsZero() {
		w.Append("date", t.Date)
	}
	if !t.CreatedAt.IsZero() {
		w.Append("created_at", t.CreatedAt.Format(time.RFC3339))
	}
	return w.MarshalJSON()
}

// NormalizeSymbol maps a user-supplied asset symbol to its canonical
// uppercase form used for identity everywhere.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
