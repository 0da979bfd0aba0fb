package whale

import "testing"

// test helpers to keep the tables terse.

func q(v float64) Quantity { return Q(v) }
func usd(v float64) Money  { return USD(v) }

func tx(t *testing.T, symbol string, typ TransactionType, quantity, price float64) Transaction {
	t.Helper()
	trans, err := NewTransaction(symbol, Q(quantity), USD(price), typ, NewDate(2024, 1, 15))
	if err != nil {
		t.Fatalf("NewTransaction(%q) failed: %v", symbol, err)
	}
	return trans
}
