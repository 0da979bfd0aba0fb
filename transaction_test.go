package whale

import (
	"testing"
	"time"
)

func TestNewTransaction(t *testing.T) {
	trans, err := NewTransaction("btc", Q(0.5), USD(40000), "", NewDate(2024, 1, 15))
	if err != nil {
		t.Fatalf("NewTransaction failed: %v", err)
	}
	if trans.ID == "" {
		t.Error("no id assigned")
	}
	if trans.Symbol != "BTC" {
		t.Errorf("symbol = %q, want BTC", trans.Symbol)
	}
	if trans.Type != Buy {
		t.Errorf("type = %q, want buy by default", trans.Type)
	}
	if trans.CreatedAt.IsZero() {
		t.Error("no creation timestamp assigned")
	}

	other, err := NewTransaction("btc", Q(0.5), USD(40000), "", NewDate(2024, 1, 15))
	if err != nil {
		t.Fatal(err)
	}
	if other.ID == trans.ID {
		t.Error("two transactions share an id")
	}
}

func TestNewTransactionRejects(t *testing.T) {
	tests := []struct {
		name     string
		symbol   string
		quantity Quantity
		price    Money
		typ      TransactionType
	}{
		{"empty symbol", "", Q(1), USD(100), Buy},
		{"blank symbol", "   ", Q(1), USD(100), Buy},
		{"negative quantity", "BTC", Q(-1), USD(100), Buy},
		{"negative price", "BTC", Q(1), USD(-100), Buy},
		{"unknown type", "BTC", Q(1), USD(100), "short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewTransaction(tt.symbol, tt.quantity, tt.price, tt.typ, Date{}); err == nil {
				t.Error("invalid transaction accepted")
			}
		})
	}
}

func TestTransactionWhen(t *testing.T) {
	trans := Transaction{
		Date:      NewDate(2024, 3, 1),
		CreatedAt: time.Date(2024, 5, 9, 12, 0, 0, 0, time.UTC),
	}
	if trans.When() != NewDate(2024, 3, 1) {
		t.Errorf("When() = %s, want the explicit date", trans.When())
	}

	trans.Date = Date{}
	if trans.When() != NewDate(2024, 5, 9) {
		t.Errorf("When() = %s, want the created_at day", trans.When())
	}
}

func TestTransactionNotional(t *testing.T) {
	trans := tx(t, "BTC", Buy, 0.5, 40000)
	if !trans.Notional().Equal(usd(20000)) {
		t.Errorf("notional = %s, want $20,000.00", trans.Notional())
	}
}

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		in      string
		want    TransactionType
		wantErr bool
	}{
		{"buy", Buy, false},
		{"SELL", Sell, false},
		{" buy ", Buy, false},
		{"", Buy, false},
		{"hodl", "", true},
	}
	for _, tt := range tests {
		got, err := ParseTransactionType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTransactionType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseTransactionType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
