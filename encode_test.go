package whale

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeDecodePortfolio(t *testing.T) {
	p := NewPortfolio("mine")
	if err := p.Append(
		tx(t, "BTC", Buy, 0.5, 40000),
		tx(t, "ETH", Sell, 1, 2500),
	); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := EncodePortfolio(&buf, p); err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	// quantities are persisted as bare numbers, not quoted strings.
	if !strings.Contains(lines[0], `"quantity":0.5`) {
		t.Errorf("line 0 does not carry a bare quantity: %s", lines[0])
	}

	got, err := DecodePortfolio("mine", &buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if got.Len() != p.Len() {
		t.Fatalf("got %d transactions, want %d", got.Len(), p.Len())
	}
	for i, want := range p.All() {
		if !got.All()[i].Equal(want) {
			t.Errorf("transaction %d = %+v, want %+v", i, got.All()[i], want)
		}
	}
}

func TestDecodePortfolioSkipsEmptyLines(t *testing.T) {
	data := `{"id":"a","symbol":"BTC","quantity":1,"price_paid":30000}

{"id":"b","symbol":"ETH","quantity":2,"price_paid":2000,"transaction_type":"sell"}
`
	p, err := DecodePortfolio("mine", strings.NewReader(data))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if p.Len() != 2 {
		t.Fatalf("got %d transactions, want 2", p.Len())
	}
	if p.All()[0].Type != Buy {
		t.Errorf("missing type defaulted to %q, want buy", p.All()[0].Type)
	}
	if p.All()[1].Type != Sell {
		t.Errorf("type = %q, want sell", p.All()[1].Type)
	}
}

func TestDecodePortfolioReportsLine(t *testing.T) {
	data := `{"id":"a","symbol":"BTC","quantity":1,"price_paid":30000}
{"id":"b","symbol":"ETH","quantity":"not a number","price_paid":2000}
`
	_, err := DecodePortfolio("mine", strings.NewReader(data))
	if err == nil {
		t.Fatal("invalid line accepted")
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q does not name the offending line", err)
	}
}
