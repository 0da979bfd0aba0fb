package whale

import "testing"

func marketOf(quotes ...PriceQuote) *PriceTable { return NewPriceTable(quotes) }

func quote(symbol string, price float64) PriceQuote {
	return PriceQuote{Symbol: symbol, CurrentPrice: USD(price)}
}

func TestSummarize(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		s := Summarize(nil, marketOf())
		if !s.TotalInvested.IsZero() {
			t.Errorf("total invested = %s, want zero", s.TotalInvested)
		}
		if !s.CurrentValue.IsZero() {
			t.Errorf("current value = %s, want zero", s.CurrentValue)
		}
		if !s.Appreciation.Equal(0) {
			t.Errorf("appreciation = %s, want 0", s.Appreciation)
		}
	})

	t.Run("marks held positions to market", func(t *testing.T) {
		txs := []Transaction{
			tx(t, "BTC", Buy, 1, 40000),
			tx(t, "ETH", Buy, 2, 2000),
		}
		s := Summarize(txs, marketOf(quote("BTC", 50000), quote("ETH", 2500)))
		if !s.TotalInvested.Equal(usd(44000)) {
			t.Errorf("total invested = %s, want $44,000.00", s.TotalInvested)
		}
		if !s.CurrentValue.Equal(usd(55000)) {
			t.Errorf("current value = %s, want $55,000.00", s.CurrentValue)
		}
		if !s.Appreciation.Equal(25) {
			t.Errorf("appreciation = %s, want 25.00%%", s.Appreciation)
		}
	})

	t.Run("missing price counts as zero", func(t *testing.T) {
		txs := []Transaction{
			tx(t, "BTC", Buy, 1, 40000),
			tx(t, "OBSCURE", Buy, 10, 100),
		}
		s := Summarize(txs, marketOf(quote("BTC", 40000)))
		if !s.TotalInvested.Equal(usd(41000)) {
			t.Errorf("total invested = %s, want $41,000.00", s.TotalInvested)
		}
		if !s.CurrentValue.Equal(usd(40000)) {
			t.Errorf("current value = %s, want $40,000.00", s.CurrentValue)
		}
	})

	t.Run("stale price table never fails", func(t *testing.T) {
		txs := []Transaction{tx(t, "BTC", Buy, 1, 40000)}
		s := Summarize(txs, nil)
		if !s.CurrentValue.IsZero() {
			t.Errorf("current value = %s, want zero", s.CurrentValue)
		}
		if !s.Appreciation.Equal(-100) {
			t.Errorf("appreciation = %s, want -100.00%%", s.Appreciation)
		}
	})

	t.Run("sells keep the invested sum signed", func(t *testing.T) {
		// a profitable exit leaves a negative invested figure under the
		// net capital convention.
		txs := []Transaction{
			tx(t, "BTC", Buy, 1, 40000),
			tx(t, "BTC", Sell, 1, 50000),
		}
		s := Summarize(txs, marketOf(quote("BTC", 50000)))
		if !s.TotalInvested.Equal(usd(-10000)) {
			t.Errorf("total invested = %s, want -$10,000.00", s.TotalInvested)
		}
		// the position is exited, nothing to mark to market.
		if !s.CurrentValue.IsZero() {
			t.Errorf("current value = %s, want zero", s.CurrentValue)
		}
	})
}
