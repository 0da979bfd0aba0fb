package whale

import "testing"

func TestGroupBySymbol(t *testing.T) {
	t.Run("accumulates buys", func(t *testing.T) {
		txs := []Transaction{
			tx(t, "BTC", Buy, 1.5, 40000),
			tx(t, "BTC", Buy, 0.5, 44000),
		}
		positions := GroupBySymbol(txs)
		if len(positions) != 1 {
			t.Fatalf("got %d positions, want 1", len(positions))
		}
		pos := positions[0]
		if pos.Symbol != "BTC" {
			t.Errorf("symbol = %q, want BTC", pos.Symbol)
		}
		if !pos.NetQuantity.Equal(q(2)) {
			t.Errorf("net quantity = %s, want 2", pos.NetQuantity)
		}
		if !pos.TotalInvested.Equal(usd(82000)) {
			t.Errorf("total invested = %s, want $82,000.00", pos.TotalInvested)
		}
		if !pos.AverageCost.Equal(usd(41000)) {
			t.Errorf("average cost = %s, want $41,000.00", pos.AverageCost)
		}
	})

	t.Run("sells subtract net capital", func(t *testing.T) {
		// selling above the purchase price reduces the committed capital,
		// this is net capital and not a cost basis.
		txs := []Transaction{
			tx(t, "ETH", Buy, 2, 2000),
			tx(t, "ETH", Sell, 1, 2500),
		}
		positions := GroupBySymbol(txs)
		if len(positions) != 1 {
			t.Fatalf("got %d positions, want 1", len(positions))
		}
		pos := positions[0]
		if !pos.NetQuantity.Equal(q(1)) {
			t.Errorf("net quantity = %s, want 1", pos.NetQuantity)
		}
		if !pos.TotalInvested.Equal(usd(1500)) {
			t.Errorf("total invested = %s, want $1,500.00", pos.TotalInvested)
		}
		if !pos.AverageCost.Equal(usd(1500)) {
			t.Errorf("average cost = %s, want $1,500.00", pos.AverageCost)
		}
	})

	t.Run("drops exited and oversold positions", func(t *testing.T) {
		txs := []Transaction{
			tx(t, "DOGE", Buy, 100, 0.1),
			tx(t, "DOGE", Sell, 100, 0.2),
			tx(t, "SHIB", Sell, 50, 0.01),
			tx(t, "BTC", Buy, 1, 30000),
		}
		positions := GroupBySymbol(txs)
		if len(positions) != 1 {
			t.Fatalf("got %d positions, want 1", len(positions))
		}
		if positions[0].Symbol != "BTC" {
			t.Errorf("remaining symbol = %q, want BTC", positions[0].Symbol)
		}
	})

	t.Run("normalizes symbol case", func(t *testing.T) {
		txs := []Transaction{
			tx(t, "btc", Buy, 1, 30000),
			tx(t, "BTC", Buy, 1, 30000),
		}
		positions := GroupBySymbol(txs)
		if len(positions) != 1 {
			t.Fatalf("got %d positions, want 1", len(positions))
		}
		if !positions[0].NetQuantity.Equal(q(2)) {
			t.Errorf("net quantity = %s, want 2", positions[0].NetQuantity)
		}
	})

	t.Run("sorts by invested capital descending", func(t *testing.T) {
		txs := []Transaction{
			tx(t, "ADA", Buy, 1000, 0.5),
			tx(t, "BTC", Buy, 1, 30000),
			tx(t, "ETH", Buy, 2, 2000),
		}
		positions := GroupBySymbol(txs)
		want := []string{"BTC", "ETH", "ADA"}
		if len(positions) != len(want) {
			t.Fatalf("got %d positions, want %d", len(positions), len(want))
		}
		for i, symbol := range want {
			if positions[i].Symbol != symbol {
				t.Errorf("positions[%d] = %q, want %q", i, positions[i].Symbol, symbol)
			}
		}
	})

	t.Run("order independent", func(t *testing.T) {
		a := tx(t, "BTC", Buy, 1, 40000)
		b := tx(t, "ETH", Buy, 2, 2000)
		c := tx(t, "BTC", Sell, 0.5, 45000)

		forward := GroupBySymbol([]Transaction{a, b, c})
		backward := GroupBySymbol([]Transaction{c, b, a})
		if len(forward) != len(backward) {
			t.Fatalf("got %d vs %d positions", len(forward), len(backward))
		}
		for i := range forward {
			if forward[i].Symbol != backward[i].Symbol ||
				!forward[i].NetQuantity.Equal(backward[i].NetQuantity) ||
				!forward[i].TotalInvested.Equal(backward[i].TotalInvested) {
				t.Errorf("position %d differs between orderings", i)
			}
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		txs := []Transaction{
			tx(t, "BTC", Buy, 1, 40000),
			tx(t, "ETH", Buy, 2, 2000),
		}
		first := GroupBySymbol(txs)
		second := GroupBySymbol(txs)
		if len(first) != len(second) {
			t.Fatalf("got %d vs %d positions", len(first), len(second))
		}
		for i := range first {
			if first[i].Symbol != second[i].Symbol || !first[i].TotalInvested.Equal(second[i].TotalInvested) {
				t.Errorf("position %d differs between runs", i)
			}
		}
	})

	t.Run("never invents capital", func(t *testing.T) {
		// the invested total of the kept positions is bounded by the
		// gross money moved by the history.
		txs := []Transaction{
			tx(t, "BTC", Buy, 1, 40000),
			tx(t, "BTC", Sell, 0.25, 45000),
			tx(t, "ETH", Buy, 3, 2000),
			tx(t, "ETH", Sell, 1, 1500),
			tx(t, "ADA", Buy, 1000, 0.5),
		}
		var gross Money
		for _, trans := range txs {
			n := trans.Notional()
			if n.IsNegative() {
				n = n.Neg()
			}
			gross = gross.Add(n)
		}
		var invested Money
		for _, pos := range GroupBySymbol(txs) {
			invested = invested.Add(pos.TotalInvested)
		}
		if invested.GreaterThan(gross) {
			t.Errorf("invested %s exceeds gross notional %s", invested, gross)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if positions := GroupBySymbol(nil); len(positions) != 0 {
			t.Errorf("got %d positions, want 0", len(positions))
		}
	})
}
