package whale

// Summary is the portfolio-level aggregate displayed on the dashboard
// cards.
type Summary struct {
	// TotalInvested is the flat signed sum of every transaction's
	// notional, sells counted negative. It is not clamped at zero.
	TotalInvested Money
	// CurrentValue marks the held (positive net quantity) positions to
	// market. Assets without a known price contribute zero.
	CurrentValue Money
	// Appreciation is (CurrentValue-TotalInvested)/TotalInvested as a
	// percentage, zero when nothing is invested.
	Appreciation Percent
}

// Summarize reduces a transaction history and a table of current prices to
// the portfolio totals. It is a pure function and tolerates an empty or
// stale price table: unknown prices count as zero rather than failing.
func Summarize(txs []Transaction, prices *PriceTable) Summary {
	var s Summary
	for _, tx := range txs {
		if tx.Type.Sign() < 0 {
			s.TotalInvested = s.TotalInvested.Sub(tx.Notional())
		} else {
			s.TotalInvested = s.TotalInvested.Add(tx.Notional())
		}
	}

	for _, pos := range GroupBySymbol(txs) {
		price, ok := prices.Price(pos.Symbol)
		if !ok {
			continue
		}
		s.CurrentValue = s.CurrentValue.Add(price.Mul(pos.NetQuantity))
	}

	if !s.TotalInvested.IsZero() {
		s.Appreciation = s.CurrentValue.Sub(s.TotalInvested).PercentOf(s.TotalInvested)
	}
	return s
}
