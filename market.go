package whale

// PriceQuote is one asset's market snapshot as served by the price source.
type PriceQuote struct {
	Symbol       string
	Name         string
	CurrentPrice Money
	Rank         int
}

// PriceTable is a lookup of current prices by normalized symbol. The zero
// value is an empty table, every lookup misses.
type PriceTable struct {
	quotes map[string]PriceQuote
}

// NewPriceTable indexes quotes by normalized symbol. The last quote wins
// on duplicate symbols.
func NewPriceTable(quotes []PriceQuote) *PriceTable {
	t := &PriceTable{quotes: make(map[string]PriceQuote, len(quotes))}
	for _, q := range quotes {
		q.Symbol = NormalizeSymbol(q.Symbol)
		t.quotes[q.Symbol] = q
	}
	return t
}

// Price returns the current price for a symbol, and whether the table
// holds one.
func (t *PriceTable) Price(symbol string) (Money, bool) {
	if t == nil || t.quotes == nil {
		return Money{}, false
	}
	q, ok := t.quotes[NormalizeSymbol(symbol)]
	return q.CurrentPrice, ok
}

// Len returns the number of quotes in the table.
func (t *PriceTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.quotes)
}
