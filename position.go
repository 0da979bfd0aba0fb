package whale

import "sort"

// AssetPosition is the aggregate of all transactions on one asset.
//
// TotalInvested is the net capital committed: buys add quantity times
// price, sells subtract it. This is deliberately not a cost-basis figure,
// selling above the average purchase price can drive TotalInvested
// negative while quantity remains positive.
type AssetPosition struct {
	Symbol        string
	NetQuantity   Quantity
	TotalInvested Money
	AverageCost   Money
	Transactions  []Transaction
}

// GroupBySymbol partitions transactions by normalized symbol and reduces
// each group to an AssetPosition.
//
// Positions whose net quantity is zero or negative (fully exited or
// oversold by out-of-band history) are dropped from the result. Remaining
// positions are sorted by TotalInvested descending, symbol ascending on
// ties, so the result is a pure function of the input set.
func GroupBySymbol(txs []Transaction) []AssetPosition {
	bySymbol := make(map[string]*AssetPosition)
	var order []string

	for _, tx := range txs {
		symbol := NormalizeSymbol(tx.Symbol)
		pos, ok := bySymbol[symbol]
		if !ok {
			pos = &AssetPosition{Symbol: symbol}
			bySymbol[symbol] = pos
			order = append(order, symbol)
		}
		if tx.Type.Sign() < 0 {
			pos.NetQuantity = pos.NetQuantity.Sub(tx.Quantity)
			pos.TotalInvested = pos.TotalInvested.Sub(tx.Notional())
		} else {
			pos.NetQuantity = pos.NetQuantity.Add(tx.Quantity)
			pos.TotalInvested = pos.TotalInvested.Add(tx.Notional())
		}
		pos.Transactions = append(pos.Transactions, tx)
	}

	positions := make([]AssetPosition, 0, len(order))
	for _, symbol := range order {
		pos := bySymbol[symbol]
		if !pos.NetQuantity.IsPositive() {
			continue
		}
		pos.AverageCost = pos.TotalInvested.Div(pos.NetQuantity)
		positions = append(positions, *pos)
	}

	sort.SliceStable(positions, func(i, j int) bool {
		if !positions[i].TotalInvested.Equal(positions[j].TotalInvested) {
			return positions[i].TotalInvested.GreaterThan(positions[j].TotalInvested)
		}
		return positions[i].Symbol < positions[j].Symbol
	})
	return positions
}
