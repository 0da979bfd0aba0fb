package whale

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// SnapshotVersion is the format version written in every export.
const SnapshotVersion = "1.0"

// Snapshot is the self-contained export document of a portfolio: the
// metadata envelope plus the transaction history projected to the fields
// a foreign installation needs to rebuild the positions.
type Snapshot struct {
	PortfolioName string
	ExportedAt    time.Time
	Version       string
	Transactions  []Transaction
}

// BuildSnapshot projects a portfolio into an export document stamped with
// the current time.
func BuildSnapshot(p *Portfolio) *Snapshot {
	s := &Snapshot{
		PortfolioName: p.Name(),
		ExportedAt:    time.Now().UTC(),
		Version:       SnapshotVersion,
	}
	for _, tx := range p.transactions {
		s.Transactions = append(s.Transactions, tx)
	}
	return s
}

// Encode writes the snapshot as indented JSON with a stable key order.
func (s *Snapshot) Encode(w io.Writer) error {
	var doc jsonObjectWriter
	doc.Append("portfolio_name", s.PortfolioName)
	doc.Append("exported_at", s.ExportedAt.Format(time.RFC3339))
	doc.Append("version", s.Version)

	lines := make([]json.RawMessage, 0, len(s.Transactions))
	for _, tx := range s.Transactions {
		var line jsonObjectWriter
		line.Append("id", tx.ID)
		line.Append("symbol", tx.Symbol)
		line.Append("quantity", tx.Quantity)
		line.Append("price_paid", tx.PricePaid)
		line.Append("date", tx.When())
		raw, err := line.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot encode transaction %q: %w", tx.ID, err)
		}
		lines = append(lines, raw)
	}
	doc.Append("transactions", lines)

	raw, err := doc.MarshalJSON()
	if err != nil {
		return err
	}
	var pretty json.RawMessage = raw
	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

// DecodeSnapshot reads and validates an export document. Validation is
// atomic: the first invalid transaction rejects the whole document with a
// *ValidationError and nothing is admitted.
//
// Only symbol, quantity and price_paid are required on each transaction.
// Negative amounts are rejected too, slightly stricter than a bare
// presence check, so an accepted document always satisfies the
// Transaction invariants. Ids are preserved when present, the transaction
// type information is not part of the format so imported transactions are
// buys.
func DecodeSnapshot(r io.Reader) (*Snapshot, error) {
	var doc struct {
		PortfolioName string            `json:"portfolio_name"`
		ExportedAt    time.Time         `json:"exported_at"`
		Version       string            `json:"version"`
		Transactions  []json.RawMessage `json:"transactions"`
	}
	dec := json.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("invalid snapshot document: %w", err)
	}
	if doc.Transactions == nil {
		return nil, fmt.Errorf("invalid snapshot document: no transactions list")
	}

	s := &Snapshot{
		PortfolioName: doc.PortfolioName,
		ExportedAt:    doc.ExportedAt,
		Version:       doc.Version,
	}
	for i, raw := range doc.Transactions {
		var line struct {
			ID        string   `json:"id"`
			Symbol    string   `json:"symbol"`
			Quantity  Quantity `json:"quantity"`
			PricePaid Money    `json:"price_paid"`
			Date      Date     `json:"date"`
			CreatedAt string   `json:"created_at"`
		}
		if err := json.Unmarshal(raw, &line); err != nil {
			return nil, fmt.Errorf("transaction %d is invalid: %w", i+1, err)
		}
		switch {
		case NormalizeSymbol(line.Symbol) == "":
			return nil, &ValidationError{Index: i, Field: "symbol"}
		case line.Quantity.IsZero() || line.Quantity.IsNegative():
			return nil, &ValidationError{Index: i, Field: "quantity"}
		case line.PricePaid.IsZero() || line.PricePaid.IsNegative():
			return nil, &ValidationError{Index: i, Field: "price_paid"}
		}

		on := line.Date
		if on.IsZero() && line.CreatedAt != "" {
			if d, err := ParseDate(line.CreatedAt); err == nil {
				on = d
			}
		}
		s.Transactions = append(s.Transactions, Transaction{
			ID:        line.ID,
			Symbol:    NormalizeSymbol(line.Symbol),
			Quantity:  line.Quantity,
			PricePaid: line.PricePaid,
			Type:      Buy,
			Date:      on,
			CreatedAt: time.Now().UTC(),
		})
	}
	return s, nil
}

// Restore replaces the portfolio's transactions with the snapshot's,
// assigning fresh ids where the document carried none.
func (s *Snapshot) Restore(p *Portfolio) error {
	txs := make([]Transaction, len(s.Transactions))
	copy(txs, s.Transactions)
	for i := range txs {
		if txs[i].ID == "" {
			tx, err := NewTransaction(txs[i].Symbol, txs[i].Quantity, txs[i].PricePaid, txs[i].Type, txs[i].Date)
			if err != nil {
				return err
			}
			txs[i] = tx
		}
	}
	return p.Replace(txs)
}
