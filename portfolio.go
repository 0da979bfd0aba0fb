package whale

import (
	"fmt"
	"iter"
)

// Portfolio is a named, insertion-ordered list of transactions. It is the
// single source of truth, every view (positions, summary) is derived from
// it on demand.
type Portfolio struct {
	name         string
	transactions []Transaction
}

// NewPortfolio creates an empty portfolio with a display name.
func NewPortfolio(name string) *Portfolio {
	return &Portfolio{name: name}
}

// Name returns the portfolio's display name.
func (p *Portfolio) Name() string { return p.name }

// Len returns the number of transactions.
func (p *Portfolio) Len() int { return len(p.transactions) }

// Append validates and appends a transaction, preserving insertion order.
func (p *Portfolio) Append(txs ...Transaction) error {
	for _, tx := range txs {
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("cannot append transaction: %w", err)
		}
		if tx.ID != "" {
			if _, ok := p.index(tx.ID); ok {
				return fmt.Errorf("duplicate transaction id %q", tx.ID)
			}
		}
		p.transactions = append(p.transactions, tx)
	}
	return nil
}

// Remove deletes the transaction with the given id. It returns a
// *NotFoundError when no transaction has that id.
func (p *Portfolio) Remove(id string) error {
	i, ok := p.index(id)
	if !ok {
		return &NotFoundError{ID: id}
	}
	p.transactions = append(p.transactions[:i], p.transactions[i+1:]...)
	return nil
}

// Transaction returns the transaction with the given id.
func (p *Portfolio) Transaction(id string) (Transaction, error) {
	i, ok := p.index(id)
	if !ok {
		return Transaction{}, &NotFoundError{ID: id}
	}
	return p.transactions[i], nil
}

// Transactions iterates over all transactions in insertion order.
func (p *Portfolio) Transactions() iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range p.transactions {
			if !yield(i, tx) {
				return
			}
		}
	}
}

// All returns a copy of the transaction list.
func (p *Portfolio) All() []Transaction {
	out := make([]Transaction, len(p.transactions))
	copy(out, p.transactions)
	return out
}

// Replace swaps the whole transaction list, used by snapshot import.
func (p *Portfolio) Replace(txs []Transaction) error {
	replacement := NewPortfolio(p.name)
	if err := replacement.Append(txs...); err != nil {
		return err
	}
	p.transactions = replacement.transactions
	return nil
}

func (p *Portfolio) index(id string) (int, bool) {
	for i, tx := range p.transactions {
		if tx.ID == id {
			return i, true
		}
	}
	return 0, false
}
