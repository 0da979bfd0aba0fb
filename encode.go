package whale

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodePortfolio decodes a transaction history from a stream of JSONL
// data, one transaction per line, and returns a portfolio with the given
// display name.
func DecodePortfolio(name string, r io.Reader) (*Portfolio, error) {
	p := NewPortfolio(name)
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var tx Transaction
		if err := json.Unmarshal(lineBytes, &tx); err != nil {
			return nil, fmt.Errorf("invalid transaction on line %d: %w", line, err)
		}
		if tx.Type == "" {
			tx.Type = Buy
		}
		if err := p.Append(tx); err != nil {
			return nil, fmt.Errorf("invalid transaction on line %d: %w", line, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return p, nil
}

// EncodeTransaction marshals a single transaction to JSON and writes it to
// the writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	data, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodePortfolio persists the portfolio's transactions to an io.Writer in
// JSONL format, in insertion order, with a stable key order per line.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	for _, tx := range p.transactions {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}
