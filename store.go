package whale

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TransactionSource is where a portfolio's transaction history lives.
// The engine never talks to a source directly, commands load the history
// through one and feed the flat list to the pure functions.
type TransactionSource interface {
	// List returns the full transaction history in insertion order.
	List(ctx context.Context) ([]Transaction, error)
	// Add persists a new transaction.
	Add(ctx context.Context, tx Transaction) error
	// Remove deletes a transaction by id, *NotFoundError when unknown.
	Remove(ctx context.Context, id string) error
}

// FileStore persists a portfolio in a local JSONL file, one transaction
// per line. This is the anonymous mode backend: no account, no network,
// the file is the whole state.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the given .jsonl file. The file
// does not have to exist yet, an empty history is returned until the
// first Add creates it.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Name derives the portfolio display name from the file name.
func (s *FileStore) Name() string {
	return strings.TrimSuffix(filepath.Base(s.path), ".jsonl")
}

// Load reads the whole portfolio from disk.
func (s *FileStore) Load() (*Portfolio, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return NewPortfolio(s.Name()), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open portfolio file %q: %w", s.path, err)
	}
	defer f.Close()

	p, err := DecodePortfolio(s.Name(), f)
	if err != nil {
		return nil, fmt.Errorf("could not decode portfolio file %q: %w", s.path, err)
	}
	return p, nil
}

// Save writes the whole portfolio back to disk.
func (s *FileStore) Save(p *Portfolio) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", s.path, err)
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("error opening portfolio file %q for writing: %w", s.path, err)
	}
	defer f.Close()
	return EncodePortfolio(f, p)
}

// List implements TransactionSource.
func (s *FileStore) List(ctx context.Context) ([]Transaction, error) {
	p, err := s.Load()
	if err != nil {
		return nil, err
	}
	return p.All(), nil
}

// Add implements TransactionSource.
func (s *FileStore) Add(ctx context.Context, tx Transaction) error {
	p, err := s.Load()
	if err != nil {
		return err
	}
	if err := p.Append(tx); err != nil {
		return err
	}
	return s.Save(p)
}

// Remove implements TransactionSource.
func (s *FileStore) Remove(ctx context.Context, id string) error {
	p, err := s.Load()
	if err != nil {
		return err
	}
	if err := p.Remove(id); err != nil {
		return err
	}
	return s.Save(p)
}

var _ TransactionSource = (*FileStore)(nil)
