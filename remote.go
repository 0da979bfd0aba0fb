package whale

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// RemotePortfolio is a portfolio registered on the backend API.
type RemotePortfolio struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RemoteStore is a TransactionSource backed by the backend API. Every
// request carries the session's bearer token.
type RemoteStore struct {
	base        string
	client      *http.Client
	session     *Session
	portfolioID string
}

// NewRemoteStore returns a store talking to the API at base (e.g.
// "https://api.example.com") on behalf of the given portfolio.
func NewRemoteStore(base string, session *Session, portfolioID string) *RemoteStore {
	return &RemoteStore{
		base:        strings.TrimSuffix(base, "/"),
		client:      http.DefaultClient,
		session:     session,
		portfolioID: portfolioID,
	}
}

// Portfolios lists the portfolios owned by the session's account.
func (s *RemoteStore) Portfolios(ctx context.Context) ([]RemotePortfolio, error) {
	var out []RemotePortfolio
	if err := jdo(ctx, s.client, s.session, http.MethodGet, s.base+"/portfolio", nil, &out); err != nil {
		return nil, fmt.Errorf("cannot list portfolios: %w", err)
	}
	return out, nil
}

// CreatePortfolio registers a new named portfolio and returns it.
func (s *RemoteStore) CreatePortfolio(ctx context.Context, name string) (RemotePortfolio, error) {
	in := RemotePortfolio{Name: name}
	var out RemotePortfolio
	if err := jdo(ctx, s.client, s.session, http.MethodPost, s.base+"/portfolio", in, &out); err != nil {
		return RemotePortfolio{}, fmt.Errorf("cannot create portfolio %q: %w", name, err)
	}
	return out, nil
}

// List implements TransactionSource.
func (s *RemoteStore) List(ctx context.Context) ([]Transaction, error) {
	var out []Transaction
	addr := s.base + "/transactions/" + s.portfolioID
	if err := jdo(ctx, s.client, s.session, http.MethodGet, addr, nil, &out); err != nil {
		return nil, fmt.Errorf("cannot list transactions: %w", err)
	}
	for i := range out {
		if out[i].Type == "" {
			out[i].Type = Buy
		}
	}
	return out, nil
}

// Add implements TransactionSource.
func (s *RemoteStore) Add(ctx context.Context, tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	// the API wants the transaction fields plus the owning portfolio id.
	var in jsonObjectWriter
	in.EmbedFrom(tx)
	in.Append("portfolio_id", s.portfolioID)
	if err := jdo(ctx, s.client, s.session, http.MethodPost, s.base+"/transactions", &in, nil); err != nil {
		return fmt.Errorf("cannot add transaction: %w", err)
	}
	return nil
}

// Remove implements TransactionSource.
func (s *RemoteStore) Remove(ctx context.Context, id string) error {
	return jdo(ctx, s.client, s.session, http.MethodDelete, s.base+"/transactions/"+id, nil, nil)
}

var _ TransactionSource = (*RemoteStore)(nil)
