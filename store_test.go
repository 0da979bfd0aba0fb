package whale

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "holdings.jsonl")
	store := NewFileStore(path)

	if store.Name() != "holdings" {
		t.Errorf("name = %q, want holdings", store.Name())
	}

	// a missing file is an empty history, not an error.
	txs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List on missing file failed: %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("got %d transactions, want 0", len(txs))
	}

	a := tx(t, "BTC", Buy, 1, 30000)
	b := tx(t, "ETH", Buy, 2, 2000)
	if err := store.Add(ctx, a); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := store.Add(ctx, b); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	txs, err = store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}
	if !txs[0].Equal(a) || !txs[1].Equal(b) {
		t.Errorf("listed transactions differ from added ones: %+v", txs)
	}

	if err := store.Remove(ctx, a.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	txs, err = store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(txs) != 1 || txs[0].ID != b.ID {
		t.Errorf("got %+v after remove, want only %q", txs, b.ID)
	}

	var nf *NotFoundError
	if err := store.Remove(ctx, "no-such-id"); !errors.As(err, &nf) {
		t.Errorf("Remove unknown id error = %v, want *NotFoundError", err)
	}
}
