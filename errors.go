package whale

import "fmt"

// NotFoundError reports an operation on a transaction id that does not
// exist in the portfolio.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction %q not found", e.ID)
}

// ValidationError reports the first invalid transaction found in an
// imported snapshot. Index is zero-based over the snapshot's transactions
// sequence, Field names the missing or empty attribute.
type ValidationError struct {
	Index int
	Field string
}

func (e *ValidationError) Error() string {
	// the message counts from 1, matching the position in the document.
	return fmt.Sprintf("transaction %d is invalid: missing or empty %q", e.Index+1, e.Field)
}
