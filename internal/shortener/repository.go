package shortener

import "context"

// Registry resolves short URL records.
type Registry interface {
	// Get returns the record stored under code, or ErrNotFound.
	Get(ctx context.Context, code Code) (*ShortURL, error)
	// FindBySuffix returns the first stored code, in insertion order, whose
	// value ends with suffix, or ErrNotFound.
	FindBySuffix(ctx context.Context, suffix string) (Code, error)
}

// Ledger stores the ordered click history of each code.
type Ledger interface {
	// AppendClick adds click to the end of the ledger for code. It does
	// nothing when code has no ledger.
	AppendClick(ctx context.Context, code Code, click Click) error
	// Clicks returns a copy of the ledger for code in insertion order.
	Clicks(ctx context.Context, code Code) ([]Click, error)
}

// Repository is the combined registry and ledger.
type Repository interface {
	Registry
	Ledger

	// Create stores shortURL together with an empty ledger as one unit,
	// replacing any record and ledger previously stored under the same code.
	Create(ctx context.Context, shortURL *ShortURL) error
	// Snapshot returns the record and a copy of its ledger read together.
	Snapshot(ctx context.Context, code Code) (*ShortURL, []Click, error)
}
