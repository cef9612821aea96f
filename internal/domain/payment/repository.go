package payment

import "context"

// TransactionRepository is the external transaction store. References are
// expected to be unique among non-final transactions; FindAllByReference
// exposes the raw match set so callers can detect multiplicity violations
// instead of silently picking one row.
type TransactionRepository interface {
	Create(ctx context.Context, tx *Transaction) error
	Update(ctx context.Context, tx *Transaction) error
	GetByID(ctx context.Context, id uint) (*Transaction, error)
	GetByReference(ctx context.Context, reference string) (*Transaction, error)
	FindAllByReference(ctx context.Context, reference string) ([]*Transaction, error)
}
