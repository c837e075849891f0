package localstorage

import "context"

// Repository is a flat string-keyed storage area. Get of a missing key
// returns (nil, nil).
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Transactor is implemented by repositories able to apply several writes
// atomically. fn receives a Repository bound to the transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, r Repository) error) error
}
