package repository

import "context"

// Transactor runs a function inside a single database transaction. The
// context passed to fn carries the transaction handle; repositories pick
// it up transparently, so a service can group a status stamp and the
// reads/writes that depend on it into one serializable unit.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
