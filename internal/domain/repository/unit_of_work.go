package repository

import "context"

// UnitOfWork runs a function as one atomic unit against the datastore.
// Every repository call made with the context passed to fn joins the same
// transaction; if fn returns an error all writes roll back together, so a
// customer and address created earlier in the call disappear along with the
// failed invoice.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
