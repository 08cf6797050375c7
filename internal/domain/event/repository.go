package event

import "context"

// Repository loads the upstream dataset.
type Repository interface {
	Dataset(ctx context.Context) (Dataset, error)
}

// Invalidator is implemented by repositories that keep their own copy of the
// dataset, such as a shared Redis entry. Reloads call it before refetching.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}
