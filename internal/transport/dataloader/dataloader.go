// Package dataloader provides per-request DataLoaders that batch user lookups
// made while building one response into a single SQL call. Loaders call the
// repository directly, bypassing the service layer.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/agewell-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type userRepo interface {
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

// Loaders contains the per-request DataLoaders. Created per-request via NewLoaders.
type Loaders struct {
	UsersByID *dataloader.Loader[uuid.UUID, *domain.User]
}

// NewLoaders creates a new set of DataLoaders backed by the given repository.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(users userRepo) *Loaders {
	return &Loaders{
		UsersByID: newLoader(newUsersBatchFn(users)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context, or nil if none are present.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}
