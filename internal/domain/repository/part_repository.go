package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/domain/entity"
)

// PartRepository defines the interface for part data operations
type PartRepository interface {
	Create(ctx context.Context, part *entity.Part) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Part, error)
	// GetByIDs retrieves multiple parts by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Part, error)
	GetByCode(ctx context.Context, code string) (*entity.Part, error)
	Update(ctx context.Context, part *entity.Part) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Part, error)
	Search(ctx context.Context, query string) ([]entity.Part, error)
	GetLowStock(ctx context.Context) ([]entity.Part, error)
	// AtomicAdjustStock atomically adds delta to a part's stock. A negative
	// delta is applied only when sufficient stock remains; returns
	// (false, nil) when the decrement would drive stock negative.
	AtomicAdjustStock(ctx context.Context, id uuid.UUID, delta int) (bool, error)
	// AtomicDecrementBatch atomically decrements stock for multiple parts.
	// Returns the IDs that failed on insufficient stock; any failure rolls
	// back the entire batch.
	AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) (failedIDs []uuid.UUID, err error)
	// AtomicIncrementBatch atomically increments stock for multiple parts
	// (purchase-order receipts, cancelled sales).
	AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error
}
