package reviews

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo stores reviews in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byUser map[string][]StoredReview
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byUser: make(map[string][]StoredReview)}
}

// Save appends the review to the user's history.
func (r *MemoryRepo) Save(ctx context.Context, review StoredReview) (StoredReview, error) {
	if err := ctx.Err(); err != nil {
		return StoredReview{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	review.CreatedAt = time.Now().UTC()
	r.byUser[review.UserID] = append(r.byUser[review.UserID], review)
	return review, nil
}

// ListByUser returns the user's reviews newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]StoredReview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.byUser[userID]

	// Reverse insertion order first so equal timestamps still list newest first.
	out := make([]StoredReview, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		out = append(out, stored[i])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
