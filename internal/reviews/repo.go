package reviews

import "context"

// Repo defines persistence operations for review history. Underlying store
// errors propagate unmodified to callers.
type Repo interface {
	// Save appends a review to the user's history with a server-assigned
	// identifier and creation timestamp.
	Save(ctx context.Context, review StoredReview) (StoredReview, error)
	// ListByUser returns the user's reviews ordered by creation time descending.
	ListByUser(ctx context.Context, userID string) ([]StoredReview, error)
}
