package reviews

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// listsPayload is the JSONB column shape for the record's list fields.
type listsPayload struct {
	Strengths        []string `json:"strengths"`
	Weaknesses       []string `json:"weaknesses"`
	Improvements     []string `json:"improvements"`
	RewrittenBullets []string `json:"rewrittenBullets"`
	MissingKeywords  []string `json:"missingKeywords"`
}

// Save inserts the review with a server-assigned creation timestamp.
func (r *PGRepo) Save(ctx context.Context, review StoredReview) (StoredReview, error) {
	const query = `
INSERT INTO reviews (id, user_id, resume_name, resume_text, jd_text, overall_score, payload, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
RETURNING created_at`
	if review.ID == "" {
		review.ID = uuid.NewString()
	}
	payload, err := json.Marshal(listsPayload{
		Strengths:        review.Strengths,
		Weaknesses:       review.Weaknesses,
		Improvements:     review.Improvements,
		RewrittenBullets: review.RewrittenBullets,
		MissingKeywords:  review.MissingKeywords,
	})
	if err != nil {
		return StoredReview{}, err
	}

	err = r.DB.QueryRowContext(ctx, query,
		review.ID,
		review.UserID,
		review.ResumeName,
		review.ResumeText,
		review.JDText,
		review.OverallScore,
		payload,
	).Scan(&review.CreatedAt)
	if err != nil {
		return StoredReview{}, err
	}
	return review, nil
}

// ListByUser returns the user's reviews ordered by creation time descending.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]StoredReview, error) {
	const query = `
SELECT id, resume_name, resume_text, jd_text, overall_score, payload, created_at
FROM reviews
WHERE user_id = $1
ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []StoredReview{}
	for rows.Next() {
		var review StoredReview
		var rawPayload []byte
		if err := rows.Scan(
			&review.ID,
			&review.ResumeName,
			&review.ResumeText,
			&review.JDText,
			&review.OverallScore,
			&rawPayload,
			&review.CreatedAt,
		); err != nil {
			return nil, err
		}
		review.UserID = userID

		var lists listsPayload
		if len(rawPayload) > 0 {
			if err := json.Unmarshal(rawPayload, &lists); err != nil {
				return nil, err
			}
		}
		review.Strengths = emptyIfNil(lists.Strengths)
		review.Weaknesses = emptyIfNil(lists.Weaknesses)
		review.Improvements = emptyIfNil(lists.Improvements)
		review.RewrittenBullets = emptyIfNil(lists.RewrittenBullets)
		review.MissingKeywords = emptyIfNil(lists.MissingKeywords)

		out = append(out, review)
	}
	return out, rows.Err()
}

func emptyIfNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}

var _ Repo = (*PGRepo)(nil)
