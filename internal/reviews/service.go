package reviews

import (
	"context"
	"fmt"
	"strings"

	"resume-review/internal/llm"
)

const (
	// minResumeChars is the smallest trimmed resume accepted for review.
	minResumeChars = 40

	promptResumeLimit = 8000
	promptJDLimit     = 4000
	storedResumeLimit = 6000
	storedJDLimit     = 3000
)

// Service runs reviews and manages per-user history. When LLM is nil the
// deterministic heuristic reviewer is used; the strategy is selected here at
// the boundary, never inside a reviewer.
type Service struct {
	Repo Repo
	LLM  llm.Client
}

// ModelBacked reports whether a model credential was configured.
func (s *Service) ModelBacked() bool {
	return s.LLM != nil
}

// Review validates and reviews the given resume text.
func (s *Service) Review(ctx context.Context, resumeText, jdText string) (Record, error) {
	if len(strings.TrimSpace(resumeText)) < minResumeChars {
		return Record{}, ErrResumeTooShort
	}

	if !s.ModelBacked() {
		return HeuristicReview(resumeText, jdText), nil
	}

	raw, err := s.LLM.ReviewResume(ctx, llm.ReviewInput{
		ResumeText:     truncateRunes(resumeText, promptResumeLimit),
		JobDescription: truncateRunes(jdText, promptJDLimit),
	})
	if err != nil {
		return Record{}, fmt.Errorf("model review: %w", err)
	}

	record, err := CoerceRecord(raw)
	if err != nil {
		return Record{}, fmt.Errorf("model review: %w", err)
	}
	return record, nil
}

// SaveHistory appends a review to the user's history, truncating the stored
// texts. Store errors propagate to the caller.
func (s *Service) SaveHistory(ctx context.Context, userID string, review StoredReview) (StoredReview, error) {
	review.UserID = userID
	review.ResumeText = truncateRunes(review.ResumeText, storedResumeLimit)
	review.JDText = truncateRunes(review.JDText, storedJDLimit)
	return s.Repo.Save(ctx, review)
}

// History returns the user's reviews newest first.
func (s *Service) History(ctx context.Context, userID string) ([]StoredReview, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func truncateRunes(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
