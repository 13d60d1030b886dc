package llm

import (
	"context"
	"encoding/json"
)

// Client abstracts LLM providers for resume review.
type Client interface {
	ReviewResume(ctx context.Context, input ReviewInput) (json.RawMessage, error)
}

// ReviewInput captures the inputs needed for a resume review.
type ReviewInput struct {
	ResumeText     string
	JobDescription string
}
