package reviews

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

const (
	defaultOverallScore    = 70
	maxModelMissingKeywords = 10
)

// CoerceRecord parses a raw model payload and defensively coerces it into a
// Record. Every list field defaults to an empty list when absent or malformed;
// overallScore defaults when missing or non-numeric and is clamped to [0,100].
// This is the single normalization applied to any parsed external payload.
func CoerceRecord(raw json.RawMessage) (Record, error) {
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Record{}, fmt.Errorf("parse review payload: %w", err)
	}

	return Record{
		OverallScore:     coerceScore(payload["overallScore"]),
		Strengths:        coerceStringList(payload["strengths"], 0),
		Weaknesses:       coerceStringList(payload["weaknesses"], 0),
		Improvements:     coerceStringList(payload["improvements"], 0),
		RewrittenBullets: coerceStringList(payload["rewrittenBullets"], 0),
		MissingKeywords:  coerceStringList(payload["missingKeywords"], maxModelMissingKeywords),
	}, nil
}

func coerceScore(value any) int {
	score := float64(defaultOverallScore)
	switch v := value.(type) {
	case float64:
		score = v
	case string:
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			score = parsed
		}
	}
	return clampScore(int(math.Round(score)), 0, 100)
}

func clampScore(score, low, high int) int {
	if score < low {
		return low
	}
	if score > high {
		return high
	}
	return score
}

// coerceStringList accepts only list payloads; anything else yields an empty
// list. A non-zero max truncates the result.
func coerceStringList(value any, max int) []string {
	items, ok := value.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, v)
		case float64:
			out = append(out, strconv.FormatFloat(v, 'f', -1, 64))
		case bool:
			out = append(out, strconv.FormatBool(v))
		}
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}
