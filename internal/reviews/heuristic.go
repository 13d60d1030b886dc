package reviews

import (
	"math"
	"strings"
	"unicode"
)

const (
	maxJDKeywords            = 30
	maxHeuristicMissingWords = 8
	minKeywordLength         = 4
	defaultMatchScore        = 65
)

// Canned fallback feedback. The text is intentionally static; only the score
// and missing keywords react to the input.
var (
	heuristicStrengths = []string{
		"Resume has baseline structure and readable sections.",
		"Key terms are partially aligned with the job description.",
		"Content is concise enough for quick screening.",
	}
	heuristicWeaknesses = []string{
		"Some JD-specific keywords are missing.",
		"Impact metrics can be more explicit.",
		"Bullets can start with stronger action verbs.",
	}
	heuristicImprovements = []string{
		"Add measurable outcomes to each major bullet.",
		"Mirror JD phrasing where accurate to improve ATS match.",
		"Move strongest technical projects near top of experience section.",
		"Make skills list explicit by tools/framework/cloud stack.",
		"Tighten weak bullets to one impact-focused sentence each.",
	}
	heuristicRewrittenBullets = []string{
		"Built an internal dashboard that reduced weekly reporting time by 35%.",
		"Implemented automated data checks that lowered production incidents by 22%.",
	}
)

// HeuristicReview scores a resume against a job description by keyword
// overlap. It is the deterministic fallback used when no model credential is
// configured and has no failure modes.
func HeuristicReview(resumeText, jdText string) Record {
	keywords := jdKeywords(jdText)
	resumeLower := strings.ToLower(resumeText)

	matched := 0
	missing := []string{}
	for _, word := range keywords {
		if strings.Contains(resumeLower, word) {
			matched++
			continue
		}
		if len(missing) < maxHeuristicMissingWords {
			missing = append(missing, word)
		}
	}

	matchScore := defaultMatchScore
	if len(keywords) > 0 {
		matchScore = int(math.Round(float64(matched) / float64(len(keywords)) * 100))
	}
	overall := clampScore(int(math.Round(55+float64(matchScore)*0.45)), 40, 100)

	return Record{
		OverallScore:     overall,
		Strengths:        append([]string(nil), heuristicStrengths...),
		Weaknesses:       append([]string(nil), heuristicWeaknesses...),
		Improvements:     append([]string(nil), heuristicImprovements...),
		RewrittenBullets: append([]string(nil), heuristicRewrittenBullets...),
		MissingKeywords:  missing,
	}
}

// jdKeywords extracts up to maxJDKeywords distinct lowercase tokens of at
// least minKeywordLength characters, preserving first-seen order.
func jdKeywords(jdText string) []string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, jdText)

	seen := make(map[string]struct{})
	var keywords []string
	for _, token := range strings.Fields(cleaned) {
		if len(token) < minKeywordLength {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		keywords = append(keywords, token)
		if len(keywords) == maxJDKeywords {
			break
		}
	}
	return keywords
}
