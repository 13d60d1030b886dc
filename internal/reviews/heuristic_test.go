package reviews

import (
	"strings"
	"testing"
)

func TestHeuristicReviewDefaultsWithoutKeywords(t *testing.T) {
	// "a b c" has no tokens of length >= 4, so the match score defaults to 65
	// and the overall score is round(55 + 65*0.45) = 84.
	record := HeuristicReview("a resume with plenty of text to look at", "a b c")
	if record.OverallScore != 84 {
		t.Fatalf("expected overall score 84, got %d", record.OverallScore)
	}
	if len(record.MissingKeywords) != 0 {
		t.Fatalf("expected no missing keywords, got %v", record.MissingKeywords)
	}
}

func TestHeuristicReviewFullMatch(t *testing.T) {
	jd := "kubernetes terraform golang postgres"
	resume := "Ran Kubernetes clusters, wrote Terraform modules, shipped Golang services on Postgres."
	record := HeuristicReview(resume, jd)
	if len(record.MissingKeywords) != 0 {
		t.Fatalf("expected empty missing keywords, got %v", record.MissingKeywords)
	}
	// Full match: matchScore 100, overall clamp(round(55+45)) = 100.
	if record.OverallScore != 100 {
		t.Fatalf("expected overall score 100, got %d", record.OverallScore)
	}
}

func TestHeuristicReviewNoMatch(t *testing.T) {
	record := HeuristicReview("completely unrelated resume content here", "kubernetes terraform")
	if len(record.MissingKeywords) != 2 {
		t.Fatalf("expected 2 missing keywords, got %v", record.MissingKeywords)
	}
	// matchScore 0, overall clamp(round(55), 40, 100) = 55.
	if record.OverallScore != 55 {
		t.Fatalf("expected overall score 55, got %d", record.OverallScore)
	}
}

func TestHeuristicReviewMissingKeywordsCapped(t *testing.T) {
	words := []string{
		"alpha1", "bravo2", "charlie3", "delta4", "echo5",
		"foxtrot6", "golfer7", "hotel8", "india9", "juliet10",
	}
	record := HeuristicReview("nothing in common", strings.Join(words, " "))
	if len(record.MissingKeywords) != maxHeuristicMissingWords {
		t.Fatalf("expected %d missing keywords, got %d", maxHeuristicMissingWords, len(record.MissingKeywords))
	}
	if record.MissingKeywords[0] != "alpha1" {
		t.Fatalf("expected first-seen order, got %v", record.MissingKeywords)
	}
}

func TestHeuristicReviewScoreBounds(t *testing.T) {
	for _, jd := range []string{"", "short jd", strings.Repeat("keyword ", 50)} {
		record := HeuristicReview("resume", jd)
		if record.OverallScore < 40 || record.OverallScore > 100 {
			t.Fatalf("score %d out of [40,100] for jd %q", record.OverallScore, jd)
		}
	}
}

func TestHeuristicReviewStaticLists(t *testing.T) {
	record := HeuristicReview("any resume text at all", "any role description")
	if len(record.Strengths) != 3 || len(record.Weaknesses) != 3 {
		t.Fatalf("expected 3 strengths and 3 weaknesses, got %d/%d", len(record.Strengths), len(record.Weaknesses))
	}
	if len(record.Improvements) != 5 || len(record.RewrittenBullets) != 2 {
		t.Fatalf("expected 5 improvements and 2 bullets, got %d/%d", len(record.Improvements), len(record.RewrittenBullets))
	}
}

func TestJDKeywordsDedupAndOrder(t *testing.T) {
	got := jdKeywords("Docker, docker, KUBERNETES! docker kubernetes python")
	want := []string{"docker", "kubernetes", "python"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestJDKeywordsCap(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 40; i++ {
		sb.WriteString("keyword")
		sb.WriteString(strings.Repeat("x", i+1))
		sb.WriteString(" ")
	}
	got := jdKeywords(sb.String())
	if len(got) != maxJDKeywords {
		t.Fatalf("expected %d keywords, got %d", maxJDKeywords, len(got))
	}
}

func TestJDKeywordsMinLength(t *testing.T) {
	got := jdKeywords("go js sql java")
	if len(got) != 1 || got[0] != "java" {
		t.Fatalf("expected only tokens of length >= 4, got %v", got)
	}
}
