package openai

import (
	"fmt"
	"strings"
)

// Message represents an OpenAI chat message.
type Message struct {
	Role    string
	Content string
}

const systemPrompt = "You are a strict resume reviewer. Output valid JSON only."

const promptHeader = `Review this resume against the job description and return JSON only.

Required JSON fields:
- overallScore: number (0-100)
- strengths: string[] (3 items)
- weaknesses: string[] (3 items)
- improvements: string[] (5 items)
- rewrittenBullets: string[] (2 items)
- missingKeywords: string[] (max 10)`

// BuildPrompt creates the chat messages for a resume review request.
func BuildPrompt(resumeText, jobDescription string) []Message {
	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildUserPrompt(resumeText, jobDescription)},
	}
}

func buildUserPrompt(resumeText, jobDescription string) string {
	jd := jobDescription
	if strings.TrimSpace(jd) == "" {
		jd = "N/A"
	}
	return fmt.Sprintf("%s\n\nResume:\n%s\n\nJob Description:\n%s", promptHeader, resumeText, jd)
}
