package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"resume-review/internal/llm"
)

func TestReviewResumeSendsJSONModeRequest(t *testing.T) {
	oldURL := apiURL
	t.Cleanup(func() { apiURL = oldURL })

	var bodyMu sync.Mutex
	var lastBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
			return
		}
		bodyMu.Lock()
		lastBody = payload
		bodyMu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"overallScore\":88}"}}]}`))
	}))
	defer server.Close()

	apiURL = server.URL

	client, err := NewClient("test-key", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	raw, err := client.ReviewResume(context.Background(), llm.ReviewInput{
		ResumeText:     "resume body",
		JobDescription: "jd body",
	})
	if err != nil {
		t.Fatalf("ReviewResume: %v", err)
	}
	if !json.Valid(raw) {
		t.Fatalf("expected valid JSON content, got %q", string(raw))
	}

	bodyMu.Lock()
	defer bodyMu.Unlock()
	if lastBody["model"] != "gpt-4o-mini" {
		t.Fatalf("unexpected model: %v", lastBody["model"])
	}
	rf, ok := lastBody["response_format"].(map[string]any)
	if !ok || rf["type"] != "json_object" {
		t.Fatalf("expected json_object response_format, got %v", lastBody["response_format"])
	}
	temp, ok := lastBody["temperature"].(float64)
	if !ok || temp < 0.29 || temp > 0.31 {
		t.Fatalf("expected temperature 0.3, got %v", lastBody["temperature"])
	}
	messages, ok := lastBody["messages"].([]any)
	if !ok || len(messages) != 2 {
		t.Fatalf("expected system+user messages, got %v", lastBody["messages"])
	}
}

func TestReviewResumeSurfacesAPIError(t *testing.T) {
	oldURL := apiURL
	t.Cleanup(func() { apiURL = oldURL })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded","type":"insufficient_quota"}}`))
	}))
	defer server.Close()

	apiURL = server.URL

	client, err := NewClient("test-key", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.ReviewResume(context.Background(), llm.ReviewInput{ResumeText: "resume"})
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected provider error message, got %v", err)
	}
}

func TestNewClientRequiresCredentials(t *testing.T) {
	if _, err := NewClient("", "gpt-4o-mini"); err == nil {
		t.Fatal("expected missing api key error")
	}
	if _, err := NewClient("key", ""); err == nil {
		t.Fatal("expected missing model error")
	}
}

func TestBuildUserPromptDefaultsJD(t *testing.T) {
	prompt := buildUserPrompt("resume text", "  ")
	if !strings.Contains(prompt, "Job Description:\nN/A") {
		t.Fatalf("expected N/A job description, got %q", prompt)
	}
	if !strings.Contains(prompt, "missingKeywords: string[] (max 10)") {
		t.Fatalf("expected field instructions in prompt")
	}
}
