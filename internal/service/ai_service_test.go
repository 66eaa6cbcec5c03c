package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"
)

// newChatServer returns a test server that replies to /chat/completions with
// the given message content.
func newChatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		var req ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("Failed to decode chat request: %v", err)
		}
		if len(req.Messages) != 2 {
			t.Errorf("Expected system and user messages, got %d", len(req.Messages))
		}
		resp := ChatCompletionResponse{}
		resp.Choices = append(resp.Choices, struct {
			Message ChatCompletionMessage `json:"message"`
		}{Message: ChatCompletionMessage{Role: "assistant", Content: content}})
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestGenerateScenario(t *testing.T) {
	server := newChatServer(t, "You are building a dashboard for a retail client...")
	defer server.Close()

	ai := NewAIService(server.URL, "test-key", "test-model")
	scenario, err := ai.GenerateScenario(context.Background(), "Frontend Engineering", "Intermediate", []string{"React", "CSS"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(scenario, "retail client") {
		t.Errorf("Unexpected scenario: %q", scenario)
	}
}

func TestGenerateScenarioEmptyContent(t *testing.T) {
	server := newChatServer(t, "   ")
	defer server.Close()

	ai := NewAIService(server.URL, "", "test-model")
	_, err := ai.GenerateScenario(context.Background(), "Frontend Engineering", "Intermediate", []string{"React"})
	if err == nil {
		t.Fatal("Expected error for empty scenario content")
	}
}

func TestGenerateScenarioProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	ai := NewAIService(server.URL, "", "test-model")
	_, err := ai.GenerateScenario(context.Background(), "Frontend Engineering", "Intermediate", []string{"React"})
	if err == nil {
		t.Fatal("Expected error when provider returns non-200")
	}
}

func TestEvaluateResponse(t *testing.T) {
	verdict := `{"score": 88, "feedback": "Great work overall.", "strengths": ["Clear structure"], "areas_for_improvement": ["Edge cases"]}`
	server := newChatServer(t, verdict)
	defer server.Close()

	ai := NewAIService(server.URL, "", "test-model")
	evaluation, err := ai.EvaluateResponse(context.Background(), "scenario", "my answer", []string{"React"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if evaluation.Score != 88 {
		t.Errorf("Expected score 88, got %.1f", evaluation.Score)
	}
	if evaluation.Feedback != "Great work overall." {
		t.Errorf("Unexpected feedback: %q", evaluation.Feedback)
	}
	if len(evaluation.Strengths) != 1 || len(evaluation.AreasForImprovement) != 1 {
		t.Errorf("Unexpected lists: %+v", evaluation)
	}
}

func TestEvaluateResponseFencedJSON(t *testing.T) {
	verdict := "```json\n{\"score\": 75, \"feedback\": \"Decent.\", \"strengths\": [], \"areas_for_improvement\": []}\n```"
	server := newChatServer(t, verdict)
	defer server.Close()

	ai := NewAIService(server.URL, "", "test-model")
	evaluation, err := ai.EvaluateResponse(context.Background(), "scenario", "my answer", nil)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if evaluation.Score != 75 {
		t.Errorf("Expected score 75, got %.1f", evaluation.Score)
	}
}

func TestEvaluateResponseMalformedFallsBack(t *testing.T) {
	raw := "I think this deserves a high score because " + strings.Repeat("detail ", 100)
	server := newChatServer(t, raw)
	defer server.Close()

	ai := NewAIService(server.URL, "", "test-model")
	evaluation, err := ai.EvaluateResponse(context.Background(), "scenario", "my answer", nil)
	if err != nil {
		t.Fatalf("Expected fallback evaluation, got error: %v", err)
	}
	if evaluation.Score != 70 {
		t.Errorf("Expected default score 70, got %.1f", evaluation.Score)
	}
	if len(evaluation.Feedback) > 500 {
		t.Errorf("Expected feedback truncated to 500 chars, got %d", len(evaluation.Feedback))
	}
	if !strings.HasPrefix(raw, evaluation.Feedback[:20]) {
		t.Errorf("Expected fallback feedback to reuse raw reply")
	}
	if len(evaluation.Strengths) == 0 || len(evaluation.AreasForImprovement) == 0 {
		t.Error("Expected placeholder strength and improvement lists")
	}
}

func TestEvaluateResponseFallbackMultibyteFeedback(t *testing.T) {
	raw := strings.Repeat("λ", 600)
	server := newChatServer(t, raw)
	defer server.Close()

	ai := NewAIService(server.URL, "", "test-model")
	evaluation, err := ai.EvaluateResponse(context.Background(), "scenario", "my answer", nil)
	if err != nil {
		t.Fatalf("Expected fallback evaluation, got error: %v", err)
	}
	if !utf8.ValidString(evaluation.Feedback) {
		t.Error("Fallback feedback is not valid UTF-8")
	}
	if utf8.RuneCountInString(evaluation.Feedback) != 500 {
		t.Errorf("Expected feedback truncated to 500 runes, got %d", utf8.RuneCountInString(evaluation.Feedback))
	}
}

func TestEvaluateResponseMissingKeys(t *testing.T) {
	verdict := `{"score": 88, "feedback": "Good work.", "areas_for_improvement": []}`
	server := newChatServer(t, verdict)
	defer server.Close()

	ai := NewAIService(server.URL, "", "test-model")
	_, err := ai.EvaluateResponse(context.Background(), "scenario", "my answer", nil)
	if err == nil {
		t.Fatal("Expected error when the evaluation JSON is missing required keys")
	}
	if !strings.Contains(err.Error(), "strengths") {
		t.Errorf("Expected error to name the missing key, got %v", err)
	}
}

func TestEvaluateResponseProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	ai := NewAIService(server.URL, "", "test-model")
	_, err := ai.EvaluateResponse(context.Background(), "scenario", "my answer", nil)
	if err == nil {
		t.Fatal("Expected error when provider call fails")
	}
}
