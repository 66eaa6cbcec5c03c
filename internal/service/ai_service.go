package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	scenarioSystemPrompt = "You are an expert technical assessment creator for SkillSphere, an AI-powered skill assessment platform. Create realistic, practical assessment scenarios that test real-world abilities."
	evaluateSystemPrompt = "You are an expert technical evaluator for SkillSphere. Provide detailed, actionable feedback on assessment submissions. Be fair but thorough."
)

// Evaluation is the structured verdict on a submitted response.
type Evaluation struct {
	Score               float64  `json:"score"`
	Feedback            string   `json:"feedback"`
	Strengths           []string `json:"strengths"`
	AreasForImprovement []string `json:"areas_for_improvement"`
}

// AIService talks to an OpenAI-compatible chat completions endpoint to
// generate assessment scenarios and evaluate submissions.
type AIService struct {
	Client  *http.Client
	BaseURL string
	APIKey  string
	Model   string
}

func NewAIService(baseURL, apiKey, model string) *AIService {
	return &AIService{
		Client: &http.Client{
			Timeout: 120 * time.Second, // LLM responses can be slow
		},
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
	}
}

type ChatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []ChatCompletionMessage `json:"messages"`
	Stream      bool                    `json:"stream"`
	Temperature *float64                `json:"temperature,omitempty"`
	MaxTokens   *int                    `json:"max_tokens,omitempty"`
}

type ChatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message ChatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// GenerateScenario produces a natural-language assessment scenario for the
// given template. Provider failures and empty replies are surfaced as errors;
// there is no retry.
func (a *AIService) GenerateScenario(ctx context.Context, title, difficulty string, skills []string) (string, error) {
	prompt := fmt.Sprintf(`Create a %s level assessment scenario for %s.

Skills to assess: %s

Requirements:
1. The scenario should be a real-world problem that tests practical skills
2. Include specific requirements and success criteria
3. Make it challenging but achievable within 30-60 minutes
4. Focus on problem-solving and execution
5. Be detailed enough that the candidate knows exactly what to build

Provide ONLY the scenario description, no additional commentary.`, difficulty, title, strings.Join(skills, ", "))

	content, err := a.sendChatRequest(ctx, scenarioSystemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate assessment scenario: %w", err)
	}
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("failed to generate assessment scenario: empty response from provider")
	}

	log.Printf("Generated scenario for %s", title)
	return content, nil
}

// EvaluateResponse scores a submission against its scenario. The provider is
// asked for a JSON verdict; if the reply does not decode, a fixed default
// evaluation is returned instead of an error so a malformed reply never fails
// the submission.
func (a *AIService) EvaluateResponse(ctx context.Context, scenario, userResponse string, skills []string) (*Evaluation, error) {
	prompt := fmt.Sprintf(`Evaluate this assessment submission.

**Scenario:**
%s

**User's Response:**
%s

**Skills Being Assessed:** %s

Provide your evaluation in the following JSON format (respond with ONLY valid JSON, no markdown):
{
  "score": <number 0-100>,
  "feedback": "<detailed feedback paragraph explaining the score>",
  "strengths": ["<strength 1>", "<strength 2>", "<strength 3>"],
  "areas_for_improvement": ["<area 1>", "<area 2>", "<area 3>"]
}

Evaluation criteria:
- Correctness and completeness
- Code quality and best practices
- Problem-solving approach
- Technical depth
- Real-world applicability`, scenario, userResponse, strings.Join(skills, ", "))

	content, err := a.sendChatRequest(ctx, evaluateSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate assessment: %w", err)
	}

	evaluation, err := parseEvaluation(content)
	if errors.Is(err, errEvaluationIncomplete) {
		return nil, fmt.Errorf("failed to evaluate assessment: %w", err)
	}
	if err != nil {
		log.Printf("Failed to parse evaluation JSON, using default: %v", err)
		return defaultEvaluation(content), nil
	}

	log.Printf("Evaluated submission, score: %.1f", evaluation.Score)
	return evaluation, nil
}

var errEvaluationIncomplete = errors.New("incomplete evaluation")

// parseEvaluation decodes the provider's JSON verdict. A reply that is not
// JSON at all is a decode error (recovered by the caller with the default
// record); valid JSON missing one of the required keys is surfaced as
// errEvaluationIncomplete.
func parseEvaluation(content string) (*Evaluation, error) {
	cleaned := stripCodeFences(content)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, err
	}
	for _, key := range []string{"score", "feedback", "strengths", "areas_for_improvement"} {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("%w: missing %q", errEvaluationIncomplete, key)
		}
	}

	var evaluation Evaluation
	if err := json.Unmarshal([]byte(cleaned), &evaluation); err != nil {
		return nil, err
	}
	return &evaluation, nil
}

// stripCodeFences removes a surrounding markdown code block, which some
// providers wrap around JSON despite instructions.
func stripCodeFences(content string) string {
	cleaned := strings.TrimSpace(content)
	if !strings.HasPrefix(cleaned, "```") {
		return cleaned
	}
	lines := strings.Split(cleaned, "\n")
	if len(lines) > 2 {
		lines = lines[1 : len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func defaultEvaluation(rawContent string) *Evaluation {
	feedback := truncateRunes(rawContent, 500)
	return &Evaluation{
		Score:               70,
		Feedback:            feedback,
		Strengths:           []string{"Attempted the problem", "Provided detailed response"},
		AreasForImprovement: []string{"Consider structure", "Add more detail"},
	}
}

func (a *AIService) sendChatRequest(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	request := ChatCompletionRequest{
		Model: a.Model,
		Messages: []ChatCompletionMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Stream: false,
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", a.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.APIKey)
	}

	resp, err := a.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %v", err)
	}
	if resp.StatusCode != 200 {
		return "", fmt.Errorf("LLM API error (status %d): %s", resp.StatusCode, string(body))
	}

	var response ChatCompletionResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", err
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no choices in LLM response")
	}
	return response.Choices[0].Message.Content, nil
}
