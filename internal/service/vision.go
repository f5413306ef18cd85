package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/caloria-app/backend/config"
)

// ErrNotConfigured indicates the OpenAI credential is missing.
var ErrNotConfigured = errors.New("OpenAI API key not configured")

// ErrEmptyResponse indicates the model returned no usable content.
var ErrEmptyResponse = errors.New("empty response from model")

// ValidationError reports a model reply that parsed as JSON but did not
// match the expected analysis shape.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid analysis field %q: %s", e.Field, e.Reason)
}

// FoodAnalysis is the typed result of an image analysis.
type FoodAnalysis struct {
	Name       string  `json:"name"`
	Calories   float64 `json:"calories"`
	Protein    float64 `json:"protein"`
	Carbs      float64 `json:"carbs"`
	Fat        float64 `json:"fat"`
	Portion    string  `json:"portion"`
	Confidence string  `json:"confidence"`
}

const visionPrompt = `Analise esta imagem de alimento e forneça as informações nutricionais estimadas em formato JSON.

Retorne APENAS um objeto JSON válido com esta estrutura exata:
{
  "name": "nome do alimento identificado",
  "calories": número estimado de calorias,
  "protein": gramas de proteína,
  "carbs": gramas de carboidratos,
  "fat": gramas de gordura,
  "portion": "descrição da porção estimada (ex: '1 prato', '100g', '1 unidade')",
  "confidence": "alta/média/baixa"
}

Seja preciso e realista nas estimativas. Se não conseguir identificar claramente, use confidence "baixa".`

// visionPart is one element of a multimodal message content array.
type visionPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageRef `json:"image_url,omitempty"`
}

type imageRef struct {
	URL string `json:"url"`
}

type visionMessage struct {
	Role    string       `json:"role"`
	Content []visionPart `json:"content"`
}

type visionRequest struct {
	Model     string          `json:"model"`
	Messages  []visionMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens"`
}

// VisionService estimates nutrition facts from food photos via the OpenAI
// vision-capable chat completions API. Stateless; one upstream call per
// request, no retry.
type VisionService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewVisionService creates a new VisionService.
func NewVisionService(cfg *config.Config) *VisionService {
	return &VisionService{
		apiKey: cfg.OpenAIAPIKey,
		apiURL: cfg.OpenAIAPIURL,
		model:  cfg.OpenAIModel,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// AnalyzeFood sends the image (data URI or remote URL) to the upstream API
// and parses the reply into a FoodAnalysis.
func (s *VisionService) AnalyzeFood(ctx context.Context, imageURL string) (*FoodAnalysis, error) {
	if s.apiKey == "" {
		return nil, ErrNotConfigured
	}

	reqBody := visionRequest{
		Model: s.model,
		Messages: []visionMessage{
			{
				Role: "user",
				Content: []visionPart{
					{Type: "text", Text: visionPrompt},
					{Type: "image_url", ImageURL: &imageRef{URL: imageURL}},
				},
			},
		},
		MaxTokens: 500,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, fmt.Errorf("API request failed with status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return nil, ErrEmptyResponse
	}

	return parseAnalysis(result.Choices[0].Message.Content)
}

var fencedJSON = regexp.MustCompile("```(?:json)?\\s*\\n([\\s\\S]*?)\\n```")

// parseAnalysis runs the two-stage parse: raw untyped JSON first, then
// validation into the typed record.
func parseAnalysis(content string) (*FoodAnalysis, error) {
	raw, err := extractJSON(content)
	if err != nil {
		return nil, err
	}

	return validateAnalysis(raw)
}

// extractJSON decodes content as a JSON object, falling back to a fenced
// code block and then to the first brace-delimited substring.
func extractJSON(content string) (map[string]interface{}, error) {
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(content), &raw); err == nil {
		return raw, nil
	}

	if m := fencedJSON.FindStringSubmatch(content); m != nil {
		if err := json.Unmarshal([]byte(m[1]), &raw); err == nil {
			return raw, nil
		}
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err == nil {
			return raw, nil
		}
	}

	return nil, fmt.Errorf("response is not valid JSON")
}

var confidenceLevels = map[string]bool{
	"alta":  true,
	"média": true,
	"baixa": true,
}

// validateAnalysis turns the raw decoded object into a FoodAnalysis,
// reporting the first shape mismatch as a *ValidationError.
func validateAnalysis(raw map[string]interface{}) (*FoodAnalysis, error) {
	analysis := &FoodAnalysis{}

	var ok bool
	if analysis.Name, ok = raw["name"].(string); !ok || analysis.Name == "" {
		return nil, &ValidationError{Field: "name", Reason: "expected a non-empty string"}
	}

	numbers := []struct {
		field string
		dst   *float64
	}{
		{"calories", &analysis.Calories},
		{"protein", &analysis.Protein},
		{"carbs", &analysis.Carbs},
		{"fat", &analysis.Fat},
	}
	for _, n := range numbers {
		value, ok := raw[n.field].(float64)
		if !ok || value < 0 {
			return nil, &ValidationError{Field: n.field, Reason: "expected a non-negative number"}
		}
		*n.dst = value
	}

	if analysis.Portion, ok = raw["portion"].(string); !ok || analysis.Portion == "" {
		return nil, &ValidationError{Field: "portion", Reason: "expected a non-empty string"}
	}

	confidence, ok := raw["confidence"].(string)
	if !ok {
		return nil, &ValidationError{Field: "confidence", Reason: "expected a string"}
	}
	confidence = strings.ToLower(strings.TrimSpace(confidence))
	if !confidenceLevels[confidence] {
		return nil, &ValidationError{Field: "confidence", Reason: "expected alta, média or baixa"}
	}
	analysis.Confidence = confidence

	return analysis, nil
}
