package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/caloria-app/backend/config"
	"github.com/caloria-app/backend/internal/models"
)

// Fixed assistant replies, kept verbatim from the product copy.
const (
	// MsgMissingKey is returned as a normal reply (not an error) when no
	// OpenAI credential is configured.
	MsgMissingKey = "Para usar o assistente de IA, configure sua chave da OpenAI nas variáveis de ambiente (OPENAI_API_KEY)."

	// MsgEmptyReply stands in for an empty completion.
	MsgEmptyReply = "Desculpe, não consegui processar sua mensagem."

	// MsgRequestFailed is the user-facing text for any upstream failure.
	MsgRequestFailed = "Desculpe, ocorreu um erro ao processar sua solicitação. Tente novamente."
)

const assistantSystemPrompt = `Você é um assistente de saúde amigável e motivador especializado em nutrição e exercícios.
Seu objetivo é ajudar os usuários a atingir suas metas de saúde de forma sustentável e saudável.

Diretrizes:
- Seja encorajador e positivo
- Forneça dicas práticas e acionáveis
- Considere o contexto do usuário ao dar sugestões
- Não dê conselhos médicos específicos, apenas orientações gerais de bem-estar
- Seja conciso mas informativo (máximo 150 palavras)
- Use emojis ocasionalmente para tornar a conversa mais amigável

%s`

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the payload sent to the chat completions API.
type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

// chatResponse holds the slice of completions returned by the API.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// AssistantService forwards user messages to the OpenAI chat completions API.
// It holds no state between requests.
type AssistantService struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewAssistantService creates a new AssistantService. A missing credential is
// not an error; Chat degrades to a fixed instructional reply.
func NewAssistantService(cfg *config.Config) *AssistantService {
	return &AssistantService{
		apiKey: cfg.OpenAIAPIKey,
		apiURL: cfg.OpenAIAPIURL,
		model:  cfg.OpenAIModel,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Chat sends the user message plus the caller-assembled context to the
// upstream API and returns the first reply verbatim. Upstream failures are
// returned as errors; the handler turns them into the fixed apology.
func (s *AssistantService) Chat(ctx context.Context, message, contextInfo string) (string, error) {
	if s.apiKey == "" {
		return MsgMissingKey, nil
	}

	reqBody := chatRequest{
		Model: s.model,
		Messages: []Message{
			{
				Role:    "system",
				Content: fmt.Sprintf(assistantSystemPrompt, contextInfo),
			},
			{
				Role:    "user",
				Content: message,
			},
		},
		Temperature: 0.7,
		MaxTokens:   300,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return "", fmt.Errorf("API request failed with status %d", resp.StatusCode)
		}
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Choices) == 0 || result.Choices[0].Message.Content == "" {
		return MsgEmptyReply, nil
	}

	return result.Choices[0].Message.Content, nil
}

// BuildDailyContext renders the daily-totals block the assistant receives
// alongside the user message. Remaining-to-target is clamped at zero.
func BuildDailyContext(summary models.DaySummary, goal models.DailyGoal) string {
	remaining := goal.CalorieTarget - summary.NetCalories
	if remaining < 0 {
		remaining = 0
	}

	return fmt.Sprintf(`
Contexto do usuário:
- Calorias consumidas hoje: %.0f kcal
- Meta diária de calorias: %.0f kcal
- Calorias queimadas em exercícios: %.0f kcal
- Calorias líquidas: %.0f kcal
- Restante para a meta: %.0f kcal
`, summary.TotalCalories, goal.CalorieTarget, summary.CaloriesBurned, summary.NetCalories, remaining)
}
