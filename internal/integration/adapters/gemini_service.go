// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/pingoou/backend/internal/application/adapter"
)

// expenseCategories are the category names the suggester may answer with.
// They mirror the options the storefront shows in the expense form.
var expenseCategories = []string{
	"Ingredientes",
	"Embalagens",
	"Equipamentos",
	"Transporte",
	"Marketing",
	"Taxas",
	"Aluguel",
	"Outros",
}

// GeminiService implements the adapter.CategorySuggester using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey string) adapter.CategorySuggester {
	return &GeminiService{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the Gemini service is properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestCategory asks the model for one category from the fixed list. An
// answer outside the list resolves to "", never to a made-up category.
func (s *GeminiService) SuggestCategory(ctx context.Context, description string) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	// Create client
	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	// Get the model
	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.1)

	// Generate response
	resp, err := model.GenerateContent(ctx, genai.Text(s.buildPrompt(description)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return s.parseResponse(resp), nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiService) buildPrompt(description string) string {
	var sb strings.Builder

	sb.WriteString("Voce classifica despesas de um pequeno comercio brasileiro.\n")
	sb.WriteString("Responda com EXATAMENTE um dos nomes abaixo, sem texto adicional:\n")
	for _, c := range expenseCategories {
		sb.WriteString("- ")
		sb.WriteString(c)
		sb.WriteString("\n")
	}
	sb.WriteString("\nDespesa: \"")
	sb.WriteString(description)
	sb.WriteString("\"\n")

	return sb.String()
}

// parseResponse extracts a category name from the Gemini response.
func (s *GeminiService) parseResponse(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var answer string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			answer = strings.TrimSpace(string(text))
			break
		}
	}

	for _, c := range expenseCategories {
		if strings.EqualFold(answer, c) {
			return c
		}
	}
	return ""
}
