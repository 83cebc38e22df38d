package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"spacecast/internal/logger"
	"spacecast/internal/models"
)

// OpenAIClient generates the forecast discussion section. Optional: a
// nil client or an API failure falls back to fixed wording so report
// generation never depends on the API.
type OpenAIClient struct {
	client *openai.Client
	model  string
	log    *logger.Logger
}

// NewOpenAIClient creates a new OpenAI client. Returns nil when no API
// key is configured.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
		log:    logger.GetGlobalLogger().WithComponent("llm"),
	}
}

const systemPrompt = "You are a space weather forecaster. Given a normalized 3-day " +
	"geomagnetic forecast and recent alert headlines, write a short forecast " +
	"discussion in markdown: expected geomagnetic activity, solar radiation " +
	"storm risk, and radio blackout risk, in plain language for radio " +
	"operators and aurora watchers. Two or three paragraphs, no headings."

// FallbackDiscussion is used when no client is configured or the API
// call fails.
const FallbackDiscussion = "Automated discussion is unavailable for this issue. " +
	"Refer to the daily summary table and the Kp index breakdown above."

// GenerateDiscussion produces the forecast discussion text. Never
// returns an error: failures degrade to the fixed fallback.
func (c *OpenAIClient) GenerateDiscussion(ctx context.Context, forecast *models.Forecast3Day, alerts []models.AlertItem) string {
	if c == nil || c.client == nil {
		return FallbackDiscussion
	}

	prompt, err := buildPrompt(forecast, alerts)
	if err != nil {
		c.log.Warn("failed to build discussion prompt", logger.Fields{"reason": err.Error()})
		return FallbackDiscussion
	}

	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   1024,
			Temperature: 0.3,
		},
	)
	if err != nil {
		c.log.Warn("discussion generation failed", logger.Fields{"reason": err.Error()})
		return FallbackDiscussion
	}
	if len(resp.Choices) == 0 {
		c.log.Warn("discussion generation returned no choices")
		return FallbackDiscussion
	}

	discussion := resp.Choices[0].Message.Content
	c.log.Debug("discussion generated", logger.Fields{"chars": len(discussion)})
	return discussion
}

func buildPrompt(forecast *models.Forecast3Day, alerts []models.AlertItem) (string, error) {
	forecastJSON, err := json.MarshalIndent(forecast, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal forecast: %w", err)
	}

	prompt := "Normalized 3-day forecast:\n```json\n" + string(forecastJSON) + "\n```\n"
	if len(alerts) > 0 {
		prompt += "\nRecent alerts:\n"
		for _, alert := range alerts {
			prompt += fmt.Sprintf("- [%s] %s: %s\n", alert.Severity, alert.Source, alert.Title)
		}
	}
	return prompt, nil
}
