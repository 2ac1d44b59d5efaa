package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	portssvc "github.com/SscSPs/videotube/internal/core/ports/services"
	openai "github.com/sashabaranov/go-openai"
)

const descriptionPrompt = `Act as a YouTube SEO copywriter. Write the description for a video titled below.
Requirements:
- weave search keywords into natural sentences
- summarize what the viewer will get and invite them to watch until the end
- ask viewers to like, comment and subscribe
- finish with a few relevant hashtags
- use a friendly, conversational tone
- reply with the description text only, with no heading or label

Video title: %s`

// OpenAIDescriber asks a chat completion model for video descriptions.
type OpenAIDescriber struct {
	client *openai.Client
	model  string
}

var _ portssvc.DescriptionGenerator = (*OpenAIDescriber)(nil)

// NewOpenAIDescriber creates a describer. baseURL overrides the API endpoint when non-empty.
func NewOpenAIDescriber(apiKey, model, baseURL string) *OpenAIDescriber {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIDescriber{client: openai.NewClientWithConfig(cfg), model: model}
}

// GenerateDescription performs one blocking completion call for title.
func (d *OpenAIDescriber) GenerateDescription(ctx context.Context, title string) (string, error) {
	resp, err := d.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: d.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(descriptionPrompt, title)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
