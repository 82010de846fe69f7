package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	go_openai "github.com/sashabaranov/go-openai"

	"github.com/go-go-golems/thoughtsitory/pkg/nodes"
)

const systemPrompt = `You are a helpful AI assistant participating in a conversation.
Your responses should be:
- Relevant to the conversation context
- Helpful and informative
- Conversational and engaging
- Appropriate in length (not too long unless detailed explanation is needed)

The conversation context includes the title, tags, summary, and recent messages.`

// GenerationContext is the slice of a node handed to the generation call:
// title, tags, summary and the most recent messages.
type GenerationContext struct {
	Title          string
	Tags           []string
	Summary        string
	RecentMessages []nodes.Message
}

// BuildContext extracts a generation context from a node, keeping the last
// n messages.
func BuildContext(node *nodes.Node, n int) GenerationContext {
	recent := node.Content
	if n > 0 && len(recent) > n {
		recent = recent[len(recent)-n:]
	}
	return GenerationContext{
		Title:          node.Title,
		Tags:           node.Tags,
		Summary:        node.Summary,
		RecentMessages: recent,
	}
}

// Prompt renders the context into the user-side prompt text.
func (gc GenerationContext) Prompt() string {
	if len(gc.RecentMessages) == 0 {
		return fmt.Sprintf("This is a new conversation about: %s", gc.Title)
	}

	parts := []string{fmt.Sprintf("Conversation Title: %s", gc.Title)}
	if len(gc.Tags) > 0 {
		parts = append(parts, fmt.Sprintf("Tags: %s", strings.Join(gc.Tags, ", ")))
	}
	if gc.Summary != "" {
		parts = append(parts, fmt.Sprintf("Summary: %s", gc.Summary))
	}
	parts = append(parts, "\nRecent conversation:")
	for _, msg := range gc.RecentMessages {
		role := "User"
		if msg.Role == nodes.RoleAssistant {
			role = "AI"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", role, msg.Text))
	}
	return strings.Join(parts, "\n")
}

type client interface {
	CreateChatCompletion(ctx context.Context, req go_openai.ChatCompletionRequest) (go_openai.ChatCompletionResponse, error)
}

// Service performs generation calls against the OpenAI chat completion
// API.
type Service struct {
	settings *Settings
	client   client
}

func NewService(settings *Settings) (*Service, error) {
	if settings == nil {
		settings = NewSettings()
	}
	if settings.APIKey == "" {
		return nil, &GenerationError{Cause: "no API key configured"}
	}
	return &Service{
		settings: settings,
		client:   go_openai.NewClient(settings.APIKey),
	}, nil
}

// Generate sends the context plus the user's message and returns the
// generated text. The call is bounded by the configured timeout; on any
// failure a GenerationError is returned and the caller's node is left
// untouched.
func (s *Service) Generate(ctx context.Context, gc GenerationContext, userMessage string) (string, error) {
	if s.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.settings.Timeout)
		defer cancel()
	}

	req := go_openai.ChatCompletionRequest{
		Model:       s.settings.Model,
		MaxTokens:   s.settings.MaxTokens,
		Temperature: float32(s.settings.Temperature),
		Messages: []go_openai.ChatCompletionMessage{
			{Role: go_openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: go_openai.ChatMessageRoleUser, Content: fmt.Sprintf("%s\n\nUser: %s", gc.Prompt(), userMessage)},
		},
	}

	log.Debug().
		Str("model", s.settings.Model).
		Int("context_messages", len(gc.RecentMessages)).
		Msg("sending generation request")

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", classifyError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &GenerationError{Cause: "malformed response, no choices returned"}
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
