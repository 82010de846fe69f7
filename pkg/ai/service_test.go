package ai

import (
	"context"
	"net/http"
	"strings"
	"testing"

	go_openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"

	"github.com/go-go-golems/thoughtsitory/pkg/nodes"
)

func TestSettingsDefaults(t *testing.T) {
	s := NewSettings()
	require.Equal(t, "gpt-3.5-turbo", s.Model)
	require.Equal(t, 1000, s.MaxTokens)
	require.InDelta(t, 0.7, s.Temperature, 0.001)
	require.Equal(t, 10, s.ContextMessages)
}

func TestSettingsCloneIsIndependent(t *testing.T) {
	s := NewSettings()
	copied := s.Clone()
	copied.Model = "other"
	require.Equal(t, "gpt-3.5-turbo", s.Model)
}

func TestNewServiceRequiresAPIKey(t *testing.T) {
	_, err := NewService(NewSettings())

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
}

func TestBuildContextKeepsRecentMessages(t *testing.T) {
	node := nodes.NewNode("Planning", nodes.WithTags("go"), nodes.WithSummary("short"))
	for i := 0; i < 15; i++ {
		node.AddMessage(nodes.RoleUser, "msg")
	}
	node.AddMessage(nodes.RoleAssistant, "latest")

	gc := BuildContext(node, 10)
	require.Len(t, gc.RecentMessages, 10)
	require.Equal(t, "latest", gc.RecentMessages[9].Text)
	require.Equal(t, "Planning", gc.Title)
}

func TestPromptForEmptyConversation(t *testing.T) {
	gc := BuildContext(nodes.NewNode("Fresh Idea"), 10)
	require.Equal(t, "This is a new conversation about: Fresh Idea", gc.Prompt())
}

func TestPromptIncludesContextSections(t *testing.T) {
	node := nodes.NewNode("Planning", nodes.WithTags("go", "design"), nodes.WithSummary("scope talk"))
	node.AddMessage(nodes.RoleUser, "scope?")
	node.AddMessage(nodes.RoleAssistant, "here's scope")

	prompt := BuildContext(node, 10).Prompt()
	require.Contains(t, prompt, "Conversation Title: Planning")
	require.Contains(t, prompt, "Tags: go, design")
	require.Contains(t, prompt, "Summary: scope talk")
	require.Contains(t, prompt, "User: scope?")
	require.Contains(t, prompt, "AI: here's scope")
}

func TestClassifyErrorTaxonomy(t *testing.T) {
	auth := classifyError(&go_openai.APIError{HTTPStatusCode: http.StatusUnauthorized})
	require.Equal(t, "invalid API key", auth.Cause)

	rate := classifyError(&go_openai.APIError{HTTPStatusCode: http.StatusTooManyRequests})
	require.Equal(t, "rate limit exceeded", rate.Cause)

	api := classifyError(&go_openai.APIError{HTTPStatusCode: http.StatusInternalServerError})
	require.Equal(t, "API error", api.Cause)

	transport := classifyError(context.DeadlineExceeded)
	require.Equal(t, "transport error", transport.Cause)
}

type fakeClient struct {
	req  go_openai.ChatCompletionRequest
	resp go_openai.ChatCompletionResponse
	err  error
}

func (f *fakeClient) CreateChatCompletion(ctx context.Context, req go_openai.ChatCompletionRequest) (go_openai.ChatCompletionResponse, error) {
	f.req = req
	return f.resp, f.err
}

func TestGenerateBuildsRequestFromSettings(t *testing.T) {
	fake := &fakeClient{
		resp: go_openai.ChatCompletionResponse{
			Choices: []go_openai.ChatCompletionChoice{
				{Message: go_openai.ChatCompletionMessage{Content: "  generated  "}},
			},
		},
	}
	settings := NewSettings()
	settings.Model = "gpt-4"
	service := &Service{settings: settings, client: fake}

	node := nodes.NewNode("Planning")
	node.AddMessage(nodes.RoleUser, "scope?")

	reply, err := service.Generate(context.Background(), BuildContext(node, 10), "and budget?")
	require.NoError(t, err)
	require.Equal(t, "generated", reply)

	require.Equal(t, "gpt-4", fake.req.Model)
	require.Len(t, fake.req.Messages, 2)
	require.Equal(t, go_openai.ChatMessageRoleSystem, fake.req.Messages[0].Role)
	require.True(t, strings.Contains(fake.req.Messages[1].Content, "User: and budget?"))
}

func TestGenerateRejectsEmptyChoices(t *testing.T) {
	service := &Service{settings: NewSettings(), client: &fakeClient{}}

	_, err := service.Generate(context.Background(), GenerationContext{Title: "x"}, "hi")

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	require.Contains(t, genErr.Cause, "malformed response")
}
