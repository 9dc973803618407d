package analytics

import (
	"context"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/fieldforce/sales-agent-api/internal/utils"
)

const narratorSystemPrompt = `You are an AI Analytics Assistant for a field sales organization.
Rewrite the provided draft analysis into a concise, actionable report.
Keep every number in the draft exactly as given; do not invent data.`

// narrator optionally rewrites the canned analytics narrative through
// an LLM. The canned text is always the fallback: any API problem means
// the draft goes out unchanged.
type narrator struct {
	client *openai.Client
}

func newNarrator(apiKey string) *narrator {
	if apiKey == "" {
		return nil
	}
	return &narrator{client: openai.NewClient(apiKey)}
}

func (n *narrator) enrich(query, draft string) string {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := n.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: narratorSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "Query: " + query + "\n\nDraft analysis:\n" + draft},
		},
	})
	if err != nil || len(resp.Choices) == 0 {
		utils.LogWarn("LLM narrative unavailable, using draft response", map[string]interface{}{
			"error": errString(err),
		})
		return draft
	}

	return resp.Choices[0].Message.Content
}

func errString(err error) string {
	if err == nil {
		return "empty completion"
	}
	return err.Error()
}
