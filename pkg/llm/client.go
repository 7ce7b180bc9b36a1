package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const promptVersion = "v1"

const summarySystemPrompt = `You are a news intelligence analyst. You will receive a topic and a numbered list of recent news headlines about it.

Write an executive summary for a busy reader:
- 3 to 5 sentences, plain prose, no bullet points, no markdown
- Describe the overall direction of the coverage and the mood it conveys
- Mention concrete names, numbers and events that appear in the headlines
- Do not invent facts that are not supported by the headlines

Output the summary text only, no preamble.`

var ErrEmptySummary = errors.New("model returned an empty summary")

type SummaryResult struct {
	Text          string
	ModelUsed     string
	PromptVersion string
}

type Summarizer interface {
	Summarize(ctx context.Context, topic string, titles []string) (*SummaryResult, error)
}

func formatHeadlines(topic string, titles []string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Topic: %s\n\nHeadlines:\n", topic))
	for i, title := range titles {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, title))
	}
	return sb.String()
}

// cleanTextResponse strips markdown fences and stray whitespace some models
// wrap around plain answers.
func cleanTextResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```text")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	return strings.TrimSpace(content)
}
