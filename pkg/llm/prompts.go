package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

const maxContentChars = 500

const structuredSystemPrompt = `You are a news analysis expert. Analyze the given news articles and respond with a structured summary.

Respond with JSON only, no other text:
{
  "background": "the context and background of the issue",
  "core_content": "the main events and key points",
  "conclusion": "the current situation and outcome"
}`

const structuredUserPrompt = `Summarize the following news about "%s" in three parts:

1. background:
- the context that led to this issue and why it matters
- related earlier events or circumstances

2. core_content:
- the key events or situation currently unfolding
- actions of the main people or institutions involved
- the central points of contention

3. conclusion:
- the outcome or impact so far
- how things stand now and the expected direction

%s

Articles:
%s`

const overallFraming = "Frame the summary around the overall arc of the issue."
const periodFraming = "Frame the summary around the situation at this point in time."

const keywordSystemPrompt = "You summarize news keywords into two short lines."

const keywordUserPrompt = `Look at these keywords and respond with JSON only, no other text:
{
  "title_summary": "the core topic, at most 10 words",
  "content_summary": "the current situation, at most 30 words"
}

Keywords: %s`

const quickSystemPrompt = "You write one-sentence news digests."

const quickUserPrompt = `Summarize the overall story of the following news about "%s" in a single sentence of at most 25 words. Respond with the sentence only.

Articles:
%s`

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func formatArticles(articles []ArticleInput) string {
	var sb strings.Builder
	for _, a := range articles {
		sb.WriteString(fmt.Sprintf("Title: %s\nContent: %s\n\n", a.Title, truncate(a.Content, maxContentChars)))
	}
	return sb.String()
}

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}

// parseStructured validates that all three sections are present. A reply
// missing any section is treated as malformed rather than padded out.
func parseStructured(content, modelName string) (*StructuredResult, error) {
	content = cleanJSONResponse(content)

	var parsed struct {
		Background  string `json:"background"`
		CoreContent string `json:"core_content"`
		Conclusion  string `json:"conclusion"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v, content: %s", ErrMalformedResponse, err, content)
	}

	if parsed.Background == "" || parsed.CoreContent == "" || parsed.Conclusion == "" {
		return nil, fmt.Errorf("%w: missing section, content: %s", ErrMalformedResponse, content)
	}

	return &StructuredResult{
		Background:  parsed.Background,
		CoreContent: parsed.CoreContent,
		Conclusion:  parsed.Conclusion,
		ModelUsed:   modelName,
	}, nil
}

func parseKeywordSummary(content, modelName string) (*KeywordResult, error) {
	content = cleanJSONResponse(content)

	var parsed struct {
		TitleSummary   string `json:"title_summary"`
		ContentSummary string `json:"content_summary"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v, content: %s", ErrMalformedResponse, err, content)
	}

	if parsed.TitleSummary == "" || parsed.ContentSummary == "" {
		return nil, fmt.Errorf("%w: missing line, content: %s", ErrMalformedResponse, content)
	}

	return &KeywordResult{
		TitleSummary:   parsed.TitleSummary,
		ContentSummary: parsed.ContentSummary,
		ModelUsed:      modelName,
	}, nil
}
