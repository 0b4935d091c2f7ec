package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClient struct {
	client    *anthropic.Client
	model     anthropic.Model
	modelName string
}

func NewAnthropicClient(apiKey string) *AnthropicClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicClient{
		client:    &client,
		model:     anthropic.ModelClaudeHaiku4_5,
		modelName: "claude-4.5-haiku",
	}
}

func (c *AnthropicClient) complete(system, user string) (string, error) {
	resp, err := c.client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API error: %w", err)
	}
	if len(resp.Content) == 0 {
		return "", fmt.Errorf("no response from anthropic")
	}
	return resp.Content[0].Text, nil
}

func (c *AnthropicClient) StructuredSummary(articles []ArticleInput, keyword string, isOverall bool) (*StructuredResult, error) {
	framing := periodFraming
	if isOverall {
		framing = overallFraming
	}
	user := fmt.Sprintf(structuredUserPrompt, keyword, framing, formatArticles(articles))

	content, err := c.complete(structuredSystemPrompt, user)
	if err != nil {
		return nil, err
	}
	return parseStructured(content, c.modelName)
}

func (c *AnthropicClient) KeywordSummary(keywords []string) (*KeywordResult, error) {
	user := fmt.Sprintf(keywordUserPrompt, strings.Join(keywords, ", "))

	content, err := c.complete(keywordSystemPrompt, user)
	if err != nil {
		return nil, err
	}
	return parseKeywordSummary(content, c.modelName)
}

func (c *AnthropicClient) QuickSummary(articles []ArticleInput, keyword string) (string, error) {
	user := fmt.Sprintf(quickUserPrompt, keyword, formatArticles(articles))

	content, err := c.complete(quickSystemPrompt, user)
	if err != nil {
		return "", err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("%w: empty summary", ErrMalformedResponse)
	}
	return content, nil
}
