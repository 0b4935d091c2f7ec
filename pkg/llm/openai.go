package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	client    *openai.Client
	model     openai.ChatModel
	modelName string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:    &client,
		model:     openai.ChatModelGPT4oMini,
		modelName: "gpt-4o-mini",
	}
}

func (c *OpenAIClient) complete(system, user string) (string, error) {
	resp, err := c.client.Chat.Completions.New(context.Background(), openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) StructuredSummary(articles []ArticleInput, keyword string, isOverall bool) (*StructuredResult, error) {
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

func (c *OpenAIClient) KeywordSummary(keywords []string) (*KeywordResult, error) {
	user := fmt.Sprintf(keywordUserPrompt, strings.Join(keywords, ", "))

	content, err := c.complete(keywordSystemPrompt, user)
	if err != nil {
		return nil, err
	}
	return parseKeywordSummary(content, c.modelName)
}

func (c *OpenAIClient) QuickSummary(articles []ArticleInput, keyword string) (string, error) {
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
