package llm

import (
	"errors"
	"os"
)

// ArticleInput is what the oracle sees of an article. Content should be
// truncated by the caller before prompting.
type ArticleInput struct {
	Title   string
	Content string
}

// StructuredResult is the three-part issue summary.
type StructuredResult struct {
	Background  string
	CoreContent string
	Conclusion  string
	ModelUsed   string
}

// KeywordResult is the two-line chart-hover summary.
type KeywordResult struct {
	TitleSummary   string
	ContentSummary string
	ModelUsed      string
}

// ErrMalformedResponse means the model answered but the reply was missing
// a required section. Callers treat it like any other oracle failure.
var ErrMalformedResponse = errors.New("malformed llm response")

type Oracle interface {
	// StructuredSummary analyzes articles into background, core content
	// and conclusion. isOverall selects whole-issue framing over
	// point-in-time framing.
	StructuredSummary(articles []ArticleInput, keyword string, isOverall bool) (*StructuredResult, error)

	// KeywordSummary condenses a keyword set into a topic line and a
	// situation line.
	KeywordSummary(keywords []string) (*KeywordResult, error)

	// QuickSummary produces a single sentence for a search keyword.
	QuickSummary(articles []ArticleInput, keyword string) (string, error)
}

// FromEnv picks the oracle implementation from LLM_PROVIDER
// ("openai" or "anthropic", default openai).
func FromEnv() Oracle {
	if os.Getenv("LLM_PROVIDER") == "anthropic" {
		return NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"))
	}
	return NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
}
