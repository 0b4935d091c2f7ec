package handler

type SummaryResponse struct {
	Background  string `json:"background"`
	CoreContent string `json:"core_content"`
	Conclusion  string `json:"conclusion"`
	Status      string `json:"status"`
	Cached      bool   `json:"cached"`
}

type QuickSummaryResponse struct {
	Keyword   string `json:"keyword"`
	Summary   string `json:"summary"`
	NewsCount int    `json:"news_count"`
	DateRange string `json:"date_range"`
	Status    string `json:"status"`
	Cached    bool   `json:"cached"`
}

type HoverSummaryResponse struct {
	Date           string `json:"date"`
	TitleSummary   string `json:"title_summary"`
	ContentSummary string `json:"content_summary"`
	NewsCount      int    `json:"news_count"`
	ImageURL       string `json:"image_url"`
	Status         string `json:"status"`
	Cached         bool   `json:"cached"`
}

type NewsItemResponse struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Press   string `json:"press"`
	Date    string `json:"date"`
	Link    string `json:"link"`
	Image   string `json:"image"`
}

type NewsListResponse struct {
	NewsList    []NewsItemResponse `json:"news_list"`
	TotalCount  int                `json:"total_count"`
	CurrentPage int                `json:"current_page"`
	TotalPages  int                `json:"total_pages"`
	HasNext     bool               `json:"has_next"`
	HasPrevious bool               `json:"has_previous"`
}

type TrendingKeywordResponse struct {
	Keyword      string `json:"keyword"`
	Count        int    `json:"count"`
	LastSearched string `json:"last_searched"`
}

type TrendingResponse struct {
	Keywords []TrendingKeywordResponse `json:"keywords"`
}

type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}
