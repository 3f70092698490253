package models

// AnalyzeRequest is the body of POST /api/analyze.
type AnalyzeRequest struct {
	Keyword string `json:"keyword"`
}

// AnalyzeResponse contains an analysis and the session history after it ran.
type AnalyzeResponse struct {
	Analysis *Analysis `json:"analysis"`
	History  []string  `json:"history"`
}

// HistoryResponse lists the session's analyzed keywords in insertion order.
type HistoryResponse struct {
	History []string `json:"history"`
}

// SuggestionsResponse contains the expanded keyword variants.
type SuggestionsResponse struct {
	Keyword     string   `json:"keyword"`
	Suggestions []string `json:"suggestions"`
}

// TextRequest is the body of the text analysis endpoints.
type TextRequest struct {
	Text string `json:"text"`
}

// CleanTextResponse contains the tokens left after stopword removal.
type CleanTextResponse struct {
	Tokens []string `json:"tokens"`
}

// PolarityResponse contains a polarity score in [-1, 1].
type PolarityResponse struct {
	Polarity float64 `json:"polarity"`
}
