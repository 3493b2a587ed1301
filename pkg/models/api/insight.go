package api

import "time"

// Analysis is the JSON shape served to the UI.
type Analysis struct {
	Module      string          `json:"module"`
	Score       *int            `json:"score,omitempty"`
	Sentiment   string          `json:"sentiment"`
	Title       string          `json:"title"`
	Content     string          `json:"content"`
	Details     AnalysisDetails `json:"details"`
	LastUpdated time.Time       `json:"last_updated"`
}

type AnalysisDetails struct {
	Suggestions   []string `json:"suggestions,omitempty"`
	Highlights    []string `json:"highlights,omitempty"`
	Warnings      []string `json:"warnings,omitempty"`
	Motivation    string   `json:"motivation,omitempty"`
	Encouragement string   `json:"encouragement,omitempty"`
	TopPriority   string   `json:"top_priority,omitempty"`
}

type Module struct {
	Name string `json:"name"`
}
