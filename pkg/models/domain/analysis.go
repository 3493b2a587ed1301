package domain

import "time"

// AnalysisDetails is the structured payload of a composed analysis.
type AnalysisDetails struct {
	Suggestions   []string
	Highlights    []string
	Warnings      []string
	Motivation    string // set only for NEGATIVE sentiment
	Encouragement string // set only for POSITIVE sentiment
	TopPriority   string
}

// Analysis is the cached insight artifact for one module. There is one live
// Analysis per module; the composer overwrites, never appends. Score is nil
// when the window held no data (insufficient data, not a zero score).
type Analysis struct {
	Module      Module
	Score       *int
	Sentiment   Sentiment
	Title       string
	Content     string
	Details     AnalysisDetails
	LastUpdated time.Time
}
