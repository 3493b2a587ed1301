package adapters

import (
	"github.com/life-tools/life-atlas/pkg/models/api"
	"github.com/life-tools/life-atlas/pkg/models/domain"
)

func MapDomainAnalysisToAPI(a domain.Analysis) api.Analysis {
	return api.Analysis{
		Module:    string(a.Module),
		Score:     a.Score,
		Sentiment: string(a.Sentiment),
		Title:     a.Title,
		Content:   a.Content,
		Details: api.AnalysisDetails{
			Suggestions:   a.Details.Suggestions,
			Highlights:    a.Details.Highlights,
			Warnings:      a.Details.Warnings,
			Motivation:    a.Details.Motivation,
			Encouragement: a.Details.Encouragement,
			TopPriority:   a.Details.TopPriority,
		},
		LastUpdated: a.LastUpdated,
	}
}

func MapDomainExecutionResultToAPI(r domain.ExecutionResult) api.ExecutionResult {
	return api.ExecutionResult{
		OK:      r.OK,
		Summary: r.Summary,
		Kind:    string(r.Kind),
		Message: r.Message,
	}
}
