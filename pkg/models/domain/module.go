package domain

// Module identifies one life-management domain.
type Module string

const (
	ModuleFinance Module = "finance"
	ModuleTodo    Module = "todo"
	ModuleHabit   Module = "habit"
	ModuleDiary   Module = "diary"
	ModuleSavings Module = "savings"
	// ModuleOverall is the composite across all domains.
	ModuleOverall Module = "overall"
)

// Modules lists the per-domain modules, excluding the overall composite.
var Modules = []Module{ModuleFinance, ModuleTodo, ModuleHabit, ModuleDiary, ModuleSavings}

func (m Module) Valid() bool {
	if m == ModuleOverall {
		return true
	}
	for _, known := range Modules {
		if m == known {
			return true
		}
	}
	return false
}

// Sentiment is the three-way qualitative read of a score.
type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNeutral  Sentiment = "NEUTRAL"
	SentimentNegative Sentiment = "NEGATIVE"
)
