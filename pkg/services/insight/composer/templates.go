package composer

import (
	"fmt"

	"github.com/life-tools/life-atlas/pkg/models/domain"
	"github.com/life-tools/life-atlas/pkg/services/insight/extractors"
)

// Per-domain metric thresholds. "Good" marks a highlight, "concern" marks a
// warning. These are business constants, deliberately separate from the
// sentiment bands in the scoring package.
const (
	goodOnBudgetRatio    = 0.75
	concernOnBudgetRatio = 0.5
	goodSavingsRate      = 0.2

	goodCompletionRate    = 0.7
	concernCompletionRate = 0.3
	concernOverdueCount   = 3

	goodCheckRate    = 0.8
	concernCheckRate = 0.3
	goodBestStreak   = 5

	goodEntryRate       = 0.5
	concernGoodMood     = 0.3
	goodAvgWords        = 120
	concernRegularity   = 0.15
	goodRegularity      = 0.4
	goodDepositCount    = 4
)

// flagRule is one row of the template table: a named metric flag plus the
// texts it contributes when it fires. Rules are evaluated in declared order,
// which keeps composition deterministic.
type flagRule struct {
	flag       string
	applies    func(b domain.MetricBundle) bool
	highlight  func(b domain.MetricBundle) string
	warning    func(b domain.MetricBundle) string
	suggestion func(b domain.MetricBundle) string
}

type moduleTemplate struct {
	titles        map[domain.Sentiment]string
	summaries     map[domain.Sentiment]string // one fmt verb: the score
	insufficient  string
	encouragement string
	motivation    string
	rules         []flagRule
}

func pct(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

var templates = map[domain.Module]moduleTemplate{
	domain.ModuleFinance: {
		titles: map[domain.Sentiment]string{
			domain.SentimentPositive: "Finances on track",
			domain.SentimentNeutral:  "Finances holding steady",
			domain.SentimentNegative: "Finances need attention",
		},
		summaries: map[domain.Sentiment]string{
			domain.SentimentPositive: "Your spending stayed disciplined this period; the finance score is %d.",
			domain.SentimentNeutral:  "Spending was mixed this period; the finance score is %d.",
			domain.SentimentNegative: "Spending ran ahead of plan this period; the finance score is %d.",
		},
		insufficient:  "No transactions recorded recently, so there is nothing to score yet.",
		encouragement: "Great budgeting — keep the streak going.",
		motivation:    "One mindful week of spending can turn this around.",
		rules: []flagRule{
			{
				flag: "on_budget",
				applies: func(b domain.MetricBundle) bool {
					return b.Metric(extractors.MetricExpenseCount) > 0 &&
						b.Metric(extractors.MetricOnBudgetRatio) >= goodOnBudgetRatio
				},
				highlight: func(b domain.MetricBundle) string {
					return fmt.Sprintf("%s of your expenses stayed within budget.", pct(b.Metric(extractors.MetricOnBudgetRatio)))
				},
			},
			{
				flag: "over_budget",
				applies: func(b domain.MetricBundle) bool {
					return b.Metric(extractors.MetricExpenseCount) > 0 &&
						b.Metric(extractors.MetricOnBudgetRatio) < concernOnBudgetRatio
				},
				warning: func(b domain.MetricBundle) string {
					return fmt.Sprintf("Only %s of expenses stayed within budget.", pct(b.Metric(extractors.MetricOnBudgetRatio)))
				},
				suggestion: func(b domain.MetricBundle) string {
					return "Review the categories that went over and set tighter limits."
				},
			},
			{
				flag: "saving_well",
				applies: func(b domain.MetricBundle) bool {
					return b.Metric(extractors.MetricSavingsRate) >= goodSavingsRate
				},
				highlight: func(b domain.MetricBundle) string {
					return fmt.Sprintf("You kept %s of your income unspent.", pct(b.Metric(extractors.MetricSavingsRate)))
				},
			},
			{
				flag: "spending_exceeds_income",
				applies: func(b domain.MetricBundle) bool {
					return b.Metric(extractors.MetricIncomeTotal) > 0 &&
						b.Metric(extractors.MetricExpenseTotal) > b.Metric(extractors.MetricIncomeTotal)
				},
				warning: func(b domain.MetricBundle) string {
					return "Expenses exceeded income in this period."
				},
				suggestion: func(b domain.MetricBundle) string {
					return "Plan the next large purchases for after payday."
				},
			},
		},
	},
	domain.ModuleTodo: {
		titles: map[domain.Sentiment]string{
			domain.SentimentPositive: "Tasks under control",
			domain.SentimentNeutral:  "Task list in motion",
			domain.SentimentNegative: "Task list piling up",
		},
		summaries: map[domain.Sentiment]string{
			domain.SentimentPositive: "You are closing tasks faster than they arrive; the productivity score is %d.",
			domain.SentimentNeutral:  "Tasks are moving, with room to finish more; the productivity score is %d.",
			domain.SentimentNegative: "Open tasks are accumulating; the productivity score is %d.",
		},
		insufficient:  "No tasks were created recently, so there is nothing to score yet.",
		encouragement: "Strong follow-through — your list is working for you.",
		motivation:    "Pick the single oldest task and finish just that one today.",
		rules: []flagRule{
			{
				flag: "completing_well",
				applies: func(b domain.MetricBundle) bool {
					return b.Metric(extractors.MetricCompletionRate) >= goodCompletionRate
				},
				highlight: func(b domain.MetricBundle) string {
					return fmt.Sprintf("You completed %s of the tasks you created.", pct(b.Metric(extractors.MetricCompletionRate)))
				},
			},
			{
				flag: "low_completion",
				applies: func(b domain.MetricBundle) bool {
					return b.Metric(extractors.MetricCompletionRate) < concernCompletionRate
				},
				warning: func(b domain.MetricBundle) string {
					return fmt.Sprintf("Only %s of recent tasks got done.", pct(b.Metric(extractors.MetricCompletionRate)))
				},
				suggestion: func(b domain.MetricBundle) string {
					return "Break stalled tasks into smaller steps you can finish in one sitting."
				},
			},
			{
				flag: "overdue_backlog",
				applies: func(b domain.MetricBundle) bool {
					return b.Metric(extractors.MetricOverdueCount) >= concernOverdueCount
				},
				warning: func(b domain.MetricBundle) string {
					return fmt.Sprintf("%.0f tasks are past their due date.", b.Metric(extractors.MetricOverdueCount))
				},
				suggestion: func(b domain.MetricBundle) string {
					return "Reschedule or drop overdue tasks so the list reflects reality."
				},
			},
		},
	},
	domain.ModuleHabit: {
		titles: map[domain.Sentiment]string{
			domain.SentimentPositive: "Habits going strong",
			domain.SentimentNeutral:  "Habits taking shape",
			domain.SentimentNegative: "Habits slipping",
		},
		summaries: map[domain.Sentiment]string{
			domain.SentimentPositive: "You showed up almost every day; the habit score is %d.",
			domain.SentimentNeutral:  "Check-ins landed on some days but not others; the habit score is %d.",
			domain.SentimentNegative: "Check-ins were rare this period; the habit score is %d.",
		},
		insufficient:  "No habit check-ins recorded recently, so there is nothing to score yet.",
		encouragement: "Consistency like this is how habits stick.",
		motivation:    "Miss a day, never two — tomorrow is the one that counts.",
		rules: []flagRule{
			{
				flag: "daily_consistency",
				applies: func(b domain.MetricBundle) bool {
					return b.Metric(extractors.MetricCheckRate) >= goodCheckRate
				},
				highlight: func(b domain.MetricBundle) string {
					return fmt.Sprintf("You checked in on %s of days.", pct(b.Metric(extractors.MetricCheckRate)))
				},
			},
			{
				flag: "streak",
				applies: func(b domain.MetricBundle) bool {
					return b.Metric(extractors.MetricBestStreak) >= goodBestStreak
				},
				highlight: func(b domain.MetricBundle) string {
					return fmt.Sprintf("Best streak: %.0f days in a row.", b.Metric(extractors.MetricBestStreak))
				},
			},
			{
				flag: "sparse_checkins",
				applies: func(b domain.MetricBundle) bool {
					return b.Metric(extractors.MetricCheckRate) < concernCheckRate
				},
				warning: func(b domain.MetricBundle) string {
					return fmt.Sprintf("Check-ins covered only %s of days.", pct(b.Metric(extractors.MetricCheckRate)))
				},
				suggestion: func(b domain.MetricBundle) string {
					return "Anchor the habit to something you already do daily."
				},
			},
		},
	},
	domain.ModuleDiary: {
		titles: map[domain.Sentiment]string{
			domain.SentimentPositive: "Journaling in rhythm",
			domain.SentimentNeutral:  "Journaling on and off",
			domain.SentimentNegative: "Journal gathering dust",
		},
		summaries: map[domain.Sentiment]string{
			domain.SentimentPositive: "You wrote regularly and the tone leaned bright; the diary score is %d.",
			domain.SentimentNeutral:  "Entries appeared on some days; the diary score is %d.",
			domain.SentimentNegative: "Few entries made it in this period; the diary score is %d.",
		},
		insufficient:  "No diary entries recorded recently, so there is nothing to score yet.",
		encouragement: "Your future self will thank you for these pages.",
		motivation:    "Two sentences before bed still count as an entry.",
		rules: []flagRule{
			{
				flag: "writing_regularly",
				applies: func(b domain.MetricBundle) bool {
					return b.Metric(extractors.MetricEntryRate) >= goodEntryRate
				},
				highlight: func(b domain.MetricBundle) string {
					return fmt.Sprintf("You wrote on %s of days.", pct(b.Metric(extractors.MetricEntryRate)))
				},
			},
			{
				flag: "substantial_entries",
				applies: func(b domain.MetricBundle) bool {
					return b.Metric(extractors.MetricAvgWords) >= goodAvgWords
				},
				highlight: func(b domain.MetricBundle) string {
					return fmt.Sprintf("Entries averaged %.0f words.", b.Metric(extractors.MetricAvgWords))
				},
			},
			{
				flag: "heavy_mood",
				applies: func(b domain.MetricBundle) bool {
					return b.Metric(extractors.MetricEntryCount) > 0 &&
						b.Metric(extractors.MetricGoodMoodRatio) < concernGoodMood
				},
				warning: func(b domain.MetricBundle) string {
					return "Most recent entries carried a low mood."
				},
				suggestion: func(b domain.MetricBundle) string {
					return "Note one thing that went well alongside the hard parts."
				},
			},
		},
	},
	domain.ModuleSavings: {
		titles: map[domain.Sentiment]string{
			domain.SentimentPositive: "Savings building up",
			domain.SentimentNeutral:  "Savings ticking over",
			domain.SentimentNegative: "Savings stalled",
		},
		summaries: map[domain.Sentiment]string{
			domain.SentimentPositive: "Deposits landed steadily; the savings score is %d.",
			domain.SentimentNeutral:  "Some deposits came in; the savings score is %d.",
			domain.SentimentNegative: "Deposits nearly stopped; the savings score is %d.",
		},
		insufficient:  "No deposits recorded recently, so there is nothing to score yet.",
		encouragement: "Every deposit compounds — nice work.",
		motivation:    "Even a small automatic transfer restarts the momentum.",
		rules: []flagRule{
			{
				flag: "regular_deposits",
				applies: func(b domain.MetricBundle) bool {
					return b.Metric(extractors.MetricDepositRegularity) >= goodRegularity
				},
				highlight: func(b domain.MetricBundle) string {
					return fmt.Sprintf("You added to savings on %s of days.", pct(b.Metric(extractors.MetricDepositRegularity)))
				},
			},
			{
				flag: "frequent_deposits",
				applies: func(b domain.MetricBundle) bool {
					return b.Metric(extractors.MetricDepositCount) >= goodDepositCount
				},
				highlight: func(b domain.MetricBundle) string {
					return fmt.Sprintf("%.0f deposits this period.", b.Metric(extractors.MetricDepositCount))
				},
			},
			{
				flag: "deposits_stalled",
				applies: func(b domain.MetricBundle) bool {
					return b.Metric(extractors.MetricDepositRegularity) < concernRegularity
				},
				warning: func(b domain.MetricBundle) string {
					return "Deposits have been rare lately."
				},
				suggestion: func(b domain.MetricBundle) string {
					return "Schedule a recurring transfer on payday, however small."
				},
			},
		},
	},
	domain.ModuleOverall: {
		titles: map[domain.Sentiment]string{
			domain.SentimentPositive: "Life index looking bright",
			domain.SentimentNeutral:  "Life index steady",
			domain.SentimentNegative: "Life index under strain",
		},
		summaries: map[domain.Sentiment]string{
			domain.SentimentPositive: "Across your active areas things are going well; the overall score is %d.",
			domain.SentimentNeutral:  "Your active areas are holding steady; the overall score is %d.",
			domain.SentimentNegative: "Several areas could use attention; the overall score is %d.",
		},
		insufficient:  "Not enough recent activity across any area to build an overall picture yet.",
		encouragement: "The whole picture looks healthy — keep it up.",
		motivation:    "Start with the single area that bothers you most.",
	},
}
