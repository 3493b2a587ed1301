package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Intent is the coarse label assigned to an utterance by the upstream
// classification call.
type Intent string

const (
	IntentRecordExpense Intent = "RECORD_EXPENSE"
	IntentRecordIncome  Intent = "RECORD_INCOME"
	IntentAddTodo       Intent = "ADD_TODO"
	IntentCheckHabit    Intent = "CHECK_HABIT"
	IntentQuerySummary  Intent = "QUERY_SUMMARY"
	IntentUnknown       Intent = "UNKNOWN"
)

// Classification is the raw output of the LLM boundary: a coarse intent plus
// a loosely-typed slot map. It must not leak past the command parser.
type Classification struct {
	Intent Intent
	Slots  map[string]string
}

// Category is a valid categorization target supplied by the category lookup
// collaborator. Aliases carry common spoken terms ("lunch" for "Dining") so
// fuzzy matching can resolve everyday phrasing.
type Category struct {
	ID      string
	Name    string
	Aliases []string
}

// CommandKind tags the enumerated command variants.
type CommandKind string

const (
	KindRecordTransaction CommandKind = "record_transaction"
	KindAddTodo           CommandKind = "add_todo"
	KindCheckHabit        CommandKind = "check_habit"
	KindQuerySummary      CommandKind = "query_summary"
)

// Command is a fully validated, strongly-typed user command. Commands are
// constructed only by the parser and consumed exactly once by the executor.
type Command interface {
	Kind() CommandKind
	// TargetModule names the single domain store the command touches.
	TargetModule() Module
}

// RecordTransaction records one expense or income entry.
type RecordTransaction struct {
	Amount       decimal.Decimal
	Income       bool
	CategoryID   string
	CategoryName string
	Note         string
	OccurredOn   time.Time
}

func (RecordTransaction) Kind() CommandKind    { return KindRecordTransaction }
func (RecordTransaction) TargetModule() Module { return ModuleFinance }

// AddTodo creates one todo item.
type AddTodo struct {
	Title string
	Note  string
	DueOn *time.Time
}

func (AddTodo) Kind() CommandKind    { return KindAddTodo }
func (AddTodo) TargetModule() Module { return ModuleTodo }

// CheckHabit marks a habit as done for a day.
type CheckHabit struct {
	Habit     string
	CheckedOn time.Time
}

func (CheckHabit) Kind() CommandKind    { return KindCheckHabit }
func (CheckHabit) TargetModule() Module { return ModuleHabit }

// QuerySummary asks for the current analysis of one module. Read-only.
type QuerySummary struct {
	Module Module
}

func (QuerySummary) Kind() CommandKind      { return KindQuerySummary }
func (q QuerySummary) TargetModule() Module { return q.Module }

// OutcomeStatus tags a ParseOutcome.
type OutcomeStatus string

const (
	OutcomeReady              OutcomeStatus = "ready"
	OutcomeNeedsClarification OutcomeStatus = "needs_clarification"
	OutcomeRejected           OutcomeStatus = "rejected"
)

// ParseOutcome is the result of parsing one classified utterance.
// Exactly one of Command (ready), Question+Slot (clarification) or Reason
// (rejected) is meaningful, selected by Status.
type ParseOutcome struct {
	Status   OutcomeStatus
	Command  Command
	Question string
	Slot     string
	Reason   string
}

// ErrorKind discriminates terminal command failures.
type ErrorKind string

const (
	ErrValidation        ErrorKind = "validation"
	ErrAmbiguity         ErrorKind = "ambiguity"
	ErrUnsupportedIntent ErrorKind = "unsupported_intent"
	ErrExecution         ErrorKind = "execution"
)

// ExecutionResult is the single terminal outcome of executing a command.
type ExecutionResult struct {
	OK      bool
	Summary string
	Kind    ErrorKind
	Message string
}

func Succeeded(summary string) ExecutionResult {
	return ExecutionResult{OK: true, Summary: summary}
}

func Failed(kind ErrorKind, message string) ExecutionResult {
	return ExecutionResult{OK: false, Kind: kind, Message: message}
}
