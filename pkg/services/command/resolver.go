package command

import (
	"github.com/life-tools/life-atlas/pkg/models/domain"
)

// slotPriority fixes which open slot gets asked about first when more than
// one is unresolved: silently guessing an amount or category is worse than
// one extra question, so money comes first.
var slotPriority = []string{"amount", "category", "date", "note", "title", "habit", "module"}

const apology = "Sorry, I can't help with that yet."

// Resolver decides what happens to a parse outcome before anything executes:
// rejections become a polite apology, clarifications stay focused on a
// single slot, and ready commands pass straight through.
type Resolver struct{}

func (Resolver) Resolve(outcome domain.ParseOutcome) domain.ParseOutcome {
	switch outcome.Status {
	case domain.OutcomeRejected:
		outcome.Reason = apology
		return outcome
	case domain.OutcomeNeedsClarification:
		// The parser names exactly one slot per round; nothing to trim,
		// but an unnamed slot would leave the round trip unanswerable.
		if outcome.Slot == "" {
			outcome.Slot = slotPriority[0]
		}
		return outcome
	default:
		return outcome
	}
}

// SlotRank orders slots by clarification priority; unknown slots sort last.
func SlotRank(slot string) int {
	for i, s := range slotPriority {
		if s == slot {
			return i
		}
	}
	return len(slotPriority)
}
