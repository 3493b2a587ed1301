// Package command dispatches free-text user commands: classify, parse,
// clarify when needed, and execute atomically against the domain stores.
package command

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/life-tools/life-atlas/pkg/models/domain"
	"github.com/life-tools/life-atlas/pkg/services/classify"
	"github.com/life-tools/life-atlas/pkg/services/command/parser"
)

// session is one open clarification round trip. Abandoned sessions need no
// cleanup: nothing has side effects before a command reaches Ready.
type session struct {
	id          string
	intent      domain.Intent
	slots       map[string]string
	pendingSlot string
}

// DispatchResult is one round of dispatching: a terminal execution result,
// an open clarification (SessionID set), or a rejection.
type DispatchResult struct {
	Outcome   domain.ParseOutcome
	SessionID string
	Result    *domain.ExecutionResult
}

type Dispatcher struct {
	classifier classify.Classifier
	parser     *parser.Parser
	resolver   Resolver
	executor   *Executor

	mu       sync.Mutex
	sessions map[string]*session
}

func NewDispatcher(classifier classify.Classifier, p *parser.Parser, executor *Executor) (*Dispatcher, error) {
	if classifier == nil {
		return nil, fmt.Errorf("classifier is nil")
	}
	if p == nil {
		return nil, fmt.Errorf("parser is nil")
	}
	if executor == nil {
		return nil, fmt.Errorf("executor is nil")
	}
	return &Dispatcher{
		classifier: classifier,
		parser:     p,
		executor:   executor,
		sessions:   make(map[string]*session),
	}, nil
}

// SubmitUtterance classifies and dispatches one utterance. Ready commands
// execute immediately; a clarification opens a session the caller can answer
// through SubmitClarificationAnswer.
func (d *Dispatcher) SubmitUtterance(ctx context.Context, text string) (DispatchResult, error) {
	c, err := d.classifier.Classify(ctx, text)
	if err != nil {
		return DispatchResult{}, fmt.Errorf("classify utterance: %w", err)
	}
	return d.dispatch(ctx, c, "")
}

// SubmitClarificationAnswer merges the user's answer into the open session's
// slot map and re-parses. The original intent classification is reused; the
// clarification round trip never goes back to the LLM.
func (d *Dispatcher) SubmitClarificationAnswer(ctx context.Context, sessionID, answer string) (DispatchResult, error) {
	d.mu.Lock()
	s, ok := d.sessions[sessionID]
	d.mu.Unlock()

	if !ok {
		return DispatchResult{
			Outcome: domain.ParseOutcome{
				Status: domain.OutcomeRejected,
				Reason: "That conversation has expired. Please start over.",
			},
		}, nil
	}

	slots := make(map[string]string, len(s.slots)+1)
	for k, v := range s.slots {
		slots[k] = v
	}
	slots[s.pendingSlot] = answer

	return d.dispatch(ctx, domain.Classification{Intent: s.intent, Slots: slots}, sessionID)
}

// RunCommand executes an already-validated command.
func (d *Dispatcher) RunCommand(ctx context.Context, cmd domain.Command) domain.ExecutionResult {
	return d.executor.Execute(ctx, cmd)
}

func (d *Dispatcher) dispatch(ctx context.Context, c domain.Classification, sessionID string) (DispatchResult, error) {
	outcome, err := d.parser.Parse(ctx, c)
	if err != nil {
		return DispatchResult{}, err
	}
	outcome = d.resolver.Resolve(outcome)

	switch outcome.Status {
	case domain.OutcomeReady:
		d.closeSession(sessionID)
		result := d.executor.Execute(ctx, outcome.Command)
		return DispatchResult{Outcome: outcome, Result: &result}, nil

	case domain.OutcomeNeedsClarification:
		id := d.openOrUpdateSession(sessionID, c, outcome.Slot)
		return DispatchResult{Outcome: outcome, SessionID: id}, nil

	default:
		d.closeSession(sessionID)
		return DispatchResult{Outcome: outcome}, nil
	}
}

func (d *Dispatcher) openOrUpdateSession(sessionID string, c domain.Classification, pendingSlot string) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	if sessionID != "" {
		if s, ok := d.sessions[sessionID]; ok {
			s.slots = c.Slots
			s.pendingSlot = pendingSlot
			return sessionID
		}
	}

	id := uuid.NewString()
	d.sessions[id] = &session{
		id:          id,
		intent:      c.Intent,
		slots:       c.Slots,
		pendingSlot: pendingSlot,
	}
	return id
}

func (d *Dispatcher) closeSession(sessionID string) {
	if sessionID == "" {
		return
	}
	d.mu.Lock()
	delete(d.sessions, sessionID)
	d.mu.Unlock()
}
