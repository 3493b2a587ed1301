package command

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/life-tools/life-atlas/pkg/adapters"
	"github.com/life-tools/life-atlas/pkg/models/api"
	"github.com/life-tools/life-atlas/pkg/models/domain"
	"github.com/life-tools/life-atlas/pkg/services/command"
)

// Dispatcher is the slice of the command service the HTTP layer needs.
type Dispatcher interface {
	SubmitUtterance(ctx context.Context, text string) (command.DispatchResult, error)
	SubmitClarificationAnswer(ctx context.Context, sessionID, answer string) (command.DispatchResult, error)
}

type Handler struct {
	dispatcher Dispatcher
}

func NewHandler(dispatcher Dispatcher) *Handler {
	return &Handler{dispatcher: dispatcher}
}

func (h *Handler) SubmitUtterance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.UtteranceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, "text is required", http.StatusBadRequest)
		return
	}

	res, err := h.dispatcher.SubmitUtterance(ctx, req.Text)
	if err != nil {
		logger.Error().Err(err).Msg("failed to dispatch utterance")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeDispatch(w, logger, res)
}

func (h *Handler) SubmitClarification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.ClarifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.SessionID == "" {
		http.Error(w, "session_id is required", http.StatusBadRequest)
		return
	}

	res, err := h.dispatcher.SubmitClarificationAnswer(ctx, req.SessionID, req.Answer)
	if err != nil {
		logger.Error().Err(err).Str("session", req.SessionID).Msg("failed to dispatch clarification")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeDispatch(w, logger, res)
}

func writeDispatch(w http.ResponseWriter, logger *zerolog.Logger, res command.DispatchResult) {
	response := api.DispatchResponse{
		SessionID: res.SessionID,
	}

	switch res.Outcome.Status {
	case domain.OutcomeReady:
		response.Status = "executed"
		if res.Result != nil {
			mapped := adapters.MapDomainExecutionResultToAPI(*res.Result)
			response.Result = &mapped
		}
	case domain.OutcomeNeedsClarification:
		response.Status = string(domain.OutcomeNeedsClarification)
		response.Question = res.Outcome.Question
		response.Slot = res.Outcome.Slot
	default:
		response.Status = string(domain.OutcomeRejected)
		response.Message = res.Outcome.Reason
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().Err(err).Msg("failed to encode dispatch response")
	}
}
