package api

// UtteranceRequest carries one free-text (or transcribed) user command.
type UtteranceRequest struct {
	Text string `json:"text"`
}

// ClarifyRequest answers the pending question of an open session.
type ClarifyRequest struct {
	SessionID string `json:"session_id"`
	Answer    string `json:"answer"`
}

// DispatchResponse is the result of one dispatch round: either the command
// executed (Result set), or one follow-up question is pending (SessionID and
// Question set), or the utterance was rejected (Message set).
type DispatchResponse struct {
	Status    string           `json:"status"` // executed | needs_clarification | rejected
	SessionID string           `json:"session_id,omitempty"`
	Question  string           `json:"question,omitempty"`
	Slot      string           `json:"slot,omitempty"`
	Message   string           `json:"message,omitempty"`
	Result    *ExecutionResult `json:"result,omitempty"`
}

type ExecutionResult struct {
	OK      bool   `json:"ok"`
	Summary string `json:"summary,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
}
