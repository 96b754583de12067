package contract

import "time"

// Reason codes emitted by the selection core. Fixed vocabulary; the order in
// which they appear in a result is part of the contract.
const (
	ReasonConstraintsFit      = "constraints_fit"
	ReasonFallbackBestOverall = "fallback_best_overall"
	ReasonFallbackDirect      = "fallback_direct"
	ReasonTimeFit             = "time_fit"
	ReasonTimeOver            = "time_over"
	ReasonEnergyFit           = "energy_fit"
	ReasonEnergyOver          = "energy_over"
	ReasonPriorityPreferred   = "priority_preferred"
)

// MaxReasonCodes caps the reason code list on a selection result.
const MaxReasonCodes = 5

// MaxAlternatives caps the alternative task id list on a selection result.
const MaxAlternatives = 2

// SelectionResult is the output of the deterministic selection core.
// TaskID is always one of the ids present in the candidate set passed in.
type SelectionResult struct {
	TaskID      string
	ReasonCodes []string
	AltTaskIDs  []string
}

// DoNextRequest is the transport-independent boundary request for "what
// should I do next". Constraints is a permissive map; when nil, the
// orchestrator derives constraints from today's check-in.
type DoNextRequest struct {
	UserID      string
	Constraints map[string]any
	Now         *time.Time
}

// DoNextData is the domain payload of a successful do-next run.
type DoNextData struct {
	TaskID      string
	ReasonCodes []string
	AltTaskIDs  []string
	Mode        string
	Coaching    *CoachingMessage
}

// DoNextResponse is the orchestrator's sole exit shape. Finalize always
// returns one of these; it never lets an error escape to the caller.
type DoNextResponse struct {
	Success bool
	Error   string
	Data    DoNextData
}

// CoachingMessage is the structurally valid triple the coaching collaborator
// must always return, even on internal failure.
type CoachingMessage struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	NextStep string `json:"next_step"`
}

type SelectionErrorCode string

const (
	ErrNoCandidates       SelectionErrorCode = "NO_CANDIDATES"
	ErrNoUsableCandidates SelectionErrorCode = "NO_USABLE_CANDIDATES"
	ErrInvalidCandidate   SelectionErrorCode = "INVALID_CANDIDATE"
	ErrInvalidMaxMinutes  SelectionErrorCode = "INVALID_MAX_MINUTES"
	ErrMissingEnergy      SelectionErrorCode = "MISSING_ENERGY"
	ErrDataIntegrity      SelectionErrorCode = "DATA_INTEGRITY"
)

// SelectionError is the validation failure type raised by the selection
// core for its fatal conditions. Everything else degrades via defaults.
type SelectionError struct {
	Code    SelectionErrorCode
	Message string
}

func (e *SelectionError) Error() string {
	return string(e.Code) + ": " + e.Message
}
