package models

type FlowKind string

const (
	FlowNone     FlowKind = "none"
	FlowFaceTone FlowKind = "face_tone"
	FlowBodyFit  FlowKind = "body_fit"
)

// FlowState tracks the single active guided flow. Collected accumulates the
// user's selections across steps; the engine resets the whole state to
// FlowNone on completion, explicit reset, or when a different flow starts.
type FlowState struct {
	Kind      FlowKind          `json:"kind"`
	Step      string            `json:"step,omitempty"`
	Collected map[string]string `json:"collected,omitempty"`
}

// Reset returns the inactive flow state.
func (FlowState) Reset() FlowState {
	return FlowState{Kind: FlowNone}
}
