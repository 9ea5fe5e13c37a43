package entity

// ChatRequest is the validated inbound request. Instances are only produced
// by the validator, so Message is always non-empty, trimmed-non-blank and
// within the length cap.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the uniform outbound shape for every outcome: exactly one of
// Message (success) or Error (failure) is set.
type ChatResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
