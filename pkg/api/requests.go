package api

// ReviewActionRequest is the body of POST /api/review/:id/action.
type ReviewActionRequest struct {
	Action string `json:"action"`
	Note   string `json:"note,omitempty"`
}

// LLMSwitchRequest is the body of POST /api/admin/llm/switch.
type LLMSwitchRequest struct {
	Provider string `json:"provider"`
}
