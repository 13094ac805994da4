package test

// ClassifyRequest is a question to run through the intent classifier only.
type ClassifyRequest struct {
	Text string `json:"text" binding:"required"`
}

// ClassifyResponse shows how the classifier read the question.
type ClassifyResponse struct {
	Success   bool   `json:"success"`
	Intent    string `json:"intent,omitempty"`
	City      string `json:"city,omitempty"`
	Topic     string `json:"topic,omitempty"`
	Ambiguous bool   `json:"ambiguous"`
	Raw       string `json:"raw,omitempty"`
	Text      string `json:"text"`
	Error     string `json:"error,omitempty"`
	Details   string `json:"details,omitempty"`
}

// HealthCheckResponse represents a health check response
type HealthCheckResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
