package dto

// ReportRequest is the JSON body accepted by POST /report.
type ReportRequest struct {
	Action string  `json:"action"`
	Email  string  `json:"email"`
	Name   *string `json:"name,omitempty"`
}

type ReportResponse struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
