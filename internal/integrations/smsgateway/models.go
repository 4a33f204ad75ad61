package smsgateway

// Logger is the logging surface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// sendRequest is the gateway's message payload.
type sendRequest struct {
	Sender  string `json:"sender"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// sendResponse is the gateway's acknowledgment.
type sendResponse struct {
	MessageID string `json:"message_id"`
	Status    string `json:"status"`
}
