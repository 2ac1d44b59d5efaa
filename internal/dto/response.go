package dto

// APIResponse is the envelope for every successful response.
type APIResponse struct {
	Status  int    `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// ErrorResponse is the envelope for every failed response.
type ErrorResponse struct {
	Status  int      `json:"status"`
	Data    any      `json:"data"`
	Message string   `json:"message"`
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// NewAPIResponse builds a success envelope. Success is true for any status below 400.
func NewAPIResponse(status int, data any, message string) APIResponse {
	if message == "" {
		message = "Success"
	}
	return APIResponse{Status: status, Data: data, Message: message, Success: status < 400}
}

// NewErrorResponse builds an error envelope.
func NewErrorResponse(status int, message string, errs ...string) ErrorResponse {
	if errs == nil {
		errs = []string{}
	}
	return ErrorResponse{Status: status, Message: message, Success: false, Errors: errs}
}
