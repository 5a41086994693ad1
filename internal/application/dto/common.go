package dto

// ApiResponse is the success envelope the dashboard consumes; Message feeds
// the toast shown after a mutation.
type ApiResponse struct {
	Data    any    `json:"data"`
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// ErrorResponse is the HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
