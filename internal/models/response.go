package models

// Response is the envelope of every successful JSON response
// swagger:model Response
type Response struct {
	// HTTP status code
	// example: 200
	Status int `json:"status"`

	// Human readable message
	// example: Success
	Message string `json:"message"`

	// Payload
	Data any `json:"data,omitempty"`
}

// ErrorBody describes a failure
// swagger:model ErrorBody
type ErrorBody struct {
	// Machine readable code
	// example: NOT_FOUND
	Code string `json:"code"`

	// Optional details, e.g. validation failures
	Details any `json:"details,omitempty"`
}

// ErrorResponse is the envelope of every failed JSON response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// HTTP status code
	// example: 404
	Status int `json:"status"`

	// Human readable message
	// example: Game not found
	Message string `json:"message"`

	Error ErrorBody `json:"error"`
}
