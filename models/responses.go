package models

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	// Message is a short human-readable reason, e.g. "User not found".
	Message string `json:"message"`
}
