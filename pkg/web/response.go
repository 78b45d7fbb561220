// Package web defines common components for a web application.
package web

// ErrorResponse is the flat JSON shape returned for every failed
// request: {"errorMessage": "..."}, with no enclosing envelope.
type ErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
}

// Error wraps err into the flat error response body.
func Error(err error) ErrorResponse {
	return ErrorResponse{ErrorMessage: err.Error()}
}
