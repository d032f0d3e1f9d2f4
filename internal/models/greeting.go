// Package models contains the data types exchanged between the greeting service and its clients.
package models

// GreetingRequest is the body of a greeting request
type GreetingRequest struct {
	Name string `json:"name"`
}

// GreetingResponse is the body of a successful greeting response
type GreetingResponse struct {
	Message string `json:"message"`
}

// ErrorDetail is the body of every error response
type ErrorDetail struct {
	Detail string `json:"detail"`
}
