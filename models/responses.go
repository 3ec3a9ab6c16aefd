package models

// ErrorResponse is the normalized body written for every failed request.
//
// Message holds a single string for domain and unclassified errors, and an
// ordered []string for validation errors:
//
//	{"statusCode":400,"message":["login is required"]}
//	{"statusCode":401,"message":"Unauthorized"}
type ErrorResponse struct {
	StatusCode int `json:"statusCode"`
	Message    any `json:"message"`
}
