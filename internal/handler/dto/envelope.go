// Package dto provides Data Transfer Objects for API requests and responses.
package dto

// Envelope is the uniform response shape: a human-readable message plus a
// data object. Errors carry an empty data object.
type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// EmptyData is the data object used in error responses.
var EmptyData = struct{}{}
