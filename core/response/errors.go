package response

import "errors"

var (
	ErrAlreadyRendered = errors.New("response already rendered")
	ErrBodyEncode      = errors.New("failed to encode response body")
	ErrBodyWrite       = errors.New("failed to write response body")
)
