package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")

	// Upstream API errors
	ErrAPIRequest     = fmt.Errorf("API request failed")
	ErrUpstreamStatus = fmt.Errorf("unexpected upstream status")
	ErrTokenExchange  = fmt.Errorf("token exchange failed")
	ErrNoContent      = fmt.Errorf("nothing playing")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")

	// Service lifecycle errors
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
)
