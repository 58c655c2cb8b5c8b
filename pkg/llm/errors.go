package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// ErrorClass is the provider error taxonomy. Only rate-limit, connection,
// and timeout errors are retried.
type ErrorClass string

// Provider error classes.
const (
	ErrorClassAuthentication ErrorClass = "authentication"
	ErrorClassRateLimit      ErrorClass = "rate_limit"
	ErrorClassConnection     ErrorClass = "connection"
	ErrorClassTimeout        ErrorClass = "timeout"
	ErrorClassValidation     ErrorClass = "validation"
	ErrorClassUnknown        ErrorClass = "unknown"
)

// Retryable reports whether calls failing with this class should be retried.
func (c ErrorClass) Retryable() bool {
	switch c {
	case ErrorClassRateLimit, ErrorClassConnection, ErrorClassTimeout:
		return true
	default:
		return false
	}
}

// ProviderError wraps a provider failure with its class.
type ProviderError struct {
	Class ErrorClass
	Err   error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error (%s): %v", e.Class, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError wraps err with an error class.
func NewProviderError(class ErrorClass, err error) *ProviderError {
	return &ProviderError{Class: class, Err: err}
}

// ClassOf extracts the error class, defaulting to unknown. Context deadline
// errors classify as timeout even when unwrapped.
func ClassOf(err error) ErrorClass {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Class
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorClassTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ErrorClassTimeout
		}
		return ErrorClassConnection
	}
	return ErrorClassUnknown
}

// Gateway refusal codes. These are structured results, not retried, and
// surface on ExecuteResult.Error without any provider call being made.
const (
	CodeAgentRateLimitExceeded = "AGENT_RATE_LIMIT_EXCEEDED"
	CodeCostLimitExceeded      = "COST_LIMIT_EXCEEDED"
)

// GatewayError is a structured refusal from the gateway itself.
type GatewayError struct {
	Code    string
	Message string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// GatewayCode returns the refusal code carried by err, or "".
func GatewayCode(err error) string {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return ""
}
