package junction

import "fmt"

// ErrorCode represents specific error conditions in the controller
type ErrorCode int

const (
	// No error occurred
	CodeNone ErrorCode = iota
	// Dequeue was attempted on a lane with no vehicles
	CodeEmptyQueue
	// A direction value outside the closed North/East/South/West set was used
	CodeInvalidDirection
	// Timing or controller configuration is invalid
	CodeInvalidConfiguration
)

// QueueError represents lane queue contract violations. In correct operation
// the draining loop's HasVehicles guard prevents it, so seeing one indicates
// a logic defect in the caller, not a runtime condition to recover from.
type QueueError struct {
	Code      ErrorCode
	Direction Direction
}

func (e *QueueError) Error() string {
	return fmt.Sprintf("queue error [%s]: no vehicles to process", e.Direction)
}

// NewEmptyQueueError creates a new empty queue error for the given lane
func NewEmptyQueueError(dir Direction) *QueueError {
	return &QueueError{
		Code:      CodeEmptyQueue,
		Direction: dir,
	}
}

// DirectionError represents an out-of-range direction value
type DirectionError struct {
	Code  ErrorCode
	Value int
}

func (e *DirectionError) Error() string {
	return fmt.Sprintf("direction error: value %d is not a valid direction", e.Value)
}

// NewDirectionError creates a new invalid direction error
func NewDirectionError(value Direction) *DirectionError {
	return &DirectionError{
		Code:  CodeInvalidDirection,
		Value: int(value),
	}
}

// ConfigurationError represents invalid controller or timing configuration
type ConfigurationError struct {
	Code      ErrorCode
	Component string
	Issue     string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Issue)
}

// NewConfigurationError creates a new configuration error
func NewConfigurationError(component, issue string) *ConfigurationError {
	return &ConfigurationError{
		Code:      CodeInvalidConfiguration,
		Component: component,
		Issue:     issue,
	}
}

// IsQueueError checks if an error is a QueueError
func IsQueueError(err error) bool {
	_, ok := err.(*QueueError)
	return ok
}

// IsDirectionError checks if an error is a DirectionError
func IsDirectionError(err error) bool {
	_, ok := err.(*DirectionError)
	return ok
}

// IsConfigurationError checks if an error is a ConfigurationError
func IsConfigurationError(err error) bool {
	_, ok := err.(*ConfigurationError)
	return ok
}

// ErrorCodeOf returns the error code for known error types
func ErrorCodeOf(err error) ErrorCode {
	switch e := err.(type) {
	case *QueueError:
		return e.Code
	case *DirectionError:
		return e.Code
	case *ConfigurationError:
		return e.Code
	default:
		return CodeNone
	}
}
