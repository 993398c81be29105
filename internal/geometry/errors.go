package geometry

import (
	"errors"
	"fmt"
)

// Failure codes shared across the grid packages.
const (
	CodeOutOfBounds      = "OutOfBounds"
	CodeNoEdgeNearby     = "NoEdgeNearby"
	CodeNoCornerNearby   = "NoCornerNearby"
	CodeNoMatch          = "NoMatch"
	CodeIndexOutOfRange  = "IndexOutOfRange"
	CodeOccupied         = "Occupied"
	CodeFootprintOverlap = "FootprintOverlap"
	CodeUnreachable      = "Unreachable"
)

// GridError represents a recoverable grid operation failure.
type GridError struct {
	Code    string
	Message string
}

func (e *GridError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Errorf builds a coded GridError with a formatted message.
func Errorf(code, format string, v ...any) *GridError {
	return &GridError{Code: code, Message: fmt.Sprintf(format, v...)}
}

// ErrorCode extracts the failure code from an error, or "" when the error
// is nil or not a GridError.
func ErrorCode(err error) string {
	var ge *GridError
	if errors.As(err, &ge) {
		return ge.Code
	}
	return ""
}
