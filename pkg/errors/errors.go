package errors

import (
	"fmt"
)

// Error codes reported to GraphQL clients under extensions.code.
const (
	CodeUpstreamFetch = "UPSTREAM_FETCH_ERROR"
	CodeStorage       = "STORAGE_ERROR"
	CodeBadUserInput  = "BAD_USER_INPUT"
)

// ValidationError represents a validation failure with field-level details
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Extensions returns the GraphQL error extensions for this error
func (e *ValidationError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": CodeBadUserInput}
	if e.Field != "" {
		ext["field"] = e.Field
	}
	return ext
}

// UpstreamFetchError represents a failed call to the remote REST API:
// a network error, a timeout, a non-2xx status or an undecodable body.
type UpstreamFetchError struct {
	Op         string // adapter operation, e.g. "GetUser"
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

// NewUpstreamFetchError creates a new upstream fetch error
func NewUpstreamFetchError(op, url string, statusCode int, err error) *UpstreamFetchError {
	return &UpstreamFetchError{
		Op:         op,
		URL:        url,
		StatusCode: statusCode,
		Err:        err,
	}
}

// Error implements the error interface
func (e *UpstreamFetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("upstream %s %s: status %d: %v", e.Op, e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("upstream %s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap returns the wrapped error
func (e *UpstreamFetchError) Unwrap() error {
	return e.Err
}

// Extensions returns the GraphQL error extensions for this error
func (e *UpstreamFetchError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": CodeUpstreamFetch}
	if e.StatusCode != 0 {
		ext["status"] = e.StatusCode
	}
	return ext
}

// StorageError represents a failed database statement
type StorageError struct {
	Op  string // adapter operation, e.g. "CreateUser"
	Err error
}

// NewStorageError creates a new storage error
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{
		Op:  op,
		Err: err,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

// Unwrap returns the wrapped error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Extensions returns the GraphQL error extensions for this error
func (e *StorageError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": CodeStorage}
}
