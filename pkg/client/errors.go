package client

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kjanat/restpki/client/pkg/api"
)

// Validation error codes
const (
	ErrCodePdfNotSet             = "PDF_NOT_SET"
	ErrCodePolicyNotSet          = "SIGNATURE_POLICY_NOT_SET"
	ErrCodeTokenNotSet           = "TOKEN_NOT_SET"
	ErrCodeSecurityContextNotSet = "SECURITY_CONTEXT_NOT_SET"
)

// Common errors
var (
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrAlreadyCompleted = errors.New("flow already completed")
)

// ValidationError reports a required input that was not set. It is raised
// before any request is sent.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// PreconditionError reports a result accessed before the step that
// produces it has succeeded.
type PreconditionError struct {
	Method   string
	Requires string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s can only be called after %s has succeeded", e.Method, e.Requires)
}

// RemoteServiceError represents a failed call to the service: either the
// transport failed (Err is set, StatusCode is zero) or the service answered
// with a non-success status.
type RemoteServiceError struct {
	Operation  string
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Body       string
	Err        error
}

func (e *RemoteServiceError) Error() string {
	switch {
	case e.Code != "" || e.Message != "":
		msg := fmt.Sprintf("%s: %s: %s (status %d)", e.Operation, e.Code, e.Message, e.StatusCode)
		if e.Detail != "" {
			msg += ": " + e.Detail
		}
		return msg
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Operation, e.Err)
	default:
		return fmt.Sprintf("%s: status %d", e.Operation, e.StatusCode)
	}
}

func (e *RemoteServiceError) Unwrap() error { return e.Err }

// DecodingError reports a success response whose body lacks a required
// field or carries a malformed value.
type DecodingError struct {
	Operation string
	Field     string
	Err       error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("%s: decode %s: %v", e.Operation, e.Field, e.Err)
}

func (e *DecodingError) Unwrap() error { return e.Err }

var errFieldMissing = errors.New("field missing from response")

// IsValidationError returns true if a required input was not set.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsPreconditionError returns true if a result was read too early.
func IsPreconditionError(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}

// IsRemoteServiceError returns true if the transport or the service failed.
func IsRemoteServiceError(err error) bool {
	var re *RemoteServiceError
	return errors.As(err, &re)
}

// IsDecodingError returns true if a response could not be interpreted.
func IsDecodingError(err error) bool {
	var de *DecodingError
	return errors.As(err, &de)
}

// IsAuthError returns true if the service rejected the access token.
func IsAuthError(err error) bool {
	var re *RemoteServiceError
	return errors.As(err, &re) &&
		(re.StatusCode == http.StatusUnauthorized || re.StatusCode == http.StatusForbidden)
}

// IsServiceError returns true if the error is a service-side error (5xx).
func IsServiceError(err error) bool {
	var re *RemoteServiceError
	return errors.As(err, &re) && re.StatusCode >= 500
}

func newUnexpectedStatusError(code int) error {
	return fmt.Errorf("%w: %d", ErrUnexpectedStatus, code)
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}

func checkStatus(op string, rsp api.Envelope) error {
	code := rsp.StatusCode()
	if isSuccess(code) {
		return nil
	}

	remoteErr := &RemoteServiceError{
		Operation:  op,
		StatusCode: code,
		Body:       string(rsp.RawBody()),
	}
	if m := rsp.ErrorBody(); m != nil && (m.Code != "" || m.Message != "") {
		remoteErr.Code = m.Code
		remoteErr.Message = m.Message
		if m.Detail != nil {
			remoteErr.Detail = *m.Detail
		}
	} else {
		remoteErr.Err = newUnexpectedStatusError(code)
	}
	return remoteErr
}

func missingField(op, field string) *DecodingError {
	return &DecodingError{Operation: op, Field: field, Err: errFieldMissing}
}
