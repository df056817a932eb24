// Package awserr carries service errors in the AWS REST-JSON shape: a JSON
// body with "__type" and "message" members plus the X-Amzn-Errortype header.
// Errors decoded from the backing service and errors raised by the shim
// itself both travel as *Error so callers see a single vocabulary.
package awserr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/smithy-go"
)

// Exception codes used by the shim itself. Backend responses may carry any
// code; those pass through unchanged.
const (
	CodeInternalException      = "InternalException"
	CodeResourceNotFound       = "ResourceNotFoundException"
	CodeSerializationException = "SerializationException"
	CodeTooManyRequests        = "TooManyRequestsException"
	CodeValidationException    = "ValidationException"
)

// HeaderErrorType is the response header naming the exception code.
const HeaderErrorType = "X-Amzn-Errortype"

// Error is an AWS management-API exception. It satisfies smithy.APIError so
// SDK-style callers can switch on the code.
type Error struct {
	Type       string
	Message    string
	StatusCode int
}

var _ smithy.APIError = (*Error)(nil)

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) ErrorCode() string    { return e.Type }
func (e *Error) ErrorMessage() string { return e.Message }

func (e *Error) ErrorFault() smithy.ErrorFault {
	if e.StatusCode >= http.StatusInternalServerError {
		return smithy.FaultServer
	}
	return smithy.FaultClient
}

// New returns an exception with the given status, code, and message.
func New(statusCode int, code, message string) *Error {
	return &Error{Type: code, Message: message, StatusCode: statusCode}
}

// NewValidation returns a 400 ValidationException.
func NewValidation(format string, args ...any) *Error {
	return New(http.StatusBadRequest, CodeValidationException, fmt.Sprintf(format, args...))
}

// NewSerialization returns a 400 SerializationException for unparseable
// request bodies.
func NewSerialization(err error) *Error {
	return New(http.StatusBadRequest, CodeSerializationException, err.Error())
}

// FromError coerces any error into an *Error. Errors that did not originate
// as an AWS exception become a 500 InternalException.
func FromError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return New(http.StatusInternalServerError, CodeInternalException, err.Error())
}

type wireError struct {
	Type    string `json:"__type,omitempty"`
	Message string `json:"message,omitempty"`
}

// Write encodes err onto w in the REST-JSON error shape, preserving the
// original status code.
func Write(w http.ResponseWriter, err error) {
	apiErr := FromError(err)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(HeaderErrorType, apiErr.Type)
	w.WriteHeader(apiErr.StatusCode)
	_ = json.NewEncoder(w).Encode(wireError{Type: apiErr.Type, Message: apiErr.Message})
}

// Decode reconstructs an *Error from a non-2xx response. The code is taken
// from the body's "__type" member, falling back to the X-Amzn-Errortype
// header, then to a generic code derived from the status.
func Decode(statusCode int, header http.Header, body []byte) *Error {
	var wire wireError
	_ = json.Unmarshal(body, &wire)

	code := wire.Type
	if code == "" {
		code = header.Get(HeaderErrorType)
	}
	code = sanitizeCode(code)
	if code == "" {
		if statusCode >= http.StatusInternalServerError {
			code = CodeInternalException
		} else {
			code = CodeValidationException
		}
	}

	message := wire.Message
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return New(statusCode, code, message)
}

// sanitizeCode strips the namespace prefix and URI suffix some services
// attach, e.g. "namespace#ResourceNotFoundException:http://..." becomes
// "ResourceNotFoundException".
func sanitizeCode(code string) string {
	if idx := strings.IndexByte(code, ':'); idx >= 0 {
		code = code[:idx]
	}
	if idx := strings.IndexByte(code, '#'); idx >= 0 {
		code = code[idx+1:]
	}
	return strings.TrimSpace(code)
}
