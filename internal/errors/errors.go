// FilePath: server/telemetry/internal/errors/errors.go
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorType represents the broad class of an error
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeAuth       ErrorType = "authentication"
	ErrorTypeInternal   ErrorType = "internal"
)

// ErrorKind is the closed set of telemetry failure kinds
type ErrorKind string

const (
	KindHiveIDMissing            ErrorKind = "HiveIdMissing"
	KindBoxIDMissing             ErrorKind = "BoxIdMissing"
	KindFieldsMissing            ErrorKind = "FieldsMissing"
	KindNoItemsProvided          ErrorKind = "NoItemsProvided"
	KindNegativeValuesNotAllowed ErrorKind = "NegativeValuesNotAllowed"
	KindInvalidTimeRange         ErrorKind = "InvalidTimeRange"
	KindInvalidField             ErrorKind = "InvalidField"
	KindInvalidRequestBody       ErrorKind = "InvalidRequestBody"
	KindUnauthorized             ErrorKind = "Unauthorized"
	KindInternal                 ErrorKind = "InternalError"
)

// Stable numeric codes, exposed to clients
const (
	CodeInvalidRequestBody       = 4000
	CodeHiveIDMissing            = 4001
	CodeFieldsMissing            = 4002
	CodeInvalidTimeRange         = 4003
	CodeBoxIDMissing             = 4004
	CodeNoItemsProvided          = 4005
	CodeNegativeValuesNotAllowed = 4006
	CodeInvalidField             = 4007
	CodeUnauthorized             = 4010
	CodeInternal                 = 5000
)

type kindInfo struct {
	errType ErrorType
	code    int
	status  int
}

var kinds = map[ErrorKind]kindInfo{
	KindInvalidRequestBody:       {ErrorTypeValidation, CodeInvalidRequestBody, http.StatusBadRequest},
	KindHiveIDMissing:            {ErrorTypeValidation, CodeHiveIDMissing, http.StatusBadRequest},
	KindFieldsMissing:            {ErrorTypeValidation, CodeFieldsMissing, http.StatusBadRequest},
	KindInvalidTimeRange:         {ErrorTypeValidation, CodeInvalidTimeRange, http.StatusBadRequest},
	KindBoxIDMissing:             {ErrorTypeValidation, CodeBoxIDMissing, http.StatusBadRequest},
	KindNoItemsProvided:          {ErrorTypeValidation, CodeNoItemsProvided, http.StatusBadRequest},
	KindNegativeValuesNotAllowed: {ErrorTypeValidation, CodeNegativeValuesNotAllowed, http.StatusBadRequest},
	KindInvalidField:             {ErrorTypeValidation, CodeInvalidField, http.StatusBadRequest},
	KindUnauthorized:             {ErrorTypeAuth, CodeUnauthorized, http.StatusUnauthorized},
	KindInternal:                 {ErrorTypeInternal, CodeInternal, http.StatusInternalServerError},
}

// APIError represents a structured telemetry error
type APIError struct {
	Type      ErrorType `json:"type"`
	Kind      ErrorKind `json:"kind"`
	Message   string    `json:"message"`
	Code      int       `json:"code"`
	Status    int       `json:"-"`
	RequestID string    `json:"request_id,omitempty"`
	err       error     // Internal error for logging
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s (internal: %v)", e.Kind, e.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap exposes the internal cause
func (e *APIError) Unwrap() error {
	return e.err
}

// Is matches any *APIError of the same kind, so sentinel comparisons work with errors.Is
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// WithRequestID adds a request ID to the error
func (e *APIError) WithRequestID(id string) *APIError {
	e.RequestID = id
	return e
}

// New creates an error of the given kind
func New(kind ErrorKind, msg string, err error) *APIError {
	info, ok := kinds[kind]
	if !ok {
		info = kinds[KindInternal]
	}
	return &APIError{
		Type:    info.errType,
		Kind:    kind,
		Message: msg,
		Code:    info.code,
		Status:  info.status,
		err:     err,
	}
}

func NewHiveIDMissing() *APIError {
	return New(KindHiveIDMissing, "Bad Request: hiveId not provided", nil)
}

func NewBoxIDMissing() *APIError {
	return New(KindBoxIDMissing, "Bad Request: boxId not provided", nil)
}

// NewFieldsMissing creates a FieldsMissing error; msg defaults to the generic text
func NewFieldsMissing(msg string) *APIError {
	if msg == "" {
		msg = "Bad Request: fields not provided"
	}
	return New(KindFieldsMissing, msg, nil)
}

// NewNoItemsProvided reports an empty batch; noun names what was expected ("metrics", "movements")
func NewNoItemsProvided(noun string) *APIError {
	if noun == "" {
		noun = "items"
	}
	return New(KindNoItemsProvided, "Bad Request: no "+noun+" provided", nil)
}

func NewNegativeValuesNotAllowed() *APIError {
	return New(KindNegativeValuesNotAllowed, "Bad Request: beesOut and beesIn must not be negative", nil)
}

// NewInvalidTimeRange carries the human readable reason as its message
func NewInvalidTimeRange(reason string) *APIError {
	return New(KindInvalidTimeRange, reason, nil)
}

func NewInvalidField(field string) *APIError {
	return New(KindInvalidField, "Invalid field: "+field, nil)
}

// NewValidationError creates a malformed request body error
func NewValidationError(msg string, err error) *APIError {
	return New(KindInvalidRequestBody, msg, err)
}

// NewAuthError creates a new authentication error
func NewAuthError(msg string, err error) *APIError {
	return New(KindUnauthorized, msg, err)
}

// NewInternalError hides err from clients but keeps it for logging
func NewInternalError(msg string, err error) *APIError {
	if msg == "" {
		msg = "Internal Server Error"
	}
	return New(KindInternal, msg, err)
}

// Sentinels for errors.Is comparisons
var (
	ErrHiveIDMissing            = &APIError{Kind: KindHiveIDMissing}
	ErrBoxIDMissing             = &APIError{Kind: KindBoxIDMissing}
	ErrFieldsMissing            = &APIError{Kind: KindFieldsMissing}
	ErrNoItemsProvided          = &APIError{Kind: KindNoItemsProvided}
	ErrNegativeValuesNotAllowed = &APIError{Kind: KindNegativeValuesNotAllowed}
	ErrInvalidTimeRange         = &APIError{Kind: KindInvalidTimeRange}
	ErrInvalidField             = &APIError{Kind: KindInvalidField}
	ErrUnauthorized             = &APIError{Kind: KindUnauthorized}
	ErrInternal                 = &APIError{Kind: KindInternal}
)

// AsAPIError returns err as an *APIError, wrapping unknown errors as internal errors
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}
	return NewInternalError("", err)
}

// IsValidation checks if an error is a validation error
func IsValidation(err error) bool {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr.Type == ErrorTypeValidation
	}
	return false
}
