// Package errors defines the application error taxonomy shared by every
// repository and service. Operations never panic or leak raw transport
// failures across the boundary; everything is converted to an AppError so
// callers can branch on the preserved HTTP status.
package errors

import (
	"net/http"
	"strconv"

	"smilelink/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Lookup errors, one per entity so callers can message precisely
	ErrChildNotFound = NewBaseError(
		http.StatusNotFound,
		"CHILD_NOT_FOUND",
		"Niño no encontrado",
		"",
	)

	ErrSponsorNotFound = NewBaseError(
		http.StatusNotFound,
		"SPONSOR_NOT_FOUND",
		"Padrino no encontrado",
		"",
	)

	ErrSponsorshipNotFound = NewBaseError(
		http.StatusNotFound,
		"SPONSORSHIP_NOT_FOUND",
		"Apadrinamiento no encontrado",
		"",
	)

	ErrDeliveryNotFound = NewBaseError(
		http.StatusNotFound,
		"DELIVERY_NOT_FOUND",
		"Entrega no encontrada",
		"",
	)

	ErrDeliveryPointNotFound = NewBaseError(
		http.StatusNotFound,
		"DELIVERY_POINT_NOT_FOUND",
		"Punto de entrega no encontrado",
		"",
	)

	ErrGiftRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"GIFT_REQUEST_NOT_FOUND",
		"Solicitud no encontrada",
		"",
	)

	// Authentication errors; the backend maps wrong password to 401 and an
	// unknown email to 404, and callers surface different messages for each
	ErrIncorrectPassword = NewBaseError(
		http.StatusUnauthorized,
		"INCORRECT_PASSWORD",
		"Contraseña incorrecta",
		"",
	)

	ErrEmailNotRegistered = NewBaseError(
		http.StatusNotFound,
		"EMAIL_NOT_REGISTERED",
		"Email no registrado",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_TAKEN",
		"Este email ya está registrado",
		"",
	)

	ErrGoogleTokenInvalid = NewBaseError(
		http.StatusBadRequest,
		"GOOGLE_TOKEN_INVALID",
		"Token de Google inválido",
		"",
	)

	ErrNotLoggedIn = NewBaseError(
		http.StatusUnauthorized,
		"NOT_LOGGED_IN",
		"No hay sesión activa",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Datos de entrada inválidos",
		"",
	)

	ErrInvalidStateTransition = NewBaseError(
		http.StatusBadRequest,
		"INVALID_STATE_TRANSITION",
		"Transición de estado no permitida",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso no encontrado",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Error interno del sistema",
		"",
	)
)

// TransportError represents a network failure where no response was received,
// implementing the AppError interface.
type TransportError struct {
	err error
}

// NewTransportError wraps a connection/timeout failure.
func NewTransportError(err error) AppError {
	return &TransportError{err: err}
}

// Error implements the error interface
func (e *TransportError) Error() string {
	return errors.Wrap(e.err, "no se pudo conectar con el servidor").Error()
}

// Unwrap exposes the underlying network error.
func (e *TransportError) Unwrap() error {
	return e.err
}

// HTTPCode returns 0: no response was received.
func (e *TransportError) HTTPCode() int {
	return 0
}

// ErrorCode returns the business error code
func (e *TransportError) ErrorCode() string {
	return "TRANSPORT_FAILED"
}

// Message returns the user-friendly error message
func (e *TransportError) Message() string {
	return "No se pudo conectar con el servidor"
}

// Details returns detailed error information
func (e *TransportError) Details() string {
	return e.err.Error()
}

// UnexpectedStatusError covers any non-2xx response without a more specific
// mapping; the raw status code is preserved for caller-side branching.
type UnexpectedStatusError struct {
	status int
	body   string
}

// NewUnexpectedStatusError records an unmapped backend status.
func NewUnexpectedStatusError(status int, body string) AppError {
	return &UnexpectedStatusError{status: status, body: body}
}

// Error implements the error interface
func (e *UnexpectedStatusError) Error() string {
	return "error del servidor (HTTP " + strconv.Itoa(e.status) + ")"
}

// HTTPCode returns the raw backend status.
func (e *UnexpectedStatusError) HTTPCode() int {
	return e.status
}

// ErrorCode returns the business error code
func (e *UnexpectedStatusError) ErrorCode() string {
	return "UNEXPECTED_STATUS"
}

// Message returns the user-friendly error message
func (e *UnexpectedStatusError) Message() string {
	return "Error del servidor (HTTP " + strconv.Itoa(e.status) + ")"
}

// Details returns the response body, when one was readable.
func (e *UnexpectedStatusError) Details() string {
	return e.body
}

// StatusOf extracts the preserved HTTP status from an error tree, or 0 when
// the error carries none (transport failures, wrapped plain errors).
func StatusOf(err error) int {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return 0
}
