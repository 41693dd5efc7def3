package apperrors

import "net/http"

// Factories for wrapping repository errors into transport-ready AppErrors.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// ErrMailDelivery marks a failed outbound mail send. The caller's primary
// write has already been persisted when this surfaces.
func ErrMailDelivery(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "mail",
		"Your message was saved but the confirmation email could not be sent", http.StatusBadGateway)
}
