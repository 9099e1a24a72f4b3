package botlist

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Sentinel errors shared across operations
var (
	ErrNotAuthorized   = errors.New("You are not authorized to perform this action")
	ErrNotApproved     = errors.New("Bot is not approved yet")
	ErrDuplicateReview = errors.New("Ya has dejado una reseña para este bot")
	ErrAlreadyBanned   = errors.New("El usuario ya está baneado")
	ErrNotBanned       = errors.New("El usuario no está baneado")
)

// ValidationError reports the first failing submission field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports an id that did not resolve
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// CooldownError reports an active vote cooldown with the remaining wait
type CooldownError struct {
	Remaining time.Duration
}

// HoursLeft returns the remaining wait rounded up to whole hours, so a
// one-minute remainder still reports an hour rather than zero.
func (e *CooldownError) HoursLeft() int {
	hours := int(e.Remaining / time.Hour)
	if e.Remaining%time.Hour > 0 {
		hours++
	}
	return hours
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("Ya votaste. Espera %d horas para votar de nuevo.", e.HoursLeft())
}

// TransportError reports a failed call to persistence or notification
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusFor maps an operation error to its HTTP status
func StatusFor(err error) int {
	var validation *ValidationError
	var notFound *NotFoundError
	var cooldown *CooldownError
	var transport *TransportError

	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &cooldown):
		return http.StatusForbidden
	case errors.Is(err, ErrNotAuthorized), errors.Is(err, ErrNotApproved):
		return http.StatusForbidden
	case errors.Is(err, ErrDuplicateReview), errors.Is(err, ErrAlreadyBanned), errors.Is(err, ErrNotBanned):
		return http.StatusBadRequest
	case errors.As(err, &transport):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
