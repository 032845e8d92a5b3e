package api

import (
	"errors"
	"net/http"
)

// Normalized messages for well-known backend rejections.
const (
	MsgInvalidCredentials = "invalid credentials"
	MsgDuplicateEmail     = "a user with this email already exists"
)

// Error is the single error type surfaced by the client. Status is the HTTP
// status of the backend response, or 0 when no response was received at all
// (transport failure). Message is always suitable for display to the user.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Normalize converts any failure from a client call into an *Error carrying a
// human-readable message. Preference order: the backend's structured message,
// a normalized string for well-known status codes, then defaultMsg.
func Normalize(err error, defaultMsg string) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			switch apiErr.Status {
			case http.StatusUnauthorized:
				msg = MsgInvalidCredentials
			case http.StatusConflict:
				msg = MsgDuplicateEmail
			default:
				msg = defaultMsg
			}
		}
		return &Error{Status: apiErr.Status, Message: msg}
	}
	return &Error{Message: defaultMsg}
}

// StatusOf returns the HTTP status carried by err, or 0 for transport
// failures and non-client errors.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
