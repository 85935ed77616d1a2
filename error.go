package mread

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
	EINTERNAL = "internal"

	// EFETCH reports that every fetch source failed.
	EFETCH = "fetch"

	// EEXTRACT reports that no extraction strategy produced article content.
	EEXTRACT = "extract"
)

// Error represents an application-specific error.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable error message.
	Message string

	// URL is the resource that failed, if any.
	URL string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("mread error: code=%s message=%s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// FetchError returns an EFETCH error for rawURL caused by err.
func FetchError(rawURL string, err error) *Error {
	msg := fmt.Sprintf("error fetching %s", rawURL)
	if err != nil {
		msg = fmt.Sprintf("error fetching %s: %v", rawURL, err)
	}
	return &Error{
		Code:    EFETCH,
		Message: msg,
		URL:     rawURL,
		Err:     err,
	}
}

// ErrNoArticleBody is returned when extraction finds no qualifying content.
var ErrNoArticleBody = &Error{Code: EEXTRACT, Message: "could not extract article body"}
