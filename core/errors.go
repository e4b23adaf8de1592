package core

import (
	"errors"
	"fmt"
	"os"
)

// ErrorCode is the closed set of error kinds an application error may carry.
// Clients should branch on the code, not on message text.
type ErrorCode int

// General error codes
const (
	NOERROR     ErrorCode = 0
	EIO         ErrorCode = 120 // resource cannot be read or written
	EPARSE      ErrorCode = 121 // resource is malformed
	EMISSING    ErrorCode = 122 // resource does not exist
	EINVALID    ErrorCode = 123 // validation failed
	ECONNECTION ErrorCode = 124 // downstream consumer not connected
	EINTERNAL   ErrorCode = 125 // internal error
)

func (ecode ErrorCode) String() string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EIO:
		return "i/o error"
	case EPARSE:
		return "parse error"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case ECONNECTION:
		return "transmission-error"
	case EINTERNAL:
		return "internal error"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() ErrorCode
	UserMessage() string
}

type coreError struct {
	error
	code ErrorCode
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	if e.msg == "" {
		return fmt.Sprintf("[%d] %v", e.code, e.error)
	}
	return fmt.Sprintf("[%d] %s", e.code, e.msg)
}

func (e coreError) ErrorCode() ErrorCode {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// WrapError wraps an error in a core error, featuring an error code and
// a user message.
// If err is nil, an error denoting the code's text is wrapped.
func WrapError(err error, code ErrorCode, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(code.String())
	}
	msg := fmt.Sprintf(format, v...)
	return coreError{err, code, msg}
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code ErrorCode) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it checks the error code and returns its text.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return Code(err).String()
}

// Error creates an error with an error code and a user-message.
func Error(code ErrorCode, format string, v ...interface{}) error {
	msg := fmt.Sprintf(format, v...)
	return coreError{
		errors.New(msg),
		code,
		msg,
	}
}

// UserError prints an error to stderr, preferring the user message.
func UserError(err error) {
	if e := AppError(nil); errors.As(err, &e) {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}
