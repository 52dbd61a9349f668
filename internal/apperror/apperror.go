package apperror

import (
	"errors"
	"fmt"
	"strings"
)

// Code identifies a class of domain failure. Codes map 1:1 to HTTP statuses
// in serverutils.ErrorHandlerMiddleware.
type Code string

const (
	CodeNotEligible       Code = "NOT_ELIGIBLE"
	CodeInvalidTransition Code = "INVALID_TRANSITION"
	CodeForbidden         Code = "FORBIDDEN"
	CodeCapacityMismatch  Code = "CAPACITY_MISMATCH"
	CodeGenderMismatch    Code = "GENDER_MISMATCH"
	CodeRoomUnavailable   Code = "ROOM_UNAVAILABLE"
	CodeAlreadySelected   Code = "ALREADY_SELECTED"
	CodeDuplicateMember   Code = "DUPLICATE_MEMBER"
	CodeNotFound          Code = "NOT_FOUND"
	CodeBadRequest        Code = "BAD_REQUEST"
)

// Error is a domain error with an optional list of human-readable reasons
// (eligibility checks report every failed reason, not just the first).
type Error struct {
	Code    Code
	Message string
	Reasons []string
}

func (e *Error) Error() string {
	if len(e.Reasons) > 0 {
		return fmt.Sprintf("%s: %s", e.Message, strings.Join(e.Reasons, "; "))
	}
	return e.Message
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NotEligible carries the full list of failed preconditions.
func NotEligible(reasons []string) *Error {
	return &Error{Code: CodeNotEligible, Message: "not eligible", Reasons: reasons}
}

func InvalidTransition(format string, args ...interface{}) *Error {
	return Newf(CodeInvalidTransition, format, args...)
}

func Forbidden(format string, args ...interface{}) *Error {
	return Newf(CodeForbidden, format, args...)
}

func NotFound(what string) *Error {
	return Newf(CodeNotFound, "%s not found", what)
}

// As unwraps err into *Error if it is one.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether err is a domain error with the given code.
func Is(err error, code Code) bool {
	if appErr, ok := As(err); ok {
		return appErr.Code == code
	}
	return false
}
