package service

import (
	"errors"
	"fmt"
)

// Error carries a classification code alongside the underlying cause so the
// HTTP layer can choose a status without inspecting domain errors itself.
type Error struct {
	orig error
	msg  string
	code error
}

func (e *Error) Error() string {
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}

	return e.msg
}

func (e *Error) Unwrap() error {
	return e.orig
}

// Code returns one of the Err* classification sentinels below.
func (e *Error) Code() error {
	return e.code
}

// WrapErrorf classifies orig under code with a formatted message.
func WrapErrorf(orig error, code error, format string, a ...interface{}) error {
	return &Error{
		code: code,
		orig: orig,
		msg:  fmt.Sprintf(format, a...),
	}
}

var (
	// ErrInternalServerError classifies failures the caller cannot fix.
	ErrInternalServerError = errors.New("internal server error")
	// ErrNotFound classifies a request for a graph that is not stored.
	ErrNotFound = errors.New("requested item is not found")
	// ErrBadParamInput classifies a malformed document or request.
	ErrBadParamInput = errors.New("given param is not valid")
	// ErrUnprocessable classifies a well-formed request the graph cannot answer
	// (unknown source, negative weight and the like).
	ErrUnprocessable = errors.New("request cannot be processed for this graph")
)
