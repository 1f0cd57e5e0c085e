package models

import "fmt"

// Service errors. Each type maps to one HTTP status in helper.GetStatusCode.

type ErrorBadRequest struct{ Message string }

type ErrorUnauthorized struct{ Message string }

type ErrorForbidden struct{ Message string }

type ErrorNotFound struct{ Message string }

// ErrorUnprocessable covers uniqueness conflicts and empty updates.
type ErrorUnprocessable struct{ Message string }

func (e ErrorBadRequest) Error() string    { return e.Message }
func (e ErrorUnauthorized) Error() string  { return e.Message }
func (e ErrorForbidden) Error() string     { return e.Message }
func (e ErrorNotFound) Error() string      { return e.Message }
func (e ErrorUnprocessable) Error() string { return e.Message }

func NotFoundf(format string, args ...interface{}) error {
	return ErrorNotFound{Message: fmt.Sprintf(format, args...)}
}

func Forbiddenf(format string, args ...interface{}) error {
	return ErrorForbidden{Message: fmt.Sprintf(format, args...)}
}

func Unprocessablef(format string, args ...interface{}) error {
	return ErrorUnprocessable{Message: fmt.Sprintf(format, args...)}
}
