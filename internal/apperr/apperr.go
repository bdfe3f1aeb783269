// Package apperr classifies service errors into the kinds the HTTP layer maps to status codes.
package apperr

import (
	"net/http"

	"github.com/samber/oops"
)

// Code is a machine readable error kind.
type Code string

const (
	Unauthorized Code = "UNAUTHORIZED"
	NotFound     Code = "NOT_FOUND"
	Conflict     Code = "CONFLICT"
	BadRequest   Code = "BAD_REQUEST"
	Validation   Code = "VALIDATION_ERROR"
	Internal     Code = "INTERNAL_ERROR"
)

// DetailsKey is the oops context key holding client visible error details.
const DetailsKey = "details"

// Wrap attaches the code to err. errors.Is(result, err) still holds.
func Wrap(code Code, err error) error {
	return oops.Code(code).Wrap(err)
}

// WrapDetails attaches the code and client visible details to err.
func WrapDetails(code Code, err error, details any) error {
	return oops.Code(code).With(DetailsKey, details).Wrap(err)
}

// CodeOf returns the code carried by err, Internal when there is none.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return Internal
	}
	if code, ok := oopsErr.Code().(Code); ok {
		return code
	}
	return Internal
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}

// DetailsOf returns the details attached with WrapDetails, if any.
func DetailsOf(err error) any {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return nil
	}
	return oopsErr.Context()[DetailsKey]
}

// HTTPStatus maps a code to its HTTP status.
func HTTPStatus(code Code) int {
	switch code {
	case Unauthorized:
		return http.StatusUnauthorized
	case NotFound:
		return http.StatusNotFound
	case Conflict:
		return http.StatusConflict
	case BadRequest, Validation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
