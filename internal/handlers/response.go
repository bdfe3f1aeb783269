package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-game-roster/internal/apperr"
	"github.com/sbilibin2017/gw-game-roster/internal/logger"
	"github.com/sbilibin2017/gw-game-roster/internal/middlewares"
	"github.com/sbilibin2017/gw-game-roster/internal/models"
	"github.com/sbilibin2017/gw-game-roster/internal/validation"
)

// Error variables
var (
	ErrInvalidJSON     = errors.New("invalid request body")
	ErrInvalidID       = errors.New("invalid id")
	ErrUnauthenticated = errors.New("authentication required")
)

// writeJSON writes the success envelope.
func writeJSON(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// writeError translates err into the failure envelope. Internal errors are logged
// and hidden behind a generic message.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	code := apperr.CodeOf(err)
	status := apperr.HTTPStatus(code)

	message := capitalize(err.Error())
	if code == apperr.Internal {
		logger.FromContext(ctx).Errorw("internal server error", "error", err)
		message = "Internal server error"
	} else {
		logger.FromContext(ctx).Infow("request failed", "code", code, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(models.ErrorResponse{
		Status:  status,
		Message: message,
		Error: models.ErrorBody{
			Code:    string(code),
			Details: apperr.DetailsOf(err),
		},
	})
}

// decodeAndValidate decodes the JSON body into dst and validates it.
func decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.WrapDetails(apperr.BadRequest, ErrInvalidJSON, err.Error())
	}
	return validation.Struct(dst)
}

// uuidParam parses the named chi URL parameter.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, apperr.WrapDetails(apperr.BadRequest, ErrInvalidID, name)
	}
	return id, nil
}

// identity returns the authenticated player of the request.
func identity(r *http.Request) (middlewares.Identity, error) {
	id, ok := middlewares.IdentityFromContext(r.Context())
	if !ok {
		return middlewares.Identity{}, apperr.Wrap(apperr.Unauthorized, ErrUnauthenticated)
	}
	return id, nil
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
