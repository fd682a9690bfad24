package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/hackovate/judging-portal/services"
)

type jsonResponse map[string]interface{}

var validate = validator.New()

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case err.Error() == "http: request body too large":
			return fmt.Errorf("body must not be larger than %d bytes", maxBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func errorResponse(w http.ResponseWriter, status int, message string) {
	env := jsonResponse{"success": false, "message": message}
	if err := writeJSON(w, status, env); err != nil {
		slog.Error("failed to write error response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, err error) {
	slog.Error("internal server error", slog.Any("error", err))
	errorResponse(w, http.StatusInternalServerError, "the server encountered a problem and could not process your request")
}

func badRequestResponse(w http.ResponseWriter, err error) {
	errorResponse(w, http.StatusBadRequest, err.Error())
}

func notFoundResponse(w http.ResponseWriter) {
	errorResponse(w, http.StatusNotFound, "the requested resource could not be found")
}

func getIDFromURL(r *http.Request, param string) (int, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s parameter: %q", param, raw)
	}
	return id, nil
}

func validateStruct(input interface{}) error {
	if err := validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field := strings.ToLower(verrs[0].Field())
			return fmt.Errorf("%w: field %q failed on the %q rule", services.ErrValidationFailed, field, verrs[0].Tag())
		}
		return services.ErrValidationFailed
	}
	return nil
}

func mapServiceErrorToHTTP(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrTeamNotFound),
		errors.Is(err, services.ErrRoundNotFound),
		errors.Is(err, services.ErrEvaluatorNotFound),
		errors.Is(err, services.ErrProblemStatementNotFound),
		errors.Is(err, services.ErrEvaluationNotFound):
		notFoundResponse(w)

	case errors.Is(err, services.ErrValidationFailed),
		errors.Is(err, services.ErrTeamNameRequired),
		errors.Is(err, services.ErrRoundNameRequired),
		errors.Is(err, services.ErrRoundSequenceInvalid),
		errors.Is(err, services.ErrScoreOutOfRange),
		errors.Is(err, services.ErrParameterUnknown):
		badRequestResponse(w, err)

	case errors.Is(err, services.ErrInvalidCredentials):
		errorResponse(w, http.StatusUnauthorized, "Invalid credentials")

	case errors.Is(err, services.ErrLogoUploadsDisabled):
		errorResponse(w, http.StatusServiceUnavailable, err.Error())

	default:
		serverErrorResponse(w, err)
	}
}
