package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/qatalent/jobboard/internal/data"
	"github.com/qatalent/jobboard/internal/service"
)

// maxBodyBytes caps JSON request bodies; the largest legitimate payload is a
// cover letter.
const maxBodyBytes = 64 << 10

// DecodeJSON decodes JSON from the request body into the destination and handles errors.
// Returns true if successful, false if there was an error (error response already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_json", Err: err})
		return false
	}

	return true
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}

// ErrorParams groups parameters for WriteError.
type ErrorParams struct {
	Code    int
	ErrCode string
	Err     error
}

// WriteError writes a JSON error response using ErrorParams.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	WriteJSON(w, p.Code, map[string]string{"error": p.ErrCode, "message": p.Err.Error()})
}

// WriteDomainError maps service and data layer sentinels onto the API's
// status contract. Not-found is used for ownership failures so the surface
// never confirms what a caller may not see; conflicts and state-machine
// violations are client errors distinguished by the error code string.
func WriteDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, data.ErrUserNotFound):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "user_not_found", Err: err})
	case errors.Is(err, data.ErrJobNotFound):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "job_not_found", Err: err})
	case errors.Is(err, data.ErrApplicationNotFound):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "application_not_found", Err: err})
	case errors.Is(err, data.ErrAlreadyApplied):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "already_applied", Err: err})
	case errors.Is(err, data.ErrUserExists):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "user_exists", Err: err})
	case errors.Is(err, service.ErrJobNotOpen):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "job_not_open", Err: err})
	case errors.Is(err, service.ErrInvalidStatus):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_status", Err: err})
	case errors.Is(err, service.ErrIllegalTransition):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "illegal_transition", Err: err})
	case errors.Is(err, service.ErrCoverLetterTooLong):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "cover_letter_too_long", Err: err})
	case errors.Is(err, service.ErrWrongRole):
		WriteError(w, ErrorParams{Code: http.StatusForbidden, ErrCode: "wrong_role", Err: err})
	default:
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "internal_error", Err: err})
	}
}
