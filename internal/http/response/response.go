package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/victornavas/unified-api/internal/domain"
	"github.com/victornavas/unified-api/pkg/logger"
)

// Responder writes the API's `{ok, ...}` JSON envelopes. In production the
// raw error behind an internal failure is never sent to the caller.
type Responder struct {
	Production bool
}

func New(production bool) *Responder {
	return &Responder{Production: production}
}

func (rs *Responder) JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func (rs *Responder) OK(w http.ResponseWriter, fields map[string]interface{}) {
	body := map[string]interface{}{"ok": true}
	for k, v := range fields {
		body[k] = v
	}
	rs.JSON(w, http.StatusOK, body)
}

type failure struct {
	OK      bool        `json:"ok"`
	Message string      `json:"message"`
	Debug   interface{} `json:"debug,omitempty"`
}

func (rs *Responder) Fail(w http.ResponseWriter, status int, message string) {
	rs.JSON(w, status, failure{Message: message})
}

// Error maps the domain error taxonomy onto HTTP statuses. Anything outside
// the taxonomy is an internal error with a generic message.
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		rs.Fail(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, domain.ErrGuestNotFound):
		rs.Fail(w, http.StatusNotFound, "We couldn't find your name on the list. Please check the spelling.")
	case errors.Is(err, domain.ErrTaskNotFound):
		rs.Fail(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrInvalidCredentials):
		rs.Fail(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		logger.ErrorContext(r.Context(), "internal error", "error", err, "path", r.URL.Path)
		body := failure{Message: "Internal error. Please try again later."}
		if !rs.Production {
			body.Debug = map[string]string{"error": err.Error()}
		}
		rs.JSON(w, http.StatusInternalServerError, body)
	}
}
