package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/victornavas/unified-api/internal/http/response"
	"github.com/victornavas/unified-api/internal/service"
)

type AuthHandler struct {
	svc     *service.AuthService
	respond *response.Responder
}

func NewAuthHandler(svc *service.AuthService, respond *response.Responder) *AuthHandler {
	return &AuthHandler{svc: svc, respond: respond}
}

func (h *AuthHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/login", h.login)
	return r
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var in loginRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "invalid json body")
		return
	}

	token, err := h.svc.Login(r.Context(), in.Username, in.Password)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.JSON(w, http.StatusOK, map[string]string{"token": token})
}
