package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	httpmw "github.com/victornavas/unified-api/internal/http/middleware"
	"github.com/victornavas/unified-api/internal/http/response"
	"github.com/victornavas/unified-api/internal/service"
	"github.com/victornavas/unified-api/pkg/middleware"
)

type LogsHandler struct {
	svc      *service.VisitService
	siteKeys map[string]string
	respond  *response.Responder
}

func NewLogsHandler(svc *service.VisitService, siteKeys map[string]string, respond *response.Responder) *LogsHandler {
	return &LogsHandler{svc: svc, siteKeys: siteKeys, respond: respond}
}

func (h *LogsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.With(httpmw.ValidateAPIKey(h.siteKeys, h.respond)).Post("/{site}", h.record)
	return r
}

type recordRequest struct {
	Message string  `json:"message"`
	URL     *string `json:"url"`
}

func (h *LogsHandler) record(w http.ResponseWriter, r *http.Request) {
	var in recordRequest
	// Body is optional; an empty or malformed one still logs the visit
	_ = json.NewDecoder(r.Body).Decode(&in)

	var referrer *string
	if ref := r.Header.Get("Referer"); ref != "" {
		referrer = &ref
	}

	visit, err := h.svc.Record(r.Context(), service.RecordVisit{
		Site:      chi.URLParam(r, "site"),
		IP:        middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
		Message:   in.Message,
		URL:       in.URL,
		Referrer:  referrer,
	})
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.JSON(w, http.StatusOK, visit)
}
