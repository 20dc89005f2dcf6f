package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/victornavas/unified-api/internal/domain"
	"github.com/victornavas/unified-api/internal/export"
	"github.com/victornavas/unified-api/internal/http/response"
	"github.com/victornavas/unified-api/internal/service"
)

type RSVPHandler struct {
	svc     *service.RSVPService
	respond *response.Responder
}

func NewRSVPHandler(svc *service.RSVPService, respond *response.Responder) *RSVPHandler {
	return &RSVPHandler{svc: svc, respond: respond}
}

func (h *RSVPHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/gate", h.gate)
	r.Get("/group/{id}", h.group)
	r.Get("/groupList/{ids}", h.groupList)
	r.Post("/updateUser", h.updateUser)
	r.Get("/guests", h.guests)
	r.Get("/guests.xlsx", h.guestsXLSX)
	r.Get("/ping", h.ping)

	return r
}

type gateRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (h *RSVPHandler) gate(w http.ResponseWriter, r *http.Request) {
	var in gateRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "invalid json body")
		return
	}

	guest, err := h.svc.Gate(r.Context(), in.FirstName, in.LastName)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.OK(w, map[string]interface{}{"guest": guest})
}

func (h *RSVPHandler) group(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "Invalid guest id")
		return
	}

	group, err := h.svc.GroupByGuest(r.Context(), id)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.OK(w, map[string]interface{}{"group": group})
}

func (h *RSVPHandler) groupList(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "ids")

	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			h.respond.Fail(w, http.StatusBadRequest, "Invalid group id list")
			return
		}
		ids = append(ids, id)
	}

	group, err := h.svc.GroupByIDs(r.Context(), ids)
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.OK(w, map[string]interface{}{"group": group})
}

type updateUserRequest struct {
	GuestID            int64                 `json:"guestId"`
	Status             string                `json:"status"`
	SpecialMessage     *string               `json:"specialMessage"`
	SongRecommendation *string               `json:"songRecommendation"`
	AllergyComment     *string               `json:"allergyComment"`
	Hotel              *bool                 `json:"hotel"`
	UpdatedBy          *string               `json:"updatedBy"`
	StatusChanges      []domain.StatusChange `json:"statusChanges"`
}

func (h *RSVPHandler) updateUser(w http.ResponseWriter, r *http.Request) {
	var in updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if in.Status == "" {
		h.respond.Fail(w, http.StatusBadRequest, "status is required")
		return
	}

	upd := &domain.GuestUpdate{
		GuestID:            in.GuestID,
		Status:             domain.Status(in.Status),
		SpecialMessage:     in.SpecialMessage,
		SongRecommendation: in.SongRecommendation,
		AllergyComment:     in.AllergyComment,
		Hotel:              in.Hotel,
		UpdatedBy:          in.UpdatedBy,
		StatusChanges:      in.StatusChanges,
	}

	if err := h.svc.Update(r.Context(), upd); err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.OK(w, nil)
}

func (h *RSVPHandler) guests(w http.ResponseWriter, r *http.Request) {
	guests, err := h.svc.ListAll(r.Context())
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	h.respond.OK(w, map[string]interface{}{"guests": guests})
}

func (h *RSVPHandler) guestsXLSX(w http.ResponseWriter, r *http.Request) {
	guests, err := h.svc.ListAll(r.Context())
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}

	// Render fully before writing headers so a failure can still 500
	var buf bytes.Buffer
	if err := export.WriteGuestsXLSX(&buf, guests); err != nil {
		h.respond.Error(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="guests.xlsx"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	_, _ = w.Write(buf.Bytes())
}

func (h *RSVPHandler) ping(w http.ResponseWriter, r *http.Request) {
	h.respond.OK(w, map[string]interface{}{"message": "rsvp routes working"})
}
