package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/victornavas/unified-api/internal/http/response"
	"github.com/victornavas/unified-api/internal/repo/postgres"
)

// TodoHandler is plain single-row CRUD over the shared to-do table. The
// whole subtree sits behind the bearer-token middleware.
type TodoHandler struct {
	repo    postgres.TodoRepo
	respond *response.Responder
}

func NewTodoHandler(repo postgres.TodoRepo, respond *response.Responder) *TodoHandler {
	return &TodoHandler{repo: repo, respond: respond}
}

func (h *TodoHandler) Routes(requireAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(requireAuth)

	r.Get("/lists", h.lists)
	r.Get("/lists/{list}/tasks", h.tasks)
	r.Post("/lists/{list}/tasks", h.createTask)
	r.Put("/tasks/{id}", h.updateTask)
	r.Delete("/tasks/{id}", h.deleteTask)

	return r
}

func (h *TodoHandler) lists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.repo.ListNames(r.Context())
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	h.respond.JSON(w, http.StatusOK, lists)
}

func (h *TodoHandler) tasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.repo.ListTasks(r.Context(), chi.URLParam(r, "list"))
	if err != nil {
		h.respond.Error(w, r, err)
		return
	}
	h.respond.JSON(w, http.StatusOK, tasks)
}

func (h *TodoHandler) createTask(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil || in.Text == "" {
		h.respond.Fail(w, http.StatusBadRequest, "text is required")
		return
	}

	if err := h.repo.CreateTask(r.Context(), chi.URLParam(r, "list"), in.Text); err != nil {
		h.respond.Error(w, r, err)
		return
	}
	h.respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *TodoHandler) updateTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "invalid task id")
		return
	}

	var in struct {
		Completed bool `json:"completed"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "invalid json body")
		return
	}

	if err := h.repo.SetDone(r.Context(), id, in.Completed); err != nil {
		h.respond.Error(w, r, err)
		return
	}
	h.respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *TodoHandler) deleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.respond.Fail(w, http.StatusBadRequest, "invalid task id")
		return
	}

	if err := h.repo.SoftDelete(r.Context(), id); err != nil {
		h.respond.Error(w, r, err)
		return
	}
	h.respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
