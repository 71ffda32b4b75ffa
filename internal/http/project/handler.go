package project

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/conectando/internal/admin"
	"github.com/MrJamesThe3rd/conectando/internal/http/respond"
	"github.com/MrJamesThe3rd/conectando/internal/project"
)

type Handler struct {
	svc      *project.Service
	adminSvc *admin.Service
}

func NewHandler(svc *project.Service, adminSvc *admin.Service) *Handler {
	return &Handler{svc: svc, adminSvc: adminSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{name}", h.get)
	r.Post("/{name}/cancel", h.cancel)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if q.Get("ending") == "this-month" {
		ps, err := h.svc.EndingThisMonth(r.Context())
		if err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, toResponseList(ps))

		return
	}

	filter := project.ListFilter{}

	if s := q.Get("status"); s != "" {
		filter.Status = new(project.Status(s))
	}

	if s := q.Get("closed"); s != "" {
		closed, err := strconv.ParseBool(s)
		if err != nil {
			respond.BadRequest(w, "closed must be true or false")
			return
		}

		filter.Closed = new(closed)
	}

	ps, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(ps))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(p))
}

type createProjectRequest struct {
	Name              string `json:"name"`
	Location          string `json:"location"`
	Factor            int    `json:"factor"`
	ClosurePercentage int    `json:"closure_percentage"`
	StartDate         string `json:"start_date"`
	DurationInDays    int    `json:"duration_in_days"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	start, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		respond.BadRequest(w, "start_date must be YYYY-MM-DD")
		return
	}

	p, err := h.adminSvc.CreateProject(r.Context(), admin.CreateParams{
		Name:              req.Name,
		Factor:            req.Factor,
		ClosurePercentage: req.ClosurePercentage,
		StartDate:         start,
		DurationInDays:    req.DurationInDays,
		LocationName:      req.Location,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(p))
}

func (h *Handler) cancel(w http.ResponseWriter, r *http.Request) {
	p, err := h.adminSvc.CancelProject(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(p))
}
