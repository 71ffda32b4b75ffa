package location

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/conectando/internal/http/respond"
	"github.com/MrJamesThe3rd/conectando/internal/importer"
	"github.com/MrJamesThe3rd/conectando/internal/location"
)

type Handler struct {
	svc       *location.Service
	importSvc *importer.Service
}

func NewHandler(svc *location.Service, importSvc *importer.Service) *Handler {
	return &Handler{svc: svc, importSvc: importSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/import", h.importCSV)
	r.Get("/{name}", h.get)
}

type locationResponse struct {
	Name       string `json:"name"`
	Population int    `json:"population"`
}

func toResponse(l *location.Location) locationResponse {
	return locationResponse{Name: l.Name, Population: l.Population}
}

func toResponseList(locs []*location.Location) []locationResponse {
	resp := make([]locationResponse, len(locs))
	for i, l := range locs {
		resp[i] = toResponse(l)
	}

	return resp
}

type createLocationRequest struct {
	Name       string `json:"name"`
	Population int    `json:"population"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createLocationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	loc, err := h.svc.Create(r.Context(), location.CreateParams{Name: req.Name, Population: req.Population})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(loc))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	locs, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(locs))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	loc, err := h.svc.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(loc))
}

type importResponse struct {
	Imported  int                `json:"imported"`
	Locations []locationResponse `json:"locations"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respond.BadRequest(w, "failed to parse form: "+err.Error())
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		respond.BadRequest(w, "missing file")
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(importer.Source(r.FormValue("source")), file)
	if err != nil {
		respond.BadRequest(w, "failed to parse file: "+err.Error())
		return
	}

	locs, err := h.svc.ImportBatch(r.Context(), params)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	slog.Info("locations imported", "count", len(locs))

	respond.JSON(w, http.StatusOK, importResponse{Imported: len(locs), Locations: toResponseList(locs)})
}
