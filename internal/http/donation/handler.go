package donation

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/conectando/internal/funding"
	donorHandler "github.com/MrJamesThe3rd/conectando/internal/http/donor"
	"github.com/MrJamesThe3rd/conectando/internal/http/respond"
	"github.com/MrJamesThe3rd/conectando/internal/manager"
)

type Handler struct {
	funding *funding.Service
	manager *manager.Service
}

func NewHandler(fundingSvc *funding.Service, managerSvc *manager.Service) *Handler {
	return &Handler{funding: fundingSvc, manager: managerSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.donate)
	r.Get("/top", h.top)
}

type donateRequest struct {
	Nickname string          `json:"nickname"`
	Project  string          `json:"project"`
	Comment  string          `json:"comment"`
	Amount   decimal.Decimal `json:"amount"`
}

func (h *Handler) donate(w http.ResponseWriter, r *http.Request) {
	var req donateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	if req.Nickname == "" || req.Project == "" {
		respond.BadRequest(w, "nickname and project are required")
		return
	}

	d, err := h.funding.Donate(r.Context(), funding.DonateParams{
		Nickname:    req.Nickname,
		ProjectName: req.Project,
		Comment:     req.Comment,
		Amount:      req.Amount,
	})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, donorHandler.ToDonationResponse(d))
}

func (h *Handler) top(w http.ResponseWriter, r *http.Request) {
	ds, err := h.manager.TopTen(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, donorHandler.ToDonationResponseList(ds))
}
