package donor

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/conectando/internal/donation"
	"github.com/MrJamesThe3rd/conectando/internal/donor"
	"github.com/MrJamesThe3rd/conectando/internal/http/respond"
)

type Handler struct {
	svc *donor.Service
}

func NewHandler(svc *donor.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{nickname}", h.get)
	r.Get("/{nickname}/donations", h.donations)
	r.Post("/{nickname}/deposit", h.deposit)
}

type donorResponse struct {
	Nickname  string          `json:"nickname"`
	Money     decimal.Decimal `json:"money"`
	Points    int             `json:"points"`
	Donations int             `json:"donations"`
}

func toResponse(u *donor.User) donorResponse {
	return donorResponse{
		Nickname:  u.Nickname,
		Money:     u.Money,
		Points:    u.Points,
		Donations: len(u.Donations),
	}
}

// DonationResponse is shared with the donations handler.
type DonationResponse struct {
	ID      uuid.UUID       `json:"id"`
	Donor   string          `json:"donor"`
	Project string          `json:"project"`
	Amount  decimal.Decimal `json:"amount"`
	Comment string          `json:"comment,omitempty"`
	Date    string          `json:"date"`
}

func ToDonationResponse(d donation.Donation) DonationResponse {
	return DonationResponse{
		ID:      d.ID,
		Donor:   d.DonorNickname,
		Project: d.ProjectName,
		Amount:  d.Amount,
		Comment: d.Comment,
		Date:    d.Date.Format(time.DateOnly),
	}
}

func ToDonationResponseList(ds []donation.Donation) []DonationResponse {
	resp := make([]DonationResponse, len(ds))
	for i, d := range ds {
		resp[i] = ToDonationResponse(d)
	}

	return resp
}

type createDonorRequest struct {
	Nickname string          `json:"nickname"`
	Money    decimal.Decimal `json:"money"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createDonorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	u, err := h.svc.Create(r.Context(), donor.CreateParams{Nickname: req.Nickname, Money: req.Money})
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(u))
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	resp := make([]donorResponse, len(users))
	for i, u := range users {
		resp[i] = toResponse(u)
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Get(r.Context(), chi.URLParam(r, "nickname"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(u))
}

func (h *Handler) donations(w http.ResponseWriter, r *http.Request) {
	ds, err := h.svc.Donations(r.Context(), chi.URLParam(r, "nickname"))
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, ToDonationResponseList(ds))
}

type depositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) deposit(w http.ResponseWriter, r *http.Request) {
	var req depositRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err.Error())
		return
	}

	u, err := h.svc.Deposit(r.Context(), chi.URLParam(r, "nickname"), req.Amount)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(u))
}
