package manager

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/conectando/internal/http/respond"
	"github.com/MrJamesThe3rd/conectando/internal/manager"
	"github.com/MrJamesThe3rd/conectando/internal/report"
)

type Sweeper interface {
	Sweep(ctx context.Context) (manager.SweepResult, error)
}

type Handler struct {
	sweeper Sweeper
	reports *report.Service
}

func NewHandler(sweeper Sweeper, reports *report.Service) *Handler {
	return &Handler{sweeper: sweeper, reports: reports}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/sweep", h.sweep)
	r.Get("/report", h.report)
}

func (h *Handler) sweep(w http.ResponseWriter, r *http.Request) {
	res, err := h.sweeper.Sweep(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	if res.Closed == nil {
		res.Closed = []string{}
	}

	if res.Refunded == nil {
		res.Refunded = []string{}
	}

	respond.JSON(w, http.StatusOK, res)
}

// report renders the monthly digest. ?format=csv returns the projects ending this month and
// ?format=csv&section=top the top donations.
func (h *Handler) report(w http.ResponseWriter, r *http.Request) {
	rep, err := h.reports.Build(r.Context())
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	q := r.URL.Query()

	switch q.Get("format") {
	case "", "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		if _, err := w.Write([]byte(report.Text(rep))); err != nil {
			slog.Error("failed to write report", "error", err)
		}
	case "csv":
		write, name := report.WriteEndingCSV, "ending"
		if q.Get("section") == "top" {
			write, name = report.WriteTopCSV, "top"
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", rep.Month.Format("200601")+"_"+name+".csv"))

		if err := write(w, rep); err != nil {
			slog.Error("failed to write report", "error", err)
		}
	default:
		respond.BadRequest(w, "format must be text or csv")
	}
}
