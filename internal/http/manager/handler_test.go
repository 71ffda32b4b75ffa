package manager_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	managerHandler "github.com/MrJamesThe3rd/conectando/internal/http/manager"
	"github.com/MrJamesThe3rd/conectando/internal/location"
	"github.com/MrJamesThe3rd/conectando/internal/manager"
	"github.com/MrJamesThe3rd/conectando/internal/project"
	"github.com/MrJamesThe3rd/conectando/internal/report"
)

var today = time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)

type fakeSweeper struct {
	res manager.SweepResult
	err error
}

func (f fakeSweeper) Sweep(context.Context) (manager.SweepResult, error) { return f.res, f.err }

type fakeSource struct{}

func (fakeSource) Portfolio(context.Context) (*manager.Manager, error) {
	p := project.New(project.Params{
		Name:              "Conectando Cruz Azul",
		Factor:            1,
		ClosurePercentage: 100,
		StartDate:         today,
		DurationInDays:    3,
		Location:          location.Location{Name: "Cruz Azul", Population: 900},
	})

	return manager.New([]*project.Project{p}, nil, nil, nil), nil
}

func (fakeSource) Today() time.Time { return today }

func newRouter(sweeper fakeSweeper) http.Handler {
	r := chi.NewRouter()
	r.Route("/manager", managerHandler.NewHandler(sweeper, report.NewService(fakeSource{})).Routes)

	return r
}

func serve(router http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, nil))

	return w
}

func TestHandler_Sweep(t *testing.T) {
	router := newRouter(fakeSweeper{res: manager.SweepResult{
		Closed:            []string{"a", "b"},
		Refunded:          []string{"b"},
		RefundedDonations: 3,
	}})

	w := serve(router, http.MethodPost, "/manager/sweep")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"closed":["a","b"],"refunded":["b"],"refunded_donations":3}`, w.Body.String())
}

func TestHandler_Sweep_Empty(t *testing.T) {
	w := serve(newRouter(fakeSweeper{}), http.MethodPost, "/manager/sweep")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"closed":[],"refunded":[],"refunded_donations":0}`, w.Body.String())
}

func TestHandler_Sweep_Error(t *testing.T) {
	w := serve(newRouter(fakeSweeper{err: errors.New("db down")}), http.MethodPost, "/manager/sweep")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_Report(t *testing.T) {
	router := newRouter(fakeSweeper{})

	w := serve(router, http.MethodGet, "/manager/report")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
	assert.Contains(t, w.Body.String(), "Conectando Cruz Azul")

	w = serve(router, http.MethodGet, "/manager/report?format=csv")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "202610_ending.csv")
	assert.Contains(t, w.Body.String(), "Conectando Cruz Azul,Cruz Azul,2026-10-22,0.00,0.00,900,0")

	w = serve(router, http.MethodGet, "/manager/report?format=csv&section=top")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rank,amount,donor,project,date,comment\n", w.Body.String())

	w = serve(router, http.MethodGet, "/manager/report?format=xml")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
