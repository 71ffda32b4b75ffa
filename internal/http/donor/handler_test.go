package donor_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/conectando/internal/donation"
	"github.com/MrJamesThe3rd/conectando/internal/donor"
	donorHandler "github.com/MrJamesThe3rd/conectando/internal/http/donor"
)

func newRouter(t *testing.T) (http.Handler, *donor.MockRepository) {
	t.Helper()

	repo := donor.NewMockRepository(gomock.NewController(t))

	r := chi.NewRouter()
	r.Route("/donors", donorHandler.NewHandler(donor.NewService(repo)).Routes)

	return r, repo
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, strings.NewReader(body)))

	return w
}

func TestHandler_Create(t *testing.T) {
	router, repo := newRouter(t)

	repo.EXPECT().CreateDonor(gomock.Any(), &donor.User{Nickname: "juan123", Money: decimal.RequireFromString("9000.50")}).Return(nil)

	w := serve(router, http.MethodPost, "/donors/", `{"nickname":"juan123","money":"9000.50"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"nickname":"juan123","money":"9000.5","points":0,"donations":0}`, w.Body.String())
}

func TestHandler_Create_Duplicate(t *testing.T) {
	router, repo := newRouter(t)

	repo.EXPECT().CreateDonor(gomock.Any(), gomock.Any()).Return(donor.ErrExists)

	w := serve(router, http.MethodPost, "/donors/", `{"nickname":"juan123","money":10}`)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Get(t *testing.T) {
	router, repo := newRouter(t)

	repo.EXPECT().GetDonor(gomock.Any(), "maria456").
		Return(&donor.User{Nickname: "maria456", Money: decimal.NewFromInt(5500), Points: 2000,
			Donations: []donation.Donation{{}, {}}}, nil)
	repo.EXPECT().GetDonor(gomock.Any(), "ghost").Return(nil, donor.ErrNotFound)

	w := serve(router, http.MethodGet, "/donors/maria456", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"nickname":"maria456","money":"5500","points":2000,"donations":2}`, w.Body.String())

	w = serve(router, http.MethodGet, "/donors/ghost", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Donations(t *testing.T) {
	router, repo := newRouter(t)

	id := uuid.MustParse("7b0f9a43-5d35-4c2a-9d1e-2f6c8a0f1b11")

	repo.EXPECT().GetDonor(gomock.Any(), "juan123").Return(&donor.User{
		Nickname: "juan123",
		Donations: []donation.Donation{{
			ID:            id,
			DonorNickname: "juan123",
			ProjectName:   "Conectando Santa Rita",
			Amount:        decimal.NewFromInt(1200),
			Comment:       "This is my first donation!",
			Date:          time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
		}},
	}, nil)

	w := serve(router, http.MethodGet, "/donors/juan123/donations", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"7b0f9a43-5d35-4c2a-9d1e-2f6c8a0f1b11","donor":"juan123","project":"Conectando Santa Rita",`+
		`"amount":"1200","comment":"This is my first donation!","date":"2026-10-19"}]`, w.Body.String())
}

func TestHandler_Deposit(t *testing.T) {
	router, repo := newRouter(t)

	repo.EXPECT().AddMoney(gomock.Any(), "juan123", decimal.NewFromInt(250)).
		Return(&donor.User{Nickname: "juan123", Money: decimal.NewFromInt(1250)}, nil)

	w := serve(router, http.MethodPost, "/donors/juan123/deposit", `{"amount":250}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"money":"1250"`)

	w = serve(router, http.MethodPost, "/donors/juan123/deposit", `{"amount":-5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
