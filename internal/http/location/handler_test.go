package location_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	locationHandler "github.com/MrJamesThe3rd/conectando/internal/http/location"
	"github.com/MrJamesThe3rd/conectando/internal/importer"
	"github.com/MrJamesThe3rd/conectando/internal/location"
)

func newRouter(t *testing.T) (http.Handler, *location.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := location.NewMockRepository(ctrl)

	r := chi.NewRouter()
	r.Route("/locations", locationHandler.NewHandler(location.NewService(repo), importer.NewService()).Routes)

	return r, repo
}

func TestHandler_Create(t *testing.T) {
	router, repo := newRouter(t)

	repo.EXPECT().CreateLocation(gomock.Any(), &location.Location{Name: "Cruz Azul", Population: 900}).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/locations/", strings.NewReader(`{"name":"Cruz Azul","population":900}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"name":"Cruz Azul","population":900}`, w.Body.String())
}

func TestHandler_Create_Invalid(t *testing.T) {
	router, _ := newRouter(t)

	for _, body := range []string{`{"name":"","population":900}`, `{"name":"x","population":-1}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/locations/", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
}

func TestHandler_Get_NotFound(t *testing.T) {
	router, repo := newRouter(t)

	repo.EXPECT().GetLocation(gomock.Any(), "Nowhere").Return(nil, location.ErrNotFound)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/locations/Nowhere", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_List(t *testing.T) {
	router, repo := newRouter(t)

	repo.EXPECT().ListLocations(gomock.Any()).Return([]*location.Location{
		{Name: "Santa Rita", Population: 1000},
	}, nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/locations/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"name":"Santa Rita","population":1000}]`, w.Body.String())
}

func TestHandler_Import(t *testing.T) {
	router, repo := newRouter(t)

	repo.EXPECT().UpsertLocations(gomock.Any(), []*location.Location{
		{Name: "Puerto Iguazu", Population: 82227},
		{Name: "Cruz Azul", Population: 900},
	}).Return(nil)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", "censo.csv")
	require.NoError(t, err)

	_, err = fw.Write([]byte("Localidad;Población\nPuerto Iguazu;82.227\nCruz Azul;900\n"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("source", "census"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/locations/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"imported":2`)
}

func TestHandler_Import_MissingFile(t *testing.T) {
	router, _ := newRouter(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("source", "census"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/locations/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
