package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-doctor-directory/internal/infrastructure/metrics"
	"go-doctor-directory/internal/repository"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionView struct {
	ID   uuid.UUID `json:"id"`
	View listView  `json:"view"`
}

func newSessionHandler() *SessionHandler {
	sessionUsecase := usecase.NewBrowseSessionUsecase(
		discardLogger(),
		repository.NewBrowseSessionMemoryRepository(),
		testDirectory(),
		metrics.New(prometheus.NewRegistry()),
	)
	return NewSessionHandler(sessionUsecase, validator.NewValidator())
}

func sessionRequest(method, path, id, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if id != "" {
		req = mux.SetURLVars(req, map[string]string{"id": id})
	}
	return req
}

func createSession(t *testing.T, h *SessionHandler, body string) sessionView {
	t.Helper()

	rec := httptest.NewRecorder()
	h.CreateSession(rec, sessionRequest(http.MethodPost, "/api/v1/sessions", "", body))
	require.Equal(t, http.StatusCreated, rec.Code)

	var session sessionView
	decodeEnvelope(t, rec, &session)
	return session
}

func TestSessionHandler_CreateSession(t *testing.T) {
	h := newSessionHandler()

	t.Run("empty body", func(t *testing.T) {
		session := createSession(t, h, "")
		assert.NotEqual(t, uuid.Nil, session.ID)
		assert.Equal(t, 3, session.View.Total)
		assert.Equal(t, "", session.View.Query)
	})

	t.Run("initial query", func(t *testing.T) {
		session := createSession(t, h, `{"query": "?specialties=Dentist"}`)
		assert.Equal(t, []string{"Dr. Asha Rao"}, doctorNames(session.View.Doctors))
		assert.Equal(t, "specialties=Dentist", session.View.Query)
	})

	t.Run("malformed body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.CreateSession(rec, sessionRequest(http.MethodPost, "/api/v1/sessions", "", `{"query":`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid request body", decodeEnvelope(t, rec, nil).Message)
	})
}

func TestSessionHandler_GetSession(t *testing.T) {
	h := newSessionHandler()
	created := createSession(t, h, `{"query": "sortBy=fees"}`)

	rec := httptest.NewRecorder()
	h.GetSession(rec, sessionRequest(http.MethodGet, "/api/v1/sessions/"+created.ID.String(), created.ID.String(), ""))
	assert.Equal(t, http.StatusOK, rec.Code)

	var session sessionView
	decodeEnvelope(t, rec, &session)
	assert.Equal(t, created.ID, session.ID)
	assert.Equal(t, []string{"Dr. Meera Iyer", "Dr. Asha Rao", "Dr. Vikram Sen"}, doctorNames(session.View.Doctors))
}

func TestSessionHandler_GetSession_Errors(t *testing.T) {
	h := newSessionHandler()

	rec := httptest.NewRecorder()
	h.GetSession(rec, sessionRequest(http.MethodGet, "/api/v1/sessions/nope", "nope", ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid session ID", decodeEnvelope(t, rec, nil).Message)

	unknown := uuid.NewString()
	rec = httptest.NewRecorder()
	h.GetSession(rec, sessionRequest(http.MethodGet, "/api/v1/sessions/"+unknown, unknown, ""))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Session not found", decodeEnvelope(t, rec, nil).Message)
}

func TestSessionHandler_NavigateSession(t *testing.T) {
	h := newSessionHandler()
	created := createSession(t, h, `{"query": "consultationType=VIDEO_CONSULT"}`)
	id := created.ID.String()

	rec := httptest.NewRecorder()
	h.NavigateSession(rec, sessionRequest(http.MethodPut, "/api/v1/sessions/"+id+"/location", id, `{"query": "?search=vikram"}`))
	assert.Equal(t, http.StatusOK, rec.Code)

	var session sessionView
	decodeEnvelope(t, rec, &session)
	assert.Equal(t, "search=vikram", session.View.Query)
	assert.Equal(t, []string{"Dr. Vikram Sen"}, doctorNames(session.View.Doctors))
}

func TestSessionHandler_DispatchEvent(t *testing.T) {
	h := newSessionHandler()
	created := createSession(t, h, "")
	id := created.ID.String()
	path := "/api/v1/sessions/" + id + "/events"

	dispatch := func(body string) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		h.DispatchEvent(rec, sessionRequest(http.MethodPost, path, id, body))
		return rec
	}

	rec := dispatch(`{"type": "toggle-consultation-mode", "value": "VIDEO_CONSULT"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var session sessionView
	decodeEnvelope(t, rec, &session)
	assert.Equal(t, "consultationType=VIDEO_CONSULT", session.View.Query)
	assert.Equal(t, 2, session.View.Total)

	rec = dispatch(`{"type": "set-sort", "value": "fees"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeEnvelope(t, rec, &session)
	assert.Equal(t, []string{"Dr. Meera Iyer", "Dr. Asha Rao"}, doctorNames(session.View.Doctors))

	rec = dispatch(`{"type": "clear-all"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeEnvelope(t, rec, &session)
	assert.Equal(t, "", session.View.Query)
	assert.Equal(t, 3, session.View.Total)
}

func TestSessionHandler_DispatchEvent_Rejected(t *testing.T) {
	h := newSessionHandler()
	created := createSession(t, h, "")
	id := created.ID.String()

	tests := []struct {
		name    string
		body    string
		message string
	}{
		{name: "malformed json", body: `not json`, message: "Invalid request body"},
		{name: "missing type", body: `{"value": "x"}`, message: "Validation failed"},
		{name: "unknown type", body: `{"type": "reload"}`, message: "Validation failed"},
		{name: "unknown mode", body: `{"type": "toggle-consultation-mode", "value": "HOME_VISIT"}`, message: "Invalid event"},
		{name: "comma in specialty", body: `{"type": "toggle-specialty", "value": "Dentist,Cardiologist"}`, message: "Invalid event"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.DispatchEvent(rec, sessionRequest(http.MethodPost, "/api/v1/sessions/"+id+"/events", id, tt.body))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.message, decodeEnvelope(t, rec, nil).Message)
		})
	}
}
