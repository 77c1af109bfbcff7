package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/response"
	"go-doctor-directory/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type SessionHandler struct {
	sessionUsecase usecase.BrowseSessionUsecase
	validator      *validator.CustomValidator
}

func NewSessionHandler(sessionUsecase usecase.BrowseSessionUsecase, validator *validator.CustomValidator) *SessionHandler {
	return &SessionHandler{
		sessionUsecase: sessionUsecase,
		validator:      validator,
	}
}

func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSessionRequest
	if !h.decode(w, r, &req, true) {
		return
	}

	session, err := h.sessionUsecase.CreateSession(r.Context(), req.Query)
	if err != nil {
		response.InternalServerError(w, "Failed to create session")
		return
	}

	response.Success(w, http.StatusCreated, "Session created successfully", session)
}

func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	session, err := h.sessionUsecase.GetSession(r.Context(), sessionID)
	if err != nil {
		writeSessionError(w, err, "Failed to get session")
		return
	}

	response.Success(w, http.StatusOK, "Session retrieved successfully", session)
}

// NavigateSession handles back/forward navigation: the state is replaced
// from the location's query string.
func (h *SessionHandler) NavigateSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	var req dto.NavigateSessionRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	session, err := h.sessionUsecase.NavigateSession(r.Context(), sessionID, req.Query)
	if err != nil {
		writeSessionError(w, err, "Failed to navigate session")
		return
	}

	response.Success(w, http.StatusOK, "Session updated successfully", session)
}

func (h *SessionHandler) DispatchEvent(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := parseSessionID(w, r)
	if !ok {
		return
	}

	var req dto.SessionEventRequest
	if !h.decode(w, r, &req, false) {
		return
	}

	session, err := h.sessionUsecase.DispatchEvent(r.Context(), sessionID, entity.SessionEvent{
		Type:  entity.SessionEventType(req.Type),
		Value: req.Value,
	})
	if err != nil {
		writeSessionError(w, err, "Failed to apply event")
		return
	}

	response.Success(w, http.StatusOK, "Session updated successfully", session)
}

// decode reads and validates a JSON body. allowEmpty accepts a missing body
// as the zero request.
func (h *SessionHandler) decode(w http.ResponseWriter, r *http.Request, req interface{}, allowEmpty bool) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		if !(allowEmpty && errors.Is(err, io.EOF)) {
			response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
			return false
		}
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return false
	}
	return true
}

func parseSessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid session ID", nil)
		return uuid.Nil, false
	}
	return sessionID, true
}

func writeSessionError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		response.NotFound(w, "Session not found")
	case errors.Is(err, usecase.ErrInvalidSessionEvent):
		response.Error(w, http.StatusBadRequest, "Invalid event", err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}
