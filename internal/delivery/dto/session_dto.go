package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateSessionRequest struct {
	Query string `json:"query" validate:"max=4096"`
}

type NavigateSessionRequest struct {
	Query string `json:"query" validate:"max=4096"`
}

type SessionEventRequest struct {
	Type  string `json:"type" validate:"required,oneof=set-search toggle-consultation-mode toggle-specialty set-sort clear-all"`
	Value string `json:"value" validate:"max=512"`
}

// Response DTOs

type SessionResponse struct {
	ID        uuid.UUID          `json:"id"`
	UpdatedAt time.Time          `json:"updated_at"`
	View      DoctorListResponse `json:"view"`
}
