package entity

import (
	"time"

	"github.com/google/uuid"
)

// BrowseSession holds one viewer's current filter state. The state is
// always replaced as a whole.
type BrowseSession struct {
	ID        uuid.UUID   `json:"id"`
	State     FilterState `json:"state"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type SessionEventType string

const (
	SessionEventSetSearch              SessionEventType = "set-search"
	SessionEventToggleConsultationMode SessionEventType = "toggle-consultation-mode"
	SessionEventToggleSpecialty        SessionEventType = "toggle-specialty"
	SessionEventSetSort                SessionEventType = "set-sort"
	SessionEventClearAll               SessionEventType = "clear-all"
)

// SessionEvent is a discrete filter interaction emitted by the presentation
// layer. Value carries the text, mode, specialty name or sort option.
type SessionEvent struct {
	Type  SessionEventType
	Value string
}
