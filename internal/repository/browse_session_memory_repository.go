package repository

import (
	"context"
	"slices"
	"sync"

	"go-doctor-directory/internal/domain/entity"
	domainRepo "go-doctor-directory/internal/domain/repository"

	"github.com/google/uuid"
)

type browseSessionMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]entity.BrowseSession
}

func NewBrowseSessionMemoryRepository() domainRepo.BrowseSessionRepository {
	return &browseSessionMemoryRepository{
		sessions: make(map[uuid.UUID]entity.BrowseSession),
	}
}

func (r *browseSessionMemoryRepository) Save(ctx context.Context, session *entity.BrowseSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = cloneSession(session)
	return nil
}

func (r *browseSessionMemoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.BrowseSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	out := cloneSession(&session)
	return &out, nil
}

// cloneSession copies the specialty slice so callers never share backing
// arrays with the stored value.
func cloneSession(session *entity.BrowseSession) entity.BrowseSession {
	out := *session
	out.State.Specialties = slices.Clone(session.State.Specialties)
	return out
}
