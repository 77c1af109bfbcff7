package repository

import (
	"context"

	"go-doctor-directory/internal/domain/entity"

	"github.com/google/uuid"
)

type BrowseSessionRepository interface {
	Save(ctx context.Context, session *entity.BrowseSession) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BrowseSession, error)
}
