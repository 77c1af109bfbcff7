package repository

import (
	"context"

	"go-doctor-directory/internal/domain/entity"
)

// DoctorSource supplies the raw doctor listing. It is read once per
// process lifetime.
type DoctorSource interface {
	FetchDoctors(ctx context.Context) ([]entity.RawDoctor, error)
}
