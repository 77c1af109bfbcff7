package repository

import (
	"context"
	"fmt"

	"go-doctor-directory/internal/domain/entity"
	domainRepo "go-doctor-directory/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorPostgresSource struct {
	db *gorm.DB
}

// NewDoctorPostgresSource reads the doctor listing from the doctors table,
// ordered by position then id.
func NewDoctorPostgresSource(db *gorm.DB) domainRepo.DoctorSource {
	return &doctorPostgresSource{db: db}
}

func (s *doctorPostgresSource) FetchDoctors(ctx context.Context) ([]entity.RawDoctor, error) {
	var records []entity.DoctorRecord
	err := s.db.WithContext(ctx).Order("position ASC, id ASC").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("query doctors: %w", err)
	}

	doctors := make([]entity.RawDoctor, len(records))
	for i := range records {
		doctors[i] = records[i].ToRaw()
	}
	return doctors, nil
}
