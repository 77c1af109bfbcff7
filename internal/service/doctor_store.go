package service

import (
	"context"
	"sync"
	"time"

	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/domain/repository"
	"go-doctor-directory/internal/infrastructure/metrics"
	"go-doctor-directory/pkg/validator"

	"github.com/sirupsen/logrus"
)

// =============================================================================
// Constants
// =============================================================================

type DirectoryStatus string

const (
	DirectoryStatusLoading DirectoryStatus = "loading"
	DirectoryStatusReady   DirectoryStatus = "ready"
	DirectoryStatusFailed  DirectoryStatus = "failed"
)

// FailedLoadNotice is shown to users when the record source could not be read.
const FailedLoadNotice = "Failed to load doctors. Please try again later."

// =============================================================================
// Types
// =============================================================================

// DirectorySnapshot is a consistent view of the store at one instant.
// Doctors must be treated as read-only.
type DirectorySnapshot struct {
	Doctors []entity.Doctor
	Status  DirectoryStatus
	Notice  string
}

// DoctorDirectory is the read side used by the usecases.
type DoctorDirectory interface {
	Snapshot() DirectorySnapshot
}

// DoctorStore fetches the doctor listing exactly once and serves it to
// concurrent readers.
//
// A failed fetch is terminal for the process: the store keeps an empty
// listing and an advisory notice, and never fetches again.
type DoctorStore struct {
	source    repository.DoctorSource
	policy    AvailabilityPolicy
	validator *validator.CustomValidator
	log       *logrus.Logger
	metrics   *metrics.Metrics

	once     sync.Once
	mu       sync.RWMutex
	snapshot DirectorySnapshot
}

// =============================================================================
// Constructor
// =============================================================================

func NewDoctorStore(
	source repository.DoctorSource,
	policy AvailabilityPolicy,
	validator *validator.CustomValidator,
	log *logrus.Logger,
	metrics *metrics.Metrics,
) *DoctorStore {
	return &DoctorStore{
		source:    source,
		policy:    policy,
		validator: validator,
		log:       log,
		metrics:   metrics,
		snapshot:  DirectorySnapshot{Status: DirectoryStatusLoading},
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Load performs the single fetch. Calls after the first return immediately.
// The returned error is advisory; the store is usable either way.
func (s *DoctorStore) Load(ctx context.Context) error {
	var loadErr error
	s.once.Do(func() {
		loadErr = s.load(ctx)
	})
	return loadErr
}

func (s *DoctorStore) Snapshot() DirectorySnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// =============================================================================
// Private Methods
// =============================================================================

func (s *DoctorStore) load(ctx context.Context) error {
	startTime := time.Now()
	raws, err := s.source.FetchDoctors(ctx)
	s.metrics.ObserveSourceFetch(startTime, err)

	if err != nil {
		s.log.WithError(err).Error("Failed to fetch doctors")
		s.set(DirectorySnapshot{
			Doctors: []entity.Doctor{},
			Status:  DirectoryStatusFailed,
			Notice:  FailedLoadNotice,
		})
		return err
	}

	doctors := make([]entity.Doctor, 0, len(raws))
	for i := range raws {
		raw := &raws[i]
		if err := s.validator.Validate(raw); err != nil {
			s.metrics.DoctorsRejected.Inc()
			s.log.WithFields(logrus.Fields{
				"index":  i,
				"id":     raw.ID,
				"errors": s.validator.FormatValidationErrors(err),
			}).Warn("Skipping invalid doctor record")
			continue
		}
		doctors = append(doctors, converter.RawDoctorToDoctor(raw, s.policy.Assign(raw)))
	}
	s.metrics.DoctorsAdmitted.Add(float64(len(doctors)))

	s.set(DirectorySnapshot{
		Doctors: doctors,
		Status:  DirectoryStatusReady,
	})

	s.log.WithFields(logrus.Fields{
		"fetched":  len(raws),
		"admitted": len(doctors),
		"elapsed":  time.Since(startTime).String(),
	}).Info("Doctor directory loaded")
	return nil
}

func (s *DoctorStore) set(snapshot DirectorySnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot
}
