package usecase

import (
	"context"
	"errors"
	"slices"

	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
)

type DirectoryUsecase interface {
	BrowseDoctors(ctx context.Context, query string) *dto.DoctorListResponse
	GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error)
	SuggestDoctors(ctx context.Context, term string) *dto.SuggestionResponse
	GetSpecialties(ctx context.Context) *dto.SpecialtyListResponse
}

type directoryUsecase struct {
	log       *logrus.Logger
	directory service.DoctorDirectory
}

func NewDirectoryUsecase(log *logrus.Logger, directory service.DoctorDirectory) DirectoryUsecase {
	return &directoryUsecase{
		log:       log,
		directory: directory,
	}
}

// BrowseDoctors decodes query and renders the matching, sorted listing.
func (u *directoryUsecase) BrowseDoctors(ctx context.Context, query string) *dto.DoctorListResponse {
	state := converter.QueryToFilterState(query)
	return buildDirectoryView(u.directory.Snapshot(), state)
}

func (u *directoryUsecase) GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error) {
	snapshot := u.directory.Snapshot()
	for i := range snapshot.Doctors {
		if snapshot.Doctors[i].ID == doctorID {
			return converter.DoctorToResponse(&snapshot.Doctors[i]), nil
		}
	}

	u.log.Debugf("Doctor %q not found", doctorID)
	return nil, ErrDoctorNotFound
}

func (u *directoryUsecase) SuggestDoctors(ctx context.Context, term string) *dto.SuggestionResponse {
	suggestions := SuggestDoctors(u.directory.Snapshot().Doctors, term)
	return &dto.SuggestionResponse{
		Doctors:     converter.DoctorsToResponses(suggestions.Doctors),
		Specialists: suggestions.Specialists,
	}
}

func (u *directoryUsecase) GetSpecialties(ctx context.Context) *dto.SpecialtyListResponse {
	return &dto.SpecialtyListResponse{
		Specialties: slices.Clone(entity.AllSpecialties),
	}
}

// buildDirectoryView filters then sorts the snapshot for state and pairs the
// result with the canonical query string of state.
func buildDirectoryView(snapshot service.DirectorySnapshot, state entity.FilterState) *dto.DoctorListResponse {
	doctors := SortDoctors(FilterDoctors(snapshot.Doctors, state), state.SortBy)

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
		Filters: converter.FilterStateToResponse(state),
		Query:   converter.FilterStateToQuery(state),
		Status:  string(snapshot.Status),
		Notice:  snapshot.Notice,
	}
}
