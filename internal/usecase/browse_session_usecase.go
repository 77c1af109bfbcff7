package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/domain/repository"
	"go-doctor-directory/internal/infrastructure/metrics"
	"go-doctor-directory/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrSessionNotFound     = errors.New("browse session not found")
	ErrInvalidSessionEvent = errors.New("invalid session event")
)

// BrowseSessionUsecase keeps one filter state per viewer. Every change is a
// whole-state replace and answers with the re-rendered view, whose query
// string replaces the viewer's current location.
type BrowseSessionUsecase interface {
	CreateSession(ctx context.Context, query string) (*dto.SessionResponse, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*dto.SessionResponse, error)
	NavigateSession(ctx context.Context, sessionID uuid.UUID, query string) (*dto.SessionResponse, error)
	DispatchEvent(ctx context.Context, sessionID uuid.UUID, event entity.SessionEvent) (*dto.SessionResponse, error)
}

type browseSessionUsecase struct {
	log         *logrus.Logger
	sessionRepo repository.BrowseSessionRepository
	directory   service.DoctorDirectory
	metrics     *metrics.Metrics
	now         func() time.Time
}

func NewBrowseSessionUsecase(
	log *logrus.Logger,
	sessionRepo repository.BrowseSessionRepository,
	directory service.DoctorDirectory,
	metrics *metrics.Metrics,
) BrowseSessionUsecase {
	return &browseSessionUsecase{
		log:         log,
		sessionRepo: sessionRepo,
		directory:   directory,
		metrics:     metrics,
		now:         time.Now,
	}
}

func (u *browseSessionUsecase) CreateSession(ctx context.Context, query string) (*dto.SessionResponse, error) {
	session := &entity.BrowseSession{
		ID:        uuid.New(),
		State:     converter.QueryToFilterState(query),
		UpdatedAt: u.now().UTC(),
	}

	if err := u.sessionRepo.Save(ctx, session); err != nil {
		u.log.Warnf("Failed to save browse session: %+v", err)
		return nil, err
	}

	return u.toResponse(session), nil
}

func (u *browseSessionUsecase) GetSession(ctx context.Context, sessionID uuid.UUID) (*dto.SessionResponse, error) {
	session, err := u.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return u.toResponse(session), nil
}

// NavigateSession replaces the state from an external location change,
// such as back/forward navigation.
func (u *browseSessionUsecase) NavigateSession(ctx context.Context, sessionID uuid.UUID, query string) (*dto.SessionResponse, error) {
	session, err := u.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return u.replaceState(ctx, session, converter.QueryToFilterState(query))
}

func (u *browseSessionUsecase) DispatchEvent(ctx context.Context, sessionID uuid.UUID, event entity.SessionEvent) (*dto.SessionResponse, error) {
	session, err := u.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state, err := ApplySessionEvent(session.State, event)
	if err != nil {
		return nil, err
	}
	u.metrics.IncrementSessionEvent(string(event.Type))

	return u.replaceState(ctx, session, state)
}

func (u *browseSessionUsecase) findSession(ctx context.Context, sessionID uuid.UUID) (*entity.BrowseSession, error) {
	session, err := u.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		u.log.Warnf("Failed to find browse session: %+v", err)
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (u *browseSessionUsecase) replaceState(ctx context.Context, session *entity.BrowseSession, state entity.FilterState) (*dto.SessionResponse, error) {
	next := &entity.BrowseSession{
		ID:        session.ID,
		State:     state,
		UpdatedAt: u.now().UTC(),
	}

	if err := u.sessionRepo.Save(ctx, next); err != nil {
		u.log.Warnf("Failed to save browse session: %+v", err)
		return nil, err
	}

	return u.toResponse(next), nil
}

func (u *browseSessionUsecase) toResponse(session *entity.BrowseSession) *dto.SessionResponse {
	return &dto.SessionResponse{
		ID:        session.ID,
		UpdatedAt: session.UpdatedAt,
		View:      *buildDirectoryView(u.directory.Snapshot(), session.State),
	}
}

// ApplySessionEvent returns the state that results from event. The input
// state is left untouched.
func ApplySessionEvent(state entity.FilterState, event entity.SessionEvent) (entity.FilterState, error) {
	next := state
	next.Specialties = slices.Clone(state.Specialties)

	switch event.Type {
	case entity.SessionEventSetSearch:
		next.Search = event.Value

	case entity.SessionEventToggleConsultationMode:
		mode := entity.ConsultationType(event.Value)
		if mode == entity.ConsultationTypeUnset || !mode.Valid() {
			return state, fmt.Errorf("%w: unknown consultation mode %q", ErrInvalidSessionEvent, event.Value)
		}
		if next.ConsultationType == mode {
			next.ConsultationType = entity.ConsultationTypeUnset
		} else {
			next.ConsultationType = mode
		}

	case entity.SessionEventToggleSpecialty:
		name := event.Value
		if name == "" || strings.Contains(name, ",") {
			return state, fmt.Errorf("%w: invalid specialty %q", ErrInvalidSessionEvent, name)
		}
		if i := slices.Index(next.Specialties, name); i >= 0 {
			next.Specialties = slices.Delete(next.Specialties, i, i+1)
		} else {
			next.Specialties = append(next.Specialties, name)
		}

	case entity.SessionEventSetSort:
		option := entity.SortOption(event.Value)
		if !option.Valid() {
			return state, fmt.Errorf("%w: unknown sort option %q", ErrInvalidSessionEvent, event.Value)
		}
		// Choosing the active option again clears it.
		if next.SortBy == option {
			next.SortBy = entity.SortUnset
		} else {
			next.SortBy = option
		}

	case entity.SessionEventClearAll:
		next = entity.FilterState{}

	default:
		return state, fmt.Errorf("%w: unknown event type %q", ErrInvalidSessionEvent, event.Type)
	}

	if len(next.Specialties) == 0 {
		next.Specialties = nil
	}
	return next, nil
}
