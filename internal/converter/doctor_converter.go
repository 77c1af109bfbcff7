package converter

import (
	"slices"

	"go-doctor-directory/internal/delivery/dto"
	"go-doctor-directory/internal/domain/entity"
)

// RawDoctorToDoctor admits a validated raw record, deriving the fee and
// experience amounts and the consultation mode tag.
func RawDoctorToDoctor(raw *entity.RawDoctor, availability entity.Availability) entity.Doctor {
	specialities := make([]entity.Speciality, len(raw.Specialities))
	for i, s := range raw.Specialities {
		specialities[i] = entity.Speciality{Name: s.Name}
	}

	return entity.Doctor{
		ID:                      raw.ID,
		Name:                    raw.Name,
		NameInitials:            raw.NameInitials,
		Photo:                   raw.Photo,
		Introduction:            raw.DoctorIntroduction,
		Specialities:            specialities,
		Fees:                    raw.Fees,
		Experience:              raw.Experience,
		Languages:               slices.Clone(raw.Languages),
		IsVideoConsultAvailable: availability.VideoConsult,
		IsClinicAvailable:       availability.InClinic,
		ConsultMode:             entity.ConsultModeFor(availability.VideoConsult, availability.InClinic),
		Rating:                  availability.Rating,
		FeeAmount:               entity.LeadingNumber(raw.Fees),
		ExperienceYears:         entity.LeadingNumber(raw.Experience),
	}
}

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	specialities := make([]dto.SpecialityResponse, len(doctor.Specialities))
	for i, s := range doctor.Specialities {
		specialities[i] = dto.SpecialityResponse{Name: s.Name}
	}
	languages := doctor.Languages
	if languages == nil {
		languages = []string{}
	}

	return &dto.DoctorResponse{
		ID:                      doctor.ID,
		Name:                    doctor.Name,
		NameInitials:            doctor.NameInitials,
		Photo:                   doctor.Photo,
		DoctorIntroduction:      doctor.Introduction,
		Specialities:            specialities,
		Fees:                    doctor.Fees,
		Experience:              doctor.Experience,
		Languages:               languages,
		IsVideoConsultAvailable: doctor.IsVideoConsultAvailable,
		IsClinicAvailable:       doctor.IsClinicAvailable,
		ConsultMode:             string(doctor.ConsultMode),
		Rating:                  doctor.Rating,
		FeeAmount:               doctor.FeeAmount,
		ExperienceYears:         doctor.ExperienceYears,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// FilterStateToResponse renders unset selectors as JSON null.
func FilterStateToResponse(state entity.FilterState) dto.FilterStateResponse {
	out := dto.FilterStateResponse{
		Search:      state.Search,
		Specialties: slices.Clone(state.Specialties),
	}
	if out.Specialties == nil {
		out.Specialties = []string{}
	}
	if state.ConsultationType != entity.ConsultationTypeUnset {
		mode := string(state.ConsultationType)
		out.ConsultationType = &mode
	}
	if state.SortBy != entity.SortUnset {
		sortBy := string(state.SortBy)
		out.SortBy = &sortBy
	}
	return out
}
