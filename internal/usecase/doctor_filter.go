package usecase

import (
	"strings"

	"go-doctor-directory/internal/domain/entity"
)

// FilterDoctors returns the doctors matching every active constraint of
// state, in their original order. A cleared state keeps every doctor.
func FilterDoctors(doctors []entity.Doctor, state entity.FilterState) []entity.Doctor {
	search := strings.ToLower(state.Search)

	var specialties map[string]struct{}
	if len(state.Specialties) > 0 {
		specialties = make(map[string]struct{}, len(state.Specialties))
		for _, name := range state.Specialties {
			specialties[name] = struct{}{}
		}
	}

	out := make([]entity.Doctor, 0, len(doctors))
	for i := range doctors {
		doctor := &doctors[i]

		if search != "" && !matchesSearch(doctor, search) {
			continue
		}
		if state.ConsultationType == entity.ConsultationTypeVideo && !doctor.IsVideoConsultAvailable {
			continue
		}
		if state.ConsultationType == entity.ConsultationTypeClinic && !doctor.IsClinicAvailable {
			continue
		}
		if specialties != nil && !doctor.HasSpeciality(specialties) {
			continue
		}

		out = append(out, *doctor)
	}
	return out
}

// matchesSearch expects search to be lower-cased already.
func matchesSearch(doctor *entity.Doctor, search string) bool {
	if strings.Contains(strings.ToLower(doctor.Name), search) {
		return true
	}
	for _, s := range doctor.Specialities {
		if strings.Contains(strings.ToLower(s.Name), search) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(doctor.Introduction), search)
}
