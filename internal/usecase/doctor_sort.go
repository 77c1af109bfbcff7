package usecase

import (
	"slices"

	"go-doctor-directory/internal/domain/entity"
)

// SortDoctors returns a sorted copy of doctors: fees ascending or
// experience descending. Ties keep their input order. An unset or unknown
// option returns doctors as given.
func SortDoctors(doctors []entity.Doctor, sortBy entity.SortOption) []entity.Doctor {
	switch sortBy {
	case entity.SortByFees:
		out := slices.Clone(doctors)
		slices.SortStableFunc(out, func(a, b entity.Doctor) int {
			return a.FeeAmount.Cmp(b.FeeAmount)
		})
		return out
	case entity.SortByExperience:
		out := slices.Clone(doctors)
		slices.SortStableFunc(out, func(a, b entity.Doctor) int {
			return b.ExperienceYears.Cmp(a.ExperienceYears)
		})
		return out
	default:
		return doctors
	}
}
