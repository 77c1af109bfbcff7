package usecase

import (
	"strings"

	"go-doctor-directory/internal/domain/entity"
)

const maxSuggestions = 3

type Suggestions struct {
	Doctors     []entity.Doctor
	Specialists []string
}

// SuggestDoctors finds up to three doctors whose name or introduction
// contains term, and up to three catalog specialties containing it.
func SuggestDoctors(doctors []entity.Doctor, term string) Suggestions {
	out := Suggestions{
		Doctors:     []entity.Doctor{},
		Specialists: []string{},
	}
	if term == "" {
		return out
	}
	term = strings.ToLower(term)

	for i := range doctors {
		if len(out.Doctors) == maxSuggestions {
			break
		}
		if strings.Contains(strings.ToLower(doctors[i].Name), term) ||
			strings.Contains(strings.ToLower(doctors[i].Introduction), term) {
			out.Doctors = append(out.Doctors, doctors[i])
		}
	}

	for _, name := range entity.AllSpecialties {
		if len(out.Specialists) == maxSuggestions {
			break
		}
		if strings.Contains(strings.ToLower(name), term) {
			out.Specialists = append(out.Specialists, name)
		}
	}

	return out
}
