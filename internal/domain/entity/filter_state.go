package entity

import "slices"

type ConsultationType string

const (
	ConsultationTypeUnset  ConsultationType = ""
	ConsultationTypeVideo  ConsultationType = "VIDEO_CONSULT"
	ConsultationTypeClinic ConsultationType = "IN_CLINIC"
)

// Valid reports whether c is unset or one of the known modes.
func (c ConsultationType) Valid() bool {
	switch c {
	case ConsultationTypeUnset, ConsultationTypeVideo, ConsultationTypeClinic:
		return true
	}
	return false
}

type SortOption string

const (
	SortUnset        SortOption = ""
	SortByFees       SortOption = "fees"
	SortByExperience SortOption = "experience"
)

func (s SortOption) Valid() bool {
	switch s {
	case SortUnset, SortByFees, SortByExperience:
		return true
	}
	return false
}

// FilterState is the full set of active filter and sort selections.
// The zero value is the cleared state.
type FilterState struct {
	Search           string           `json:"search"`
	ConsultationType ConsultationType `json:"consultationType"`
	Specialties      []string         `json:"specialties"`
	SortBy           SortOption       `json:"sortBy"`
}

func (f FilterState) IsCleared() bool {
	return f.Search == "" &&
		f.ConsultationType == ConsultationTypeUnset &&
		len(f.Specialties) == 0 &&
		f.SortBy == SortUnset
}

// Equal compares two states; a nil and an empty specialty list are equal.
func (f FilterState) Equal(other FilterState) bool {
	return f.Search == other.Search &&
		f.ConsultationType == other.ConsultationType &&
		f.SortBy == other.SortBy &&
		slices.Equal(f.Specialties, other.Specialties)
}

// HasSpecialty reports whether name is among the selected specialties.
func (f FilterState) HasSpecialty(name string) bool {
	return slices.Contains(f.Specialties, name)
}
