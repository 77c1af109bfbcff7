package dto

import (
	"github.com/shopspring/decimal"
)

// Response DTOs

type SpecialityResponse struct {
	Name string `json:"name"`
}

// DoctorResponse keeps the field names the directory front end already
// reads, plus the derived numeric amounts.
type DoctorResponse struct {
	ID                      string               `json:"id"`
	Name                    string               `json:"name"`
	NameInitials            string               `json:"name_initials"`
	Photo                   string               `json:"photo"`
	DoctorIntroduction      string               `json:"doctor_introduction"`
	Specialities            []SpecialityResponse `json:"specialities"`
	Fees                    string               `json:"fees"`
	Experience              string               `json:"experience"`
	Languages               []string             `json:"languages"`
	IsVideoConsultAvailable bool                 `json:"isVideoConsultAvailable"`
	IsClinicAvailable       bool                 `json:"isClinicAvailable"`
	ConsultMode             string               `json:"consultMode"`
	Rating                  decimal.Decimal      `json:"rating"`
	FeeAmount               decimal.Decimal      `json:"fee_amount"`
	ExperienceYears         decimal.Decimal      `json:"experience_years"`
}

type FilterStateResponse struct {
	Search           string   `json:"search"`
	ConsultationType *string  `json:"consultationType"`
	Specialties      []string `json:"specialties"`
	SortBy           *string  `json:"sortBy"`
}

// DoctorListResponse is one rendered view of the directory.
type DoctorListResponse struct {
	Doctors []DoctorResponse    `json:"doctors"`
	Total   int                 `json:"total"`
	Filters FilterStateResponse `json:"filters"`
	Query   string              `json:"query"`
	Status  string              `json:"status"`
	Notice  string              `json:"notice,omitempty"`
}

type SuggestionResponse struct {
	Doctors     []DoctorResponse `json:"doctors"`
	Specialists []string         `json:"specialists"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
}
