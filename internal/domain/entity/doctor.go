package entity

import (
	"regexp"

	"github.com/shopspring/decimal"
)

type ConsultMode string

const (
	ConsultModeVideo  ConsultMode = "VIDEO_CONSULT"
	ConsultModeClinic ConsultMode = "IN_CLINIC"
	ConsultModeBoth   ConsultMode = "BOTH"
)

// Speciality is a named medical category attached to a doctor.
type Speciality struct {
	Name string `json:"name"`
}

// Doctor is an admitted doctor record. It is built once by the converter
// and treated as read-only afterwards.
type Doctor struct {
	ID                      string
	Name                    string
	NameInitials            string
	Photo                   string
	Introduction            string
	Specialities            []Speciality
	Fees                    string
	Experience              string
	Languages               []string
	IsVideoConsultAvailable bool
	IsClinicAvailable       bool
	ConsultMode             ConsultMode
	Rating                  decimal.Decimal

	// Derived from Fees and Experience.
	FeeAmount       decimal.Decimal
	ExperienceYears decimal.Decimal
}

// HasSpeciality reports whether any of the doctor's specialities is in names.
func (d *Doctor) HasSpeciality(names map[string]struct{}) bool {
	for _, s := range d.Specialities {
		if _, ok := names[s.Name]; ok {
			return true
		}
	}
	return false
}

var digitRun = regexp.MustCompile(`[0-9]+`)

// LeadingNumber returns the first run of decimal digits in s, or zero when
// s contains no digit.
func LeadingNumber(s string) decimal.Decimal {
	match := digitRun.FindString(s)
	if match == "" {
		return decimal.Zero
	}
	n, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.Zero
	}
	return n
}

// ConsultModeFor derives the consultation mode tag from the two
// availability flags.
func ConsultModeFor(video, clinic bool) ConsultMode {
	switch {
	case video && !clinic:
		return ConsultModeVideo
	case clinic && !video:
		return ConsultModeClinic
	default:
		return ConsultModeBoth
	}
}

// Availability is what an availability policy decides for one record.
type Availability struct {
	VideoConsult bool
	InClinic     bool
	Rating       decimal.Decimal
}
