package entity

// RawDoctor is a doctor record as served by the record source, before
// admission. Availability and rating are optional on the wire.
type RawDoctor struct {
	ID                 string          `json:"id" validate:"required"`
	Name               string          `json:"name" validate:"required"`
	NameInitials       string          `json:"name_initials"`
	Photo              string          `json:"photo"`
	DoctorIntroduction string          `json:"doctor_introduction"`
	Specialities       []RawSpeciality `json:"specialities" validate:"dive"`
	Fees               string          `json:"fees"`
	Experience         string          `json:"experience"`
	Languages          []string        `json:"languages"`
	VideoConsult       *bool           `json:"video_consult,omitempty"`
	InClinic           *bool           `json:"in_clinic,omitempty"`
	Rating             *float64        `json:"rating,omitempty"`
}

type RawSpeciality struct {
	Name string `json:"name" validate:"required,nocomma"`
}
