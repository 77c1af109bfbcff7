package entity

// DoctorRecord is the persisted form of a doctor listing read by the
// Postgres record source. The directory only ever reads this table.
type DoctorRecord struct {
	ID                 string          `gorm:"type:varchar(64);primaryKey"`
	Name               string          `gorm:"type:varchar(255);not null"`
	NameInitials       string          `gorm:"type:varchar(8)"`
	Photo              string          `gorm:"type:text"`
	DoctorIntroduction string          `gorm:"type:text"`
	Specialities       []RawSpeciality `gorm:"type:jsonb;serializer:json"`
	Fees               string          `gorm:"type:varchar(64)"`
	Experience         string          `gorm:"type:varchar(64)"`
	Languages          []string        `gorm:"type:jsonb;serializer:json"`
	VideoConsult       *bool
	InClinic           *bool
	Rating             *float64
	Position           int `gorm:"index"`
}

func (DoctorRecord) TableName() string {
	return "doctors"
}

func (r *DoctorRecord) ToRaw() RawDoctor {
	return RawDoctor{
		ID:                 r.ID,
		Name:               r.Name,
		NameInitials:       r.NameInitials,
		Photo:              r.Photo,
		DoctorIntroduction: r.DoctorIntroduction,
		Specialities:       r.Specialities,
		Fees:               r.Fees,
		Experience:         r.Experience,
		Languages:          r.Languages,
		VideoConsult:       r.VideoConsult,
		InClinic:           r.InClinic,
		Rating:             r.Rating,
	}
}
