package usecase

import (
	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/service"
)

type doctorSpec struct {
	id, name, intro, fees, experience string
	specialities                      []string
	video, clinic                     bool
}

func makeDoctor(s doctorSpec) entity.Doctor {
	raw := &entity.RawDoctor{
		ID:                 s.id,
		Name:               s.name,
		DoctorIntroduction: s.intro,
		Fees:               s.fees,
		Experience:         s.experience,
	}
	for _, name := range s.specialities {
		raw.Specialities = append(raw.Specialities, entity.RawSpeciality{Name: name})
	}
	return converter.RawDoctorToDoctor(raw, entity.Availability{VideoConsult: s.video, InClinic: s.clinic})
}

func names(doctors []entity.Doctor) []string {
	out := make([]string, len(doctors))
	for i, d := range doctors {
		out[i] = d.Name
	}
	return out
}

// sampleDoctors is a small listing used across tests.
func sampleDoctors() []entity.Doctor {
	return []entity.Doctor{
		makeDoctor(doctorSpec{id: "1", name: "Dr. Asha Rao", intro: "Gentle dental care.", fees: "₹ 500", experience: "13 Years of experience", specialities: []string{"Dentist"}, video: true, clinic: true}),
		makeDoctor(doctorSpec{id: "2", name: "Dr. Vikram Sen", intro: "Heart health specialist.", fees: "₹ 800", experience: "20 Years of experience", specialities: []string{"Cardiologist"}, clinic: true}),
		makeDoctor(doctorSpec{id: "3", name: "Dr. Meera Iyer", intro: "Skin and hair.", fees: "₹ 300", experience: "5 Years of experience", specialities: []string{"Dermatologist", "Allergist"}, video: true}),
		makeDoctor(doctorSpec{id: "4", name: "Dr. Kabir Das", intro: "Children first.", fees: "₹ 500", experience: "8 Years of experience", specialities: []string{"Pediatrician"}}),
		makeDoctor(doctorSpec{id: "5", name: "Dr. Nisha Dentinger", intro: "Family medicine.", fees: "Free", experience: "Fresh graduate", specialities: []string{"General Physician"}, video: true}),
	}
}

type stubDirectory struct {
	snapshot service.DirectorySnapshot
}

func (s *stubDirectory) Snapshot() service.DirectorySnapshot {
	return s.snapshot
}

func readyDirectory(doctors []entity.Doctor) *stubDirectory {
	return &stubDirectory{snapshot: service.DirectorySnapshot{Doctors: doctors, Status: service.DirectoryStatusReady}}
}
