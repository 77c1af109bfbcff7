package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"go-doctor-directory/internal/converter"
	"go-doctor-directory/internal/domain/entity"
	"go-doctor-directory/internal/service"
	"go-doctor-directory/pkg/response"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
	Meta    *response.Meta  `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func rawDoctor(id, name, fees, experience, speciality string, video, clinic bool) entity.Doctor {
	raw := &entity.RawDoctor{
		ID:           id,
		Name:         name,
		Fees:         fees,
		Experience:   experience,
		Specialities: []entity.RawSpeciality{{Name: speciality}},
	}
	return converter.RawDoctorToDoctor(raw, entity.Availability{VideoConsult: video, InClinic: clinic})
}

type stubDirectory struct {
	snapshot service.DirectorySnapshot
}

func (s *stubDirectory) Snapshot() service.DirectorySnapshot {
	return s.snapshot
}

func testDirectory() *stubDirectory {
	return &stubDirectory{snapshot: service.DirectorySnapshot{
		Status: service.DirectoryStatusReady,
		Doctors: []entity.Doctor{
			rawDoctor("1", "Dr. Asha Rao", "₹ 500", "13 Years of experience", "Dentist", true, true),
			rawDoctor("2", "Dr. Vikram Sen", "₹ 800", "20 Years of experience", "Cardiologist", false, true),
			rawDoctor("3", "Dr. Meera Iyer", "₹ 300", "5 Years of experience", "Dermatologist", true, false),
		},
	}}
}

func doctorNames(doctors []struct {
	Name string `json:"name"`
}) []string {
	out := make([]string, len(doctors))
	for i, d := range doctors {
		out[i] = d.Name
	}
	return out
}
