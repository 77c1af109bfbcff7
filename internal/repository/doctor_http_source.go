package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-doctor-directory/internal/domain/entity"
	domainRepo "go-doctor-directory/internal/domain/repository"
)

type doctorHTTPSource struct {
	url        string
	httpClient *http.Client
}

// NewDoctorHTTPSource reads the doctor listing as a JSON array from url.
func NewDoctorHTTPSource(url string, timeout time.Duration) domainRepo.DoctorSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &doctorHTTPSource{
		url: strings.TrimSpace(url),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (s *doctorHTTPSource) FetchDoctors(ctx context.Context) ([]entity.RawDoctor, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build doctor source request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch doctors: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("doctor source returned status %d", resp.StatusCode)
	}

	var doctors []entity.RawDoctor
	if err := json.NewDecoder(resp.Body).Decode(&doctors); err != nil {
		return nil, fmt.Errorf("decode doctors: %w", err)
	}

	return doctors, nil
}
