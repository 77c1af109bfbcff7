package handler

import (
	"errors"
	"net/http"

	"go-doctor-directory/internal/usecase"
	"go-doctor-directory/pkg/response"

	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	directoryUsecase usecase.DirectoryUsecase
}

func NewDoctorHandler(directoryUsecase usecase.DirectoryUsecase) *DoctorHandler {
	return &DoctorHandler{
		directoryUsecase: directoryUsecase,
	}
}

// BrowseDoctors renders the listing for the filter state in the request's
// query string.
func (h *DoctorHandler) BrowseDoctors(w http.ResponseWriter, r *http.Request) {
	view := h.directoryUsecase.BrowseDoctors(r.Context(), r.URL.RawQuery)
	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully", view, &response.Meta{
		Total:  view.Total,
		Status: view.Status,
	})
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctor, err := h.directoryUsecase.GetDoctor(r.Context(), vars["id"])
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

func (h *DoctorHandler) SuggestDoctors(w http.ResponseWriter, r *http.Request) {
	suggestions := h.directoryUsecase.SuggestDoctors(r.Context(), r.URL.Query().Get("term"))
	response.Success(w, http.StatusOK, "Suggestions retrieved successfully", suggestions)
}

func (h *DoctorHandler) GetSpecialties(w http.ResponseWriter, r *http.Request) {
	response.Success(w, http.StatusOK, "Specialties retrieved successfully", h.directoryUsecase.GetSpecialties(r.Context()))
}
