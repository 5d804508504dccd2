package handler

import (
	"net/http"

	"hostelhub/internal/service"
	"hostelhub/internal/usecase"
	"hostelhub/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type StudentHandler struct {
	studentUsecase usecase.StudentUsecase
}

func NewStudentHandler(studentUsecase usecase.StudentUsecase) *StudentHandler {
	return &StudentHandler{studentUsecase: studentUsecase}
}

func studentError(w http.ResponseWriter, err error) {
	switch err {
	case service.ErrStudentNotFound:
		response.NotFound(w, "Student not found")
	case usecase.ErrHostelNotFound:
		response.NotFound(w, "Hostel not found")
	case usecase.ErrNotHostelOwner:
		response.Forbidden(w, "You do not own this hostel")
	default:
		response.InternalServerError(w, "Failed to process student request")
	}
}

func (h *StudentHandler) GetStudent(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	studentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid student ID", nil)
		return
	}

	student, err := h.studentUsecase.GetByID(r.Context(), actorID, actorRole, studentID)
	if err != nil {
		studentError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Student retrieved successfully", student)
}

func (h *StudentHandler) ListStudentsByHostel(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	hostelID, err := uuid.Parse(vars["hostelId"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid hostel ID", nil)
		return
	}

	students, err := h.studentUsecase.ListByHostel(r.Context(), actorID, actorRole, hostelID)
	if err != nil {
		studentError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Students retrieved successfully", students)
}

func (h *StudentHandler) CheckOutStudent(w http.ResponseWriter, r *http.Request) {
	actorID, actorRole, ok := actorFromContext(r)
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	studentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid student ID", nil)
		return
	}

	student, err := h.studentUsecase.CheckOut(r.Context(), actorID, actorRole, studentID)
	if err != nil {
		studentError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Student checked out successfully", student)
}
