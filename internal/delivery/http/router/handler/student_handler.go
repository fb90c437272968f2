package handler

import (
	"net/http"
	"time"

	"adminapi/internal/delivery/http/response"
	"adminapi/internal/domain/entity"
	"adminapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StudentHandler holds dependencies for student management handlers.
type StudentHandler struct {
	uc usecase.StudentUsecase
}

// NewStudentHandler is the constructor for StudentHandler, injected by Fx.
func NewStudentHandler(uc usecase.StudentUsecase) *StudentHandler {
	return &StudentHandler{uc: uc}
}

type createStudentRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=50"`
	LastName  string `json:"lastName" validate:"required,min=2,max=50"`
}

type updateStudentRequest struct {
	FirstName string `json:"firstName" validate:"required,min=2,max=50"`
	LastName  string `json:"lastName" validate:"required,min=2,max=50"`
}

type studentResponse struct {
	ID        uuid.UUID `json:"id"`
	Mnr       string    `json:"mnr"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedOn time.Time `json:"createdOn"`
}

func toStudentResponse(student entity.Student) studentResponse {
	return studentResponse{
		ID:        student.ID(),
		Mnr:       student.Mnr(),
		FirstName: student.FirstName(),
		LastName:  student.LastName(),
		CreatedOn: student.CreatedOn(),
	}
}

// Create handles the student enrollment request.
func (h *StudentHandler) Create(c echo.Context) error {
	var req createStudentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid student input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	student, err := h.uc.CreateStudent(c.Request().Context(), &usecase.CreateStudentInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toStudentResponse(student), "Student enrolled successfully")
}

// List returns all students ordered by enrollment time.
func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.uc.ListStudents(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	result := make([]studentResponse, 0, len(students))
	for _, student := range students {
		result = append(result, toStudentResponse(student))
	}

	return response.Success(c, http.StatusOK, result, "")
}

// Get returns a single student by id.
func (h *StudentHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid student id")
	}

	student, err := h.uc.GetStudent(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStudentResponse(student), "")
}

// Update renames an existing student.
func (h *StudentHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid student id")
	}

	var req updateStudentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid student input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	student, err := h.uc.UpdateStudent(c.Request().Context(), &usecase.UpdateStudentInput{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStudentResponse(student), "Student updated successfully")
}

// Delete removes a student and returns the deleted record.
func (h *StudentHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid student id")
	}

	student, err := h.uc.DeleteStudent(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStudentResponse(student), "Student deleted successfully")
}
