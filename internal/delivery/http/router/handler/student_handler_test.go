package handler

import (
	"net/http"
	"testing"
	"time"

	"adminapi/internal/domain/entity"
	domainerrors "adminapi/internal/domain/errors"
	mockusecase "adminapi/internal/mocks/usecase"
	"adminapi/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func enrolledStudent(t *testing.T) entity.Student {
	t.Helper()

	student, err := entity.NewStudent(uuid.New(), "s26-123456", "Max", "Mustermann", time.Now())
	require.NoError(t, err)

	return student
}

func TestStudentHandler_Create_Success(t *testing.T) {
	student := enrolledStudent(t)

	uc := mockusecase.NewMockStudentUsecase(t)
	uc.EXPECT().
		CreateStudent(mock.Anything, &usecase.CreateStudentInput{FirstName: "Max", LastName: "Mustermann"}).
		Return(student, nil)

	handler := NewStudentHandler(uc)

	c, rec := newJSONContext(t, http.MethodPost, "/students",
		`{"firstName":"Max","lastName":"Mustermann"}`)

	require.NoError(t, handler.Create(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, student.ID().String(), data["id"])
	assert.Equal(t, "s26-123456", data["mnr"])
	assert.Equal(t, "Max", data["firstName"])
}

func TestStudentHandler_Create_MissingName(t *testing.T) {
	uc := mockusecase.NewMockStudentUsecase(t)
	handler := NewStudentHandler(uc)

	c, _ := newJSONContext(t, http.MethodPost, "/students", `{"firstName":"Max"}`)

	err := handler.Create(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestStudentHandler_List_Success(t *testing.T) {
	uc := mockusecase.NewMockStudentUsecase(t)
	uc.EXPECT().
		ListStudents(mock.Anything).
		Return([]entity.Student{enrolledStudent(t), enrolledStudent(t)}, nil)

	handler := NewStudentHandler(uc)

	c, rec := newJSONContext(t, http.MethodGet, "/students", "")

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data, ok := resp.Data.([]any)
	require.True(t, ok)
	assert.Len(t, data, 2)
}

func TestStudentHandler_List_Empty(t *testing.T) {
	uc := mockusecase.NewMockStudentUsecase(t)
	uc.EXPECT().
		ListStudents(mock.Anything).
		Return(nil, nil)

	handler := NewStudentHandler(uc)

	c, rec := newJSONContext(t, http.MethodGet, "/students", "")

	require.NoError(t, handler.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// An empty roster serializes as [], not null.
	assert.Contains(t, rec.Body.String(), `"data":[]`)
}

func TestStudentHandler_Get_Success(t *testing.T) {
	student := enrolledStudent(t)

	uc := mockusecase.NewMockStudentUsecase(t)
	uc.EXPECT().
		GetStudent(mock.Anything, student.ID()).
		Return(student, nil)

	handler := NewStudentHandler(uc)

	c, rec := newJSONContext(t, http.MethodGet, "/students/"+student.ID().String(), "")
	c.SetParamNames("id")
	c.SetParamValues(student.ID().String())

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, student.ID().String(), data["id"])
}

func TestStudentHandler_Get_MalformedID(t *testing.T) {
	uc := mockusecase.NewMockStudentUsecase(t)
	handler := NewStudentHandler(uc)

	c, rec := newJSONContext(t, http.MethodGet, "/students/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INVALID_INPUT", resp.Error.Code)
}

func TestStudentHandler_Get_NotFound(t *testing.T) {
	id := uuid.New()

	uc := mockusecase.NewMockStudentUsecase(t)
	uc.EXPECT().
		GetStudent(mock.Anything, id).
		Return(entity.Student{}, domainerrors.ErrStudentNotFound)

	handler := NewStudentHandler(uc)

	c, _ := newJSONContext(t, http.MethodGet, "/students/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := handler.Get(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStudentNotFound)
}

func TestStudentHandler_Update_Success(t *testing.T) {
	student := enrolledStudent(t)
	renamed, err := student.WithUpdatedNames("Erika", "Musterfrau")
	require.NoError(t, err)

	uc := mockusecase.NewMockStudentUsecase(t)
	uc.EXPECT().
		UpdateStudent(mock.Anything, &usecase.UpdateStudentInput{
			ID:        student.ID(),
			FirstName: "Erika",
			LastName:  "Musterfrau",
		}).
		Return(renamed, nil)

	handler := NewStudentHandler(uc)

	c, rec := newJSONContext(t, http.MethodPut, "/students/"+student.ID().String(),
		`{"firstName":"Erika","lastName":"Musterfrau"}`)
	c.SetParamNames("id")
	c.SetParamValues(student.ID().String())

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Erika", data["firstName"])
	assert.Equal(t, "Musterfrau", data["lastName"])
	assert.Equal(t, "s26-123456", data["mnr"])
}

func TestStudentHandler_Delete_Success(t *testing.T) {
	student := enrolledStudent(t)

	uc := mockusecase.NewMockStudentUsecase(t)
	uc.EXPECT().
		DeleteStudent(mock.Anything, student.ID()).
		Return(student, nil)

	handler := NewStudentHandler(uc)

	c, rec := newJSONContext(t, http.MethodDelete, "/students/"+student.ID().String(), "")
	c.SetParamNames("id")
	c.SetParamValues(student.ID().String())

	require.NoError(t, handler.Delete(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, student.ID().String(), data["id"])
}

func TestStudentHandler_Delete_NotFound(t *testing.T) {
	id := uuid.New()

	uc := mockusecase.NewMockStudentUsecase(t)
	uc.EXPECT().
		DeleteStudent(mock.Anything, id).
		Return(entity.Student{}, domainerrors.ErrStudentNotFound)

	handler := NewStudentHandler(uc)

	c, _ := newJSONContext(t, http.MethodDelete, "/students/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	err := handler.Delete(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStudentNotFound)
}
