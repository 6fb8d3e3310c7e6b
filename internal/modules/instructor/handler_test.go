package instructor

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gympay/internal/domain"
	"gympay/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupHandler(store Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	NewHandler(NewService(store, testOrgID)).RegisterRoutes(api)
	return r
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestCreateDuplicateEmailConflict(t *testing.T) {
	store := new(MockStore)
	store.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateEmail)

	r := setupHandler(store)
	resp := doJSON(r, http.MethodPost, "/api/instructors", map[string]any{
		"first_name": "Sarah",
		"last_name":  "Johnson",
		"email":      "sarah.johnson@example.com",
	})

	require.Equal(t, http.StatusConflict, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "An instructor with this email already exists", body["error"])
}

func TestCreateRejectsMissingFields(t *testing.T) {
	store := new(MockStore)
	r := setupHandler(store)

	resp := doJSON(r, http.MethodPost, "/api/instructors", map[string]any{
		"first_name": "NoEmail",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUpdateMissingInstructorReturns404(t *testing.T) {
	store := new(MockStore)
	store.On("GetByID", mock.Anything, testOrgID, int64(42)).
		Return(nil, gorm.ErrRecordNotFound)

	r := setupHandler(store)
	resp := doJSON(r, http.MethodPut, "/api/instructors/42", map[string]any{
		"first_name": "Ghost",
	})

	require.Equal(t, http.StatusNotFound, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Instructor not found", body["error"])
}

func TestUpdateInvalidStatusReturns400(t *testing.T) {
	store := new(MockStore)
	store.On("GetByID", mock.Anything, testOrgID, int64(1)).
		Return(&domain.Instructor{ID: 1, Status: domain.InstructorActive}, nil)

	r := setupHandler(store)
	resp := doJSON(r, http.MethodPut, "/api/instructors/1", map[string]any{
		"status": "retired",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUpdateBlankedEmailReturns400WithDetails(t *testing.T) {
	store := new(MockStore)
	store.On("GetByID", mock.Anything, testOrgID, int64(7)).
		Return(&domain.Instructor{
			ID:        7,
			FirstName: "Sarah",
			LastName:  "Johnson",
			Email:     "sarah.johnson@example.com",
			Status:    domain.InstructorActive,
		}, nil)

	r := setupHandler(store)
	resp := doJSON(r, http.MethodPut, "/api/instructors/7", map[string]any{
		"email": "",
	})

	require.Equal(t, http.StatusBadRequest, resp.Code)

	var body struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Invalid instructor data", body.Error)
	assert.Equal(t, "required", body.Details["Email"])
	store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateRejectsNonNumericID(t *testing.T) {
	store := new(MockStore)
	r := setupHandler(store)

	resp := doJSON(r, http.MethodPut, "/api/instructors/abc", map[string]any{
		"first_name": "X",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestDeleteMissingInstructorReturns404(t *testing.T) {
	store := new(MockStore)
	store.On("Delete", mock.Anything, testOrgID, int64(9)).
		Return(gorm.ErrRecordNotFound)

	r := setupHandler(store)
	resp := doJSON(r, http.MethodDelete, "/api/instructors/9", nil)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteRespondsWithFlag(t *testing.T) {
	store := new(MockStore)
	store.On("Delete", mock.Anything, testOrgID, int64(3)).Return(nil)

	r := setupHandler(store)
	resp := doJSON(r, http.MethodDelete, "/api/instructors/3", nil)

	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]bool
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body["deleted"])
}
