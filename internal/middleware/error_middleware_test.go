package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thws/management/internal/app/models/dto"
	"github.com/thws/management/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (int, dto.APIResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	HandleAPIError(c, err)

	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, body
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    dto.ErrorCode
		wantMessage string
	}{
		{
			name:        "university not found",
			err:         apperrors.ErrUniversityNotFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    dto.ErrorCodeResourceNotFound,
			wantMessage: "Partner university not found",
		},
		{
			name:        "not found with message",
			err:         apperrors.NewNotFoundError("No modules found"),
			wantStatus:  http.StatusNotFound,
			wantCode:    dto.ErrorCodeResourceNotFound,
			wantMessage: "No modules found",
		},
		{
			name:        "duplicate module name",
			err:         apperrors.ErrModuleAlreadyExists,
			wantStatus:  http.StatusConflict,
			wantCode:    dto.ErrorCodeResourceAlreadyExists,
			wantMessage: "Module name already exists",
		},
		{
			name:        "validation failure keeps its message",
			err:         fmt.Errorf("%w: name must not be blank", apperrors.ErrValidationFailed),
			wantStatus:  http.StatusBadRequest,
			wantCode:    dto.ErrorCodeValidationFailed,
			wantMessage: "validation failed: name must not be blank",
		},
		{
			name:        "bad request with message",
			err:         apperrors.NewBadRequestError("Invalid universityId parameter"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    dto.ErrorCodeValidationFailed,
			wantMessage: "Invalid universityId parameter",
		},
		{
			name:        "store failure hides the driver detail",
			err:         apperrors.NewCustomError(apperrors.ErrStoreFailure, "counting uni modules: connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    dto.ErrorCodeDatabaseError,
			wantMessage: "Database operation failed",
		},
		{
			name:        "unknown error",
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    dto.ErrorCodeInternalServer,
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := handleError(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
		})
	}
}
