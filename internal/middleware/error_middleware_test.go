package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/pleeno/pleeno/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound},
		{"payment plan not found", apperrors.ErrPaymentPlanNotFound, http.StatusNotFound},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"token expired", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"token revoked", apperrors.ErrTokenRevoked, http.StatusUnauthorized},
		{"agency suspended", apperrors.ErrAgencySuspended, http.StatusForbidden},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"passport exists", apperrors.ErrPassportNumberExists, http.StatusConflict},
		{"plan exists", apperrors.ErrPaymentPlanExists, http.StatusConflict},
		{"installment already paid", apperrors.ErrInstallmentAlreadyPaid, http.StatusConflict},
		{"bad request", apperrors.ErrBadRequest, http.StatusBadRequest},
		{"unknown error", http.ErrBodyNotAllowed, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)

			HandleAPIError(c, tt.err)

			if recorder.Code != tt.want {
				t.Errorf("expected status %d, got %d", tt.want, recorder.Code)
			}
		})
	}
}

func TestHandleAPIErrorUnwrapsCustomError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	HandleAPIError(c, apperrors.NewConflictError("withdrawn students cannot be enrolled"))

	if recorder.Code != http.StatusConflict {
		t.Errorf("expected status 409, got %d", recorder.Code)
	}
	body := recorder.Body.String()
	if !strings.Contains(body, "withdrawn students cannot be enrolled") {
		t.Errorf("expected custom message in response body, got %s", body)
	}
}
