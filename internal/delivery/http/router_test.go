package http

import (
	"net/http"
	"testing"

	"clinic-appointment-service/internal/delivery/http/handler"
	"clinic-appointment-service/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *mux.Router {
	t.Helper()
	r := NewRouter(
		&handler.AuthHandler{},
		&handler.DoctorHandler{},
		&handler.AppointmentHandler{},
		&handler.DashboardHandler{},
		&handler.PatientHandler{},
		&handler.AuditLogHandler{},
		middleware.NewAuthMiddleware(nil, nil),
		middleware.NewCORSMiddleware(),
	)
	return r.Setup()
}

func TestRouterRegistersRoutes(t *testing.T) {
	router := setupTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/metrics"},
		{http.MethodGet, "/api/v1/health"},
		{http.MethodGet, "/api/v1/doctors"},
		{http.MethodGet, "/api/v1/doctors/a2f1c6ce-1d82-4f6e-9c41-0b2d3a6f7e88"},
		{http.MethodPost, "/api/v1/auth/register"},
		{http.MethodPost, "/api/v1/auth/login"},
		{http.MethodPost, "/api/v1/auth/refresh-token"},
		{http.MethodPost, "/api/v1/auth/logout"},
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodPost, "/api/v1/admin/doctors"},
		{http.MethodGet, "/api/v1/admin/doctors"},
		{http.MethodPatch, "/api/v1/admin/doctors/a2f1c6ce-1d82-4f6e-9c41-0b2d3a6f7e88/availability"},
		{http.MethodGet, "/api/v1/admin/appointments"},
		{http.MethodPost, "/api/v1/admin/appointments/a2f1c6ce-1d82-4f6e-9c41-0b2d3a6f7e88/cancel"},
		{http.MethodPost, "/api/v1/admin/appointments/a2f1c6ce-1d82-4f6e-9c41-0b2d3a6f7e88/complete"},
		{http.MethodGet, "/api/v1/admin/dashboard"},
		{http.MethodGet, "/api/v1/admin/audit-logs"},
		{http.MethodGet, "/api/v1/doctor/appointments"},
		{http.MethodPost, "/api/v1/doctor/appointments/a2f1c6ce-1d82-4f6e-9c41-0b2d3a6f7e88/cancel"},
		{http.MethodPost, "/api/v1/doctor/appointments/a2f1c6ce-1d82-4f6e-9c41-0b2d3a6f7e88/complete"},
		{http.MethodPatch, "/api/v1/doctor/availability"},
		{http.MethodGet, "/api/v1/doctor/dashboard"},
		{http.MethodPost, "/api/v1/patient/appointments"},
		{http.MethodGet, "/api/v1/patient/appointments"},
		{http.MethodPost, "/api/v1/patient/appointments/a2f1c6ce-1d82-4f6e-9c41-0b2d3a6f7e88/cancel"},
		{http.MethodGet, "/api/v1/patient/profile"},
		{http.MethodPut, "/api/v1/patient/profile"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, tt.path, nil)
			require.NoError(t, err)

			var match mux.RouteMatch
			assert.True(t, router.Match(req, &match), "expected a route for %s %s", tt.method, tt.path)
		})
	}
}

func TestRouterRejectsUnknownRoutes(t *testing.T) {
	router := setupTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodDelete, "/api/v1/admin/appointments/a2f1c6ce-1d82-4f6e-9c41-0b2d3a6f7e88"},
		{http.MethodPost, "/api/v1/doctor/doctors"},
		{http.MethodGet, "/api/v1/nope"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, tt.path, nil)
			require.NoError(t, err)

			var match mux.RouteMatch
			matched := router.Match(req, &match)
			if matched {
				// mux reports method mismatches as a match with an error
				assert.Error(t, match.MatchErr)
			}
		})
	}
}
