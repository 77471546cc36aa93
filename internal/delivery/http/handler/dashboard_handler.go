package handler

import (
	"net/http"

	"clinic-appointment-service/internal/delivery/http/middleware"
	"clinic-appointment-service/internal/usecase"
	"clinic-appointment-service/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

// Admin returns platform-wide counters and the latest active appointments.
func (h *DashboardHandler) Admin(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.dashboardUsecase.AdminSnapshot(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", snapshot)
}

// Doctor returns the authenticated doctor's earnings and appointment counters.
func (h *DashboardHandler) Doctor(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	snapshot, err := h.dashboardUsecase.DoctorSnapshot(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", snapshot)
}
