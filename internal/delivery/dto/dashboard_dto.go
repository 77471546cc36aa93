package dto

// Response DTOs

type AdminDashboardResponse struct {
	Doctors               int                   `json:"doctors"`
	Patients              int64                 `json:"patients"`
	Appointments          int                   `json:"appointments"`
	TotalAppointments     int                   `json:"total_appointments"`
	CancelledAppointments int                   `json:"cancelled_appointments"`
	CompletedAppointments int                   `json:"completed_appointments"`
	LatestAppointments    []AppointmentResponse `json:"latest_appointments"`
}

type DoctorDashboardResponse struct {
	Earnings           float64               `json:"earnings"`
	Appointments       int                   `json:"appointments"`
	Patients           int                   `json:"patients"`
	TotalAppointments  int                   `json:"total_appointments"`
	LatestAppointments []AppointmentResponse `json:"latest_appointments"`
}
