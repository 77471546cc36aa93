package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID uuid.UUID `json:"doctor_id" validate:"required"`
	SlotDate string    `json:"slot_date" validate:"required"` // Format: D_M_YYYY
	SlotTime string    `json:"slot_time" validate:"required"` // Format: H:MM, 24-hour
}

// Response DTOs

type AppointmentResponse struct {
	ID          uuid.UUID       `json:"id"`
	DoctorID    uuid.UUID       `json:"doctor_id"`
	PatientID   uuid.UUID       `json:"patient_id"`
	SlotDate    string          `json:"slot_date"`
	SlotTime    string          `json:"slot_time"`
	Amount      float64         `json:"amount"`
	Cancelled   bool            `json:"cancelled"`
	IsCompleted bool            `json:"is_completed"`
	Doctor      *DoctorResponse `json:"doctor,omitempty"`
	PatientName string          `json:"patient_name,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
