package dto

import (
	"time"

	"clinic-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
)

// Request DTOs

type CreateDoctorRequest struct {
	Email      string  `json:"email" validate:"required,email"`
	Password   string  `json:"password" validate:"required,min=8"`
	FullName   string  `json:"full_name" validate:"required,min=2"`
	Speciality string  `json:"speciality" validate:"required"`
	Degree     string  `json:"degree" validate:"omitempty"`
	Experience string  `json:"experience" validate:"omitempty"`
	About      string  `json:"about" validate:"omitempty"`
	Fee        float64 `json:"fee" validate:"required,gt=0"`
}

type DoctorUpdateSelfRequest struct {
	Fee       *float64 `json:"fee" validate:"omitempty,gt=0"`
	About     *string  `json:"about" validate:"omitempty"`
	Available *bool    `json:"available" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID          uuid.UUID      `json:"id"`
	Email       string         `json:"email,omitempty"`
	FullName    string         `json:"full_name"`
	Speciality  string         `json:"speciality"`
	Degree      string         `json:"degree,omitempty"`
	Experience  string         `json:"experience,omitempty"`
	About       string         `json:"about,omitempty"`
	Fee         float64        `json:"fee"`
	Available   bool           `json:"available"`
	SlotsBooked entity.SlotMap `json:"slots_booked,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
