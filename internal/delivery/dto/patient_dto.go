package dto

import "github.com/google/uuid"

// Request DTOs

type PatientUpdateSelfRequest struct {
	PhoneNumber *string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Address     *string `json:"address" validate:"omitempty"`
}

// Response DTOs

type PatientProfileResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	Address     string    `json:"address,omitempty"`
}
