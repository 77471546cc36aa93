package converter

import (
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
)

// PatientProfileToResponse converts a PatientProfile entity to its DTO
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientProfileResponse {
	if profile == nil {
		return nil
	}

	response := &dto.PatientProfileResponse{
		UserID:      profile.UserID,
		PhoneNumber: profile.PhoneNumber,
		Gender:      profile.Gender,
		Address:     profile.Address,
	}
	if !profile.DateOfBirth.IsZero() {
		response.DateOfBirth = profile.DateOfBirth.Format("2006-01-02")
	}
	return response
}
