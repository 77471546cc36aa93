package converter

import (
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:          doctor.UserID,
		Email:       doctor.User.Email,
		FullName:    doctor.User.FullName,
		Speciality:  doctor.Speciality,
		Degree:      doctor.Degree,
		Experience:  doctor.Experience,
		About:       doctor.About,
		Fee:         doctor.Fee,
		Available:   doctor.IsAvailable(),
		SlotsBooked: doctor.SlotsBooked,
		CreatedAt:   doctor.CreatedAt,
		UpdatedAt:   doctor.UpdatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		resp := DoctorToResponse(&doctor)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
