package converter

import (
	"github.com/google/uuid"

	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:          appointment.ID,
		DoctorID:    appointment.DoctorID,
		PatientID:   appointment.PatientID,
		SlotDate:    appointment.SlotDate,
		SlotTime:    appointment.SlotTime,
		Amount:      appointment.Amount,
		Cancelled:   appointment.Cancelled,
		IsCompleted: appointment.IsCompleted,
		PatientName: appointment.Patient.FullName,
		CreatedAt:   appointment.CreatedAt,
		UpdatedAt:   appointment.UpdatedAt,
	}

	// Include doctor info if preloaded; the slot ledger stays internal
	if appointment.Doctor.UserID != uuid.Nil {
		doctorResp := DoctorToResponse(&appointment.Doctor)
		doctorResp.SlotsBooked = nil
		response.Doctor = doctorResp
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to slice of AppointmentResponse DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
