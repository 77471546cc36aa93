package repository

import (
	"clinic-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	// MarkCancelled flips cancelled only while the row is still uncancelled.
	// Returns affected rows: 1 = success, 0 = already cancelled (prevents
	// double slot release under racing cancels).
	MarkCancelled(db *gorm.DB, id uuid.UUID) (int64, error)
	// MarkCompleted flips is_completed only while the row is active.
	// Idempotent across overlapping expiry sweeps.
	MarkCompleted(db *gorm.DB, id uuid.UUID) (int64, error)
}
