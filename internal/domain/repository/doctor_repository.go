package repository

import (
	"clinic-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error)
	// FindByUserIDForUpdate row-locks the doctor so concurrent bookings and
	// cancellations serialize their slots_booked writes.
	FindByUserIDForUpdate(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error)
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	// UpdateSlots persists only the slots_booked ledger.
	UpdateSlots(db *gorm.DB, userID uuid.UUID, slots entity.SlotMap) error
	SetAvailability(db *gorm.DB, userID uuid.UUID, available bool) (int64, error)
}
