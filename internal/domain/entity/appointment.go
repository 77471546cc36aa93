package entity

import (
	"time"

	"github.com/google/uuid"
)

// Appointment represents a booked doctor slot. Appointments are never
// deleted; they terminate through exactly one of cancel, complete, or the
// expiry sweep promoting them to completed.
type Appointment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	DoctorID    uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	PatientID   uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	SlotDate    string    `gorm:"type:varchar(20);not null" json:"slot_date"`
	SlotTime    string    `gorm:"type:varchar(10);not null" json:"slot_time"`
	Amount      float64   `gorm:"type:numeric(10,2);not null" json:"amount"`
	Cancelled   bool      `gorm:"not null;default:false;index" json:"cancelled"`
	IsCompleted bool      `gorm:"not null;default:false;index" json:"is_completed"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor  Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Patient User   `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsActive reports whether the appointment is neither cancelled nor completed.
func (a *Appointment) IsActive() bool {
	return !a.Cancelled && !a.IsCompleted
}
