package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor represents doctor-specific profile data, including the booked-slot
// ledger that booking and cancellation mutate.
type Doctor struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Speciality  string    `gorm:"type:varchar(100);not null;index" json:"speciality"`
	Degree      string    `gorm:"type:varchar(100)" json:"degree,omitempty"`
	Experience  string    `gorm:"type:varchar(50)" json:"experience,omitempty"`
	About       string    `gorm:"type:text" json:"about,omitempty"`
	Fee         float64   `gorm:"type:numeric(10,2);not null" json:"fee"`
	Available   *bool     `gorm:"not null;default:true" json:"available"`
	SlotsBooked SlotMap   `gorm:"type:jsonb;not null;default:'{}'" json:"slots_booked"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// IsAvailable reports whether the doctor currently accepts bookings.
func (d *Doctor) IsAvailable() bool {
	return d.Available != nil && *d.Available
}
