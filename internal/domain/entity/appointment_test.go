package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentIsActive(t *testing.T) {
	tests := []struct {
		name        string
		cancelled   bool
		isCompleted bool
		want        bool
	}{
		{name: "open appointment", cancelled: false, isCompleted: false, want: true},
		{name: "cancelled", cancelled: true, isCompleted: false, want: false},
		{name: "completed", cancelled: false, isCompleted: true, want: false},
		{name: "cancelled and completed", cancelled: true, isCompleted: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Cancelled: tt.cancelled, IsCompleted: tt.isCompleted}
			assert.Equal(t, tt.want, a.IsActive())
		})
	}
}
