package service

import (
	"testing"
	"time"

	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShouldComplete(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, loc)

	tests := []struct {
		name        string
		appointment entity.Appointment
		want        bool
		wantErr     bool
	}{
		{
			name:        "expired active appointment",
			appointment: entity.Appointment{SlotDate: "1_1_2020", SlotTime: "9:00"},
			want:        true,
		},
		{
			name:        "slot earlier today",
			appointment: entity.Appointment{SlotDate: "15_6_2026", SlotTime: "9:00"},
			want:        true,
		},
		{
			name:        "future slot stays active",
			appointment: entity.Appointment{SlotDate: "16_6_2026", SlotTime: "9:00"},
			want:        false,
		},
		{
			name:        "boundary instant is not expired",
			appointment: entity.Appointment{SlotDate: "15_6_2026", SlotTime: "12:00"},
			want:        false,
		},
		{
			name:        "cancelled never transitions",
			appointment: entity.Appointment{SlotDate: "1_1_2020", SlotTime: "9:00", Cancelled: true},
			want:        false,
		},
		{
			name:        "completed never transitions again",
			appointment: entity.Appointment{SlotDate: "1_1_2020", SlotTime: "9:00", IsCompleted: true},
			want:        false,
		},
		{
			name:        "malformed date",
			appointment: entity.Appointment{SlotDate: "not_a_date", SlotTime: "9:00"},
			wantErr:     true,
		},
		{
			name:        "malformed time",
			appointment: entity.Appointment{SlotDate: "1_1_2020", SlotTime: "morning"},
			wantErr:     true,
		},
		{
			name:        "malformed but cancelled is skipped without error",
			appointment: entity.Appointment{SlotDate: "not_a_date", SlotTime: "morning", Cancelled: true},
			want:        false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ShouldComplete(&tt.appointment, loc, now)
			if tt.wantErr {
				require.Error(t, err)
				var malformed *schedule.MalformedError
				assert.ErrorAs(t, err, &malformed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShouldCompleteIsIdempotent(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, loc)

	appointment := entity.Appointment{SlotDate: "1_1_2020", SlotTime: "9:00"}

	expired, err := ShouldComplete(&appointment, loc, now)
	require.NoError(t, err)
	require.True(t, expired)

	// Once promoted, re-running the decision must be a no-op
	appointment.IsCompleted = true
	expired, err = ShouldComplete(&appointment, loc, now)
	require.NoError(t, err)
	assert.False(t, expired)
}

func TestShouldCompleteRespectsLocation(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)

	// 08:00 UTC on the 15th is 15:00 in Jakarta (UTC+7); a 12:00 Jakarta
	// slot that day is already past there while still ahead in UTC.
	now := time.Date(2026, time.June, 15, 8, 0, 0, 0, time.UTC)
	appointment := entity.Appointment{SlotDate: "15_6_2026", SlotTime: "12:00"}

	expired, err := ShouldComplete(&appointment, jakarta, now)
	require.NoError(t, err)
	assert.True(t, expired)

	expired, err = ShouldComplete(&appointment, time.UTC, now)
	require.NoError(t, err)
	assert.False(t, expired)
}
