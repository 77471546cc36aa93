package usecase

import (
	"testing"
	"time"

	"clinic-appointment-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCountAppointments(t *testing.T) {
	loc := time.UTC
	now := time.Date(2026, time.June, 15, 12, 0, 0, 0, loc)

	appointments := []entity.Appointment{
		{SlotDate: "16_6_2026", SlotTime: "9:00"},                     // upcoming
		{SlotDate: "15_6_2026", SlotTime: "9:00"},                     // today counts as upcoming (date-only)
		{SlotDate: "14_6_2026", SlotTime: "9:00"},                     // past date, not upcoming
		{SlotDate: "16_6_2026", SlotTime: "9:00", Cancelled: true},    // cancelled
		{SlotDate: "1_1_2020", SlotTime: "9:00", IsCompleted: true},   // completed
		{SlotDate: "broken", SlotTime: "9:00"},                        // malformed, excluded from upcoming
	}

	counts := countAppointments(appointments, loc, now)

	assert.Equal(t, 6, counts.total)
	assert.Equal(t, 1, counts.cancelled)
	assert.Equal(t, 1, counts.completed)
	assert.Equal(t, 2, counts.upcoming)
}

func TestLatestActive(t *testing.T) {
	// Repository order is newest first
	appointments := []entity.Appointment{
		{SlotDate: "7_7_2026", SlotTime: "9:00"},
		{SlotDate: "6_7_2026", SlotTime: "9:00", Cancelled: true},
		{SlotDate: "5_7_2026", SlotTime: "9:00"},
		{SlotDate: "4_7_2026", SlotTime: "9:00", IsCompleted: true},
		{SlotDate: "3_7_2026", SlotTime: "9:00"},
	}

	latest := latestActive(appointments, 3)

	// Cancelled entries are skipped, completed ones kept, order preserved
	assert.Len(t, latest, 3)
	assert.Equal(t, "7_7_2026", latest[0].SlotDate)
	assert.Equal(t, "5_7_2026", latest[1].SlotDate)
	assert.Equal(t, "4_7_2026", latest[2].SlotDate)
}

func TestLatestActiveShortInput(t *testing.T) {
	appointments := []entity.Appointment{
		{SlotDate: "7_7_2026", SlotTime: "9:00"},
	}

	assert.Len(t, latestActive(appointments, 5), 1)
	assert.Empty(t, latestActive(nil, 5))
}

func TestTotalEarnings(t *testing.T) {
	appointments := []entity.Appointment{
		{Amount: 100, IsCompleted: true},
		{Amount: 50, IsCompleted: true},
		{Amount: 75},                                  // active, not yet earned
		{Amount: 200, Cancelled: true},                // cancelled, never earned
		{Amount: 30, IsCompleted: true, Cancelled: true}, // cancelled wins over completed
	}

	assert.Equal(t, 150.0, totalEarnings(appointments))
	assert.Zero(t, totalEarnings(nil))
}

func TestDistinctPatients(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	appointments := []entity.Appointment{
		{PatientID: alice},
		{PatientID: alice},
		{PatientID: bob},
	}

	assert.Equal(t, 2, distinctPatients(appointments))
	assert.Zero(t, distinctPatients(nil))
}
