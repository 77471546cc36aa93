package service

import (
	"context"
	"time"

	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"
	"clinic-appointment-service/internal/schedule"
	"clinic-appointment-service/pkg/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// MalformedRecord identifies an appointment whose slot date/time could not be
// parsed during a sweep. The record is reported, not silently skipped.
type MalformedRecord struct {
	AppointmentID uuid.UUID
	Err           error
}

// SweepResult summarizes one expiry sweep over a set of appointments.
type SweepResult struct {
	Completed []uuid.UUID
	Malformed []MalformedRecord
}

// ShouldComplete is the pure expiry decision: an active appointment whose slot
// instant is strictly before now must be promoted to completed. Cancelled or
// already-completed appointments never transition, which makes re-running the
// decision a no-op.
func ShouldComplete(appointment *entity.Appointment, loc *time.Location, now time.Time) (bool, error) {
	if !appointment.IsActive() {
		return false, nil
	}
	return schedule.IsSlotPast(appointment.SlotDate, appointment.SlotTime, loc, now)
}

// ExpiryReconciler sweeps appointment sets and promotes expired active
// appointments to completed. It runs synchronously inside listing and
// dashboard reads; there is no background scheduler.
//
// Overlapping sweeps are tolerated: each transition is a compare-and-set on
// (cancelled=false, is_completed=false), so the promotion applies at most once
// per record regardless of how many sweeps race over it.
type ExpiryReconciler struct {
	db              *gorm.DB
	log             *logrus.Logger
	loc             *time.Location
	appointmentRepo repository.AppointmentRepository
	metrics         *metrics.Metrics
}

func NewExpiryReconciler(
	db *gorm.DB,
	log *logrus.Logger,
	loc *time.Location,
	appointmentRepo repository.AppointmentRepository,
	m *metrics.Metrics,
) *ExpiryReconciler {
	return &ExpiryReconciler{
		db:              db,
		log:             log,
		loc:             loc,
		appointmentRepo: appointmentRepo,
		metrics:         m,
	}
}

// Sweep applies the expiry decision to every appointment in the slice,
// persisting promotions and updating the in-memory records so callers see a
// fully reconciled snapshot. Per-record failures (malformed schedule strings,
// persistence errors) are isolated and never abort the rest of the batch.
func (r *ExpiryReconciler) Sweep(ctx context.Context, appointments []entity.Appointment) SweepResult {
	start := time.Now()
	now := time.Now().In(r.loc)
	result := SweepResult{}

	for i := range appointments {
		appointment := &appointments[i]

		expired, err := ShouldComplete(appointment, r.loc, now)
		if err != nil {
			r.log.Warnf("Malformed schedule on appointment %s (date=%q time=%q): %+v",
				appointment.ID, appointment.SlotDate, appointment.SlotTime, err)
			r.metrics.MalformedSchedules.Inc()
			result.Malformed = append(result.Malformed, MalformedRecord{
				AppointmentID: appointment.ID,
				Err:           err,
			})
			continue
		}
		if !expired {
			continue
		}

		affected, err := r.appointmentRepo.MarkCompleted(r.db.WithContext(ctx), appointment.ID)
		if err != nil {
			r.log.Warnf("Failed to auto-complete appointment %s: %+v", appointment.ID, err)
			r.metrics.ErrorsCount.WithLabelValues("expiry_sweep").Inc()
			continue
		}

		// affected == 0 means another sweep or a manual complete/cancel won
		// the race; the stored state is already terminal, so leave the
		// in-memory copy alone rather than guess which transition won.
		if affected > 0 {
			appointment.IsCompleted = true
			r.metrics.AppointmentsExpired.Inc()
			result.Completed = append(result.Completed, appointment.ID)
		}
	}

	if len(result.Completed) > 0 {
		r.log.Infof("Expiry sweep promoted %d appointment(s) to completed", len(result.Completed))
	}
	r.metrics.SweepDuration.Observe(time.Since(start).Seconds())

	return result
}
