package usecase

import (
	"context"
	"time"

	"clinic-appointment-service/internal/converter"
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"
	"clinic-appointment-service/internal/schedule"
	"clinic-appointment-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// latestAppointmentsLimit caps the recent-activity list on both dashboards.
const latestAppointmentsLimit = 5

type DashboardUsecase interface {
	AdminSnapshot(ctx context.Context) (*dto.AdminDashboardResponse, error)
	DoctorSnapshot(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorDashboardResponse, error)
}

// dashboardUsecase is a read model: beyond the embedded expiry sweep it
// persists nothing.
type dashboardUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	loc             *time.Location
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	userRepo        repository.UserRepository
	reconciler      *service.ExpiryReconciler
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loc *time.Location,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	userRepo repository.UserRepository,
	reconciler *service.ExpiryReconciler,
) DashboardUsecase {
	return &dashboardUsecase{
		db:              db,
		log:             log,
		loc:             loc,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		userRepo:        userRepo,
		reconciler:      reconciler,
	}
}

// AdminSnapshot reconciles the full appointment set, then derives the
// clinic-wide counters and the recent-activity list.
func (u *dashboardUsecase) AdminSnapshot(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load appointments for dashboard: %+v", err)
		return nil, err
	}
	u.reconciler.Sweep(ctx, appointments)

	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to load doctors for dashboard: %+v", err)
		return nil, err
	}
	patients, err := u.userRepo.CountByRole(u.db.WithContext(ctx), entity.RoleIDPatient)
	if err != nil {
		u.log.Warnf("Failed to count patients for dashboard: %+v", err)
		return nil, err
	}

	now := time.Now().In(u.loc)
	counts := countAppointments(appointments, u.loc, now)

	return &dto.AdminDashboardResponse{
		Doctors:               len(doctors),
		Patients:              patients,
		Appointments:          counts.upcoming,
		TotalAppointments:     counts.total,
		CancelledAppointments: counts.cancelled,
		CompletedAppointments: counts.completed,
		LatestAppointments:    converter.AppointmentsToResponses(latestActive(appointments, latestAppointmentsLimit)),
	}, nil
}

// DoctorSnapshot is the per-doctor variant, adding earnings and the distinct
// patient count.
func (u *dashboardUsecase) DoctorSnapshot(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorDashboardResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to load appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}
	u.reconciler.Sweep(ctx, appointments)

	now := time.Now().In(u.loc)
	counts := countAppointments(appointments, u.loc, now)

	return &dto.DoctorDashboardResponse{
		Earnings:           totalEarnings(appointments),
		Appointments:       counts.upcoming,
		Patients:           distinctPatients(appointments),
		TotalAppointments:  counts.total,
		LatestAppointments: converter.AppointmentsToResponses(latestActive(appointments, latestAppointmentsLimit)),
	}, nil
}

type appointmentCounts struct {
	total     int
	upcoming  int
	cancelled int
	completed int
}

// countAppointments derives the dashboard counters. "Upcoming" means active
// and scheduled today or later by calendar date only, which is deliberately
// coarser than the expiry sweep's full instant comparison: a slot earlier
// today that the sweep has not yet promoted still counts as upcoming.
func countAppointments(appointments []entity.Appointment, loc *time.Location, now time.Time) appointmentCounts {
	counts := appointmentCounts{total: len(appointments)}
	for i := range appointments {
		a := &appointments[i]
		if a.Cancelled {
			counts.cancelled++
		}
		if a.IsCompleted {
			counts.completed++
		}
		if !a.IsActive() {
			continue
		}
		past, err := schedule.IsDatePast(a.SlotDate, loc, now)
		if err != nil || past {
			continue
		}
		counts.upcoming++
	}
	return counts
}

// latestActive returns up to limit non-cancelled appointments. The input is
// ordered newest-first by the repository, so the result is most-recent-first.
func latestActive(appointments []entity.Appointment, limit int) []entity.Appointment {
	latest := make([]entity.Appointment, 0, limit)
	for i := range appointments {
		if appointments[i].Cancelled {
			continue
		}
		latest = append(latest, appointments[i])
		if len(latest) == limit {
			break
		}
	}
	return latest
}

func totalEarnings(appointments []entity.Appointment) float64 {
	var sum float64
	for i := range appointments {
		if appointments[i].IsCompleted && !appointments[i].Cancelled {
			sum += appointments[i].Amount
		}
	}
	return sum
}

func distinctPatients(appointments []entity.Appointment) int {
	seen := make(map[uuid.UUID]struct{}, len(appointments))
	for i := range appointments {
		seen[appointments[i].PatientID] = struct{}{}
	}
	return len(seen)
}
