package usecase

import (
	"context"
	"errors"
	"time"

	"clinic-appointment-service/internal/converter"
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/delivery/http/middleware"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"
	"clinic-appointment-service/internal/schedule"
	"clinic-appointment-service/internal/service"
	"clinic-appointment-service/pkg/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound         = errors.New("appointment not found")
	ErrAppointmentAlreadyCancelled = errors.New("appointment is already cancelled")
	ErrAppointmentCancelled        = errors.New("cannot complete a cancelled appointment")
	ErrAppointmentNotOwned         = errors.New("appointment does not belong to you")
	ErrDoctorNotAvailable          = errors.New("doctor is not available")
	ErrInvalidSlot                 = errors.New("invalid slot date or time")
	ErrPastSlot                    = errors.New("cannot book a past slot")
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error
	CompleteAppointment(ctx context.Context, appointmentID uuid.UUID) error
	ListAll(ctx context.Context) (*dto.AppointmentListResponse, error)
	ListForDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error)
	ListForPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	loc             *time.Location
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorRepository
	reconciler      *service.ExpiryReconciler
	auditService    service.AuditService
	metrics         *metrics.Metrics
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	loc *time.Location,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	reconciler *service.ExpiryReconciler,
	auditService service.AuditService,
	m *metrics.Metrics,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		loc:             loc,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		reconciler:      reconciler,
		auditService:    auditService,
		metrics:         m,
	}
}

// BookAppointment reserves a doctor slot and creates the appointment record
// in one transaction. The doctor row is locked for the duration so two
// patients cannot reserve the same slot.
func (u *appointmentUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	patientID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	instant, err := schedule.SlotInstant(req.SlotDate, req.SlotTime, u.loc)
	if err != nil {
		return nil, ErrInvalidSlot
	}
	if instant.Before(time.Now().In(u.loc)) {
		return nil, ErrPastSlot
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByUserIDForUpdate(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	if !doctor.IsAvailable() {
		return nil, ErrDoctorNotAvailable
	}

	if doctor.SlotsBooked == nil {
		doctor.SlotsBooked = entity.SlotMap{}
	}
	if err := doctor.SlotsBooked.Reserve(req.SlotDate, req.SlotTime); err != nil {
		return nil, err
	}
	if err := u.doctorRepo.UpdateSlots(tx, doctor.UserID, doctor.SlotsBooked); err != nil {
		u.log.Warnf("Failed to update slot ledger for doctor %s: %+v", doctor.UserID, err)
		return nil, err
	}

	appointment := &entity.Appointment{
		DoctorID:  doctor.UserID,
		PatientID: patientID,
		SlotDate:  req.SlotDate,
		SlotTime:  req.SlotTime,
		Amount:    doctor.Fee,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &patientID, entity.AuditActionAppointmentBook,
		"appointment", appointment.ID.String(),
		entity.JSON{"doctor_id": doctor.UserID.String(), "slot_date": req.SlotDate, "slot_time": req.SlotTime}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.metrics.AppointmentsBooked.Inc()
	u.log.Infof("Appointment booked: id=%s, doctor=%s, slot=%s %s",
		appointment.ID, doctor.UserID, req.SlotDate, req.SlotTime)

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(full), nil
}

// CancelAppointment marks the appointment cancelled and releases its slot
// from the doctor's ledger. The cancelled flag is flipped with a
// compare-and-set, so of two racing cancels exactly one wins and the slot
// entry is removed exactly once; the loser gets ErrAppointmentAlreadyCancelled.
func (u *appointmentUsecase) CancelAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	actorID, err := u.authorizeActor(ctx, appointment)
	if err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	affected, err := u.appointmentRepo.MarkCancelled(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentAlreadyCancelled
	}

	doctor, err := u.doctorRepo.FindByUserIDForUpdate(tx, appointment.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", appointment.DoctorID, err)
		return err
	}
	if doctor != nil {
		doctor.SlotsBooked.Release(appointment.SlotDate, appointment.SlotTime)
		if err := u.doctorRepo.UpdateSlots(tx, doctor.UserID, doctor.SlotsBooked); err != nil {
			u.log.Warnf("Failed to release slot for doctor %s: %+v", doctor.UserID, err)
			return err
		}
	}

	if err := u.auditService.Record(tx, &actorID, entity.AuditActionAppointmentCancel,
		"appointment", appointmentID.String(),
		entity.JSON{"slot_date": appointment.SlotDate, "slot_time": appointment.SlotTime}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.metrics.AppointmentsCancelled.Inc()
	u.log.Infof("Appointment cancelled: id=%s, doctor=%s", appointmentID, appointment.DoctorID)
	return nil
}

// CompleteAppointment marks an active appointment completed. Completing a
// cancelled appointment fails; completing a completed one is an idempotent
// success. The slot ledger is untouched: only cancellation releases a slot.
func (u *appointmentUsecase) CompleteAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}
	if appointment.Cancelled {
		return ErrAppointmentCancelled
	}

	actorID, err := u.authorizeActor(ctx, appointment)
	if err != nil {
		return err
	}
	if appointment.IsCompleted {
		return nil
	}

	affected, err := u.appointmentRepo.MarkCompleted(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to complete appointment %s: %+v", appointmentID, err)
		return err
	}
	if affected == 0 {
		// Lost a race: re-read to tell cancel apart from an earlier complete.
		fresh, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
		if err != nil {
			return err
		}
		if fresh != nil && fresh.Cancelled {
			return ErrAppointmentCancelled
		}
		return nil
	}

	if err := u.auditService.Record(u.db.WithContext(ctx), &actorID, entity.AuditActionAppointmentDone,
		"appointment", appointmentID.String(), nil); err != nil {
		u.log.Warnf("Failed to audit completion of %s: %+v", appointmentID, err)
	}

	u.metrics.AppointmentsCompleted.Inc()
	u.log.Infof("Appointment completed: id=%s", appointmentID)
	return nil
}

// ListAll returns every appointment, reconciled.
func (u *appointmentUsecase) ListAll(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return u.reconciled(ctx, appointments), nil
}

// ListForDoctor returns the doctor's appointments, reconciled.
func (u *appointmentUsecase) ListForDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for doctor %s: %+v", doctorID, err)
		return nil, err
	}
	return u.reconciled(ctx, appointments), nil
}

// ListForPatient returns the patient's appointments, reconciled.
func (u *appointmentUsecase) ListForPatient(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list appointments for patient %s: %+v", patientID, err)
		return nil, err
	}
	return u.reconciled(ctx, appointments), nil
}

func (u *appointmentUsecase) reconciled(ctx context.Context, appointments []entity.Appointment) *dto.AppointmentListResponse {
	u.reconciler.Sweep(ctx, appointments)
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}
}

// authorizeActor checks that the caller may mutate the appointment: admins
// always, doctors and patients only on their own records.
func (u *appointmentUsecase) authorizeActor(ctx context.Context, appointment *entity.Appointment) (uuid.UUID, error) {
	actorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return uuid.Nil, errors.New("user not found in context")
	}
	roleID, ok := middleware.GetRoleIDFromContext(ctx)
	if !ok {
		return uuid.Nil, errors.New("role not found in context")
	}

	switch roleID {
	case entity.RoleIDAdmin:
		return actorID, nil
	case entity.RoleIDDoctor:
		if appointment.DoctorID != actorID {
			return uuid.Nil, ErrAppointmentNotOwned
		}
	case entity.RoleIDPatient:
		if appointment.PatientID != actorID {
			return uuid.Nil, ErrAppointmentNotOwned
		}
	default:
		return uuid.Nil, ErrAppointmentNotOwned
	}
	return actorID, nil
}
