package usecase

import (
	"context"
	"errors"

	"clinic-appointment-service/internal/converter"
	"clinic-appointment-service/internal/delivery/dto"
	"clinic-appointment-service/internal/delivery/http/middleware"
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"
	"clinic-appointment-service/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrDoctorEmailExists  = errors.New("email already exists")
	ErrDoctorRoleNotFound = errors.New("role not found")
	ErrInvalidFee         = errors.New("fee must be positive")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	ListPublicDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
	ChangeAvailability(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	UpdateSelfProfile(ctx context.Context, req *dto.DoctorUpdateSelfRequest) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

// CreateDoctor is the administrative action that brings a doctor into the
// system: auth user and profile in one transaction, empty slot ledger.
func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	if req.Fee <= 0 {
		return nil, ErrInvalidFee
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	available := true
	doctor := &entity.Doctor{
		Speciality:  req.Speciality,
		Degree:      req.Degree,
		Experience:  req.Experience,
		About:       req.About,
		Fee:         req.Fee,
		Available:   &available,
		SlotsBooked: entity.SlotMap{},
		User: entity.User{
			Email:    req.Email,
			Password: string(hashedPassword),
			FullName: req.FullName,
			RoleID:   entity.RoleIDDoctor,
		},
	}
	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		if isDuplicateKeyError(err, "email") {
			return nil, ErrDoctorEmailExists
		}
		if isForeignKeyError(err, "role") {
			return nil, ErrDoctorRoleNotFound
		}
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.Record(tx, &actorID, entity.AuditActionDoctorCreate,
		"doctor", doctor.UserID.String(),
		entity.JSON{"speciality": doctor.Speciality, "fee": doctor.Fee}); err != nil {
		// Don't fail the transaction for audit log errors
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

// ListPublicDoctors is the unauthenticated listing patients browse before
// booking. Same data as the admin listing minus the slot ledger detail.
func (u *doctorUsecase) ListPublicDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	responses := converter.DoctorsToResponses(doctors)
	for i := range responses {
		responses[i].SlotsBooked = nil
	}
	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(doctors),
	}, nil
}

// ChangeAvailability toggles whether the doctor accepts new bookings.
// Existing appointments are unaffected.
func (u *doctorUsecase) ChangeAvailability(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	next := !doctor.IsAvailable()
	if _, err := u.doctorRepo.SetAvailability(u.db.WithContext(ctx), doctorID, next); err != nil {
		u.log.Warnf("Failed to change availability for doctor %s: %+v", doctorID, err)
		return nil, err
	}
	doctor.Available = &next

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.Record(u.db.WithContext(ctx), &actorID, entity.AuditActionDoctorAvailability,
		"doctor", doctorID.String(), entity.JSON{"available": next}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return converter.DoctorToResponse(doctor), nil
}

// UpdateSelfProfile updates the doctor's own profile.
//
// Allowed fields: fee, about, availability. Speciality and credentials are
// admin-managed and not editable here.
func (u *doctorUsecase) UpdateSelfProfile(ctx context.Context, req *dto.DoctorUpdateSelfRequest) (*dto.DoctorResponse, error) {
	doctorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByUserID(tx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Fee != nil {
		if *req.Fee <= 0 {
			return nil, ErrInvalidFee
		}
		doctor.Fee = *req.Fee
	}
	if req.About != nil {
		doctor.About = *req.About
	}
	if req.Available != nil {
		doctor.Available = req.Available
	}

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor %s: %+v", doctorID, err)
		return nil, err
	}

	if err := u.auditService.Record(tx, &doctorID, entity.AuditActionDoctorUpdate,
		"doctor", doctorID.String(),
		entity.JSON{"fee": doctor.Fee, "available": doctor.IsAvailable()}); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}
