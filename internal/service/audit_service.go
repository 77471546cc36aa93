package service

import (
	"clinic-appointment-service/internal/domain/entity"
	"clinic-appointment-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService records who did what to which appointment or doctor. Failures
// are logged and swallowed by callers; the audit trail never blocks the
// operation it describes.
type AuditService interface {
	Record(tx *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, detail interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

// Record writes a single audit entry inside the caller's transaction.
func (s *auditService) Record(tx *gorm.DB, actorID *uuid.UUID, action string, entityName string, entityID string, detail interface{}) error {
	metadata := entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"detail":    detail,
	}

	auditLog := &entity.AuditLog{
		UserID:   actorID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}
