package service

import (
	"context"
	"strconv"

	"health-tracker/internal/domain/entity"
	"health-tracker/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService appends audit trail rows inside the caller's transaction
type AuditService interface {
	LogCreate(ctx context.Context, tx *gorm.DB, userID uint, action string, entityName string, entityID uint, newValue interface{}) error
	LogUpdate(ctx context.Context, tx *gorm.DB, userID uint, action string, entityName string, entityID uint, oldValue, newValue interface{}) error
	LogDelete(ctx context.Context, tx *gorm.DB, userID uint, action string, entityName string, entityID uint, oldValue interface{}) error
	LogEvent(ctx context.Context, tx *gorm.DB, userID uint, action string, details entity.JSON) error
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

func (s *auditService) LogCreate(ctx context.Context, tx *gorm.DB, userID uint, action string, entityName string, entityID uint, newValue interface{}) error {
	return s.write(tx, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": strconv.FormatUint(uint64(entityID), 10),
		"old_value": nil,
		"new_value": newValue,
	})
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID uint, action string, entityName string, entityID uint, oldValue, newValue interface{}) error {
	return s.write(tx, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": strconv.FormatUint(uint64(entityID), 10),
		"old_value": oldValue,
		"new_value": newValue,
	})
}

func (s *auditService) LogDelete(ctx context.Context, tx *gorm.DB, userID uint, action string, entityName string, entityID uint, oldValue interface{}) error {
	return s.write(tx, userID, action, entity.JSON{
		"entity":    entityName,
		"entity_id": strconv.FormatUint(uint64(entityID), 10),
		"old_value": oldValue,
		"new_value": nil,
	})
}

// LogEvent records actions that do not map to a single entity, like login
func (s *auditService) LogEvent(ctx context.Context, tx *gorm.DB, userID uint, action string, details entity.JSON) error {
	return s.write(tx, userID, action, details)
}

func (s *auditService) write(tx *gorm.DB, userID uint, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		UserID:   &userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(tx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}
	return nil
}
