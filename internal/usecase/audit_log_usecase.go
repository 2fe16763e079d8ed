package usecase

import (
	"context"
	"errors"

	"health-tracker/internal/converter"
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
	"health-tracker/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAuditLogNotFound = errors.New("audit log not found")
)

// AuditLogUsecase exposes a user's own activity trail
type AuditLogUsecase interface {
	ListByUser(ctx context.Context, userID uint, page entity.Page) ([]dto.AuditLogResponse, int64, error)
	Get(ctx context.Context, userID uint, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

func (u *auditLogUsecase) ListByUser(ctx context.Context, userID uint, page entity.Page) ([]dto.AuditLogResponse, int64, error) {
	logs, total, err := u.auditLogRepo.FindByUserID(u.db.WithContext(ctx), userID, page.Normalize())
	if err != nil {
		u.log.Warnf("Failed to find audit logs: %+v", err)
		return nil, 0, err
	}
	return converter.AuditLogsToResponses(logs), total, nil
}

// Get hides entries of other users behind not found
func (u *auditLogUsecase) Get(ctx context.Context, userID uint, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find audit log: %+v", err)
		return nil, err
	}
	if auditLog == nil || auditLog.UserID == nil || *auditLog.UserID != userID {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
