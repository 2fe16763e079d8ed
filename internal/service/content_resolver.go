package service

import (
	"context"

	"health-tracker/internal/domain/entity"
	"health-tracker/internal/domain/repository"
	"health-tracker/internal/observability"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ContentResolver decides whether a share's soft reference still points at content
type ContentResolver interface {
	IsValid(ctx context.Context, db *gorm.DB, ref entity.SoftRef) bool
}

type contentResolver struct {
	log         *logrus.Logger
	contentRepo repository.ContentRepository
	bypass      bool
}

// NewContentResolver returns a resolver. With bypass set every known content
// type is accepted without touching the database.
func NewContentResolver(log *logrus.Logger, contentRepo repository.ContentRepository, bypass bool) ContentResolver {
	return &contentResolver{
		log:         log,
		contentRepo: contentRepo,
		bypass:      bypass,
	}
}

// IsValid never returns an error: lookup failures count as missing content
func (r *contentResolver) IsValid(ctx context.Context, db *gorm.DB, ref entity.SoftRef) bool {
	if !entity.IsSharable(ref.Kind) {
		observability.RecordShareRejected(ref.Kind, "unknown_type")
		return false
	}
	if r.bypass {
		r.log.Debugf("Content validation bypassed for %s", ref)
		return true
	}

	found, err := r.contentRepo.Exists(db.WithContext(ctx), ref)
	if err != nil {
		r.log.Warnf("Failed to resolve content %s: %+v", ref, err)
		observability.RecordShareRejected(ref.Kind, "lookup_error")
		return false
	}
	if !found {
		observability.RecordShareRejected(ref.Kind, "missing")
	}
	return found
}
