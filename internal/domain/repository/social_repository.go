package repository

import (
	"health-tracker/internal/domain/entity"

	"gorm.io/gorm"
)

// ShareFilter narrows share listings. With UserID unset only public shares
// and the viewer's own shares are returned.
type ShareFilter struct {
	ViewerID    uint
	ContentType string
	UserID      *uint
}

type ShareRepository interface {
	Create(db *gorm.DB, share *entity.Share) error
	Update(db *gorm.DB, share *entity.Share) error
	Delete(db *gorm.DB, share *entity.Share) error
	FindByID(db *gorm.DB, id uint) (*entity.Share, error)
	FindAll(db *gorm.DB, filter ShareFilter, page entity.Page) ([]entity.Share, int64, error)
	Stats(db *gorm.DB, shareID, viewerID uint) (entity.ShareStats, error)
}

type LikeRepository interface {
	Create(db *gorm.DB, like *entity.Like) error
	Delete(db *gorm.DB, like *entity.Like) error
	Find(db *gorm.DB, userID, shareID uint) (*entity.Like, error)
	FindByShare(db *gorm.DB, shareID uint, page entity.Page) ([]entity.Like, int64, error)
	DeleteByShare(db *gorm.DB, shareID uint) error
}

type CommentRepository interface {
	Create(db *gorm.DB, comment *entity.Comment) error
	Update(db *gorm.DB, comment *entity.Comment) error
	Delete(db *gorm.DB, comment *entity.Comment) error
	FindByID(db *gorm.DB, id uint) (*entity.Comment, error)
	// FindTopLevel returns root comments of a share, newest first, with their replies
	FindTopLevel(db *gorm.DB, shareID uint, page entity.Page) ([]entity.Comment, int64, error)
	DeleteReplies(db *gorm.DB, parentID uint) error
	DeleteByShare(db *gorm.DB, shareID uint) error
}

// ContentRepository answers whether a soft-referenced piece of content exists
type ContentRepository interface {
	Exists(db *gorm.DB, ref entity.SoftRef) (bool, error)
}
