package repository

import (
	"errors"

	"health-tracker/internal/domain/entity"
	domainRepo "health-tracker/internal/domain/repository"

	"gorm.io/gorm"
)

type shareRepository struct{}

func NewShareRepository() domainRepo.ShareRepository {
	return &shareRepository{}
}

func (r *shareRepository) Create(db *gorm.DB, share *entity.Share) error {
	return db.Create(share).Error
}

func (r *shareRepository) Update(db *gorm.DB, share *entity.Share) error {
	return db.Save(share).Error
}

func (r *shareRepository) Delete(db *gorm.DB, share *entity.Share) error {
	return db.Delete(share).Error
}

func (r *shareRepository) FindByID(db *gorm.DB, id uint) (*entity.Share, error) {
	var share entity.Share
	err := db.Where("id = ?", id).First(&share).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &share, nil
}

func (r *shareRepository) FindAll(db *gorm.DB, filter domainRepo.ShareFilter, page entity.Page) ([]entity.Share, int64, error) {
	page = page.Normalize()
	query := db.Model(&entity.Share{})
	if filter.ContentType != "" {
		query = query.Where("content_type = ?", filter.ContentType)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID).
			Where("(visibility <> ? OR user_id = ?)", entity.VisibilityPrivate, filter.ViewerID)
	} else {
		query = query.Where("(visibility = ? OR user_id = ?)", entity.VisibilityPublic, filter.ViewerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var shares []entity.Share
	err := query.Order("created_at DESC").Order("id DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&shares).Error
	if err != nil {
		return nil, 0, err
	}
	return shares, total, nil
}

func (r *shareRepository) Stats(db *gorm.DB, shareID, viewerID uint) (entity.ShareStats, error) {
	var stats entity.ShareStats
	if err := db.Model(&entity.Like{}).Where("share_id = ?", shareID).Count(&stats.LikeCount).Error; err != nil {
		return stats, err
	}
	if err := db.Model(&entity.Comment{}).Where("share_id = ?", shareID).Count(&stats.CommentCount).Error; err != nil {
		return stats, err
	}

	var liked int64
	err := db.Model(&entity.Like{}).Where("share_id = ? AND user_id = ?", shareID, viewerID).Count(&liked).Error
	stats.IsLiked = liked > 0
	return stats, err
}

type likeRepository struct{}

func NewLikeRepository() domainRepo.LikeRepository {
	return &likeRepository{}
}

func (r *likeRepository) Create(db *gorm.DB, like *entity.Like) error {
	return db.Create(like).Error
}

func (r *likeRepository) Delete(db *gorm.DB, like *entity.Like) error {
	return db.Delete(like).Error
}

func (r *likeRepository) Find(db *gorm.DB, userID, shareID uint) (*entity.Like, error) {
	var like entity.Like
	err := db.Where("user_id = ? AND share_id = ?", userID, shareID).First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *likeRepository) FindByShare(db *gorm.DB, shareID uint, page entity.Page) ([]entity.Like, int64, error) {
	page = page.Normalize()
	query := db.Model(&entity.Like{}).Where("share_id = ?", shareID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var likes []entity.Like
	err := query.Order("created_at DESC").Order("id DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&likes).Error
	if err != nil {
		return nil, 0, err
	}
	return likes, total, nil
}

func (r *likeRepository) DeleteByShare(db *gorm.DB, shareID uint) error {
	return db.Where("share_id = ?", shareID).Delete(&entity.Like{}).Error
}

type commentRepository struct{}

func NewCommentRepository() domainRepo.CommentRepository {
	return &commentRepository{}
}

func (r *commentRepository) Create(db *gorm.DB, comment *entity.Comment) error {
	return db.Omit("Replies").Create(comment).Error
}

func (r *commentRepository) Update(db *gorm.DB, comment *entity.Comment) error {
	return db.Omit("Replies").Save(comment).Error
}

func (r *commentRepository) Delete(db *gorm.DB, comment *entity.Comment) error {
	return db.Delete(comment).Error
}

func (r *commentRepository) FindByID(db *gorm.DB, id uint) (*entity.Comment, error) {
	var comment entity.Comment
	err := db.Where("id = ?", id).First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) FindTopLevel(db *gorm.DB, shareID uint, page entity.Page) ([]entity.Comment, int64, error) {
	page = page.Normalize()
	query := db.Model(&entity.Comment{}).Where("share_id = ? AND parent_id IS NULL", shareID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var comments []entity.Comment
	err := query.Preload("Replies", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC").Order("id ASC")
	}).
		Order("created_at DESC").Order("id DESC").
		Offset(page.Offset()).Limit(page.Limit).
		Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *commentRepository) DeleteReplies(db *gorm.DB, parentID uint) error {
	return db.Where("parent_id = ?", parentID).Delete(&entity.Comment{}).Error
}

func (r *commentRepository) DeleteByShare(db *gorm.DB, shareID uint) error {
	return db.Where("share_id = ?", shareID).Delete(&entity.Comment{}).Error
}
