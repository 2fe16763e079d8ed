package usecase

import (
	"context"
	"errors"
	"strings"

	"health-tracker/internal/converter"
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
	"health-tracker/internal/domain/repository"
	"health-tracker/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidContentType  = errors.New("content type cannot be shared")
	ErrContentNotFound     = errors.New("shared content not found")
	ErrShareNotFound       = errors.New("share not found")
	ErrShareForbidden      = errors.New("share belongs to another user")
	ErrLikeNotFound        = errors.New("like not found")
	ErrCommentNotFound     = errors.New("comment not found")
	ErrCommentForbidden    = errors.New("comment belongs to another user")
	ErrEmptyComment        = errors.New("comment content is empty")
	ErrInvalidParentComment = errors.New("parent comment must be a top-level comment on the same share")
)

type SocialUsecase interface {
	CreateShare(ctx context.Context, userID uint, req *dto.CreateShareRequest) (*dto.ShareResponse, error)
	GetShare(ctx context.Context, userID, shareID uint) (*dto.ShareResponse, error)
	ListShares(ctx context.Context, userID uint, filter repository.ShareFilter, page entity.Page) ([]dto.ShareResponse, int64, error)
	UpdateShare(ctx context.Context, userID, shareID uint, req *dto.UpdateShareRequest) (*dto.ShareResponse, error)
	DeleteShare(ctx context.Context, userID, shareID uint) error

	Like(ctx context.Context, userID, shareID uint) (*dto.LikeResponse, error)
	Unlike(ctx context.Context, userID, shareID uint) error
	ListLikes(ctx context.Context, userID, shareID uint, page entity.Page) ([]dto.LikeResponse, int64, error)

	AddComment(ctx context.Context, userID, shareID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	UpdateComment(ctx context.Context, userID, commentID uint, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, userID, commentID uint) error
	ListComments(ctx context.Context, userID, shareID uint, page entity.Page) ([]dto.CommentResponse, int64, error)
}

type socialUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	shareRepo       repository.ShareRepository
	likeRepo        repository.LikeRepository
	commentRepo     repository.CommentRepository
	contentResolver service.ContentResolver
	auditService    service.AuditService
}

func NewSocialUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	shareRepo repository.ShareRepository,
	likeRepo repository.LikeRepository,
	commentRepo repository.CommentRepository,
	contentResolver service.ContentResolver,
	auditService service.AuditService,
) SocialUsecase {
	return &socialUsecase{
		db:              db,
		log:             log,
		shareRepo:       shareRepo,
		likeRepo:        likeRepo,
		commentRepo:     commentRepo,
		contentResolver: contentResolver,
		auditService:    auditService,
	}
}

func (u *socialUsecase) CreateShare(ctx context.Context, userID uint, req *dto.CreateShareRequest) (*dto.ShareResponse, error) {
	if !entity.IsSharable(req.ContentType) {
		return nil, ErrInvalidContentType
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	share := &entity.Share{
		UserID:      userID,
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
		Description: req.Description,
		Visibility:  req.Visibility,
	}
	if share.Visibility == "" {
		share.Visibility = entity.VisibilityPublic
	}

	if !u.contentResolver.IsValid(ctx, tx, share.Content()) {
		return nil, ErrContentNotFound
	}

	if err := u.shareRepo.Create(tx, share); err != nil {
		u.log.Warnf("Failed to create share: %+v", err)
		return nil, err
	}

	response := converter.ShareToResponse(share, entity.ShareStats{})
	if err := u.auditService.LogCreate(ctx, tx, userID, entity.AuditActionShareCreate, "share", share.ID, response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

// visibleShare loads a share the viewer is allowed to read
func (u *socialUsecase) visibleShare(db *gorm.DB, userID, shareID uint) (*entity.Share, error) {
	share, err := u.shareRepo.FindByID(db, shareID)
	if err != nil {
		u.log.Warnf("Failed to find share: %+v", err)
		return nil, err
	}
	if share == nil {
		return nil, ErrShareNotFound
	}
	if !share.VisibleTo(userID) {
		return nil, ErrShareForbidden
	}
	return share, nil
}

// ownedShare loads a share the caller owns
func (u *socialUsecase) ownedShare(db *gorm.DB, userID, shareID uint) (*entity.Share, error) {
	share, err := u.shareRepo.FindByID(db, shareID)
	if err != nil {
		u.log.Warnf("Failed to find share: %+v", err)
		return nil, err
	}
	if share == nil {
		return nil, ErrShareNotFound
	}
	if share.UserID != userID {
		return nil, ErrShareForbidden
	}
	return share, nil
}

func (u *socialUsecase) GetShare(ctx context.Context, userID, shareID uint) (*dto.ShareResponse, error) {
	db := u.db.WithContext(ctx)
	share, err := u.visibleShare(db, userID, shareID)
	if err != nil {
		return nil, err
	}

	stats, err := u.shareRepo.Stats(db, share.ID, userID)
	if err != nil {
		u.log.Warnf("Failed to count share stats: %+v", err)
		return nil, err
	}
	return converter.ShareToResponse(share, stats), nil
}

func (u *socialUsecase) ListShares(ctx context.Context, userID uint, filter repository.ShareFilter, page entity.Page) ([]dto.ShareResponse, int64, error) {
	db := u.db.WithContext(ctx)
	filter.ViewerID = userID

	shares, total, err := u.shareRepo.FindAll(db, filter, page)
	if err != nil {
		u.log.Warnf("Failed to find shares: %+v", err)
		return nil, 0, err
	}

	responses := make([]dto.ShareResponse, 0, len(shares))
	for i := range shares {
		stats, err := u.shareRepo.Stats(db, shares[i].ID, userID)
		if err != nil {
			u.log.Warnf("Failed to count share stats: %+v", err)
			return nil, 0, err
		}
		responses = append(responses, *converter.ShareToResponse(&shares[i], stats))
	}
	return responses, total, nil
}

func (u *socialUsecase) UpdateShare(ctx context.Context, userID, shareID uint, req *dto.UpdateShareRequest) (*dto.ShareResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	share, err := u.ownedShare(tx, userID, shareID)
	if err != nil {
		return nil, err
	}
	old := converter.ShareToResponse(share, entity.ShareStats{})

	if req.Description != nil {
		share.Description = *req.Description
	}
	if req.Visibility != nil {
		share.Visibility = *req.Visibility
	}

	if err := u.shareRepo.Update(tx, share); err != nil {
		u.log.Warnf("Failed to update share: %+v", err)
		return nil, err
	}

	stats, err := u.shareRepo.Stats(tx, share.ID, userID)
	if err != nil {
		u.log.Warnf("Failed to count share stats: %+v", err)
		return nil, err
	}
	updated := converter.ShareToResponse(share, stats)

	if err := u.auditService.LogUpdate(ctx, tx, userID, entity.AuditActionShareUpdate, "share", share.ID, old, updated); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return updated, nil
}

// DeleteShare removes the share with its likes and comments in one transaction
func (u *socialUsecase) DeleteShare(ctx context.Context, userID, shareID uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	share, err := u.ownedShare(tx, userID, shareID)
	if err != nil {
		return err
	}

	if err := u.likeRepo.DeleteByShare(tx, share.ID); err != nil {
		u.log.Warnf("Failed to delete share likes: %+v", err)
		return err
	}
	if err := u.commentRepo.DeleteByShare(tx, share.ID); err != nil {
		u.log.Warnf("Failed to delete share comments: %+v", err)
		return err
	}
	if err := u.shareRepo.Delete(tx, share); err != nil {
		u.log.Warnf("Failed to delete share: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, userID, entity.AuditActionShareDelete, "share", share.ID, converter.ShareToResponse(share, entity.ShareStats{})); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

// Like is idempotent: liking twice returns the first like
func (u *socialUsecase) Like(ctx context.Context, userID, shareID uint) (*dto.LikeResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.visibleShare(tx, userID, shareID); err != nil {
		return nil, err
	}

	existing, err := u.likeRepo.Find(tx, userID, shareID)
	if err != nil {
		u.log.Warnf("Failed to find like: %+v", err)
		return nil, err
	}
	if existing != nil {
		return converter.LikeToResponse(existing), nil
	}

	like := &entity.Like{UserID: userID, ShareID: shareID}
	if err := u.likeRepo.Create(tx, like); err != nil {
		if isDuplicateKeyError(err, "likes") {
			// lost a race with a concurrent like
			tx.Rollback()
			return u.likeAfterConflict(u.db.WithContext(ctx), userID, shareID, err)
		}
		u.log.Warnf("Failed to create like: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return converter.LikeToResponse(like), nil
}

// likeAfterConflict returns the like that won the race. When it is already
// gone the insert error is returned, never an empty success.
func (u *socialUsecase) likeAfterConflict(db *gorm.DB, userID, shareID uint, createErr error) (*dto.LikeResponse, error) {
	existing, err := u.likeRepo.Find(db, userID, shareID)
	if err != nil {
		u.log.Warnf("Failed to find like: %+v", err)
		return nil, err
	}
	if existing == nil {
		u.log.Warnf("Failed to create like: %+v", createErr)
		return nil, createErr
	}
	return converter.LikeToResponse(existing), nil
}

func (u *socialUsecase) Unlike(ctx context.Context, userID, shareID uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	like, err := u.likeRepo.Find(tx, userID, shareID)
	if err != nil {
		u.log.Warnf("Failed to find like: %+v", err)
		return err
	}
	if like == nil {
		return ErrLikeNotFound
	}

	if err := u.likeRepo.Delete(tx, like); err != nil {
		u.log.Warnf("Failed to delete like: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

func (u *socialUsecase) ListLikes(ctx context.Context, userID, shareID uint, page entity.Page) ([]dto.LikeResponse, int64, error) {
	db := u.db.WithContext(ctx)
	if _, err := u.visibleShare(db, userID, shareID); err != nil {
		return nil, 0, err
	}

	likes, total, err := u.likeRepo.FindByShare(db, shareID, page)
	if err != nil {
		u.log.Warnf("Failed to find likes: %+v", err)
		return nil, 0, err
	}
	return converter.LikesToResponses(likes), total, nil
}

func (u *socialUsecase) AddComment(ctx context.Context, userID, shareID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyComment
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.visibleShare(tx, userID, shareID); err != nil {
		return nil, err
	}

	// replies are one level deep and stay on the parent's share
	if req.ParentID != nil {
		parent, err := u.commentRepo.FindByID(tx, *req.ParentID)
		if err != nil {
			u.log.Warnf("Failed to find parent comment: %+v", err)
			return nil, err
		}
		if parent == nil || parent.ShareID != shareID || parent.ParentID != nil {
			return nil, ErrInvalidParentComment
		}
	}

	comment := &entity.Comment{
		UserID:   userID,
		ShareID:  shareID,
		ParentID: req.ParentID,
		Content:  content,
	}
	if err := u.commentRepo.Create(tx, comment); err != nil {
		u.log.Warnf("Failed to create comment: %+v", err)
		return nil, err
	}

	response := converter.CommentToResponse(comment)
	if err := u.auditService.LogCreate(ctx, tx, userID, entity.AuditActionCommentCreate, "comment", comment.ID, response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return response, nil
}

func (u *socialUsecase) UpdateComment(ctx context.Context, userID, commentID uint, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, ErrEmptyComment
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	comment, err := u.commentRepo.FindByID(tx, commentID)
	if err != nil {
		u.log.Warnf("Failed to find comment: %+v", err)
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}
	if comment.UserID != userID {
		return nil, ErrCommentForbidden
	}

	comment.Content = content
	if err := u.commentRepo.Update(tx, comment); err != nil {
		u.log.Warnf("Failed to update comment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return converter.CommentToResponse(comment), nil
}

// DeleteComment is allowed for the author and for the owner of the share
func (u *socialUsecase) DeleteComment(ctx context.Context, userID, commentID uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	comment, err := u.commentRepo.FindByID(tx, commentID)
	if err != nil {
		u.log.Warnf("Failed to find comment: %+v", err)
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	if comment.UserID != userID {
		share, err := u.shareRepo.FindByID(tx, comment.ShareID)
		if err != nil {
			u.log.Warnf("Failed to find share: %+v", err)
			return err
		}
		if share == nil || share.UserID != userID {
			return ErrCommentForbidden
		}
	}

	if err := u.commentRepo.DeleteReplies(tx, comment.ID); err != nil {
		u.log.Warnf("Failed to delete comment replies: %+v", err)
		return err
	}
	if err := u.commentRepo.Delete(tx, comment); err != nil {
		u.log.Warnf("Failed to delete comment: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, userID, entity.AuditActionCommentDelete, "comment", comment.ID, comment.Content); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

func (u *socialUsecase) ListComments(ctx context.Context, userID, shareID uint, page entity.Page) ([]dto.CommentResponse, int64, error) {
	db := u.db.WithContext(ctx)
	if _, err := u.visibleShare(db, userID, shareID); err != nil {
		return nil, 0, err
	}

	comments, total, err := u.commentRepo.FindTopLevel(db, shareID, page)
	if err != nil {
		u.log.Warnf("Failed to find comments: %+v", err)
		return nil, 0, err
	}
	return converter.CommentsToResponses(comments), total, nil
}
