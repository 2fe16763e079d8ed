package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
	domainRepo "health-tracker/internal/domain/repository"
	"health-tracker/internal/repository"
	"health-tracker/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestSocialUsecase(db *gorm.DB, bypass bool) SocialUsecase {
	log := newTestLogger()
	return NewSocialUsecase(db, log,
		repository.NewShareRepository(),
		repository.NewLikeRepository(),
		repository.NewCommentRepository(),
		service.NewContentResolver(log, repository.NewContentRepository(), bypass),
		newTestAuditService(log),
	)
}

func createWaterRecord(t *testing.T, db *gorm.DB, userID uint) *entity.HealthRecord {
	t.Helper()

	record, err := entity.NewWaterRecord(userID, time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC), entity.WaterDetails{Amount: 500})
	require.NoError(t, err)
	require.NoError(t, repository.NewHealthRecordRepository().Create(db, record))
	return record
}

func TestCreateShareValidatesContent(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	record := createWaterRecord(t, db, user.ID)
	u := newTestSocialUsecase(db, false)
	ctx := context.Background()

	share, err := u.CreateShare(ctx, user.ID, &dto.CreateShareRequest{ContentType: entity.ContentWaterIntake, ContentID: record.ID})
	require.NoError(t, err)
	assert.Equal(t, entity.VisibilityPublic, share.Visibility)

	_, err = u.CreateShare(ctx, user.ID, &dto.CreateShareRequest{ContentType: entity.ContentWaterIntake, ContentID: record.ID + 100})
	assert.ErrorIs(t, err, ErrContentNotFound)

	// a water record is not a diet record
	_, err = u.CreateShare(ctx, user.ID, &dto.CreateShareRequest{ContentType: entity.ContentDietRecord, ContentID: record.ID})
	assert.ErrorIs(t, err, ErrContentNotFound)

	_, err = u.CreateShare(ctx, user.ID, &dto.CreateShareRequest{ContentType: "user", ContentID: user.ID})
	assert.ErrorIs(t, err, ErrInvalidContentType)
}

func TestCreateShareWithValidationBypass(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	u := newTestSocialUsecase(db, true)

	share, err := u.CreateShare(context.Background(), user.ID, &dto.CreateShareRequest{
		ContentType: entity.ContentHealthReport,
		ContentID:   12345,
		Visibility:  entity.VisibilityFriends,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(12345), share.ContentID)

	_, err = u.CreateShare(context.Background(), user.ID, &dto.CreateShareRequest{ContentType: "user", ContentID: 1})
	assert.ErrorIs(t, err, ErrInvalidContentType)
}

func TestLikeIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, 1)
	fan := createTestUser(t, db, 2)
	u := newTestSocialUsecase(db, true)
	ctx := context.Background()

	share, err := u.CreateShare(ctx, owner.ID, &dto.CreateShareRequest{ContentType: entity.ContentHealthGoal, ContentID: 1})
	require.NoError(t, err)

	first, err := u.Like(ctx, fan.ID, share.ID)
	require.NoError(t, err)
	second, err := u.Like(ctx, fan.ID, share.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	likes, total, err := u.ListLikes(ctx, owner.ID, share.ID, entity.Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Len(t, likes, 1)

	require.NoError(t, u.Unlike(ctx, fan.ID, share.ID))
	assert.ErrorIs(t, u.Unlike(ctx, fan.ID, share.ID), ErrLikeNotFound)
}

func TestPrivateShareHiddenFromOthers(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, 1)
	other := createTestUser(t, db, 2)
	u := newTestSocialUsecase(db, true)
	ctx := context.Background()

	share, err := u.CreateShare(ctx, owner.ID, &dto.CreateShareRequest{
		ContentType: entity.ContentHealthGoal,
		ContentID:   1,
		Visibility:  entity.VisibilityPrivate,
	})
	require.NoError(t, err)

	_, err = u.GetShare(ctx, other.ID, share.ID)
	assert.ErrorIs(t, err, ErrShareForbidden)

	_, err = u.Like(ctx, other.ID, share.ID)
	assert.ErrorIs(t, err, ErrShareForbidden)

	_, total, err := u.ListShares(ctx, other.ID, domainRepo.ShareFilter{}, entity.Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	_, total, err = u.ListShares(ctx, owner.ID, domainRepo.ShareFilter{}, entity.Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestCommentRepliesAreOneLevelDeep(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1)
	u := newTestSocialUsecase(db, true)
	ctx := context.Background()

	share, err := u.CreateShare(ctx, user.ID, &dto.CreateShareRequest{ContentType: entity.ContentHealthGoal, ContentID: 1})
	require.NoError(t, err)

	_, err = u.AddComment(ctx, user.ID, share.ID, &dto.CreateCommentRequest{Content: "   "})
	assert.ErrorIs(t, err, ErrEmptyComment)

	top, err := u.AddComment(ctx, user.ID, share.ID, &dto.CreateCommentRequest{Content: "加油"})
	require.NoError(t, err)

	reply, err := u.AddComment(ctx, user.ID, share.ID, &dto.CreateCommentRequest{Content: "谢谢", ParentID: &top.ID})
	require.NoError(t, err)
	assert.Equal(t, top.ID, *reply.ParentID)

	_, err = u.AddComment(ctx, user.ID, share.ID, &dto.CreateCommentRequest{Content: "嵌套", ParentID: &reply.ID})
	assert.ErrorIs(t, err, ErrInvalidParentComment)
}

func TestLikeAfterConflictNeverReturnsEmptySuccess(t *testing.T) {
	db := newTestDB(t)
	owner := createTestUser(t, db, 1)
	fan := createTestUser(t, db, 2)
	u := newTestSocialUsecase(db, true)
	ctx := context.Background()

	share, err := u.CreateShare(ctx, owner.ID, &dto.CreateShareRequest{ContentType: entity.ContentHealthGoal, ContentID: 1})
	require.NoError(t, err)
	conflict := errors.New("UNIQUE constraint failed: likes.user_id, likes.share_id")

	// the winning like was removed before it could be read back
	like, err := u.(*socialUsecase).likeAfterConflict(db, fan.ID, share.ID, conflict)
	assert.Nil(t, like)
	assert.ErrorIs(t, err, conflict)

	winner, err := u.Like(ctx, fan.ID, share.ID)
	require.NoError(t, err)
	like, err = u.(*socialUsecase).likeAfterConflict(db, fan.ID, share.ID, conflict)
	require.NoError(t, err)
	require.NotNil(t, like)
	assert.Equal(t, winner.ID, like.ID)
}
