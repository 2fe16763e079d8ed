package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"health-tracker/config"
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
	"health-tracker/internal/repository"
	"health-tracker/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// memTokenStore is an in-memory allow-list with the same semantics as the redis store
type memTokenStore struct {
	mu      sync.Mutex
	access  map[string]bool
	refresh map[string]bool
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{access: map[string]bool{}, refresh: map[string]bool{}}
}

func (s *memTokenStore) StorePair(_ context.Context, _ uint, accessID string, _ time.Duration, refreshID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access[accessID] = true
	s.refresh[refreshID] = true
	return nil
}

func (s *memTokenStore) IsAccessValid(_ context.Context, _ uint, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access[tokenID], nil
}

func (s *memTokenStore) IsRefreshValid(_ context.Context, _ uint, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh[tokenID], nil
}

func (s *memTokenStore) RevokeRefresh(_ context.Context, _ uint, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.refresh, tokenID)
	return nil
}

func (s *memTokenStore) Revoke(_ context.Context, _ uint, accessID, refreshID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.access, accessID)
	if refreshID != "" {
		delete(s.refresh, refreshID)
	}
	return nil
}

func (s *memTokenStore) RevokeAll(_ context.Context, _ uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = map[string]bool{}
	s.refresh = map[string]bool{}
	return nil
}

func newTestAuthUsecase(db *gorm.DB) (AuthUsecase, *jwt.JWTService, *memTokenStore) {
	log := newTestLogger()
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: time.Hour,
	})
	store := newMemTokenStore()
	u := NewAuthUsecase(db, log, repository.NewUserRepository(), jwtService, store, newTestAuditService(log))
	return u, jwtService, store
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	u, jwtService, store := newTestAuthUsecase(db)
	ctx := context.Background()

	user, err := u.Register(ctx, &dto.RegisterRequest{
		Email:     "  Alex@Example.com ",
		Password:  "secret123",
		BirthDate: "1996-01-15",
		Gender:    entity.GenderMale,
	})
	require.NoError(t, err)
	assert.Equal(t, "alex@example.com", user.Email)

	_, err = u.Login(ctx, &dto.LoginRequest{Email: "alex@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = u.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	tokens, err := u.Login(ctx, &dto.LoginRequest{Email: "ALEX@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, int64(900), tokens.ExpiresIn)

	claims, err := jwtService.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	valid, _ := store.IsAccessValid(ctx, user.ID, claims.TokenID)
	assert.True(t, valid)

	var logins int64
	require.NoError(t, db.Model(&entity.AuditLog{}).Where("action = ?", entity.AuditActionUserLogin).Count(&logins).Error)
	assert.Equal(t, int64(1), logins)
}

func TestRegisterRejectsBadBirthDate(t *testing.T) {
	db := newTestDB(t)
	u, _, _ := newTestAuthUsecase(db)

	_, err := u.Register(context.Background(), &dto.RegisterRequest{Email: "a@b.co", Password: "secret123", BirthDate: "15/01/1996"})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestRefreshTokenRotates(t *testing.T) {
	db := newTestDB(t)
	u, _, _ := newTestAuthUsecase(db)
	ctx := context.Background()

	_, err := u.Register(ctx, &dto.RegisterRequest{Email: "sam@example.com", Password: "secret123"})
	require.NoError(t, err)
	tokens, err := u.Login(ctx, &dto.LoginRequest{Email: "sam@example.com", Password: "secret123"})
	require.NoError(t, err)

	rotated, err := u.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, tokens.RefreshToken, rotated.RefreshToken)

	_, err = u.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.RefreshToken})
	assert.ErrorIs(t, err, ErrTokenRevoked)

	_, err = u.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: tokens.AccessToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesPair(t *testing.T) {
	db := newTestDB(t)
	u, jwtService, store := newTestAuthUsecase(db)
	ctx := context.Background()

	user, err := u.Register(ctx, &dto.RegisterRequest{Email: "kim@example.com", Password: "secret123"})
	require.NoError(t, err)
	tokens, err := u.Login(ctx, &dto.LoginRequest{Email: "kim@example.com", Password: "secret123"})
	require.NoError(t, err)

	access, err := jwtService.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	refresh, err := jwtService.ValidateToken(tokens.RefreshToken)
	require.NoError(t, err)

	require.NoError(t, u.Logout(ctx, user.ID, access.TokenID, tokens.RefreshToken))

	valid, _ := store.IsAccessValid(ctx, user.ID, access.TokenID)
	assert.False(t, valid)
	valid, _ = store.IsRefreshValid(ctx, user.ID, refresh.TokenID)
	assert.False(t, valid)
}

func TestUpdateProfileKeepsUnsetFields(t *testing.T) {
	db := newTestDB(t)
	u, _, _ := newTestAuthUsecase(db)
	ctx := context.Background()

	user, err := u.Register(ctx, &dto.RegisterRequest{
		Email:    "lee@example.com",
		Password: "secret123",
		Height:   float64Ptr(170),
		Gender:   entity.GenderFemale,
	})
	require.NoError(t, err)

	weight := 62.5
	updated, err := u.UpdateProfile(ctx, user.ID, &dto.UpdateProfileRequest{Weight: &weight})
	require.NoError(t, err)
	require.NotNil(t, updated.Height)
	assert.Equal(t, 170.0, *updated.Height)
	assert.Equal(t, 62.5, *updated.Weight)
	assert.Equal(t, entity.GenderFemale, updated.Gender)

	_, err = u.UpdateProfile(ctx, 9999, &dto.UpdateProfileRequest{Weight: &weight})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteAccountRemovesOwnedData(t *testing.T) {
	db := newTestDB(t)
	u, jwtService, store := newTestAuthUsecase(db)
	ctx := context.Background()

	user, err := u.Register(ctx, &dto.RegisterRequest{Email: "max@example.com", Password: "secret123"})
	require.NoError(t, err)
	tokens, err := u.Login(ctx, &dto.LoginRequest{Email: "max@example.com", Password: "secret123"})
	require.NoError(t, err)
	other := createTestUser(t, db, 2)

	day := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	goal := &entity.HealthGoal{UserID: user.ID, GoalType: entity.GoalTypeWeightLoss, TargetValue: 70, StartDate: day}
	food := &entity.Food{Name: "米饭"}
	require.NoError(t, db.Create(&entity.HealthRecordRow{UserID: user.ID, RecordDate: day, RecordType: string(entity.RecordTypeWater), WaterAmount: float64Ptr(250)}).Error)
	require.NoError(t, db.Create(goal).Error)
	require.NoError(t, db.Create(&entity.HealthGoalLog{GoalID: goal.ID, LogDate: day, Value: 75}).Error)
	require.NoError(t, db.Create(food).Error)
	require.NoError(t, db.Create(&entity.DietRecord{
		UserID: user.ID, RecordDate: day, MealType: entity.MealLunch,
		Items: []entity.DietRecordItem{{FoodID: food.ID, Amount: 150}},
	}).Error)
	require.NoError(t, db.Create(&entity.WaterIntake{UserID: user.ID, Amount: 300, RecordDate: day}).Error)
	require.NoError(t, db.Create(&entity.Reminder{UserID: user.ID, ReminderType: entity.ReminderAppointment, Title: "复诊", ReminderDate: day, ReminderTime: "09:00"}).Error)

	ownShare := &entity.Share{UserID: user.ID, ContentType: entity.ContentHealthGoal, ContentID: goal.ID, Visibility: entity.VisibilityPublic}
	otherShare := &entity.Share{UserID: other.ID, ContentType: entity.ContentWaterIntake, ContentID: 1, Visibility: entity.VisibilityPublic}
	require.NoError(t, db.Create(ownShare).Error)
	require.NoError(t, db.Create(otherShare).Error)
	require.NoError(t, db.Create(&entity.Like{UserID: other.ID, ShareID: ownShare.ID}).Error)
	require.NoError(t, db.Create(&entity.Comment{UserID: other.ID, ShareID: ownShare.ID, Content: "加油"}).Error)
	ownComment := &entity.Comment{UserID: user.ID, ShareID: otherShare.ID, Content: "不错"}
	require.NoError(t, db.Create(ownComment).Error)
	require.NoError(t, db.Create(&entity.Comment{UserID: other.ID, ShareID: otherShare.ID, ParentID: &ownComment.ID, Content: "谢谢"}).Error)
	keptComment := &entity.Comment{UserID: other.ID, ShareID: otherShare.ID, Content: "今天喝了两升"}
	require.NoError(t, db.Create(keptComment).Error)

	require.NoError(t, u.DeleteAccount(ctx, user.ID))

	count := func(model interface{}, query string, args ...interface{}) int64 {
		var n int64
		require.NoError(t, db.Model(model).Where(query, args...).Count(&n).Error)
		return n
	}
	assert.Zero(t, count(&entity.User{}, "id = ?", user.ID))
	assert.Zero(t, count(&entity.HealthRecordRow{}, "user_id = ?", user.ID))
	assert.Zero(t, count(&entity.HealthGoal{}, "user_id = ?", user.ID))
	assert.Zero(t, count(&entity.HealthGoalLog{}, "goal_id = ?", goal.ID))
	assert.Zero(t, count(&entity.DietRecord{}, "user_id = ?", user.ID))
	assert.Zero(t, count(&entity.DietRecordItem{}, "1 = 1"))
	assert.Zero(t, count(&entity.WaterIntake{}, "user_id = ?", user.ID))
	assert.Zero(t, count(&entity.Reminder{}, "user_id = ?", user.ID))
	assert.Zero(t, count(&entity.Like{}, "share_id = ?", ownShare.ID))

	// the other user's share survives with only their unrelated comment
	assert.Equal(t, int64(1), count(&entity.Share{}, "1 = 1"))
	var remaining []entity.Comment
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, keptComment.ID, remaining[0].ID)

	assert.Equal(t, int64(1), count(&entity.User{}, "id = ?", other.ID))
	assert.Equal(t, int64(1), count(&entity.Food{}, "id = ?", food.ID))
	assert.Equal(t, int64(1), count(&entity.AuditLog{}, "action = ?", entity.AuditActionUserDelete))

	access, err := jwtService.ValidateToken(tokens.AccessToken)
	require.NoError(t, err)
	valid, _ := store.IsAccessValid(ctx, user.ID, access.TokenID)
	assert.False(t, valid)

	assert.ErrorIs(t, u.DeleteAccount(ctx, user.ID), ErrUserNotFound)
}
