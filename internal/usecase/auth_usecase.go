package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"health-tracker/internal/converter"
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
	"health-tracker/internal/domain/repository"
	"health-tracker/internal/service"
	"health-tracker/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrPhoneAlreadyExists    = errors.New("phone already exists")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrInvalidToken          = errors.New("invalid or expired token")
	ErrTokenRevoked          = errors.New("token has been revoked")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidDateFormat     = errors.New("invalid date format, use YYYY-MM-DD")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, userID uint, accessTokenID, refreshToken string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	DeleteAccount(ctx context.Context, userID uint) error
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	jwtService   *jwt.JWTService
	tokenStore   service.TokenStore
	auditService service.AuditService
	now          func() time.Time
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	tokenStore service.TokenStore,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		jwtService:   jwtService,
		tokenStore:   tokenStore,
		auditService: auditService,
		now:          time.Now,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	var birthDate *time.Time
	if req.BirthDate != "" {
		d, err := entity.ParseDate(req.BirthDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		birthDate = &d
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Password:      string(hashedPassword),
		Username:      req.Username,
		Phone:         req.Phone,
		Height:        req.Height,
		Weight:        req.Weight,
		BirthDate:     birthDate,
		Gender:        req.Gender,
		ActivityLevel: req.ActivityLevel,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if dupErr := userConflict(err); dupErr != nil {
			return nil, dupErr
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogEvent(ctx, tx, user.ID, entity.AuditActionUserRegister, entity.JSON{
		"entity":    "user",
		"entity_id": user.ID,
		"email":     user.Email,
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user, u.now()), nil
}

// userConflict maps unique violations on the user table to sentinels
func userConflict(err error) error {
	switch {
	case isDuplicateKeyError(err, "email"):
		return ErrEmailAlreadyExists
	case isDuplicateKeyError(err, "username"):
		return ErrUsernameAlreadyExists
	case isDuplicateKeyError(err, "phone"):
		return ErrPhoneAlreadyExists
	}
	return nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	db := u.db.WithContext(ctx)

	// read-only, no transaction needed
	user, err := u.userRepo.FindByEmail(db, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := u.issueTokens(ctx, user.ID, user.Email)
	if err != nil {
		return nil, err
	}

	// a failed audit write does not fail the login
	_ = u.auditService.LogEvent(ctx, db, user.ID, entity.AuditActionUserLogin, entity.JSON{
		"entity":    "user",
		"entity_id": user.ID,
	})

	return tokens, nil
}

func (u *authUsecase) issueTokens(ctx context.Context, userID uint, email string) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(userID, email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(userID, email)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.StorePair(ctx,
		userID, accessTokenID, u.jwtService.GetAccessExpiry(),
		refreshTokenID, u.jwtService.GetRefreshExpiry(),
	); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// Logout revokes the current access token, and the refresh token when one
// belonging to the same user is supplied
func (u *authUsecase) Logout(ctx context.Context, userID uint, accessTokenID, refreshToken string) error {
	var refreshTokenID string
	if refreshToken != "" {
		claims, err := u.jwtService.ValidateToken(refreshToken)
		if err == nil && claims.TokenType == jwt.RefreshToken && claims.UserID == userID {
			refreshTokenID = claims.TokenID
		}
	}

	if err := u.tokenStore.Revoke(ctx, userID, accessTokenID, refreshTokenID); err != nil {
		return err
	}

	_ = u.auditService.LogEvent(ctx, u.db.WithContext(ctx), userID, entity.AuditActionUserLogout, entity.JSON{
		"entity":    "user",
		"entity_id": userID,
	})
	return nil
}

// RefreshToken rotates the pair: the presented refresh token is revoked
func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	valid, err := u.tokenStore.IsRefreshValid(ctx, claims.UserID, claims.TokenID)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, ErrTokenRevoked
	}

	if err := u.tokenStore.RevokeRefresh(ctx, claims.UserID, claims.TokenID); err != nil {
		return nil, err
	}

	return u.issueTokens(ctx, claims.UserID, claims.Email)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user, u.now()), nil
}

func (u *authUsecase) UpdateProfile(ctx context.Context, userID uint, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	now := u.now()
	old := converter.UserToResponse(user, now)

	if req.Username != nil {
		user.Username = req.Username
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Height != nil {
		user.Height = req.Height
	}
	if req.Weight != nil {
		user.Weight = req.Weight
	}
	if req.BirthDate != nil {
		d, err := entity.ParseDate(*req.BirthDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		user.BirthDate = &d
	}
	if req.Gender != nil {
		user.Gender = *req.Gender
	}
	if req.ActivityLevel != nil {
		user.ActivityLevel = *req.ActivityLevel
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		if dupErr := userConflict(err); dupErr != nil {
			return nil, dupErr
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	updated := converter.UserToResponse(user, now)
	if err := u.auditService.LogUpdate(ctx, tx, userID, entity.AuditActionProfileUpdate, "user", user.ID, old, updated); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return updated, nil
}

// DeleteAccount removes the user with all owned data and revokes every token.
// The audit row survives with its user reference cleared by the database.
func (u *authUsecase) DeleteAccount(ctx context.Context, userID uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, userID, entity.AuditActionUserDelete, "user", user.ID,
		converter.UserToResponse(user, u.now())); err != nil {
		return err
	}

	if err := u.userRepo.Delete(tx, userID); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	if err := u.tokenStore.RevokeAll(ctx, userID); err != nil {
		u.log.Warnf("Failed to revoke tokens of deleted user %d: %+v", userID, err)
	}
	return nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
