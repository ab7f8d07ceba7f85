package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"teleradiology-api/internal/converter"
	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/domain/repository"
	"teleradiology-api/internal/service"
	"teleradiology-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	PasswordResetTTL = time.Hour
	VerificationTTL  = 24 * time.Hour
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshToken string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
	VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error
	ResendVerification(ctx context.Context, userID uuid.UUID) error
	IsTokenValid(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error)
	RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error
	ResolveUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	auditService service.AuditService
	jwtService   *jwt.JWTService
	store        service.KeyValueStore
	mailer       service.Mailer
	frontendURL  string
	now          func() time.Time
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	store service.KeyValueStore,
	mailer service.Mailer,
	frontendURL string,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		auditService: auditService,
		jwtService:   jwtService,
		store:        store,
		mailer:       mailer,
		frontendURL:  frontendURL,
		now:          time.Now,
	}
}

func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exists, err := u.userRepo.ExistsByEmail(tx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check email: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyRegistered
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    string(hashedPassword),
		Phone:       req.Phone,
		Role:        entity.RoleUser,
		IsActive:    true,
		Preferences: entity.DefaultPreferences(),
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyRegistered
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), user); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	tokens, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	u.sendVerification(ctx, user)

	return &dto.AuthResponse{User: converter.UserToResponse(user), Tokens: tokens}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	db := u.db.WithContext(ctx)
	now := u.now()

	user, err := u.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if user.IsLocked(now) {
		return nil, ErrAccountLocked
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		user.IncLoginAttempts(now)
		if err := u.userRepo.Update(db, user); err != nil {
			u.log.Warnf("Failed to record login attempt: %+v", err)
			return nil, err
		}
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	tx := db.Begin()
	defer tx.Rollback()

	user.ResetLoginAttempts()
	user.LastLoginAt = &now
	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user login: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionUserLogin, "user", user.ID.String(), nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	tokens, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{User: converter.UserToResponse(user), Tokens: tokens}, nil
}

// Logout drops the access token and, when supplied, the caller's refresh token.
func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, accessTokenID, refreshToken string) error {
	keys := []string{tokenKey(jwt.AccessToken, userID, accessTokenID)}

	if refreshToken != "" {
		claims, err := u.jwtService.ValidateRefreshToken(refreshToken)
		if err == nil && claims.UserID == userID {
			keys = append(keys, tokenKey(jwt.RefreshToken, userID, claims.TokenID))
		}
	}

	if err := u.store.Delete(ctx, keys...); err != nil {
		u.log.Warnf("Failed to delete tokens: %+v", err)
		return err
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	// Validate refresh token
	claims, err := u.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	// Check if refresh token is still whitelisted
	refreshKey := tokenKey(jwt.RefreshToken, claims.UserID, claims.TokenID)
	exists, err := u.store.Exists(ctx, refreshKey)
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrTokenRevoked
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrInvalidToken
	}

	// Rotate: the old refresh token is single use
	if err := u.store.Delete(ctx, refreshKey); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, user)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.findUser(ctx, u.db.WithContext(ctx), userID)
	if err != nil {
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.findUser(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	old := *user

	user.Name = derefOr(req.Name, user.Name)
	user.Phone = derefOr(req.Phone, user.Phone)
	user.Department = derefOr(req.Department, user.Department)
	user.Avatar = derefOr(req.Avatar, user.Avatar)
	if p := req.Preferences; p != nil {
		prefs := &user.Preferences
		prefs.Theme = derefOr(p.Theme, prefs.Theme)
		prefs.Language = derefOr(p.Language, prefs.Language)
		prefs.Timezone = derefOr(p.Timezone, prefs.Timezone)
		prefs.EmailNotifications = derefOr(p.EmailNotifications, prefs.EmailNotifications)
		prefs.DashboardLayout = derefOr(p.DashboardLayout, prefs.DashboardLayout)
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update profile: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &userID, entity.AuditActionUserUpdate, "user", userID.String(), old, user); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.findUser(ctx, tx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return ErrIncorrectPassword
	}

	if err := u.setPassword(ctx, tx, user, req.NewPassword, entity.AuditActionPasswordChange); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return u.RevokeAllUserTokens(ctx, userID)
}

// ForgotPassword never reveals whether the email is registered.
func (u *authUsecase) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return err
	}
	if user == nil || !user.IsActive {
		return nil
	}

	token, err := u.storeOneTimeToken(ctx, "password_reset", user.ID, PasswordResetTTL)
	if err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", u.frontendURL, token)
	if err := u.mailer.Send(ctx, service.PasswordResetMessage(user.Email, user.Name, link)); err != nil {
		u.log.Warnf("Failed to send password reset email: %+v", err)
	}

	return nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	key := oneTimeKey("password_reset", req.Token)
	userID, err := u.consumeOneTimeToken(ctx, key)
	if err != nil {
		return err
	}
	if userID == uuid.Nil {
		return ErrInvalidResetToken
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return ErrInvalidResetToken
	}

	user.ResetLoginAttempts()
	if err := u.setPassword(ctx, tx, user, req.Password, entity.AuditActionPasswordReset); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	if err := u.store.Delete(ctx, key); err != nil {
		u.log.Warnf("Failed to delete reset token: %+v", err)
	}

	return u.RevokeAllUserTokens(ctx, userID)
}

func (u *authUsecase) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error {
	key := oneTimeKey("email_verify", req.Token)
	userID, err := u.consumeOneTimeToken(ctx, key)
	if err != nil {
		return err
	}
	if userID == uuid.Nil {
		return ErrInvalidVerifyToken
	}

	db := u.db.WithContext(ctx)
	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return err
	}
	if user == nil {
		return ErrInvalidVerifyToken
	}

	user.IsVerified = true
	if err := u.userRepo.Update(db, user); err != nil {
		u.log.Warnf("Failed to verify user: %+v", err)
		return err
	}

	if err := u.store.Delete(ctx, key); err != nil {
		u.log.Warnf("Failed to delete verification token: %+v", err)
	}

	return nil
}

func (u *authUsecase) ResendVerification(ctx context.Context, userID uuid.UUID) error {
	user, err := u.findUser(ctx, u.db.WithContext(ctx), userID)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return ErrAlreadyVerified
	}

	u.sendVerification(ctx, user)
	return nil
}

// IsTokenValid reports whether the token id is still whitelisted.
func (u *authUsecase) IsTokenValid(ctx context.Context, userID uuid.UUID, tokenID string, tokenType jwt.TokenType) (bool, error) {
	exists, err := u.store.Exists(ctx, tokenKey(tokenType, userID, tokenID))
	if err != nil {
		u.log.Warnf("Failed to check token validity: %+v", err)
		return false, err
	}

	return exists, nil
}

// RevokeAllUserTokens revokes all tokens for a user (useful when password changed or account compromised)
func (u *authUsecase) RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error {
	for _, typ := range []jwt.TokenType{jwt.AccessToken, jwt.RefreshToken} {
		if err := u.store.DeleteByPrefix(ctx, tokenKey(typ, userID, "")); err != nil {
			u.log.Warnf("Failed to delete %s tokens: %+v", typ, err)
			return err
		}
	}

	return nil
}

// ResolveUser loads the token's owner. A missing user yields nil, nil.
func (u *authUsecase) ResolveUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) findUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.User, error) {
	user, err := u.userRepo.FindByID(db, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return user, nil
}

func (u *authUsecase) setPassword(ctx context.Context, tx *gorm.DB, user *entity.User, password, action string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	user.Password = string(hashedPassword)
	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update password: %+v", err)
		return err
	}

	return u.auditService.LogUpdate(ctx, tx, &user.ID, action, "user", user.ID.String(), nil, nil)
}

func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User) (*dto.TokenResponse, error) {
	// Generate tokens
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	// Whitelist both tokens
	if err := u.store.Set(ctx, tokenKey(jwt.AccessToken, user.ID, accessTokenID), "valid", u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}

	if err := u.store.Set(ctx, tokenKey(jwt.RefreshToken, user.ID, refreshTokenID), "valid", u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) sendVerification(ctx context.Context, user *entity.User) {
	token, err := u.storeOneTimeToken(ctx, "email_verify", user.ID, VerificationTTL)
	if err != nil {
		return
	}

	link := fmt.Sprintf("%s/verify-email?token=%s", u.frontendURL, token)
	if err := u.mailer.Send(ctx, service.VerificationMessage(user.Email, user.Name, link)); err != nil {
		u.log.Warnf("Failed to send verification email: %+v", err)
	}
}

// storeOneTimeToken keeps only the hash of the token so a leaked store does
// not leak usable links.
func (u *authUsecase) storeOneTimeToken(ctx context.Context, purpose string, userID uuid.UUID, ttl time.Duration) (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		u.log.Warnf("Failed to generate %s token: %+v", purpose, err)
		return "", err
	}
	token := hex.EncodeToString(raw)

	if err := u.store.Set(ctx, oneTimeKey(purpose, token), userID.String(), ttl); err != nil {
		u.log.Warnf("Failed to store %s token: %+v", purpose, err)
		return "", err
	}

	return token, nil
}

// consumeOneTimeToken returns uuid.Nil when the token is unknown or expired.
func (u *authUsecase) consumeOneTimeToken(ctx context.Context, key string) (uuid.UUID, error) {
	raw, err := u.store.Get(ctx, key)
	if errors.Is(err, service.ErrKeyNotFound) {
		return uuid.Nil, nil
	}
	if err != nil {
		u.log.Warnf("Failed to read one-time token: %+v", err)
		return uuid.Nil, err
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, nil
	}
	return id, nil
}

func tokenKey(typ jwt.TokenType, userID uuid.UUID, tokenID string) string {
	return fmt.Sprintf("%s_token:%s:%s", typ, userID.String(), tokenID)
}

func oneTimeKey(purpose, token string) string {
	sum := sha256.Sum256([]byte(token))
	return purpose + ":" + hex.EncodeToString(sum[:])
}
