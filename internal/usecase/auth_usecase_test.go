package usecase

import (
	"context"
	"testing"
	"time"

	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/pkg/jwt"

	"github.com/stretchr/testify/suite"
)

type AuthUsecaseSuite struct {
	suite.Suite
	*fixture
	ctx     context.Context
	usecase *authUsecase
}

func TestAuthUsecaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUsecaseSuite))
}

func (s *AuthUsecaseSuite) SetupTest() {
	s.fixture = newFixture(s.T())
	s.ctx = context.Background()
	s.usecase = NewAuthUsecase(s.db, s.log, s.userRepo, s.audit, s.jwt, s.store, s.mailer, "https://example.com").(*authUsecase)
}

func (s *AuthUsecaseSuite) register(email, password string) *dto.AuthResponse {
	res, err := s.usecase.Register(s.ctx, &dto.RegisterRequest{Name: "Dana Reader", Email: email, Password: password})
	s.Require().NoError(err)
	return res
}

func (s *AuthUsecaseSuite) TestRegister_DuplicateEmailKeepsOneRow() {
	// Arrange
	s.register("dana@example.com", "Passw0rd!")

	// Act
	_, err := s.usecase.Register(s.ctx, &dto.RegisterRequest{Name: "Dana Again", Email: "DANA@example.com", Password: "Passw0rd!"})

	// Assert
	s.ErrorIs(err, ErrEmailAlreadyRegistered)
	var count int64
	s.db.Model(&entity.User{}).Count(&count)
	s.EqualValues(1, count)
}

func (s *AuthUsecaseSuite) TestRegister_IssuesWhitelistedTokensAndVerificationMail() {
	res := s.register("dana@example.com", "Passw0rd!")

	s.Equal(string(entity.RoleUser), res.User.Role)
	s.False(res.User.IsVerified)
	s.EqualValues(900, res.Tokens.ExpiresIn)

	claims, err := s.jwt.ValidateAccessToken(res.Tokens.AccessToken)
	s.Require().NoError(err)
	valid, err := s.usecase.IsTokenValid(s.ctx, claims.UserID, claims.TokenID, jwt.AccessToken)
	s.Require().NoError(err)
	s.True(valid)

	msg, ok := s.mailer.last()
	s.Require().True(ok)
	s.Equal([]string{"dana@example.com"}, msg.To)
	s.NotEmpty(linkToken(msg))
	s.EqualValues(1, s.countAudit(entity.AuditActionUserRegister))
}

func (s *AuthUsecaseSuite) TestLogin_LocksAfterFiveFailures() {
	// Arrange
	s.register("dana@example.com", "Passw0rd!")
	wrong := &dto.LoginRequest{Email: "dana@example.com", Password: "nope-nope"}

	// Act
	for i := 0; i < entity.MaxLoginAttempts; i++ {
		_, err := s.usecase.Login(s.ctx, wrong)
		s.ErrorIs(err, ErrInvalidCredentials)
	}
	_, err := s.usecase.Login(s.ctx, &dto.LoginRequest{Email: "dana@example.com", Password: "Passw0rd!"})

	// Assert
	s.ErrorIs(err, ErrAccountLocked)

	later := time.Now().Add(entity.LockDuration + time.Minute)
	s.usecase.now = func() time.Time { return later }
	res, err := s.usecase.Login(s.ctx, &dto.LoginRequest{Email: "dana@example.com", Password: "Passw0rd!"})
	s.Require().NoError(err)
	s.False(res.User.IsLocked)

	user, err := s.userRepo.FindByEmail(s.db, "dana@example.com")
	s.Require().NoError(err)
	s.Zero(user.LoginAttempts)
	s.NotNil(user.LastLoginAt)
}

func (s *AuthUsecaseSuite) TestLogin_UnknownEmailAndInactiveUser() {
	_, err := s.usecase.Login(s.ctx, &dto.LoginRequest{Email: "ghost@example.com", Password: "whatever1"})
	s.ErrorIs(err, ErrInvalidCredentials)

	res := s.register("dana@example.com", "Passw0rd!")
	s.Require().NoError(s.db.Model(&entity.User{}).Where("id = ?", res.User.ID).UpdateColumn("is_active", false).Error)

	_, err = s.usecase.Login(s.ctx, &dto.LoginRequest{Email: "dana@example.com", Password: "Passw0rd!"})
	s.ErrorIs(err, ErrAccountInactive)
}

func (s *AuthUsecaseSuite) TestRefreshToken_RotatesSingleUse() {
	res := s.register("dana@example.com", "Passw0rd!")

	rotated, err := s.usecase.RefreshToken(s.ctx, &dto.RefreshTokenRequest{RefreshToken: res.Tokens.RefreshToken})
	s.Require().NoError(err)
	s.NotEqual(res.Tokens.RefreshToken, rotated.RefreshToken)

	_, err = s.usecase.RefreshToken(s.ctx, &dto.RefreshTokenRequest{RefreshToken: res.Tokens.RefreshToken})
	s.ErrorIs(err, ErrTokenRevoked)

	_, err = s.usecase.RefreshToken(s.ctx, &dto.RefreshTokenRequest{RefreshToken: res.Tokens.AccessToken})
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *AuthUsecaseSuite) TestLogout_DropsAccessAndRefreshTokens() {
	res := s.register("dana@example.com", "Passw0rd!")
	claims, err := s.jwt.ValidateAccessToken(res.Tokens.AccessToken)
	s.Require().NoError(err)

	s.Require().NoError(s.usecase.Logout(s.ctx, claims.UserID, claims.TokenID, res.Tokens.RefreshToken))

	valid, err := s.usecase.IsTokenValid(s.ctx, claims.UserID, claims.TokenID, jwt.AccessToken)
	s.Require().NoError(err)
	s.False(valid)
	_, err = s.usecase.RefreshToken(s.ctx, &dto.RefreshTokenRequest{RefreshToken: res.Tokens.RefreshToken})
	s.ErrorIs(err, ErrTokenRevoked)
}

func (s *AuthUsecaseSuite) TestForgotPassword_UnknownEmailSendsNothing() {
	s.Require().NoError(s.usecase.ForgotPassword(s.ctx, &dto.ForgotPasswordRequest{Email: "ghost@example.com"}))
	s.Zero(s.mailer.count())
}

func (s *AuthUsecaseSuite) TestResetPassword_ConsumesTokenAndRevokesSessions() {
	// Arrange
	res := s.register("dana@example.com", "Passw0rd!")
	claims, err := s.jwt.ValidateAccessToken(res.Tokens.AccessToken)
	s.Require().NoError(err)
	s.Require().NoError(s.usecase.ForgotPassword(s.ctx, &dto.ForgotPasswordRequest{Email: "dana@example.com"}))
	msg, _ := s.mailer.last()
	token := linkToken(msg)
	s.Require().NotEmpty(token)
	s.Contains(msg.HTML, "https://example.com/reset-password?token=")

	// Act
	err = s.usecase.ResetPassword(s.ctx, &dto.ResetPasswordRequest{Token: token, Password: "N3wPassword!"})

	// Assert
	s.Require().NoError(err)
	valid, err := s.usecase.IsTokenValid(s.ctx, claims.UserID, claims.TokenID, jwt.AccessToken)
	s.Require().NoError(err)
	s.False(valid)

	_, err = s.usecase.Login(s.ctx, &dto.LoginRequest{Email: "dana@example.com", Password: "Passw0rd!"})
	s.ErrorIs(err, ErrInvalidCredentials)
	_, err = s.usecase.Login(s.ctx, &dto.LoginRequest{Email: "dana@example.com", Password: "N3wPassword!"})
	s.NoError(err)

	err = s.usecase.ResetPassword(s.ctx, &dto.ResetPasswordRequest{Token: token, Password: "Another1!"})
	s.ErrorIs(err, ErrInvalidResetToken)
}

func (s *AuthUsecaseSuite) TestResetPassword_ExpiredToken() {
	s.register("dana@example.com", "Passw0rd!")
	s.Require().NoError(s.usecase.ForgotPassword(s.ctx, &dto.ForgotPasswordRequest{Email: "dana@example.com"}))
	msg, _ := s.mailer.last()

	s.redis.FastForward(PasswordResetTTL + time.Second)

	err := s.usecase.ResetPassword(s.ctx, &dto.ResetPasswordRequest{Token: linkToken(msg), Password: "N3wPassword!"})
	s.ErrorIs(err, ErrInvalidResetToken)
}

func (s *AuthUsecaseSuite) TestChangePassword() {
	res := s.register("dana@example.com", "Passw0rd!")

	err := s.usecase.ChangePassword(s.ctx, res.User.ID, &dto.ChangePasswordRequest{CurrentPassword: "wrong-one", NewPassword: "N3wPassword!"})
	s.ErrorIs(err, ErrIncorrectPassword)

	err = s.usecase.ChangePassword(s.ctx, res.User.ID, &dto.ChangePasswordRequest{CurrentPassword: "Passw0rd!", NewPassword: "N3wPassword!"})
	s.Require().NoError(err)

	_, err = s.usecase.RefreshToken(s.ctx, &dto.RefreshTokenRequest{RefreshToken: res.Tokens.RefreshToken})
	s.ErrorIs(err, ErrTokenRevoked)
	s.EqualValues(1, s.countAudit(entity.AuditActionPasswordChange))
}

func (s *AuthUsecaseSuite) TestVerifyEmail() {
	res := s.register("dana@example.com", "Passw0rd!")
	msg, _ := s.mailer.last()

	s.ErrorIs(s.usecase.VerifyEmail(s.ctx, &dto.VerifyEmailRequest{Token: "deadbeef"}), ErrInvalidVerifyToken)
	s.Require().NoError(s.usecase.VerifyEmail(s.ctx, &dto.VerifyEmailRequest{Token: linkToken(msg)}))

	me, err := s.usecase.GetCurrentUser(s.ctx, res.User.ID)
	s.Require().NoError(err)
	s.True(me.IsVerified)
	s.ErrorIs(s.usecase.ResendVerification(s.ctx, res.User.ID), ErrAlreadyVerified)
}

func (s *AuthUsecaseSuite) TestUpdateProfile_MergesPreferences() {
	res := s.register("dana@example.com", "Passw0rd!")
	theme := "dark"
	dept := "Radiology"

	updated, err := s.usecase.UpdateProfile(s.ctx, res.User.ID, &dto.UpdateProfileRequest{
		Department:  &dept,
		Preferences: &dto.PreferencesRequest{Theme: &theme},
	})

	s.Require().NoError(err)
	s.Equal("Radiology", updated.Department)
	s.Equal("dark", updated.Preferences.Theme)
	s.Equal(entity.DefaultPreferences().Language, updated.Preferences.Language)
}
