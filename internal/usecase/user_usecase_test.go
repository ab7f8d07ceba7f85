package usecase

import (
	"context"
	"testing"

	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/testutil"
	"teleradiology-api/pkg/pagination"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type recordingRevoker struct {
	revoked []uuid.UUID
}

func (r *recordingRevoker) RevokeAllUserTokens(_ context.Context, userID uuid.UUID) error {
	r.revoked = append(r.revoked, userID)
	return nil
}

type UserUsecaseSuite struct {
	suite.Suite
	*fixture
	ctx     context.Context
	revoker *recordingRevoker
	usecase UserUsecase
	admin   *entity.User
}

func TestUserUsecaseSuite(t *testing.T) {
	suite.Run(t, new(UserUsecaseSuite))
}

func (s *UserUsecaseSuite) SetupTest() {
	s.fixture = newFixture(s.T())
	s.ctx = context.Background()
	s.revoker = &recordingRevoker{}
	s.usecase = NewUserUsecase(s.db, s.log, s.userRepo, s.audit, s.revoker)
	s.admin = testutil.CreateUser(s.T(), s.db, "admin@example.com", entity.RoleAdmin)
}

func (s *UserUsecaseSuite) TestCreateUser() {
	res, err := s.usecase.CreateUser(s.ctx, s.admin.ID, &dto.CreateUserRequest{
		Name:     "Sam Editor",
		Email:    "Sam@Example.com",
		Password: "Passw0rd!",
		Role:     string(entity.RoleCMSEditor),
	})

	s.Require().NoError(err)
	s.Equal("sam@example.com", res.Email)
	s.Contains(res.Permissions, "content:*")
	s.EqualValues(1, s.countAudit(entity.AuditActionUserCreate))

	_, err = s.usecase.CreateUser(s.ctx, s.admin.ID, &dto.CreateUserRequest{
		Name: "Sam Two", Email: "sam@example.com", Password: "Passw0rd!", Role: "user",
	})
	s.ErrorIs(err, ErrEmailAlreadyRegistered)
}

func (s *UserUsecaseSuite) TestSelfProtection() {
	s.ErrorIs(s.usecase.DeleteUser(s.ctx, s.admin.ID, s.admin.ID), ErrCannotDeleteSelf)

	_, err := s.usecase.UpdateRole(s.ctx, s.admin.ID, s.admin.ID, &dto.UpdateRoleRequest{Role: "user"})
	s.ErrorIs(err, ErrCannotDemoteSelf)

	inactive := false
	_, err = s.usecase.UpdateStatus(s.ctx, s.admin.ID, s.admin.ID, &dto.UpdateStatusRequest{IsActive: &inactive})
	s.ErrorIs(err, ErrCannotDemoteSelf)
}

func (s *UserUsecaseSuite) TestDeactivateRevokesSessions() {
	rep := testutil.CreateUser(s.T(), s.db, "rep@example.com", entity.RoleSalesRep)
	inactive := false

	res, err := s.usecase.UpdateStatus(s.ctx, s.admin.ID, rep.ID, &dto.UpdateStatusRequest{IsActive: &inactive})

	s.Require().NoError(err)
	s.False(res.IsActive)
	s.Equal([]uuid.UUID{rep.ID}, s.revoker.revoked)
	s.EqualValues(1, s.countAudit(entity.AuditActionUserStatusChange))
}

func (s *UserUsecaseSuite) TestUnlockAndDelete() {
	rep := testutil.CreateUser(s.T(), s.db, "rep@example.com", entity.RoleSalesRep)
	rep.LoginAttempts = entity.MaxLoginAttempts - 1
	rep.IncLoginAttempts(s.admin.CreatedAt)
	s.Require().NoError(s.userRepo.Update(s.db, rep))

	res, err := s.usecase.UnlockUser(s.ctx, s.admin.ID, rep.ID)
	s.Require().NoError(err)
	s.False(res.IsLocked)

	s.Require().NoError(s.usecase.DeleteUser(s.ctx, s.admin.ID, rep.ID))
	_, err = s.usecase.GetUser(s.ctx, rep.ID)
	s.ErrorIs(err, ErrUserNotFound)
	s.Contains(s.revoker.revoked, rep.ID)
}

func (s *UserUsecaseSuite) TestGetAllUsers_FiltersByRole() {
	testutil.CreateUser(s.T(), s.db, "rep@example.com", entity.RoleSalesRep)
	testutil.CreateUser(s.T(), s.db, "hr@example.com", entity.RoleHRManager)

	users, total, err := s.usecase.GetAllUsers(s.ctx, entity.UserFilter{Role: entity.RoleHRManager}, pagination.Params{Page: 1, Limit: 10, Sort: "created_at", Desc: true})

	s.Require().NoError(err)
	s.EqualValues(1, total)
	s.Equal("hr@example.com", users[0].Email)
}
