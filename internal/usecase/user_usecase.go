package usecase

import (
	"context"

	"teleradiology-api/internal/converter"
	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/domain/repository"
	"teleradiology-api/internal/service"
	"teleradiology-api/pkg/pagination"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserUsecase interface {
	CreateUser(ctx context.Context, actorID uuid.UUID, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	GetAllUsers(ctx context.Context, filter entity.UserFilter, page pagination.Params) ([]dto.UserResponse, int64, error)
	UpdateUser(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error)
	UpdateRole(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateRoleRequest) (*dto.UserResponse, error)
	UpdateStatus(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateStatusRequest) (*dto.UserResponse, error)
	UnlockUser(ctx context.Context, actorID, id uuid.UUID) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, actorID, id uuid.UUID) error
	GetStats(ctx context.Context) (*entity.UserStats, error)
}

type userUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	auditService service.AuditService
	tokens       TokenRevoker
}

// TokenRevoker drops every session of a user.
type TokenRevoker interface {
	RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	auditService service.AuditService,
	tokens TokenRevoker,
) UserUsecase {
	return &userUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		auditService: auditService,
		tokens:       tokens,
	}
}

func (u *userUsecase) CreateUser(ctx context.Context, actorID uuid.UUID, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
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

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    string(hashedPassword),
		Role:        entity.Role(req.Role),
		Phone:       req.Phone,
		Department:  req.Department,
		IsActive:    true,
		IsVerified:  req.IsVerified,
		Preferences: entity.DefaultPreferences(),
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyRegistered
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionUserCreate, "user", user.ID.String(), user); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) GetUser(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.find(u.db.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) GetAllUsers(ctx context.Context, filter entity.UserFilter, page pagination.Params) ([]dto.UserResponse, int64, error) {
	users, total, err := u.userRepo.FindAll(u.db.WithContext(ctx), filter, page)
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, 0, err
	}

	return converter.UsersToResponses(users), total, nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	return u.mutate(ctx, actorID, id, entity.AuditActionUserUpdate, func(tx *gorm.DB, user *entity.User) error {
		if req.Email != nil && *req.Email != user.Email {
			exists, err := u.userRepo.ExistsByEmail(tx, *req.Email)
			if err != nil {
				u.log.Warnf("Failed to check email: %+v", err)
				return err
			}
			if exists {
				return ErrEmailInUse
			}
			user.Email = *req.Email
		}
		user.Name = derefOr(req.Name, user.Name)
		user.Phone = derefOr(req.Phone, user.Phone)
		user.Department = derefOr(req.Department, user.Department)
		user.Avatar = derefOr(req.Avatar, user.Avatar)
		user.IsVerified = derefOr(req.IsVerified, user.IsVerified)
		return nil
	})
}

func (u *userUsecase) UpdateRole(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateRoleRequest) (*dto.UserResponse, error) {
	if actorID == id {
		return nil, ErrCannotDemoteSelf
	}
	return u.mutate(ctx, actorID, id, entity.AuditActionUserRoleChange, func(_ *gorm.DB, user *entity.User) error {
		user.Role = entity.Role(req.Role)
		return nil
	})
}

// UpdateStatus deactivating a user also ends their sessions.
func (u *userUsecase) UpdateStatus(ctx context.Context, actorID, id uuid.UUID, req *dto.UpdateStatusRequest) (*dto.UserResponse, error) {
	if actorID == id {
		return nil, ErrCannotDemoteSelf
	}
	resp, err := u.mutate(ctx, actorID, id, entity.AuditActionUserStatusChange, func(_ *gorm.DB, user *entity.User) error {
		user.IsActive = *req.IsActive
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !resp.IsActive {
		if err := u.tokens.RevokeAllUserTokens(ctx, id); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (u *userUsecase) UnlockUser(ctx context.Context, actorID, id uuid.UUID) (*dto.UserResponse, error) {
	return u.mutate(ctx, actorID, id, entity.AuditActionUserUnlock, func(_ *gorm.DB, user *entity.User) error {
		user.ResetLoginAttempts()
		return nil
	})
}

func (u *userUsecase) DeleteUser(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return ErrCannotDeleteSelf
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.find(tx, id)
	if err != nil {
		return err
	}

	if err := u.userRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionUserDelete, "user", id.String(), user); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return u.tokens.RevokeAllUserTokens(ctx, id)
}

func (u *userUsecase) GetStats(ctx context.Context) (*entity.UserStats, error) {
	stats, err := u.userRepo.Stats(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to compute user stats: %+v", err)
		return nil, err
	}
	return stats, nil
}

// mutate loads the user, applies fn and saves it with an audit row in one
// transaction.
func (u *userUsecase) mutate(ctx context.Context, actorID, id uuid.UUID, action string, fn func(tx *gorm.DB, user *entity.User) error) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.find(tx, id)
	if err != nil {
		return nil, err
	}
	old := *user

	if err := fn(tx, user); err != nil {
		return nil, err
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailInUse
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &actorID, action, "user", id.String(), old, user); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) find(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	user, err := u.userRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
