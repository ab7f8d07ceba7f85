package repository

import (
	"time"

	"teleradiology-api/internal/domain/entity"
	domainRepo "teleradiology-api/internal/domain/repository"
	"teleradiology-api/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Create(user).Error
}

func (r *userRepository) Update(db *gorm.DB, user *entity.User) error {
	return saveOmitAssociations(db, user)
}

func (r *userRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.User{}).Error
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	return first[entity.User](db.Where("email = ?", normalizeEmail(email)))
}

func (r *userRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	return first[entity.User](db.Where("id = ?", id))
}

func (r *userRepository) ExistsByEmail(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&entity.User{}).Where("email = ?", normalizeEmail(email)).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) FindAll(db *gorm.DB, filter entity.UserFilter, page pagination.Params) ([]entity.User, int64, error) {
	q := db.Model(&entity.User{})
	if filter.Role != "" {
		q = q.Where("role = ?", filter.Role)
	}
	if filter.IsActive != nil {
		q = q.Where("is_active = ?", *filter.IsActive)
	}
	q = applySearch(q, filter.Search, "name", "email", "department")

	var users []entity.User
	total, err := pagination.Paginate(q, page, &users)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) Stats(db *gorm.DB) (*entity.UserStats, error) {
	stats := &entity.UserStats{}
	base := func() *gorm.DB { return db.Model(&entity.User{}) }

	if err := base().Count(&stats.Total).Error; err != nil {
		return nil, err
	}
	if err := base().Where("is_active = ?", true).Count(&stats.Active).Error; err != nil {
		return nil, err
	}
	if err := base().Where("is_verified = ?", true).Count(&stats.Verified).Error; err != nil {
		return nil, err
	}
	if err := base().Where("lock_until > ?", time.Now()).Count(&stats.Locked).Error; err != nil {
		return nil, err
	}
	stats.Inactive = stats.Total - stats.Active

	byRole, err := countBy(db, &entity.User{}, "role")
	if err != nil {
		return nil, err
	}
	stats.ByRole = entity.CountMap(byRole)
	return stats, nil
}
