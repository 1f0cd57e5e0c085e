package repositories

//go:generate mockgen -source=user_repository.go -destination=mocks/user_repository.go -package=mocks

import (
	"context"

	"gorm.io/gorm"

	"blog-cms/models"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByName(ctx context.Context, name string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Updates(ctx context.Context, id uint, fields map[string]interface{}) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return conn(ctx, r.db).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := conn(ctx, r.db).First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := conn(ctx, r.db).Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) GetByName(ctx context.Context, name string) (*models.User, error) {
	var user models.User
	err := conn(ctx, r.db).Where("name = ?", name).First(&user).Error
	return &user, err
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := conn(ctx, r.db).Order("id asc").Find(&users).Error
	return users, err
}

func (r *userRepository) Updates(ctx context.Context, id uint, fields map[string]interface{}) error {
	return conn(ctx, r.db).Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
}
