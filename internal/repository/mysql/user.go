package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/adiwangsa/forum-api/domain"
	"github.com/adiwangsa/forum-api/internal/repository/mysql/model"
)

type userRepository struct {
	DB    *gorm.DB
	idGen domain.IDGenerator
}

var _ domain.UserRepository = (*userRepository)(nil)

func NewUserRepository(db *gorm.DB, idGen domain.IDGenerator) *userRepository {
	return &userRepository{
		DB:    db,
		idGen: idGen,
	}
}

func (r *userRepository) AddUser(ctx context.Context, user domain.User) (domain.RegisteredUser, error) {
	row := model.NewUserFromDomain(user)
	row.ID = "user-" + r.idGen()
	row.CreatedAt = time.Now()

	if err := r.DB.WithContext(ctx).Create(&row).Error; err != nil {
		// availability is checked beforehand; a duplicate here lost a race
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RegisteredUser{}, domain.ErrUsernameUnavailable
		}
		return domain.RegisteredUser{}, err
	}
	return domain.RegisteredUser{
		ID:       row.ID,
		Username: row.Username,
		Fullname: row.Fullname,
	}, nil
}

func (r *userRepository) VerifyAvailableUsername(ctx context.Context, username string) error {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&model.User{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrUsernameUnavailable
	}
	return nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	var row model.User
	err := r.DB.WithContext(ctx).
		Where("username = ?", username).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// don't leak which half of the credential was wrong
		return domain.User{}, domain.ErrWrongCredential
	}
	if err != nil {
		return domain.User{}, err
	}
	return row.ToDomain(), nil
}
