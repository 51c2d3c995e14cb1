package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/patrykkrzal/skirent/internal/apperrors"
	"github.com/patrykkrzal/skirent/internal/models"
)

type userRepo struct {
	db *gorm.DB
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	return wrapErr("user.create", r.db.WithContext(ctx).Create(u).Error)
}

func (r *userRepo) ByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User

	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "user", ID: id}
		}
		return nil, wrapErr("user.by_id", err)
	}

	return &u, nil
}

func (r *userRepo) ByLogin(ctx context.Context, login string) (*models.User, error) {
	var u models.User

	if err := r.db.WithContext(ctx).Where("login = ?", login).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "user"}
		}
		return nil, wrapErr("user.by_login", err)
	}

	return &u, nil
}

func (r *userRepo) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User

	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "user"}
		}
		return nil, wrapErr("user.by_email", err)
	}

	return &u, nil
}

func (r *userRepo) Count(ctx context.Context) (int64, error) {
	var n int64

	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&n).Error; err != nil {
		return 0, wrapErr("user.count", err)
	}

	return n, nil
}
