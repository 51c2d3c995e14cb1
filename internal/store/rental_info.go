package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/patrykkrzal/skirent/internal/apperrors"
	"github.com/patrykkrzal/skirent/internal/models"
)

type rentalInfoRepo struct {
	db *gorm.DB
}

func (r *rentalInfoRepo) Create(ctx context.Context, ri *models.RentalInfo) error {
	return wrapErr("rental_info.create", r.db.WithContext(ctx).Create(ri).Error)
}

func (r *rentalInfoRepo) ByID(ctx context.Context, id uint) (*models.RentalInfo, error) {
	var ri models.RentalInfo

	if err := r.db.WithContext(ctx).First(&ri, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "rental info", ID: id}
		}
		return nil, wrapErr("rental_info.by_id", err)
	}

	return &ri, nil
}

func (r *rentalInfoRepo) First(ctx context.Context) (*models.RentalInfo, error) {
	var ri models.RentalInfo

	if err := r.db.WithContext(ctx).Order("id ASC").First(&ri).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "rental info"}
		}
		return nil, wrapErr("rental_info.first", err)
	}

	return &ri, nil
}
