package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/patrykkrzal/skirent/internal/apperrors"
	"github.com/patrykkrzal/skirent/internal/models"
)

type equipmentRepo struct {
	db *gorm.DB
}

func (r *equipmentRepo) Create(ctx context.Context, e *models.Equipment) error {
	return wrapErr("equipment.create", r.db.WithContext(ctx).Create(e).Error)
}

func (r *equipmentRepo) ByID(ctx context.Context, id uint) (*models.Equipment, error) {
	var e models.Equipment

	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "equipment", ID: id}
		}
		return nil, wrapErr("equipment.by_id", err)
	}

	return &e, nil
}

func (r *equipmentRepo) List(ctx context.Context, filter EquipmentFilter) ([]models.Equipment, error) {
	qb := r.db.WithContext(ctx).Model(&models.Equipment{})

	if filter.Type != nil {
		qb = qb.Where("type = ?", *filter.Type)
	}

	if filter.Size != nil {
		qb = qb.Where("size = ?", *filter.Size)
	}

	if filter.Available != nil {
		if *filter.Available {
			qb = qb.Where("is_in_warehouse = ? AND is_reserved = ?", true, false)
		} else {
			qb = qb.Where("is_in_warehouse = ? OR is_reserved = ?", false, true)
		}
	}

	var out []models.Equipment

	if err := qb.Order("id ASC").Find(&out).Error; err != nil {
		return nil, wrapErr("equipment.list", err)
	}

	return out, nil
}

func (r *equipmentRepo) Update(ctx context.Context, e *models.Equipment) error {
	return wrapErr("equipment.update", r.db.WithContext(ctx).Save(e).Error)
}

func (r *equipmentRepo) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var e models.Equipment

		if err := tx.First(&e, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &apperrors.NotFoundError{Resource: "equipment", ID: id}
			}
			return err
		}

		var refs int64

		if err := tx.Model(&models.OrderedItem{}).Where("equipment_id = ?", id).Count(&refs).Error; err != nil {
			return err
		}

		if refs > 0 {
			return &apperrors.ConflictError{Resource: "equipment", Reason: "referenced by an order"}
		}

		return tx.Delete(&e).Error
	})

	return wrapErr("equipment.delete", err)
}
