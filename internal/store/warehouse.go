package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/patrykkrzal/skirent/internal/models"
)

type warehouseRepo struct {
	db *gorm.DB
}

func (r *warehouseRepo) Create(ctx context.Context, w *models.Warehouse) error {
	return wrapErr("warehouse.create", r.db.WithContext(ctx).Create(w).Error)
}

func (r *warehouseRepo) List(ctx context.Context) ([]models.Warehouse, error) {
	var out []models.Warehouse

	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, wrapErr("warehouse.list", err)
	}

	return out, nil
}
