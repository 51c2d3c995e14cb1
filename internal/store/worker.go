package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/patrykkrzal/skirent/internal/models"
)

type workerRepo struct {
	db *gorm.DB
}

func (r *workerRepo) CreateWithAccount(ctx context.Context, w *models.Worker, account *models.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return err
		}

		return tx.Create(w).Error
	})

	return wrapErr("worker.create_with_account", err)
}

func (r *workerRepo) List(ctx context.Context) ([]models.Worker, error) {
	var out []models.Worker

	if err := r.db.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, wrapErr("worker.list", err)
	}

	return out, nil
}
