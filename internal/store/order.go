package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/patrykkrzal/skirent/internal/apperrors"
	"github.com/patrykkrzal/skirent/internal/models"
)

type orderRepo struct {
	db *gorm.DB
}

func (r *orderRepo) ByID(ctx context.Context, id uint) (*models.Order, error) {
	var o models.Order

	err := r.db.WithContext(ctx).Preload("OrderedItems").First(&o, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &apperrors.NotFoundError{Resource: "order", ID: id}
		}
		return nil, wrapErr("order.by_id", err)
	}

	return &o, nil
}

func (r *orderRepo) List(ctx context.Context) ([]models.Order, error) {
	var out []models.Order

	if err := r.db.WithContext(ctx).Preload("OrderedItems").Order("id ASC").Find(&out).Error; err != nil {
		return nil, wrapErr("order.list", err)
	}

	return out, nil
}

// PlaceOrder runs in a transaction and locks the requested equipment rows so
// that two concurrent orders for the same item cannot both pass the
// availability check.
func (r *orderRepo) PlaceOrder(ctx context.Context, order *models.Order, equipmentIDs []uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var items []models.Equipment

		err := tx.Model(&models.Equipment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", equipmentIDs).
			Order("id ASC").
			Find(&items).Error

		if err != nil {
			return err
		}

		if len(items) != len(equipmentIDs) {
			found := make(map[uint]bool, len(items))
			for _, e := range items {
				found[e.ID] = true
			}
			for _, id := range equipmentIDs {
				if !found[id] {
					return &apperrors.NotFoundError{Resource: "equipment", ID: id}
				}
			}
		}

		var (
			total   float64
			summary []string
		)

		for _, e := range items {
			if !e.Available() {
				return &apperrors.ConflictError{
					Resource: "equipment",
					Reason:   e.Name() + " is not available",
				}
			}
			total += e.Price
			summary = append(summary, e.Name())
		}

		order.Price = total
		order.RentedItems = strings.Join(summary, ", ")

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, e := range items {
			item := models.OrderedItem{EquipmentID: e.ID, OrderID: order.ID}

			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			err := tx.Model(&models.Equipment{}).
				Where("id = ?", e.ID).
				Updates(map[string]interface{}{"is_reserved": true, "is_in_warehouse": false}).Error

			if err != nil {
				return err
			}

			order.OrderedItems = append(order.OrderedItems, item)
		}

		return nil
	})

	return wrapErr("order.place", err)
}

func (r *orderRepo) ReturnOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	var o models.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&o, orderID).Error

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &apperrors.NotFoundError{Resource: "order", ID: orderID}
			}
			return err
		}

		// An already-returned order is reported the same way as a missing one.
		if o.WasReturned {
			return &apperrors.NotFoundError{Resource: "order", ID: orderID}
		}

		o.WasReturned = true

		if err := tx.Save(&o).Error; err != nil {
			return err
		}

		var items []models.OrderedItem

		if err := tx.Where("order_id = ?", orderID).Find(&items).Error; err != nil {
			return err
		}

		for _, item := range items {
			err := tx.Model(&models.Equipment{}).
				Where("id = ?", item.EquipmentID).
				Updates(map[string]interface{}{"is_reserved": false, "is_in_warehouse": true}).Error

			if err != nil {
				return err
			}
		}

		o.OrderedItems = items

		return nil
	})

	if err != nil {
		return nil, wrapErr("order.return", err)
	}

	return &o, nil
}
