package rental

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/patrykkrzal/skirent/internal/apperrors"
	"github.com/patrykkrzal/skirent/internal/metrics"
	"github.com/patrykkrzal/skirent/internal/models"
	"github.com/patrykkrzal/skirent/internal/store"
)

// Service implements the equipment lifecycle: catalog management, order
// placement and order return. All multi-entity writes are delegated to the
// store, which executes them atomically.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) AddEquipment(ctx context.Context, typ models.EquipmentType, size models.EquipmentSize, price float64) (*models.Equipment, error) {
	verr := apperrors.NewValidationError()

	if !typ.Valid() {
		verr.Add("type", "must be one of Skis, Snowboard, Boots, Helmet, Gloves, Poles, Goggles")
	}

	if !size.Valid() {
		verr.Add("size", "must be one of Small, Medium, Large, Universal")
	}

	if price < 0 {
		verr.Add("price", "must not be negative")
	}

	if verr.HasErrors() {
		return nil, verr
	}

	e := &models.Equipment{
		Type:          typ,
		Size:          size,
		Price:         price,
		IsInWarehouse: true,
		IsReserved:    false,
	}

	if err := s.store.Equipment().Create(ctx, e); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("add_equipment").Inc()
		return nil, err
	}

	metrics.EquipmentCreatedTotal.Inc()

	return e, nil
}

func (s *Service) ListEquipment(ctx context.Context, filter store.EquipmentFilter) ([]models.Equipment, error) {
	return s.store.Equipment().List(ctx, filter)
}

func (s *Service) DeleteEquipment(ctx context.Context, id uint) error {
	return s.store.Equipment().Delete(ctx, id)
}

func (s *Service) PlaceOrder(ctx context.Context, userID uint, equipmentIDs []uint, orderDate time.Time) (*models.Order, error) {
	verr := apperrors.NewValidationError()

	if len(equipmentIDs) == 0 {
		verr.Add("equipment_ids", "must not be empty")
	}

	seen := make(map[uint]bool, len(equipmentIDs))

	for _, id := range equipmentIDs {
		if seen[id] {
			verr.Add("equipment_ids", "must not contain duplicate ids")
			break
		}
		seen[id] = true
	}

	if verr.HasErrors() {
		return nil, verr
	}

	user, err := s.store.Users().ByID(ctx, userID)

	if err != nil {
		return nil, err
	}

	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	order := &models.Order{
		Number:         uuid.NewString(),
		OrderDate:      orderDate,
		SubmissionDate: submissionDate(orderDate),
		UserID:         user.ID,
		RentalInfoID:   user.RentalInfoID,
	}

	if err := s.store.Orders().PlaceOrder(ctx, order, equipmentIDs); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("place_order").Inc()
		return nil, err
	}

	metrics.OrdersPlacedTotal.Inc()
	zap.L().Info("order placed",
		zap.Uint("order_id", order.ID),
		zap.Uint("user_id", user.ID),
		zap.Float64("price", order.Price))

	return order, nil
}

// submissionDate reduces the order timestamp to its UTC calendar date, so
// the stored date is stable across server timezones.
func submissionDate(orderDate time.Time) time.Time {
	y, m, d := orderDate.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *Service) ReturnOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	order, err := s.store.Orders().ReturnOrder(ctx, orderID)

	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("return_order").Inc()
		return nil, err
	}

	metrics.OrdersReturnedTotal.Inc()
	zap.L().Info("order returned", zap.Uint("order_id", order.ID))

	return order, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	return s.store.Orders().ByID(ctx, orderID)
}

func (s *Service) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.store.Orders().List(ctx)
}

func (s *Service) ListWarehouse(ctx context.Context) ([]models.Warehouse, error) {
	return s.store.Warehouse().List(ctx)
}
