package store

import (
	"context"

	"github.com/patrykkrzal/skirent/internal/models"
)

// EquipmentFilter narrows List results. Nil fields match everything.
type EquipmentFilter struct {
	Type      *models.EquipmentType
	Size      *models.EquipmentSize
	Available *bool
}

type EquipmentStore interface {
	Create(ctx context.Context, e *models.Equipment) error
	ByID(ctx context.Context, id uint) (*models.Equipment, error)
	List(ctx context.Context, filter EquipmentFilter) ([]models.Equipment, error)
	Update(ctx context.Context, e *models.Equipment) error
	// Delete removes an item that has never been ordered. Deleting equipment
	// referenced by an OrderedItem is a ConflictError, not a cascade.
	Delete(ctx context.Context, id uint) error
}

type OrderStore interface {
	ByID(ctx context.Context, id uint) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	// PlaceOrder creates the order, one OrderedItem per equipment id, flips
	// the availability flags and computes the total price, all in a single
	// transaction. Any unavailable item fails the whole call with a
	// ConflictError and nothing persists.
	PlaceOrder(ctx context.Context, order *models.Order, equipmentIDs []uint) error
	// ReturnOrder marks the order returned and releases its equipment in a
	// single transaction. Unknown or already-returned orders are a
	// NotFoundError.
	ReturnOrder(ctx context.Context, orderID uint) (*models.Order, error)
}

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	ByID(ctx context.Context, id uint) (*models.User, error)
	ByLogin(ctx context.Context, login string) (*models.User, error)
	ByEmail(ctx context.Context, email string) (*models.User, error)
	Count(ctx context.Context) (int64, error)
}

type WorkerStore interface {
	// CreateWithAccount persists the staff account and the worker record as
	// one atomic write.
	CreateWithAccount(ctx context.Context, w *models.Worker, account *models.User) error
	List(ctx context.Context) ([]models.Worker, error)
}

type RentalInfoStore interface {
	Create(ctx context.Context, r *models.RentalInfo) error
	ByID(ctx context.Context, id uint) (*models.RentalInfo, error)
	First(ctx context.Context) (*models.RentalInfo, error)
}

type WarehouseStore interface {
	Create(ctx context.Context, w *models.Warehouse) error
	List(ctx context.Context) ([]models.Warehouse, error)
}

// Store groups the per-entity repositories behind one boundary.
type Store interface {
	Equipment() EquipmentStore
	Orders() OrderStore
	Users() UserStore
	Workers() WorkerStore
	RentalInfo() RentalInfoStore
	Warehouse() WarehouseStore
}
