package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/patrykkrzal/skirent/internal/apperrors"
)

// GormStore is the relational implementation of Store.
type GormStore struct {
	equipment  *equipmentRepo
	orders     *orderRepo
	users      *userRepo
	workers    *workerRepo
	rentalInfo *rentalInfoRepo
	warehouse  *warehouseRepo
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		equipment:  &equipmentRepo{db: db},
		orders:     &orderRepo{db: db},
		users:      &userRepo{db: db},
		workers:    &workerRepo{db: db},
		rentalInfo: &rentalInfoRepo{db: db},
		warehouse:  &warehouseRepo{db: db},
	}
}

func (s *GormStore) Equipment() EquipmentStore   { return s.equipment }
func (s *GormStore) Orders() OrderStore          { return s.orders }
func (s *GormStore) Users() UserStore            { return s.users }
func (s *GormStore) Workers() WorkerStore        { return s.workers }
func (s *GormStore) RentalInfo() RentalInfoStore { return s.rentalInfo }
func (s *GormStore) Warehouse() WarehouseStore   { return s.warehouse }

// wrapErr maps storage failures to the error taxonomy. Domain errors raised
// inside transactions pass through untouched.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}

	var (
		validationErr *apperrors.ValidationError
		conflictErr   *apperrors.ConflictError
		notFoundErr   *apperrors.NotFoundError
		persistErr    *apperrors.PersistenceError
	)

	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &conflictErr),
		errors.As(err, &notFoundErr),
		errors.As(err, &persistErr):
		return err
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &apperrors.ConflictError{Resource: op, Reason: "duplicate key"}
	default:
		return &apperrors.PersistenceError{Op: op, Err: err}
	}
}
