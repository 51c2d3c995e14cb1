package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"gorm.io/gorm"

	"github.com/patrykkrzal/skirent/internal/apperrors"
	"github.com/patrykkrzal/skirent/internal/models"
)

// MemoryStore is an in-memory Store implementation used by tests and local
// development. A single mutex serializes every operation, so the compound
// writes are atomic the same way the relational transactions are: they
// validate first and mutate only after every check passed.
type MemoryStore struct {
	mu sync.Mutex

	nextID     uint
	equipment  map[uint]models.Equipment
	orders     map[uint]models.Order
	items      []models.OrderedItem
	users      map[uint]models.User
	workers    map[uint]models.Worker
	rentalInfo map[uint]models.RentalInfo
	warehouse  map[uint]models.Warehouse
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:     1,
		equipment:  make(map[uint]models.Equipment),
		orders:     make(map[uint]models.Order),
		users:      make(map[uint]models.User),
		workers:    make(map[uint]models.Worker),
		rentalInfo: make(map[uint]models.RentalInfo),
		warehouse:  make(map[uint]models.Warehouse),
	}
}

func (s *MemoryStore) Equipment() EquipmentStore   { return (*memEquipment)(s) }
func (s *MemoryStore) Orders() OrderStore          { return (*memOrders)(s) }
func (s *MemoryStore) Users() UserStore            { return (*memUsers)(s) }
func (s *MemoryStore) Workers() WorkerStore        { return (*memWorkers)(s) }
func (s *MemoryStore) RentalInfo() RentalInfoStore { return (*memRentalInfo)(s) }
func (s *MemoryStore) Warehouse() WarehouseStore   { return (*memWarehouse)(s) }

func (s *MemoryStore) allocID() uint {
	id := s.nextID
	s.nextID++
	return id
}

type memEquipment MemoryStore

func (s *memEquipment) Create(ctx context.Context, e *models.Equipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = (*MemoryStore)(s).allocID()
	s.equipment[e.ID] = *e

	return nil
}

func (s *memEquipment) ByID(ctx context.Context, id uint) (*models.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.equipment[id]

	if !ok {
		return nil, &apperrors.NotFoundError{Resource: "equipment", ID: id}
	}

	return &e, nil
}

func (s *memEquipment) List(ctx context.Context, filter EquipmentFilter) ([]models.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Equipment

	for _, e := range s.equipment {
		if filter.Type != nil && e.Type != *filter.Type {
			continue
		}
		if filter.Size != nil && e.Size != *filter.Size {
			continue
		}
		if filter.Available != nil && e.Available() != *filter.Available {
			continue
		}
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (s *memEquipment) Update(ctx context.Context, e *models.Equipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.equipment[e.ID]; !ok {
		return &apperrors.NotFoundError{Resource: "equipment", ID: e.ID}
	}

	s.equipment[e.ID] = *e

	return nil
}

func (s *memEquipment) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.equipment[id]; !ok {
		return &apperrors.NotFoundError{Resource: "equipment", ID: id}
	}

	for _, item := range s.items {
		if item.EquipmentID == id {
			return &apperrors.ConflictError{Resource: "equipment", Reason: "referenced by an order"}
		}
	}

	delete(s.equipment, id)

	return nil
}

type memOrders MemoryStore

func (s *memOrders) ByID(ctx context.Context, id uint) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]

	if !ok {
		return nil, &apperrors.NotFoundError{Resource: "order", ID: id}
	}

	o.OrderedItems = (*MemoryStore)(s).itemsForOrder(id)

	return &o, nil
}

func (s *memOrders) List(ctx context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Order

	for id, o := range s.orders {
		o.OrderedItems = (*MemoryStore)(s).itemsForOrder(id)
		out = append(out, o)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (s *memOrders) PlaceOrder(ctx context.Context, order *models.Order, equipmentIDs []uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		total   float64
		summary []string
	)

	for _, id := range equipmentIDs {
		e, ok := s.equipment[id]

		if !ok {
			return &apperrors.NotFoundError{Resource: "equipment", ID: id}
		}

		if !e.Available() {
			return &apperrors.ConflictError{
				Resource: "equipment",
				Reason:   e.Name() + " is not available",
			}
		}

		total += e.Price
		summary = append(summary, e.Name())
	}

	order.ID = (*MemoryStore)(s).allocID()
	order.Price = total
	order.RentedItems = strings.Join(summary, ", ")

	for _, id := range equipmentIDs {
		e := s.equipment[id]
		e.IsReserved = true
		e.IsInWarehouse = false
		s.equipment[id] = e

		item := models.OrderedItem{
			Model:       gorm.Model{ID: (*MemoryStore)(s).allocID()},
			EquipmentID: id,
			OrderID:     order.ID,
		}
		s.items = append(s.items, item)
		order.OrderedItems = append(order.OrderedItems, item)
	}

	s.orders[order.ID] = *order

	return nil
}

func (s *memOrders) ReturnOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]

	if !ok || o.WasReturned {
		return nil, &apperrors.NotFoundError{Resource: "order", ID: orderID}
	}

	o.WasReturned = true
	o.OrderedItems = (*MemoryStore)(s).itemsForOrder(orderID)
	s.orders[orderID] = o

	for _, item := range o.OrderedItems {
		e := s.equipment[item.EquipmentID]
		e.IsReserved = false
		e.IsInWarehouse = true
		s.equipment[item.EquipmentID] = e
	}

	return &o, nil
}

func (s *MemoryStore) itemsForOrder(orderID uint) []models.OrderedItem {
	var out []models.OrderedItem

	for _, item := range s.items {
		if item.OrderID == orderID {
			out = append(out, item)
		}
	}

	return out
}

type memUsers MemoryStore

func (s *memUsers) Create(ctx context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return &apperrors.ConflictError{Resource: "user", Reason: "duplicate key"}
		}
		if existing.Login == u.Login {
			return &apperrors.ConflictError{Resource: "user", Reason: "duplicate key"}
		}
	}

	u.ID = (*MemoryStore)(s).allocID()
	s.users[u.ID] = *u

	return nil
}

func (s *memUsers) ByID(ctx context.Context, id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]

	if !ok {
		return nil, &apperrors.NotFoundError{Resource: "user", ID: id}
	}

	return &u, nil
}

func (s *memUsers) ByLogin(ctx context.Context, login string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Login == login {
			return &u, nil
		}
	}

	return nil, &apperrors.NotFoundError{Resource: "user"}
}

func (s *memUsers) ByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return &u, nil
		}
	}

	return nil, &apperrors.NotFoundError{Resource: "user"}
}

func (s *memUsers) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return int64(len(s.users)), nil
}

type memWorkers MemoryStore

func (s *memWorkers) CreateWithAccount(ctx context.Context, w *models.Worker, account *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate both writes before applying either one.
	for _, existing := range s.users {
		if existing.Email == account.Email || existing.Login == account.Login {
			return &apperrors.ConflictError{Resource: "user", Reason: "duplicate key"}
		}
	}

	for _, existing := range s.workers {
		if existing.Email == w.Email {
			return &apperrors.ConflictError{Resource: "worker", Reason: "duplicate key"}
		}
	}

	account.ID = (*MemoryStore)(s).allocID()
	s.users[account.ID] = *account

	w.ID = (*MemoryStore)(s).allocID()
	s.workers[w.ID] = *w

	return nil
}

func (s *memWorkers) List(ctx context.Context) ([]models.Worker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Worker

	for _, w := range s.workers {
		out = append(out, w)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

type memRentalInfo MemoryStore

func (s *memRentalInfo) Create(ctx context.Context, ri *models.RentalInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ri.ID = (*MemoryStore)(s).allocID()
	s.rentalInfo[ri.ID] = *ri

	return nil
}

func (s *memRentalInfo) ByID(ctx context.Context, id uint) (*models.RentalInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ri, ok := s.rentalInfo[id]

	if !ok {
		return nil, &apperrors.NotFoundError{Resource: "rental info", ID: id}
	}

	return &ri, nil
}

func (s *memRentalInfo) First(ctx context.Context) (*models.RentalInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		best  *models.RentalInfo
		found bool
	)

	for id := range s.rentalInfo {
		ri := s.rentalInfo[id]
		if !found || ri.ID < best.ID {
			best = &ri
			found = true
		}
	}

	if !found {
		return nil, &apperrors.NotFoundError{Resource: "rental info"}
	}

	return best, nil
}

type memWarehouse MemoryStore

func (s *memWarehouse) Create(ctx context.Context, w *models.Warehouse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.ID = (*MemoryStore)(s).allocID()
	s.warehouse[w.ID] = *w

	return nil
}

func (s *memWarehouse) List(ctx context.Context) ([]models.Warehouse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Warehouse

	for _, w := range s.warehouse {
		out = append(out, w)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
