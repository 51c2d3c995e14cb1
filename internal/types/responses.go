package types

import (
	"time"

	"github.com/patrykkrzal/skirent/internal/models"
)

type UserResponse struct {
	ID        uint        `json:"id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Login     string      `json:"login"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Login:     u.Login,
		Email:     u.Email,
		Role:      u.Role,
	}
}

type EquipmentResponse struct {
	ID            uint                 `json:"id"`
	Type          models.EquipmentType `json:"type"`
	Size          models.EquipmentSize `json:"size"`
	Price         float64              `json:"price"`
	IsInWarehouse bool                 `json:"is_in_warehouse"`
	IsReserved    bool                 `json:"is_reserved"`
}

func NewEquipmentResponse(e *models.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:            e.ID,
		Type:          e.Type,
		Size:          e.Size,
		Price:         e.Price,
		IsInWarehouse: e.IsInWarehouse,
		IsReserved:    e.IsReserved,
	}
}

type OrderResponse struct {
	ID           uint      `json:"id"`
	Number       string    `json:"number"`
	OrderDate    time.Time `json:"order_date"`
	Price        float64   `json:"price"`
	WasReturned  bool      `json:"was_returned"`
	RentedItems  string    `json:"rented_items"`
	UserID       uint      `json:"user_id"`
	EquipmentIDs []uint    `json:"equipment_ids"`
}

func NewOrderResponse(o *models.Order) OrderResponse {
	ids := make([]uint, 0, len(o.OrderedItems))
	for _, item := range o.OrderedItems {
		ids = append(ids, item.EquipmentID)
	}

	return OrderResponse{
		ID:           o.ID,
		Number:       o.Number,
		OrderDate:    o.OrderDate,
		Price:        o.Price,
		WasReturned:  o.WasReturned,
		RentedItems:  o.RentedItems,
		UserID:       o.UserID,
		EquipmentIDs: ids,
	}
}

type WorkerResponse struct {
	ID          uint   `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
	WorkStart   string `json:"work_start"`
	WorkEnd     string `json:"work_end"`
	WorkingDays string `json:"working_days"`
	JobTitle    string `json:"job_title"`
}

func NewWorkerResponse(w *models.Worker) WorkerResponse {
	return WorkerResponse{
		ID:          w.ID,
		FirstName:   w.FirstName,
		LastName:    w.LastName,
		Email:       w.Email,
		PhoneNumber: w.PhoneNumber,
		Address:     w.Address,
		WorkStart:   w.WorkStart,
		WorkEnd:     w.WorkEnd,
		WorkingDays: w.WorkingDays,
		JobTitle:    w.JobTitle,
	}
}

type WarehouseResponse struct {
	ID            uint   `json:"id"`
	EquipmentName string `json:"equipment_name"`
	Quantity      int    `json:"quantity"`
	Sizes         string `json:"sizes"`
}

func NewWarehouseResponse(w *models.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:            w.ID,
		EquipmentName: w.EquipmentName,
		Quantity:      w.Quantity,
		Sizes:         w.Sizes,
	}
}
