package seed

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/patrykkrzal/skirent/internal/models"
	"github.com/patrykkrzal/skirent/internal/store"
)

// seedEquipment is the fixed demo catalog: one row per type/size combination.
var seedEquipment = []struct {
	Type  models.EquipmentType
	Size  models.EquipmentSize
	Price float64
}{
	{models.TypeSkis, models.SizeSmall, 120},
	{models.TypeSkis, models.SizeMedium, 130},
	{models.TypeSkis, models.SizeLarge, 140},
	{models.TypeHelmet, models.SizeUniversal, 40},
	{models.TypeGloves, models.SizeSmall, 15},
	{models.TypeGloves, models.SizeMedium, 18},
	{models.TypeGloves, models.SizeLarge, 20},
	{models.TypePoles, models.SizeUniversal, 25},
	{models.TypeSnowboard, models.SizeLarge, 160},
	{models.TypeGoggles, models.SizeUniversal, 35},
}

// Run populates an empty store with the demo rental location: one RentalInfo,
// two users, two workers, the equipment catalog above, warehouse aggregates
// and one open order for the first user. Re-running against a populated store
// is a no-op.
func Run(ctx context.Context, st store.Store) error {
	count, err := st.Users().Count(ctx)

	if err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	rentalInfo := &models.RentalInfo{
		OpenHour:    "08:00",
		CloseHour:   "18:00",
		Address:     "ul. Centralna 1",
		PhoneNumber: "123456789",
		OpenDays:    "Mon-Fri",
		Email:       "info@rental.com",
	}

	if err := st.RentalInfo().Create(ctx, rentalInfo); err != nil {
		return err
	}

	pawel, err := seedUser(ctx, st, "Paweł", "Kowalski", "pawel", "pawel@example.com", "111222333", rentalInfo.ID)

	if err != nil {
		return err
	}

	if _, err := seedUser(ctx, st, "Anna", "Nowak", "anna", "anna@example.com", "444555666", rentalInfo.ID); err != nil {
		return err
	}

	workers := []struct {
		first, last, email, phone, address, start, end, title string
		role                                                  models.Role
	}{
		{"Jan", "Kowal", "jan@example.com", "777888999", "ul. Działkowa 3", "08:00", "16:00", "Manager", models.RoleAdmin},
		{"Ewa", "Zielińska", "ewa@example.com", "222333444", "ul. Kwiatowa 5", "10:00", "18:00", "Cashier", models.RoleWorker},
	}

	for _, w := range workers {
		hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		account := &models.User{
			FirstName:    w.first,
			LastName:     w.last,
			Login:        w.email,
			Email:        w.email,
			PhoneNumber:  w.phone,
			PasswordHash: string(hash),
			Role:         w.role,
			RentalInfoID: &rentalInfo.ID,
		}

		worker := &models.Worker{
			FirstName:    w.first,
			LastName:     w.last,
			Email:        w.email,
			PhoneNumber:  w.phone,
			Address:      w.address,
			WorkStart:    w.start,
			WorkEnd:      w.end,
			WorkingDays:  "Mon-Fri",
			JobTitle:     w.title,
			Role:         w.role,
			RentalInfoID: rentalInfo.ID,
		}

		if err := st.Workers().CreateWithAccount(ctx, worker, account); err != nil {
			return err
		}
	}

	var firstEquipmentID uint

	sizesByType := make(map[models.EquipmentType][]string)

	for _, row := range seedEquipment {
		e := &models.Equipment{
			Type:          row.Type,
			Size:          row.Size,
			Price:         row.Price,
			IsInWarehouse: true,
			RentalInfoID:  &rentalInfo.ID,
		}

		if err := st.Equipment().Create(ctx, e); err != nil {
			return err
		}

		if firstEquipmentID == 0 {
			firstEquipmentID = e.ID
		}

		sizesByType[row.Type] = append(sizesByType[row.Type], string(row.Size))
	}

	for _, row := range seedEquipment {
		sizes, ok := sizesByType[row.Type]
		if !ok {
			continue
		}
		delete(sizesByType, row.Type)

		w := &models.Warehouse{
			EquipmentName: string(row.Type),
			Quantity:      len(sizes),
			Sizes:         strings.Join(sizes, ", "),
		}

		if err := st.Warehouse().Create(ctx, w); err != nil {
			return err
		}
	}

	// One open order for pawel on the first seeded item (Skis Small); the
	// store computes the price and flips the availability flags.
	now := time.Now()
	y, m, d := now.UTC().Date()

	order := &models.Order{
		Number:         uuid.NewString(),
		OrderDate:      now,
		SubmissionDate: time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		UserID:         pawel.ID,
		RentalInfoID:   &rentalInfo.ID,
	}

	if err := st.Orders().PlaceOrder(ctx, order, []uint{firstEquipmentID}); err != nil {
		return err
	}

	zap.L().Info("seeded demo rental location", zap.Uint("rental_info_id", rentalInfo.ID))

	return nil
}

func seedUser(ctx context.Context, st store.Store, first, last, login, email, phone string, rentalInfoID uint) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

	if err != nil {
		return nil, err
	}

	u := &models.User{
		FirstName:    first,
		LastName:     last,
		Login:        login,
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		RentalInfoID: &rentalInfoID,
	}

	if err := st.Users().Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}
