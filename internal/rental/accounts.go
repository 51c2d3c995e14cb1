package rental

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/patrykkrzal/skirent/internal/apperrors"
	"github.com/patrykkrzal/skirent/internal/auth"
	"github.com/patrykkrzal/skirent/internal/models"
	"github.com/patrykkrzal/skirent/internal/store"
)

// ErrInvalidCredentials is returned by Login for a bad login/password pair.
var ErrInvalidCredentials = errors.New("invalid login or password")

// AccountService handles user and worker registration and login.
type AccountService struct {
	store store.Store
}

func NewAccountService(st store.Store) *AccountService {
	return &AccountService{store: st}
}

type RegisterUserInput struct {
	FirstName   string
	LastName    string
	Login       string
	Email       string
	PhoneNumber string
	Password    string
}

type RegisterWorkerInput struct {
	FirstName    string
	LastName     string
	Email        string
	PhoneNumber  string
	Address      string
	WorkStart    string
	WorkEnd      string
	WorkingDays  string
	JobTitle     string
	Password     string
	RentalInfoID uint
}

func (s *AccountService) RegisterUser(ctx context.Context, in RegisterUserInput) (*models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Login = strings.TrimSpace(in.Login)

	if err := s.checkEmailFree(ctx, in.Email); err != nil {
		return nil, err
	}

	if _, err := s.store.Users().ByLogin(ctx, in.Login); err == nil {
		return nil, &apperrors.ConflictError{Resource: "user", Reason: "login already taken"}
	} else if !isNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)

	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "user.hash_password", Err: err}
	}

	user := &models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Login:        in.Login,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}

	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *AccountService) RegisterWorker(ctx context.Context, in RegisterWorkerInput) (*models.Worker, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	verr := apperrors.NewValidationError()

	if !validClock(in.WorkStart) {
		verr.Add("work_start", "must be a HH:MM time of day")
	}

	if !validClock(in.WorkEnd) {
		verr.Add("work_end", "must be a HH:MM time of day")
	}

	if validClock(in.WorkStart) && validClock(in.WorkEnd) && in.WorkStart > in.WorkEnd {
		verr.Add("work_end", "must not be earlier than work_start")
	}

	if verr.HasErrors() {
		return nil, verr
	}

	if err := s.checkEmailFree(ctx, in.Email); err != nil {
		return nil, err
	}

	rentalInfoID := in.RentalInfoID

	if rentalInfoID == 0 {
		ri, err := s.store.RentalInfo().First(ctx)
		if err != nil {
			return nil, err
		}
		rentalInfoID = ri.ID
	} else if _, err := s.store.RentalInfo().ByID(ctx, rentalInfoID); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)

	if err != nil {
		return nil, &apperrors.PersistenceError{Op: "worker.hash_password", Err: err}
	}

	account := &models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Login:        in.Email,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		PasswordHash: string(hash),
		Role:         models.RoleWorker,
		RentalInfoID: &rentalInfoID,
	}

	worker := &models.Worker{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		Address:      in.Address,
		WorkStart:    in.WorkStart,
		WorkEnd:      in.WorkEnd,
		WorkingDays:  in.WorkingDays,
		JobTitle:     in.JobTitle,
		Role:         models.RoleWorker,
		RentalInfoID: rentalInfoID,
	}

	if err := s.store.Workers().CreateWithAccount(ctx, worker, account); err != nil {
		return nil, err
	}

	zap.L().Info("worker registered", zap.Uint("worker_id", worker.ID), zap.String("email", worker.Email))

	return worker, nil
}

func (s *AccountService) ListWorkers(ctx context.Context) ([]models.Worker, error) {
	return s.store.Workers().List(ctx)
}

// Login resolves the account by login alias first, then by email, and issues
// a JWT carrying the role tag.
func (s *AccountService) Login(ctx context.Context, login, password string) (string, *models.User, error) {
	user, err := s.store.Users().ByLogin(ctx, login)

	if isNotFound(err) {
		user, err = s.store.Users().ByEmail(ctx, strings.ToLower(login))
	}

	if isNotFound(err) {
		return "", nil, ErrInvalidCredentials
	}

	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(user.ID, user.Email, user.Role)

	if err != nil {
		return "", nil, &apperrors.PersistenceError{Op: "auth.sign_token", Err: err}
	}

	return token, user, nil
}

func (s *AccountService) checkEmailFree(ctx context.Context, email string) error {
	_, err := s.store.Users().ByEmail(ctx, email)

	if err == nil {
		return &apperrors.ConflictError{Resource: "user", Reason: "email already registered"}
	}

	if !isNotFound(err) {
		return err
	}

	return nil
}

func isNotFound(err error) bool {
	var nf *apperrors.NotFoundError
	return errors.As(err, &nf)
}

func validClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
