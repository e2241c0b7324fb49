package services

import (
	"errors"
	"time"

	"deoghar-kitab/models"
	"deoghar-kitab/repositories"

	"gorm.io/gorm"
)

type UserService interface {
	GetUsers() ([]models.User, error)
	GetUser(id uint) (*models.User, error)
	UpdateUser(id uint, req models.UpdateUserRequest, callerRole models.UserRole) (*models.User, error)
	DeleteUser(id uint) error
	RequestSeller(id uint, req models.SellerApplicationRequest) (*models.User, error)
	ApproveSeller(id uint) (*models.User, error)
	RejectSeller(id uint) (*models.User, error)
	CancelSellerRequest(id uint) (*models.User, error)
	GetPendingSellers() ([]models.PendingSeller, error)
}

type userService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

func (s *userService) GetUser(id uint) (*models.User, error) {
	return s.loadUser(id)
}

func (s *userService) UpdateUser(id uint, req models.UpdateUserRequest, callerRole models.UserRole) (*models.User, error) {
	user, err := s.loadUser(id)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}

	if req.Email != "" && req.Email != user.Email {
		existing, err := s.userRepo.GetByEmail(req.Email)
		if err == nil && existing != nil && existing.ID != 0 {
			return nil, models.ErrDuplicateEmail
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = req.Email
	}

	// Only a direct admin edit may change the account type
	if req.UserType != "" && req.UserType != user.UserType {
		if callerRole != models.RoleAdmin {
			return nil, models.ErrForbidden
		}
		user.UserType = req.UserType
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) DeleteUser(id uint) error {
	rows, err := s.userRepo.Delete(id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (s *userService) RequestSeller(id uint, req models.SellerApplicationRequest) (*models.User, error) {
	user, err := s.loadUser(id)
	if err != nil {
		return nil, err
	}

	if user.UserType == models.RoleSeller {
		return nil, models.ErrAlreadySeller
	}

	if user.SellerState() == models.SellerStatePending {
		return nil, models.ErrDuplicateRequest
	}

	info := models.SellerInfo{
		Name:     req.Name,
		Phone:    req.Phone,
		Location: req.Location,
		Bio:      req.Bio,
	}

	rows, err := s.userRepo.SubmitSellerRequest(id, info, time.Now())
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// Lost a race with a concurrent request
		return nil, models.ErrDuplicateRequest
	}

	return s.loadUser(id)
}

func (s *userService) ApproveSeller(id uint) (*models.User, error) {
	if err := s.checkPending(id); err != nil {
		return nil, err
	}

	rows, err := s.userRepo.ApproveSeller(id, time.Now())
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, models.ErrNoPendingRequest
	}

	return s.loadUser(id)
}

func (s *userService) RejectSeller(id uint) (*models.User, error) {
	return s.clearPending(id)
}

// CancelSellerRequest performs the same transition as RejectSeller; the
// two differ only in who is allowed to invoke them.
func (s *userService) CancelSellerRequest(id uint) (*models.User, error) {
	return s.clearPending(id)
}

func (s *userService) GetPendingSellers() ([]models.PendingSeller, error) {
	users, err := s.userRepo.GetPendingSellers()
	if err != nil {
		return nil, err
	}

	pending := make([]models.PendingSeller, 0, len(users))
	for _, u := range users {
		pending = append(pending, models.PendingSeller{
			ID:             u.ID,
			Name:           u.SellerInfo.Name,
			Email:          u.Email,
			Phone:          u.SellerInfo.Phone,
			Location:       u.SellerInfo.Location,
			Bio:            u.SellerInfo.Bio,
			Status:         models.SellerStatePending,
			RegisteredDate: u.CreatedAt,
		})
	}

	return pending, nil
}

func (s *userService) clearPending(id uint) (*models.User, error) {
	if err := s.checkPending(id); err != nil {
		return nil, err
	}

	rows, err := s.userRepo.ClearSellerRequest(id)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, models.ErrNoPendingRequest
	}

	return s.loadUser(id)
}

func (s *userService) checkPending(id uint) error {
	user, err := s.loadUser(id)
	if err != nil {
		return err
	}
	if user.SellerState() != models.SellerStatePending {
		return models.ErrNoPendingRequest
	}
	return nil
}

func (s *userService) loadUser(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
