package repositories

import (
	"time"

	"deoghar-kitab/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetAll() ([]models.User, error)
	Update(user *models.User) error
	Delete(id uint) (int64, error)
	GetPendingSellers() ([]models.User, error)
	SubmitSellerRequest(id uint, info models.SellerInfo, at time.Time) (int64, error)
	ApproveSeller(id uint, at time.Time) (int64, error)
	ClearSellerRequest(id uint) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) GetAll() ([]models.User, error) {
	var users []models.User
	err := r.db.Order("created_at desc").Find(&users).Error
	return users, err
}

func (r *userRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) Delete(id uint) (int64, error) {
	res := r.db.Delete(&models.User{}, id)
	return res.RowsAffected, res.Error
}

func (r *userRepository) GetPendingSellers() ([]models.User, error) {
	var users []models.User
	err := r.db.
		Where("seller_request_requested = ? AND seller_request_approved = ?", true, false).
		Order("seller_request_requested_at asc").
		Find(&users).Error
	return users, err
}

// SubmitSellerRequest opens a seller request only if none is pending and
// the user is not already a seller. Zero rows affected means a concurrent
// request won the race (or the user was deleted).
func (r *userRepository) SubmitSellerRequest(id uint, info models.SellerInfo, at time.Time) (int64, error) {
	res := r.db.Model(&models.User{}).
		Where("id = ? AND seller_request_requested = ? AND user_type <> ?", id, false, models.RoleSeller).
		Updates(map[string]interface{}{
			"seller_request_requested":    true,
			"seller_request_requested_at": at,
			"seller_request_approved":     false,
			"seller_request_approved_at":  nil,
			"seller_info_name":            info.Name,
			"seller_info_phone":           info.Phone,
			"seller_info_location":        info.Location,
			"seller_info_bio":             info.Bio,
		})
	return res.RowsAffected, res.Error
}

// ApproveSeller flips a pending request to approved and promotes the user
// in one conditional update, so two concurrent approvals cannot both pass
// the pending check.
func (r *userRepository) ApproveSeller(id uint, at time.Time) (int64, error) {
	res := r.db.Model(&models.User{}).
		Where("id = ? AND seller_request_requested = ? AND seller_request_approved = ?", id, true, false).
		Updates(map[string]interface{}{
			"user_type":                  models.RoleSeller,
			"seller_request_approved":    true,
			"seller_request_approved_at": at,
		})
	return res.RowsAffected, res.Error
}

// ClearSellerRequest returns a pending request to the none state. UserType
// and the submitted seller info are left untouched.
func (r *userRepository) ClearSellerRequest(id uint) (int64, error) {
	res := r.db.Model(&models.User{}).
		Where("id = ? AND seller_request_requested = ? AND seller_request_approved = ?", id, true, false).
		Updates(map[string]interface{}{
			"seller_request_requested":    false,
			"seller_request_requested_at": nil,
		})
	return res.RowsAffected, res.Error
}
