package models

import "time"

type RegisterRequest struct {
	Name     string   `json:"name" binding:"required,min=2,max=100"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	UserType UserRole `json:"user_type,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UpdateUserRequest is the allow-list for the general user update path.
// Password and seller state are deliberately absent: passwords change via
// auth flows, seller state only via the dedicated transitions.
type UpdateUserRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email" binding:"omitempty,email"`
	UserType UserRole `json:"user_type"`
}

// SellerApplicationRequest is validated with the translated validator
// rather than binding tags so field errors come back per-field.
type SellerApplicationRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Phone    string `json:"phone" validate:"required,min=6,max=20"`
	Location string `json:"location" validate:"required"`
	Bio      string `json:"bio" validate:"max=500"`
}

type CreateBookRequest struct {
	Title       string      `json:"title" binding:"required,min=1,max=255"`
	Author      string      `json:"author" binding:"required"`
	Description string      `json:"description"`
	Price       float64     `json:"price" binding:"required,gt=0"`
	Category    string      `json:"category"`
	Condition   string      `json:"condition"`
	Images      []string    `json:"images"`
	SellerID    uint        `json:"seller" binding:"required"`
	SellerName  string      `json:"seller_name"`
	ContactInfo ContactInfo `json:"contact_info"`
	Status      BookStatus  `json:"status"`
}

// UpdateBookRequest is the allow-list for the general book update path.
// Status and seller cannot be changed here: status goes through the
// dedicated status endpoint, the seller reference is immutable.
type UpdateBookRequest struct {
	Title       *string      `json:"title"`
	Author      *string      `json:"author"`
	Description *string      `json:"description"`
	Price       *float64     `json:"price"`
	Category    *string      `json:"category"`
	Condition   *string      `json:"condition"`
	Images      []string     `json:"images"`
	SellerName  *string      `json:"seller_name"`
	ContactInfo *ContactInfo `json:"contact_info"`
}

type UpdateBookStatusRequest struct {
	Status BookStatus `json:"status" binding:"required"`
}

type BookListParams struct {
	Category  string `form:"category"`
	Condition string `form:"condition"`
	Search    string `form:"search"`
	Page      int    `form:"page,default=1"`
	Limit     int    `form:"limit,default=12"`
}

// Filtered reports whether any non-default filter or page is set; only the
// unfiltered first page is served from cache.
func (p BookListParams) Filtered() bool {
	return p.Category != "" || p.Condition != "" || p.Search != "" || p.Page > 1
}

// PendingSeller is the admin review projection of a user with an open
// seller request.
type PendingSeller struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Location       string    `json:"location"`
	Bio            string    `json:"bio"`
	Status         string    `json:"status"`
	RegisteredDate time.Time `json:"registered_date"`
}
