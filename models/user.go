package models

import (
	"time"
)

type UserRole string

const (
	RoleUser   UserRole = "user"
	RoleSeller UserRole = "seller"
	RoleAdmin  UserRole = "admin"
)

// SellerRequest tracks the seller-onboarding workflow on a user record.
// Requested=false means no request was ever made or the last one was
// rejected/cancelled; the two are indistinguishable.
type SellerRequest struct {
	Requested   bool       `json:"requested" gorm:"default:false"`
	RequestedAt *time.Time `json:"requested_at"`
	Approved    bool       `json:"approved" gorm:"default:false"`
	ApprovedAt  *time.Time `json:"approved_at"`
}

// SellerInfo is the profile a user submits with a seller request. It is
// kept even after a reject so a later re-request can reuse it.
type SellerInfo struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
}

type User struct {
	ID            uint          `json:"id" gorm:"primarykey"`
	Name          string        `json:"name" gorm:"not null"`
	Email         string        `json:"email" gorm:"uniqueIndex;not null"`
	Password      string        `json:"-" gorm:"not null"`
	UserType      UserRole      `json:"user_type" gorm:"default:'user'"`
	SellerRequest SellerRequest `json:"seller_request" gorm:"embedded;embeddedPrefix:seller_request_"`
	SellerInfo    SellerInfo    `json:"seller_info" gorm:"embedded;embeddedPrefix:seller_info_"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// Seller workflow states.
const (
	SellerStateNone     = "none"
	SellerStatePending  = "pending"
	SellerStateApproved = "approved"
)

// SellerState reports the seller-request workflow state of the user.
func (u *User) SellerState() string {
	switch {
	case u.SellerRequest.Requested && u.SellerRequest.Approved:
		return SellerStateApproved
	case u.SellerRequest.Requested:
		return SellerStatePending
	default:
		return SellerStateNone
	}
}
